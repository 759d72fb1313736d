package config

import "github.com/aws/aws-sdk-go-v2/service/s3"

type ServerConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	BasePath string `yaml:"base_path"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type S3Config struct {
	Bucket   string `yaml:"bucket"`
	Client   *s3.Client
	Region   string `yaml:"region"`
	Endpoint string `yaml:"endpoint"`
	Local    bool   `yaml:"local"`
}

// AuthConfig : параметры выдачи и проверки токенов.
// Секреты access и refresh токенов независимы, TTL один на оба класса.
type AuthConfig struct {
	AccessSecret  string `yaml:"access_secret"`
	RefreshSecret string `yaml:"refresh_secret"`
	TokenTTL      string `yaml:"token_ttl"`
	HeaderName    string `yaml:"header_name"`
}

type UploadConfig struct {
	MaxFileSizeBytes int64 `yaml:"max_file_size_bytes"`
}

type TTL struct {
	Cache int64 `yaml:"cache"`
}
