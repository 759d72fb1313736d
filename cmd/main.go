package main

import (
	"context"
	"file-hosting-server/config"
	_ "file-hosting-server/docs"
	"file-hosting-server/internal/handler"
	"file-hosting-server/internal/repository"
	"file-hosting-server/internal/security"
	"file-hosting-server/internal/service"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title File-hosting-server
// @version 1.0
// @description REST API для авторизации и обмена файлами

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	userRepo := repository.NewUserRepository(db)
	fileRepo := repository.NewFileRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, time.Duration(cfg.TTL.Cache)*time.Second)

	storageService, err := service.NewStorageService(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания сервиса хранилища: %v", err)
	}

	jwtService := security.NewJWTService(&cfg.Auth)
	authService := service.NewAuthenticationService(userRepo, jwtService, &cfg.Auth)
	fileService := service.NewFileService(fileRepo, cacheRepo, storageService)

	authHandler := handler.NewAuthenticationHandler(authService, &cfg.Auth)
	fileHandler := handler.NewFileHandler(fileService, &cfg.Upload)

	router.Use(security.RequestIDMiddleware)
	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, jwtService, userRepo, cfg)
	setupFileRoutes(router, fileHandler, jwtService, userRepo, cfg)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, jwtService *security.JWTService, userRepo *repository.UserRepository, cfg *config.AppConfig) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/signup", h.SignUp)
		r.Post("/signin", h.SignIn)
		r.Post("/signin/new_token", h.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(security.TokenCheckMiddleware(&cfg.Auth, jwtService, userRepo))
			r.Get("/logout", h.Logout)
			r.Get("/info", h.Info)
		})
	})
}

func setupFileRoutes(r chi.Router, h *handler.FileHandler, jwtService *security.JWTService, userRepo *repository.UserRepository, cfg *config.AppConfig) {
	r.Route("/api/file", func(r chi.Router) {
		r.Use(security.TokenCheckMiddleware(&cfg.Auth, jwtService, userRepo))

		r.Get("/list", h.ListFiles)
		r.Get("/{id}", h.GetFile)
		r.Get("/download/{id}", h.DownloadFile)
		r.Post("/upload", h.UploadFile)
		r.Put("/update/{id}", h.UpdateFile)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
