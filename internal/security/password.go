package security

import (
	"file-hosting-server/internal/util"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword : bcrypt-хэш от пароля с дописанным серверным секретом.
// Утечка таблицы хэшей без секрета не даёт восстановить исходный ввод.
func HashPassword(password string, secret string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password+secret), bcrypt.DefaultCost)
	if err != nil {
		return "", util.LogError("ошибка хэширования пароля", err)
	}
	return string(hash), nil
}

// CheckPassword : сверяет пароль с хэшем. На битом хэше просто возвращает
// false, ошибок наружу не отдаёт.
func CheckPassword(password string, secret string, passwordHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password+secret)) == nil
}
