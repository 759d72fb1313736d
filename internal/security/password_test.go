package security_test

import (
	"testing"

	"file-hosting-server/internal/security"

	"github.com/stretchr/testify/assert"
)

// 1. Хэш проверяется тем же паролем и секретом
func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := security.HashPassword("P@ssw0rd123", "server-secret")
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "P@ssw0rd123", hash)

	assert.True(t, security.CheckPassword("P@ssw0rd123", "server-secret", hash))
}

// 2. Неверный пароль
func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := security.HashPassword("P@ssw0rd123", "server-secret")
	assert.NoError(t, err)

	assert.False(t, security.CheckPassword("wrong", "server-secret", hash))
}

// 3. Верный пароль, но другой серверный секрет
func TestCheckPassword_WrongSecret(t *testing.T) {
	hash, err := security.HashPassword("P@ssw0rd123", "server-secret")
	assert.NoError(t, err)

	assert.False(t, security.CheckPassword("P@ssw0rd123", "other-secret", hash))
}

// 4. Битый хэш — просто false, без паники
func TestCheckPassword_MalformedHash(t *testing.T) {
	assert.False(t, security.CheckPassword("P@ssw0rd123", "server-secret", "not-a-bcrypt-hash"))
	assert.False(t, security.CheckPassword("P@ssw0rd123", "server-secret", ""))
}
