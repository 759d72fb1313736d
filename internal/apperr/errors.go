package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Классы ошибок протокола. Хендлеры сопоставляют их со статусами через Status,
// сервисы заворачивают через %w и не знают про HTTP.
var (
	ErrConflict     = errors.New("указанное имя пользователя занято")
	ErrAuth         = errors.New("ошибка авторизации")
	ErrSession      = errors.New("ошибка сессии")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("не найдено")
)

func Wrap(kind error, context string) error {
	return fmt.Errorf("%w: %s", kind, context)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

func IsSession(err error) bool {
	return errors.Is(err, ErrSession)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// Status : чистое отображение класса ошибки в HTTP статус.
// ErrSession намеренно уходит в 500: нулевое число обновлённых строк — это
// внутренний сбой, а не ошибка клиента.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrAuth), errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
