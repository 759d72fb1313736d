package util

import (
	"regexp"
	"strconv"
)

var (
	emailRegex = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
	phoneRegex = regexp.MustCompile(`^\+\d{9,18}$`)
)

// IsValidUserID : идентификатор пользователя должен быть email или телефоном
func IsValidUserID(id string) bool {
	return emailRegex.MatchString(id) || phoneRegex.MatchString(id)
}

// IsPositiveNumber : строка query-параметра должна быть положительным числом.
// Пустая строка допустима, для неё действует значение по умолчанию.
func IsPositiveNumber(value string) bool {
	if value == "" {
		return true
	}
	n, err := strconv.Atoi(value)
	return err == nil && n > 0
}
