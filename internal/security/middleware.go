package security

import (
	"context"
	"file-hosting-server/config"
	"file-hosting-server/internal/apperr"
	"file-hosting-server/internal/model"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// UserFinder : часть репозитория пользователей, нужная для проверки токена.
// Отдельный интерфейс, чтобы не замыкать цикл импортов с ports.
type UserFinder interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
}

type contextKey string

const (
	UserContextKey      contextKey = "user"
	RequestIDContextKey contextKey = "request_id"
)

const RequestIDHeader = "X-Request-Id"

// TokenCheckMiddleware пропускает запрос дальше только с действующим access
// токеном. Токен должен не просто быть валидным, но и в точности совпадать с
// тем, что сейчас сохранён у пользователя: после выдачи новой пары или logout
// старый токен перестаёт работать, даже если ещё не просрочен.
func TokenCheckMiddleware(cfg *config.AuthConfig, jwtService *JWTService, userRepository UserFinder) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(handleAuthentication(cfg, jwtService, userRepository, next))
	}
}

func handleAuthentication(cfg *config.AuthConfig, jwtService *JWTService, userRepository UserFinder, next http.Handler) func(writer http.ResponseWriter, request *http.Request) {
	return func(writer http.ResponseWriter, request *http.Request) {
		token := ExtractBearerToken(request, cfg.HeaderName)
		if token == "" {
			http.Error(writer, "Unauthorized action", http.StatusUnauthorized)
			return
		}

		claims, err := jwtService.DecodeAccessToken(token)
		if err != nil {
			log.Printf("невалидный токен: %v", err)
			http.Error(writer, "Unauthorized action", http.StatusUnauthorized)
			return
		}

		user, err := userRepository.FindByID(request.Context(), claims.Data.ID)
		if err != nil || user == nil {
			log.Printf("пользователь %s не найден", claims.Data.ID)
			http.Error(writer, "Unauthorized action", http.StatusUnauthorized)
			return
		}

		if user.AccessToken == nil || *user.AccessToken != token {
			log.Printf("токен пользователя %s не совпадает с сохранённым", claims.Data.ID)
			http.Error(writer, "Unauthorized action", http.StatusUnauthorized)
			return
		}

		req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
		next.ServeHTTP(writer, req)
	}
}

// ExtractBearerToken читает токен из настроенного заголовка.
// Префикс "Bearer " необязателен: клиенты оригинального API передают токен
// без него.
func ExtractBearerToken(request *http.Request, headerName string) string {
	header := request.Header.Get(headerName)
	return strings.TrimPrefix(header, "Bearer ")
}

// RequestIDMiddleware проставляет каждому запросу идентификатор для логов
func RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requestID := request.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		writer.Header().Set(RequestIDHeader, requestID)
		req := request.WithContext(context.WithValue(request.Context(), RequestIDContextKey, requestID))
		next.ServeHTTP(writer, req)
	})
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, apperr.Wrap(apperr.ErrUnauthorized, "пользователь не авторизован")
	}
	return claims, nil
}
