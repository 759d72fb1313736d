package service

import (
	"context"
	"file-hosting-server/config"
	"file-hosting-server/internal/apperr"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/ports"
	"file-hosting-server/internal/security"
	"file-hosting-server/internal/util"
	"fmt"
	"log"
)

// AuthenticationService реализует протокол авторизации: регистрацию, вход,
// обновление пары токенов и выход. У пользователя в каждый момент времени
// активна ровно одна пара токенов; выдача новой пары отзывает предыдущую.
type AuthenticationService struct {
	userRepository ports.UserRepository
	jwtService     ports.JWTServiceInterface
	auth           *config.AuthConfig
}

func NewAuthenticationService(
	userRepository ports.UserRepository,
	jwtService ports.JWTServiceInterface,
	auth *config.AuthConfig,
) *AuthenticationService {
	return &AuthenticationService{
		userRepository: userRepository,
		jwtService:     jwtService,
		auth:           auth,
	}
}

// SignUp регистрирует пользователя и сразу выдаёт ему сессию.
// Занятый идентификатор — apperr.ErrConflict.
func (s *AuthenticationService) SignUp(ctx context.Context, id string, password string) (*model.TokensPair, error) {
	existing, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка поиска пользователя: %w", err)
	}
	if existing != nil {
		return nil, apperr.ErrConflict
	}

	hash, err := security.HashPassword(password, s.auth.AccessSecret)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] не удалось создать хэш пароля: %w", err)
	}

	user := &model.User{
		ID:           id,
		PasswordHash: hash,
	}

	if _, err := s.userRepository.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка создания пользователя: %w", err)
	}

	return s.issueSession(ctx, id)
}

// SignIn проверяет учётные данные и выдаёт новую пару токенов.
// Неизвестный идентификатор и неверный пароль неразличимы снаружи —
// оба дают apperr.ErrAuth.
func (s *AuthenticationService) SignIn(ctx context.Context, id string, password string) (*model.TokensPair, error) {
	user, err := s.userRepository.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка поиска пользователя: %w", err)
	}
	if user == nil {
		return nil, apperr.Wrap(apperr.ErrAuth, "неверно задано имя пользователя")
	}

	if !security.CheckPassword(password, s.auth.AccessSecret, user.PasswordHash) {
		return nil, apperr.Wrap(apperr.ErrAuth, "неверно указан пароль")
	}

	return s.issueSession(ctx, id)
}

// Refresh выдаёт новую пару по refresh токену. Проверки по порядку:
// подпись и срок самого refresh токена, подпись вложенного access токена
// (срок не важен — к моменту refresh он обычно уже истёк), существование
// пользователя и точное совпадение предъявленного токена с сохранённым.
// Последняя проверка делает refresh токены одноразовыми: выдача новой пары
// затирает предъявленную.
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	claims, err := s.jwtService.DecodeRefreshToken(refreshToken)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrAuth, "неверный запрос")
	}

	if err := s.jwtService.VerifyAccessTokenSignature(claims.Data.Token); err != nil {
		return nil, apperr.Wrap(apperr.ErrAuth, "неверные параметры запроса")
	}

	user, err := s.userRepository.FindByID(ctx, claims.Data.ID)
	if err != nil {
		return nil, fmt.Errorf("[AuthService] ошибка поиска пользователя: %w", err)
	}
	if user == nil || user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		log.Printf("[AuthService] refresh токен пользователя %s отозван или не совпадает", claims.Data.ID)
		return nil, apperr.Wrap(apperr.ErrAuth, "неверные параметры запроса")
	}

	return s.issueSession(ctx, user.ID)
}

// Logout снимает текущую сессию: оба токена становятся NULL
func (s *AuthenticationService) Logout(ctx context.Context, id string) error {
	affected, err := s.userRepository.ClearTokens(ctx, id)
	if err != nil {
		return fmt.Errorf("[AuthService] не удалось очистить токены: %w", err)
	}
	if affected == 0 {
		return apperr.ErrSession
	}
	return nil
}

// issueSession — общий завершающий шаг signup/signin/refresh: генерация пары
// и её запись на строку пользователя. Запись намеренно последняя: любой сбой
// до неё оставляет прежнюю сессию нетронутой.
func (s *AuthenticationService) issueSession(ctx context.Context, id string) (*model.TokensPair, error) {
	pair, err := s.jwtService.GenerateTokensPair(id)
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации токенов", err)
	}

	affected, err := s.userRepository.UpdateTokens(ctx, id, pair.AccessToken, pair.RefreshToken)
	if err != nil {
		return nil, util.LogError("[AuthService] не удалось сохранить токены", err)
	}
	if affected == 0 {
		return nil, apperr.ErrSession
	}

	return pair, nil
}
