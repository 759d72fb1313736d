package service_test

import (
	"context"
	"errors"
	"testing"

	"file-hosting-server/config"
	"file-hosting-server/internal/apperr"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/security"
	"file-hosting-server/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ===== MOCKS =====

// MockUserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateTokens(ctx context.Context, id string, accessToken string, refreshToken string) (int64, error) {
	args := m.Called(ctx, id, accessToken, refreshToken)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) ClearTokens(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockJWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokensPair(userID string) (*model.TokensPair, error) {
	args := m.Called(userID)
	if p, ok := args.Get(0).(*model.TokensPair); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) DecodeAccessToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) DecodeRefreshToken(tokenStr string) (*security.Claims, error) {
	args := m.Called(tokenStr)
	if c, ok := args.Get(0).(*security.Claims); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockJWTService) VerifyAccessTokenSignature(tokenStr string) error {
	args := m.Called(tokenStr)
	return args.Error(0)
}

// ===== HELPERS =====

const testSecret = "test-access-secret"

func newTestAuthService() (*service.AuthenticationService, *MockUserRepository, *MockJWTService) {
	mockUserRepo := new(MockUserRepository)
	mockJWTService := new(MockJWTService)

	svc := service.NewAuthenticationService(
		mockUserRepo,
		mockJWTService,
		&config.AuthConfig{AccessSecret: testSecret, RefreshSecret: "test-refresh-secret", TokenTTL: "600s"},
	)

	return svc, mockUserRepo, mockJWTService
}

func strPtr(s string) *string {
	return &s
}

// ===== TESTS =====

// 1. Повторная регистрация с занятым id
func TestSignUp_Conflict(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByID", ctx, "user@example.com").
		Return(&model.User{ID: "user@example.com"}, nil)

	_, err := svc.SignUp(ctx, "user@example.com", "pass")

	assert.Error(t, err)
	assert.True(t, apperr.IsConflict(err))
	mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
	mockUserRepo.AssertExpectations(t)
}

// 2. Успешная регистрация: создание пользователя и выдача сессии
func TestSignUp_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	pair := &model.TokensPair{ID: "user@example.com", AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByID", ctx, "user@example.com").
		Return(nil, nil)
	mockUserRepo.On("CreateUser", ctx, mock.MatchedBy(func(u *model.User) bool {
		return u.ID == "user@example.com" && u.PasswordHash != "" && u.PasswordHash != "pass"
	})).Return(&model.User{ID: "user@example.com"}, nil)
	mockJWTService.On("GenerateTokensPair", "user@example.com").
		Return(pair, nil)
	mockUserRepo.On("UpdateTokens", ctx, "user@example.com", "acc", "ref").
		Return(int64(1), nil)

	result, err := svc.SignUp(ctx, "user@example.com", "pass")

	assert.NoError(t, err)
	assert.Equal(t, pair, result)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 3. Вход с неизвестным id
func TestSignIn_UserNotFound(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("FindByID", ctx, "ghost@example.com").
		Return(nil, nil)

	_, err := svc.SignIn(ctx, "ghost@example.com", "pass")

	assert.Error(t, err)
	assert.True(t, apperr.IsAuth(err))
	mockJWTService.AssertNotCalled(t, "GenerateTokensPair", mock.Anything)
	mockUserRepo.AssertExpectations(t)
}

// 4. Неверный пароль: ни выдачи токенов, ни записи
func TestSignIn_WrongPassword(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	hash, _ := security.HashPassword("goodpass", testSecret)
	user := &model.User{ID: "user@example.com", PasswordHash: hash}

	mockUserRepo.On("FindByID", ctx, "user@example.com").
		Return(user, nil)

	_, err := svc.SignIn(ctx, "user@example.com", "badpass")

	assert.Error(t, err)
	assert.True(t, apperr.IsAuth(err))
	mockJWTService.AssertNotCalled(t, "GenerateTokensPair", mock.Anything)
	mockUserRepo.AssertNotCalled(t, "UpdateTokens", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockUserRepo.AssertExpectations(t)
}

// 5. Запись токенов не затронула ни одной строки
func TestSignIn_ZeroRowsAffected(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	hash, _ := security.HashPassword("goodpass", testSecret)
	user := &model.User{ID: "user@example.com", PasswordHash: hash}
	pair := &model.TokensPair{ID: "user@example.com", AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByID", ctx, "user@example.com").
		Return(user, nil)
	mockJWTService.On("GenerateTokensPair", "user@example.com").
		Return(pair, nil)
	mockUserRepo.On("UpdateTokens", ctx, "user@example.com", "acc", "ref").
		Return(int64(0), nil)

	_, err := svc.SignIn(ctx, "user@example.com", "goodpass")

	assert.Error(t, err)
	assert.True(t, apperr.IsSession(err))
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 6. Успешный вход
func TestSignIn_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	hash, _ := security.HashPassword("goodpass", testSecret)
	user := &model.User{ID: "user@example.com", PasswordHash: hash}
	pair := &model.TokensPair{ID: "user@example.com", ExpiresIn: 1735689600, AccessToken: "acc", RefreshToken: "ref"}

	mockUserRepo.On("FindByID", ctx, "user@example.com").
		Return(user, nil)
	mockJWTService.On("GenerateTokensPair", "user@example.com").
		Return(pair, nil)
	mockUserRepo.On("UpdateTokens", ctx, "user@example.com", "acc", "ref").
		Return(int64(1), nil)

	result, err := svc.SignIn(ctx, "user@example.com", "goodpass")

	assert.NoError(t, err)
	assert.Equal(t, pair, result)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 7. Refresh с нечитаемым refresh токеном
func TestRefresh_BadToken(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	mockJWTService.On("DecodeRefreshToken", "garbage").
		Return(nil, errors.New("невалидный токен"))

	_, err := svc.Refresh(ctx, "garbage")

	assert.Error(t, err)
	assert.True(t, apperr.IsAuth(err))
	mockUserRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	mockJWTService.AssertExpectations(t)
}

// 8. Refresh с подделанным вложенным access токеном
func TestRefresh_BadEmbeddedToken(t *testing.T) {
	svc, _, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.Claims{Data: security.TokenData{ID: "user@example.com", Token: "forged"}}

	mockJWTService.On("DecodeRefreshToken", "refresh").
		Return(claims, nil)
	mockJWTService.On("VerifyAccessTokenSignature", "forged").
		Return(errors.New("невалидная подпись токена"))

	_, err := svc.Refresh(ctx, "refresh")

	assert.Error(t, err)
	assert.True(t, apperr.IsAuth(err))
	mockJWTService.AssertExpectations(t)
}

// 9. Refresh токен не совпадает с сохранённым (отозван более новой парой)
func TestRefresh_SupersededToken(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.Claims{Data: security.TokenData{ID: "user@example.com", Token: "acc-old"}}
	user := &model.User{
		ID:           "user@example.com",
		AccessToken:  strPtr("acc-new"),
		RefreshToken: strPtr("ref-new"),
	}

	mockJWTService.On("DecodeRefreshToken", "ref-old").
		Return(claims, nil)
	mockJWTService.On("VerifyAccessTokenSignature", "acc-old").
		Return(nil)
	mockUserRepo.On("FindByID", ctx, "user@example.com").
		Return(user, nil)

	_, err := svc.Refresh(ctx, "ref-old")

	assert.Error(t, err)
	assert.True(t, apperr.IsAuth(err))
	mockJWTService.AssertNotCalled(t, "GenerateTokensPair", mock.Anything)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 10. Успешный refresh: предъявленная пара заменяется новой
func TestRefresh_Success(t *testing.T) {
	svc, mockUserRepo, mockJWTService := newTestAuthService()
	ctx := context.Background()

	claims := &security.Claims{Data: security.TokenData{ID: "user@example.com", Token: "acc-old"}}
	user := &model.User{
		ID:           "user@example.com",
		AccessToken:  strPtr("acc-old"),
		RefreshToken: strPtr("ref-old"),
	}
	newPair := &model.TokensPair{ID: "user@example.com", AccessToken: "acc-new", RefreshToken: "ref-new"}

	mockJWTService.On("DecodeRefreshToken", "ref-old").
		Return(claims, nil)
	mockJWTService.On("VerifyAccessTokenSignature", "acc-old").
		Return(nil)
	mockUserRepo.On("FindByID", ctx, "user@example.com").
		Return(user, nil)
	mockJWTService.On("GenerateTokensPair", "user@example.com").
		Return(newPair, nil)
	mockUserRepo.On("UpdateTokens", ctx, "user@example.com", "acc-new", "ref-new").
		Return(int64(1), nil)

	result, err := svc.Refresh(ctx, "ref-old")

	assert.NoError(t, err)
	assert.Equal(t, newPair, result)
	mockUserRepo.AssertExpectations(t)
	mockJWTService.AssertExpectations(t)
}

// 11. Logout очищает оба токена
func TestLogout_Success(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("ClearTokens", ctx, "user@example.com").
		Return(int64(1), nil)

	err := svc.Logout(ctx, "user@example.com")

	assert.NoError(t, err)
	mockUserRepo.AssertExpectations(t)
}

// 12. Logout без затронутых строк — ошибка сессии
func TestLogout_ZeroRowsAffected(t *testing.T) {
	svc, mockUserRepo, _ := newTestAuthService()
	ctx := context.Background()

	mockUserRepo.On("ClearTokens", ctx, "user@example.com").
		Return(int64(0), nil)

	err := svc.Logout(ctx, "user@example.com")

	assert.Error(t, err)
	assert.True(t, apperr.IsSession(err))
	mockUserRepo.AssertExpectations(t)
}
