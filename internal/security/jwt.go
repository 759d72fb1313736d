package security

import (
	"file-hosting-server/config"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/util"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenData : полезная нагрузка токена. У access токена заполнены ID и
// ExpiresIn, у refresh токена дополнительно Token — access токен, вместе с
// которым он был выдан. Так пара проверяемо связана между собой.
type TokenData struct {
	ID        string `json:"id"`
	ExpiresIn int64  `json:"expiresIn"`
	Token     string `json:"token,omitempty"`
}

type Claims struct {
	Data TokenData `json:"data"`
	jwt.RegisteredClaims
}

type JWTService struct {
	*config.AuthConfig
}

func NewJWTService(cfg *config.AuthConfig) *JWTService {
	return &JWTService{cfg}
}

// GenerateTokensPair выдаёт новую пару токенов для пользователя.
// Оба токена живут одинаковое время (единый token_ttl), но подписаны
// независимыми секретами: владение refresh токеном само по себе не позволяет
// подделать access токен.
func (service *JWTService) GenerateTokensPair(userID string) (*model.TokensPair, error) {
	timeDuration, err := time.ParseDuration(service.TokenTTL)
	if err != nil {
		return nil, util.LogError("ошибка парсинга token_ttl", err)
	}

	expiresIn := time.Now().Add(timeDuration).Unix()

	accessToken, err := IssueToken(TokenData{
		ID:        userID,
		ExpiresIn: expiresIn,
	}, service.AccessSecret, timeDuration)
	if err != nil {
		return nil, util.LogError("ошибка подписи access токена", err)
	}

	refreshToken, err := IssueToken(TokenData{
		ID:        userID,
		ExpiresIn: expiresIn,
		Token:     accessToken,
	}, service.RefreshSecret, timeDuration)
	if err != nil {
		return nil, util.LogError("ошибка подписи refresh токена", err)
	}

	return &model.TokensPair{
		ID:           userID,
		ExpiresIn:    expiresIn,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (service *JWTService) DecodeAccessToken(tokenStr string) (*Claims, error) {
	return DecodeToken(tokenStr, []byte(service.AccessSecret))
}

func (service *JWTService) DecodeRefreshToken(tokenStr string) (*Claims, error) {
	return DecodeToken(tokenStr, []byte(service.RefreshSecret))
}

// VerifyAccessTokenSignature проверяет только подпись access токена, без
// валидации срока действия. Нужна при обновлении пары: вложенный access токен
// к этому моменту обычно уже просрочен, важна лишь его подлинность.
func (service *JWTService) VerifyAccessTokenSignature(tokenStr string) error {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return []byte(service.AccessSecret), nil
	}, jwt.WithoutClaimsValidation())

	if err != nil || !jwtToken.Valid {
		return util.LogError("невалидная подпись токена", err)
	}

	return nil
}

// IssueToken подписывает полезную нагрузку указанным секретом.
// Срок действия задаётся относительно текущего момента.
func IssueToken(data TokenData, secret string, ttl time.Duration) (string, error) {
	claims := Claims{
		Data: data,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "file-hosting-server",
		},
	}

	jwtToken := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	signed, err := jwtToken.SignedString([]byte(secret))
	if err != nil {
		return "", util.LogError("ошибка подписи токена", err)
	}

	return signed, nil
}

// DecodeToken проверяет подпись и срок действия токена.
// Любая проблема (подпись, формат, просрочка) возвращается ошибкой,
// паник и исключений наружу не бывает.
func DecodeToken(tokenStr string, secretKey []byte) (*Claims, error) {
	var claims = &Claims{}

	jwtToken, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Header["alg"] != jwt.SigningMethodHS512.Alg() {
			return nil, fmt.Errorf("неверный способ подписи токена: %v", token.Header["alg"])
		}
		return secretKey, nil
	})

	if err != nil || !jwtToken.Valid {
		return nil, util.LogError("невалидный токен", err)
	}

	return claims, nil
}
