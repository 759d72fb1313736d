package ports

import (
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/security"
)

type JWTServiceInterface interface {
	GenerateTokensPair(userID string) (*model.TokensPair, error)
	DecodeAccessToken(tokenStr string) (*security.Claims, error)
	DecodeRefreshToken(tokenStr string) (*security.Claims, error)
	VerifyAccessTokenSignature(tokenStr string) error
}
