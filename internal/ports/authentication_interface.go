package ports

import (
	"context"
	"file-hosting-server/internal/model"
)

type AuthenticationService interface {
	SignUp(ctx context.Context, id string, password string) (*model.TokensPair, error)
	SignIn(ctx context.Context, id string, password string) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, id string) error
}
