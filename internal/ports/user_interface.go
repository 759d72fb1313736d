package ports

import (
	"context"
	"file-hosting-server/internal/model"
)

// UserRepository : слой хранения пользователей. Ровно четыре операции,
// нужные протоколу авторизации. FindByID возвращает (nil, nil), если
// пользователя нет: отсутствие записи для протокола не ошибка, а ветка.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateTokens(ctx context.Context, id string, accessToken string, refreshToken string) (int64, error)
	ClearTokens(ctx context.Context, id string) (int64, error)
}
