package repository

import (
	"context"
	"database/sql"
	"errors"
	"file-hosting-server/config"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/util"
)

type UserRepository struct {
	*config.Database
}

func NewUserRepository(database *config.Database) *UserRepository {
	return &UserRepository{database}
}

// FindByID : ищет пользователя по идентификатору.
// Если пользователя нет, возвращает (nil, nil) — для протокола авторизации
// отсутствие записи не ошибка.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	query := `SELECT id, passwd_hash, access_token, refresh_token FROM users WHERE id = $1`

	var user model.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, util.LogError("[UserRepo] не удалось найти пользователя в БД", err)
	}

	return &user, nil
}

// CreateUser : сохраняет нового пользователя. Токены при создании пусты,
// их запишет шаг выдачи сессии.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	query := `
	INSERT INTO users (id, passwd_hash)
	VALUES ($1, $2)
	RETURNING id, passwd_hash
	`

	createdUser := &model.User{}
	err := r.DB.QueryRowxContext(ctx, query, user.ID, user.PasswordHash).
		Scan(&createdUser.ID, &createdUser.PasswordHash)

	if err != nil {
		return nil, util.LogError("[UserRepo] ошибка вставки данных в БД", err)
	}

	return createdUser, nil
}

// UpdateTokens : записывает новую пару токенов, затирая предыдущую.
// Возвращает число обновлённых строк: ноль означает, что пользователь
// исчез между проверкой и записью.
func (r *UserRepository) UpdateTokens(ctx context.Context, id string, accessToken string, refreshToken string) (int64, error) {
	query := `UPDATE users SET access_token = $2, refresh_token = $3 WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id, accessToken, refreshToken)
	if err != nil {
		return 0, util.LogError("[UserRepo] не удалось обновить токены", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[UserRepo] не удалось проверить, обновлены ли токены", err)
	}

	return rowsAffected, nil
}

// ClearTokens : обнуляет оба токена (logout)
func (r *UserRepository) ClearTokens(ctx context.Context, id string) (int64, error) {
	query := `UPDATE users SET access_token = NULL, refresh_token = NULL WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return 0, util.LogError("[UserRepo] не удалось очистить токены", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, util.LogError("[UserRepo] не удалось проверить, очищены ли токены", err)
	}

	return rowsAffected, nil
}
