package model

// TokensPair содержит выданную пару токенов вместе с данными сессии
// swagger:model
type TokensPair struct {
	// Идентификатор пользователя
	// example: user@example.com
	ID string `json:"id"`

	// Unix-время истечения пары токенов
	// example: 1735689600
	ExpiresIn int64 `json:"expiresIn"`

	// Access токен (JWT)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"token"`

	// Refresh токен (JWT, содержит внутри свой access токен)
	// example: eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9...
	RefreshToken string `json:"refreshToken"`
}
