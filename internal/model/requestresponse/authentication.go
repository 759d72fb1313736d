package requestresponse

// CredentialsRequest : тело запроса на регистрацию и аутентификацию
type CredentialsRequest struct {
	ID       string `json:"id" example:"user@example.com"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// SessionResponse : ответ на успешную регистрацию, аутентификацию
// или обновление токенов
type SessionResponse struct {
	ID           string `json:"id" example:"user@example.com"`
	ExpiresIn    int64  `json:"expiresIn" example:"1735689600"`
	Token        string `json:"token" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
	RefreshToken string `json:"refreshToken" example:"eyJhbGciOiJIUzUxMiIsInR5cCI6IkpXVCJ9..."`
}

// InfoResponse : идентификатор текущего пользователя
type InfoResponse struct {
	ID string `json:"id" example:"user@example.com"`
}
