package model

// User : учётная запись. Идентификатор выбирает сам пользователь (email или
// телефон), он же первичный ключ. AccessToken и RefreshToken хранят текущую
// активную пару токенов: либо оба NULL (сессии нет), либо оба заполнены
// последней выданной парой.
type User struct {
	ID           string  `db:"id" json:"id"`
	PasswordHash string  `db:"passwd_hash" json:"-"`
	AccessToken  *string `db:"access_token" json:"-"`
	RefreshToken *string `db:"refresh_token" json:"-"`
}
