package handler

import (
	"encoding/json"
	"file-hosting-server/config"
	"file-hosting-server/internal/apperr"
	"file-hosting-server/internal/model"
	"file-hosting-server/internal/model/requestresponse"
	"file-hosting-server/internal/ports"
	"file-hosting-server/internal/security"
	"file-hosting-server/internal/util"
	"log"
	"net/http"
)

type AuthenticationHandler struct {
	authenticationService ports.AuthenticationService
	auth                  *config.AuthConfig
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService, auth *config.AuthConfig) *AuthenticationHandler {
	return &AuthenticationHandler{
		authenticationService: authenticationService,
		auth:                  auth,
	}
}

// SignUp godoc
// @Summary Регистрация пользователя
// @Description Создаёт пользователя и сразу выдаёт пару access/refresh токенов
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.CredentialsRequest true "id (email или телефон) и пароль"
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 400 {string} string "Wrong request"
// @Failure 403 {string} string "Имя пользователя занято"
// @Failure 500 {string} string "Внутренняя ошибка"
// @Router /api/signup [post]
func (h *AuthenticationHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	pair, err := h.authenticationService.SignUp(r.Context(), req.ID, req.Password)
	if err != nil {
		writeProtocolError(w, err)
		return
	}

	writeSession(w, pair)
}

// SignIn godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт новую пару access/refresh токенов по id и паролю.
// @Description Предыдущая пара при этом отзывается.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.CredentialsRequest true "id и пароль"
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 400 {string} string "Wrong request"
// @Failure 401 {string} string "Ошибка авторизации"
// @Failure 500 {string} string "Внутренняя ошибка"
// @Router /api/signin [post]
func (h *AuthenticationHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeCredentials(w, r)
	if !ok {
		return
	}

	pair, err := h.authenticationService.SignIn(r.Context(), req.ID, req.Password)
	if err != nil {
		writeProtocolError(w, err)
		return
	}

	writeSession(w, pair)
}

// Refresh godoc
// @Summary Обновление пары токенов
// @Description Выдаёт новую пару по refresh токену из настроенного заголовка.
// @Description Предъявленный refresh токен при этом отзывается.
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Refresh токен"
// @Success 200 {object} requestresponse.SessionResponse
// @Failure 401 {string} string "Ошибка аутентикации"
// @Failure 500 {string} string "Внутренняя ошибка"
// @Router /api/signin/new_token [post]
func (h *AuthenticationHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := security.ExtractBearerToken(r, h.auth.HeaderName)
	if refreshToken == "" {
		http.Error(w, "Unauthorized action", http.StatusUnauthorized)
		return
	}

	pair, err := h.authenticationService.Refresh(r.Context(), refreshToken)
	if err != nil {
		writeProtocolError(w, err)
		return
	}

	writeSession(w, pair)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Отзывает текущую пару токенов пользователя
// @Tags Authentication
// @Produce plain
// @Param Authorization header string true "Access токен"
// @Success 200 {string} string "Ok"
// @Failure 401 {string} string "Unauthorized action"
// @Failure 500 {string} string "Внутренняя ошибка"
// @Security ApiKeyAuth
// @Router /api/logout [get]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized action", http.StatusUnauthorized)
		return
	}

	if err := h.authenticationService.Logout(r.Context(), claims.Data.ID); err != nil {
		writeProtocolError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Ok"))
}

// Info godoc
// @Summary Идентификатор текущего пользователя
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Access токен"
// @Success 200 {object} requestresponse.InfoResponse
// @Failure 401 {string} string "Unauthorized action"
// @Security ApiKeyAuth
// @Router /api/info [get]
func (h *AuthenticationHandler) Info(w http.ResponseWriter, r *http.Request) {
	claims, err := security.GetClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "Unauthorized action", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(requestresponse.InfoResponse{ID: claims.Data.ID})
}

// decodeCredentials разбирает и валидирует тело signup/signin.
// Идентификатор обязан быть email или телефоном, пароль — непустым.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (*requestresponse.CredentialsRequest, bool) {
	var req requestresponse.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Wrong request", http.StatusBadRequest)
		return nil, false
	}

	if req.Password == "" || !util.IsValidUserID(req.ID) {
		http.Error(w, "Wrong request", http.StatusBadRequest)
		return nil, false
	}

	return &req, true
}

func writeSession(w http.ResponseWriter, pair *model.TokensPair) {
	resp := requestresponse.SessionResponse{
		ID:           pair.ID,
		ExpiresIn:    pair.ExpiresIn,
		Token:        pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// writeProtocolError отображает класс ошибки в статус. Клиентские классы
// получают обезличенный текст, всё остальное уходит как 500 с текстом ошибки.
func writeProtocolError(w http.ResponseWriter, err error) {
	log.Println(err)

	status := apperr.Status(err)
	switch status {
	case http.StatusUnauthorized:
		http.Error(w, "Ошибка авторизации", status)
	case http.StatusForbidden:
		http.Error(w, "Указанное имя пользователя занято", status)
	case http.StatusNotFound:
		http.Error(w, "Не найдено", status)
	default:
		http.Error(w, err.Error(), status)
	}
}
