package adaptor

import (
	"net/http"

	"tour-sport/internal/dto/request"
	"tour-sport/internal/usecase"
	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service      usecase.AuthService
	cookieSecure bool
	log          *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, cookieSecure bool, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service:      service,
		cookieSecure: cookieSecure,
		log:          log.With(zap.String("handler", "auth")),
	}
}

// Login handles POST /jwt
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Validation failed for login",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "login")
		return
	}

	utils.SetAccessCookie(w, token.Token, token.ExpiresAt, h.cookieSecure)
	utils.ResponseSuccess(w, "Success", token)
}

// Logout handles POST /logOut. There is no server session; the cookie is just expired.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.ClearAccessCookie(w, h.cookieSecure)
	utils.ResponseSuccess(w, "Logged out", map[string]bool{"success": true})
}
