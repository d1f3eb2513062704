package wire

import (
	"tour-sport/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, authHandler *adaptor.AuthHandler) {
	r.Post("/jwt", authHandler.Login)
	r.Post("/logOut", authHandler.Logout)
}
