package response

import "time"

// TokenResponse is what login hands back to the handler; the token itself goes in the cookie.
type TokenResponse struct {
	Email     string    `json:"email"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
}
