package middleware

import (
	"net/http"

	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

// AuthCookie gates a route on the AccessToken cookie.
// Missing cookie is 401, a cookie that fails verification is 403. On success the
// token's email is stored in the request context for the handler.
func AuthCookie(tokens *utils.TokenManager, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(utils.AccessTokenCookie)
			if err != nil || cookie.Value == "" {
				utils.ResponseUnauthorized(w, "Unauthenticated")
				return
			}

			email, err := tokens.Verify(cookie.Value)
			if err != nil {
				utils.RequestLogger(logger, r).Warn("Rejected access token", zap.Error(err))
				utils.ResponseForbidden(w, "Unauthorized")
				return
			}

			ctx := utils.SetEmailContext(r.Context(), email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
