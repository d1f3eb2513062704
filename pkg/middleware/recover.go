package middleware

import (
	"net/http"

	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

// Recover turns a handler panic into an opaque 500. http.ErrAbortHandler is re-raised.
func Recover(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					utils.RequestLogger(logger, r).Error("PANIC recovered",
						zap.Any("error", err),
						zap.Stack("stack"),
					)
					utils.ResponseInternalError(w, "Internal server error")
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
