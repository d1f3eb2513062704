package utils

import (
	"context"
)

type contextKey string

const (
	EmailKey contextKey = "email"
)

// GetEmailFromContext returns the identity attached by the auth gate.
func GetEmailFromContext(ctx context.Context) (string, bool) {
	emailVal := ctx.Value(EmailKey)
	if emailVal == nil {
		return "", false
	}

	email, ok := emailVal.(string)
	if !ok || email == "" {
		return "", false
	}

	return email, true
}

func SetEmailContext(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, EmailKey, email)
}
