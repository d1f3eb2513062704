package usecase

import (
	"context"
	"fmt"

	"tour-sport/internal/dto/request"
	"tour-sport/internal/dto/response"
	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

// AuthService issues identity tokens. Verification happens in middleware.AuthCookie.
type AuthService interface {
	Login(ctx context.Context, req *request.LoginRequest) (*response.TokenResponse, error)
}

type authService struct {
	tokens *utils.TokenManager
	log    *zap.Logger
}

func NewAuthService(tokens *utils.TokenManager, log *zap.Logger) AuthService {
	return &authService{
		tokens: tokens,
		log:    log.With(zap.String("service", "auth")),
	}
}

// Login trusts the client-asserted email; there is no user table to check it against.
func (s *authService) Login(_ context.Context, req *request.LoginRequest) (*response.TokenResponse, error) {
	token, expiresAt, err := s.tokens.Issue(req.Email)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.String("email", utils.MaskEmail(req.Email)))
		return nil, fmt.Errorf("issue token for %s: %w", utils.MaskEmail(req.Email), err)
	}

	s.log.Debug("Token issued",
		zap.String("email", utils.MaskEmail(req.Email)),
		zap.Time("expires_at", expiresAt),
	)

	return &response.TokenResponse{
		Email:     req.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
