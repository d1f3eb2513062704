package usecase

import (
	"tour-sport/internal/data/repository"
	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	Catalog CatalogService
	Booking BookingService
}

func NewService(repo *repository.Repository, tokens *utils.TokenManager, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(tokens, log),
		Catalog: NewCatalogService(repo.Service, log),
		Booking: NewBookingService(repo.Booking, log),
	}
}
