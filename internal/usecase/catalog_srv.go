package usecase

import (
	"context"
	"fmt"
	"time"

	"tour-sport/internal/data/entity"
	"tour-sport/internal/data/repository"
	"tour-sport/internal/dto/request"
	"tour-sport/internal/dto/response"
	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

// CatalogService manages the services providers offer.
type CatalogService interface {
	CreateService(ctx context.Context, req *request.ServiceRequest) (*response.InsertResponse, error)
	GetServices(ctx context.Context, search string) ([]response.ServiceResponse, error)
	GetProviderServices(ctx context.Context, providerEmail string) ([]response.ServiceResponse, error)
	GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error)
	UpdateService(ctx context.Context, serviceID string, req *request.ServiceRequest) (*response.UpdateResponse, error)
	DeleteService(ctx context.Context, serviceID string) (*response.DeleteResponse, error)
}

type catalogService struct {
	services repository.ServiceRepository
	log      *zap.Logger
}

func NewCatalogService(services repository.ServiceRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		services: services,
		log:      log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) CreateService(ctx context.Context, req *request.ServiceRequest) (*response.InsertResponse, error) {
	now := time.Now()
	service := serviceFromRequest(req)
	service.CreatedAt = now
	service.UpdatedAt = now

	if err := s.services.Create(ctx, service); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}

	s.log.Info("Service created",
		zap.String("service_id", service.ID),
		zap.String("name", service.Name),
		zap.String("provider_email", utils.MaskEmail(service.ProviderEmail)),
	)

	return &response.InsertResponse{InsertedID: service.ID}, nil
}

func (s *catalogService) GetServices(ctx context.Context, search string) ([]response.ServiceResponse, error) {
	services, err := s.services.FindAll(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("get services: %w", err)
	}

	s.log.Debug("Services retrieved",
		zap.String("search", search),
		zap.Int("count", len(services)),
	)

	return response.ServicesToResponse(services), nil
}

func (s *catalogService) GetProviderServices(ctx context.Context, providerEmail string) ([]response.ServiceResponse, error) {
	services, err := s.services.FindByProviderEmail(ctx, providerEmail)
	if err != nil {
		return nil, fmt.Errorf("get services of %s: %w", utils.MaskEmail(providerEmail), err)
	}

	return response.ServicesToResponse(services), nil
}

func (s *catalogService) GetServiceByID(ctx context.Context, serviceID string) (*response.ServiceResponse, error) {
	service, err := s.services.FindByID(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("get service %s: %w", serviceID, err)
	}

	serviceResp := response.ServiceToResponse(service)
	return &serviceResp, nil
}

// UpdateService overwrites all mutable fields; callers must resend the full record.
func (s *catalogService) UpdateService(ctx context.Context, serviceID string, req *request.ServiceRequest) (*response.UpdateResponse, error) {
	service := serviceFromRequest(req)
	service.ID = serviceID
	service.UpdatedAt = time.Now()

	matched, err := s.services.Update(ctx, service)
	if err != nil {
		return nil, fmt.Errorf("update service %s: %w", serviceID, err)
	}
	if matched == 0 {
		return nil, fmt.Errorf("update service %s: %w", serviceID, repository.ErrNotFound)
	}

	s.log.Info("Service updated",
		zap.String("service_id", serviceID),
		zap.String("name", service.Name),
	)

	return &response.UpdateResponse{MatchedCount: matched}, nil
}

func (s *catalogService) DeleteService(ctx context.Context, serviceID string) (*response.DeleteResponse, error) {
	if err := s.services.Delete(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("delete service %s: %w", serviceID, err)
	}

	return &response.DeleteResponse{DeletedCount: 1}, nil
}

func serviceFromRequest(req *request.ServiceRequest) *entity.Service {
	return &entity.Service{
		ProviderName:     req.ProviderName,
		ProviderEmail:    req.ProviderEmail,
		ProviderLocation: req.ProviderLocation,
		ProviderImage:    req.ProviderImage,
		Name:             req.Name,
		Price:            req.Price,
		Image:            req.Image,
		Area:             req.Area,
		Description:      req.Description,
	}
}
