package response

import (
	"time"

	"tour-sport/internal/data/entity"
)

type ServiceResponse struct {
	ID               string       `json:"_id"`
	ProviderName     string       `json:"serviceProviderName"`
	ProviderEmail    string       `json:"serviceProviderEmail"`
	ProviderLocation string       `json:"serviceProviderLocation"`
	ProviderImage    string       `json:"serviceProviderImage"`
	Name             string       `json:"serviceName"`
	Price            entity.Price `json:"servicePrice"`
	Image            string       `json:"serviceImage"`
	Area             string       `json:"serviceArea"`
	Description      string       `json:"serviceDsc"`
	CreatedAt        time.Time    `json:"createdAt"`
	UpdatedAt        time.Time    `json:"updatedAt"`
}

func ServiceToResponse(service *entity.Service) ServiceResponse {
	return ServiceResponse{
		ID:               service.ID,
		ProviderName:     service.ProviderName,
		ProviderEmail:    service.ProviderEmail,
		ProviderLocation: service.ProviderLocation,
		ProviderImage:    service.ProviderImage,
		Name:             service.Name,
		Price:            service.Price,
		Image:            service.Image,
		Area:             service.Area,
		Description:      service.Description,
		CreatedAt:        service.CreatedAt,
		UpdatedAt:        service.UpdatedAt,
	}
}

// ServicesToResponse never returns nil so the JSON is [] rather than null.
func ServicesToResponse(services []*entity.Service) []ServiceResponse {
	out := make([]ServiceResponse, len(services))
	for i, service := range services {
		out[i] = ServiceToResponse(service)
	}
	return out
}
