package request

import "tour-sport/internal/data/entity"

// ServiceRequest is both the create body and the full-overwrite update body.
// Form bodies are decoded through the same json names.
type ServiceRequest struct {
	ProviderName     string       `json:"serviceProviderName"`
	ProviderEmail    string       `json:"serviceProviderEmail"`
	ProviderLocation string       `json:"serviceProviderLocation"`
	ProviderImage    string       `json:"serviceProviderImage"`
	Name             string       `json:"serviceName"`
	Price            entity.Price `json:"servicePrice"`
	Image            string       `json:"serviceImage"`
	Area             string       `json:"serviceArea"`
	Description      string       `json:"serviceDsc"`
}
