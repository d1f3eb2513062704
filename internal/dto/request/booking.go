package request

import "tour-sport/internal/data/entity"

type CreateBookingRequest struct {
	ServiceProviderEmail string       `json:"serviceProviderEmail"`
	BuyerEmail           string       `json:"buyerEmail"`
	ServiceName          string       `json:"serviceName"`
	ServiceImage         string       `json:"serviceImage"`
	ServicePrice         entity.Price `json:"servicePrice"`
	ServiceTakingDate    string       `json:"serviceTakingDate"`
	Message              string       `json:"message"`
	Status               string       `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
