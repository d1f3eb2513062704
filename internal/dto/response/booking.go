package response

import (
	"time"

	"tour-sport/internal/data/entity"
)

type BookingResponse struct {
	ID                   string       `json:"_id"`
	ServiceProviderEmail string       `json:"serviceProviderEmail"`
	BuyerEmail           string       `json:"buyerEmail"`
	ServiceName          string       `json:"serviceName"`
	ServiceImage         string       `json:"serviceImage"`
	ServicePrice         entity.Price `json:"servicePrice"`
	ServiceTakingDate    string       `json:"serviceTakingDate"`
	Message              string       `json:"message"`
	Status               string       `json:"status"`
	CreatedAt            time.Time    `json:"createdAt"`
	UpdatedAt            time.Time    `json:"updatedAt"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	return BookingResponse{
		ID:                   booking.ID,
		ServiceProviderEmail: booking.ServiceProviderEmail,
		BuyerEmail:           booking.BuyerEmail,
		ServiceName:          booking.ServiceName,
		ServiceImage:         booking.ServiceImage,
		ServicePrice:         booking.ServicePrice,
		ServiceTakingDate:    booking.ServiceTakingDate,
		Message:              booking.Message,
		Status:               booking.Status,
		CreatedAt:            booking.CreatedAt,
		UpdatedAt:            booking.UpdatedAt,
	}
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		out[i] = BookingToResponse(booking)
	}
	return out
}
