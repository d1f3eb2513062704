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

type BookingService interface {
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.InsertResponse, error)
	GetBuyerBookings(ctx context.Context, buyerEmail string) ([]response.BookingResponse, error)
	GetProviderBookings(ctx context.Context, providerEmail string) ([]response.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateStatusRequest) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, bookingID string) (*response.DeleteResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.InsertResponse, error) {
	status := req.Status
	if status == "" {
		status = entity.BookingStatusPending
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		ServiceProviderEmail: req.ServiceProviderEmail,
		BuyerEmail:           req.BuyerEmail,
		ServiceName:          req.ServiceName,
		ServiceImage:         req.ServiceImage,
		ServicePrice:         req.ServicePrice,
		ServiceTakingDate:    req.ServiceTakingDate,
		Message:              req.Message,
		Status:               status,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID),
		zap.String("buyer_email", utils.MaskEmail(booking.BuyerEmail)),
		zap.String("provider_email", utils.MaskEmail(booking.ServiceProviderEmail)),
		zap.String("status", booking.Status),
	)

	return &response.InsertResponse{InsertedID: booking.ID}, nil
}

func (s *bookingService) GetBuyerBookings(ctx context.Context, buyerEmail string) ([]response.BookingResponse, error) {
	bookings, err := s.bookings.FindByBuyerEmail(ctx, buyerEmail)
	if err != nil {
		return nil, fmt.Errorf("get bookings of buyer %s: %w", utils.MaskEmail(buyerEmail), err)
	}

	return response.BookingsToResponse(bookings), nil
}

func (s *bookingService) GetProviderBookings(ctx context.Context, providerEmail string) ([]response.BookingResponse, error) {
	bookings, err := s.bookings.FindByProviderEmail(ctx, providerEmail)
	if err != nil {
		return nil, fmt.Errorf("get bookings of provider %s: %w", utils.MaskEmail(providerEmail), err)
	}

	return response.BookingsToResponse(bookings), nil
}

// UpdateStatus changes only the status and returns the record as stored afterwards.
func (s *bookingService) UpdateStatus(ctx context.Context, bookingID string, req *request.UpdateStatusRequest) (*response.BookingResponse, error) {
	if err := s.bookings.UpdateStatus(ctx, bookingID, req.Status); err != nil {
		return nil, fmt.Errorf("update status of booking %s: %w", bookingID, err)
	}

	booking, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("reload booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("status", booking.Status),
	)

	bookingResp := response.BookingToResponse(booking)
	return &bookingResp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, bookingID string) (*response.DeleteResponse, error) {
	if err := s.bookings.Delete(ctx, bookingID); err != nil {
		return nil, fmt.Errorf("delete booking %s: %w", bookingID, err)
	}

	return &response.DeleteResponse{DeletedCount: 1}, nil
}
