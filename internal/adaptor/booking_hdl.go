package adaptor

import (
	"net/http"

	"tour-sport/internal/dto/request"
	"tour-sport/internal/usecase"
	"tour-sport/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/v1/booking
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", created)
}

// GetBuyerBookings handles GET /api/v1/buyer/bookings?email= (gated)
func (h *BookingHandler) GetBuyerBookings(w http.ResponseWriter, r *http.Request) {
	email, ok := requireOwner(h.log, w, r, r.URL.Query().Get("email"))
	if !ok {
		return
	}

	bookings, err := h.service.GetBuyerBookings(r.Context(), email)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get buyer bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetProviderBookings handles GET /api/v1/provider/bookings?email= (gated)
func (h *BookingHandler) GetProviderBookings(w http.ResponseWriter, r *http.Request) {
	email, ok := requireOwner(h.log, w, r, r.URL.Query().Get("email"))
	if !ok {
		return
	}

	bookings, err := h.service.GetProviderBookings(r.Context(), email)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get provider bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// UpdateStatus handles PATCH /api/v1/status/{id}
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateStatusRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		h.log.Warn("Validation failed for update booking status",
			zap.String("errors", utils.FormatValidationErrors(validationErrors)))
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// DeleteBooking handles DELETE /api/v1/booking/{id}
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteBooking(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "success", deleted)
}
