package wire

import (
	"net/http"

	"tour-sport/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler, gate func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/booking", bookingHandler.CreateBooking)
	r.Delete("/booking/{id}", bookingHandler.DeleteBooking)
	r.Patch("/status/{id}", bookingHandler.UpdateStatus)

	// ==================== PROTECTED ROUTES ====================
	r.With(gate).Get("/buyer/bookings", bookingHandler.GetBuyerBookings)
	r.With(gate).Get("/provider/bookings", bookingHandler.GetProviderBookings)
}
