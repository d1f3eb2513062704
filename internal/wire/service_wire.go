package wire

import (
	"net/http"

	"tour-sport/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireService(r chi.Router, serviceHandler *adaptor.ServiceHandler, gate func(http.Handler) http.Handler) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/service", serviceHandler.CreateService)
	r.Get("/services", serviceHandler.GetServices)
	r.Get("/service/{id}", serviceHandler.GetServiceByID)
	r.Put("/service/{id}", serviceHandler.UpdateService)
	r.Delete("/service/{id}", serviceHandler.DeleteService)

	// ==================== PROTECTED ROUTES ====================
	r.With(gate).Get("/my-services", serviceHandler.GetMyServices)
}
