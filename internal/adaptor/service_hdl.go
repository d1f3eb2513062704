package adaptor

import (
	"net/http"

	"tour-sport/internal/dto/request"
	"tour-sport/internal/usecase"
	"tour-sport/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ServiceHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewServiceHandler(service usecase.CatalogService, log *zap.Logger) *ServiceHandler {
	return &ServiceHandler{
		service: service,
		log:     log.With(zap.String("handler", "service")),
	}
}

// CreateService handles POST /api/v1/service
func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	created, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "create service")
		return
	}

	utils.ResponseCreated(w, "success", created)
}

// GetServices handles GET /api/v1/services?search=
func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.service.GetServices(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "get services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetMyServices handles GET /api/v1/my-services?email=&yourEmail= (gated)
func (h *ServiceHandler) GetMyServices(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	providerEmail, ok := requireOwner(h.log, w, r, query.Get("email"), query.Get("yourEmail"))
	if !ok {
		return
	}

	services, err := h.service.GetProviderServices(r.Context(), providerEmail)
	if err != nil {
		handleServiceError(h.log, w, r, err, "get provider services")
		return
	}

	utils.ResponseSuccess(w, "success", services)
}

// GetServiceByID handles GET /api/v1/service/{id}
func (h *ServiceHandler) GetServiceByID(w http.ResponseWriter, r *http.Request) {
	service, err := h.service.GetServiceByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "get service by ID")
		return
	}

	utils.ResponseSuccess(w, "success", service)
}

// UpdateService handles PUT /api/v1/service/{id}
func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	var req request.ServiceRequest
	if err := decodeBody(r, &req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	updated, err := h.service.UpdateService(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(h.log, w, r, err, "update service")
		return
	}

	utils.ResponseSuccess(w, "success", updated)
}

// DeleteService handles DELETE /api/v1/service/{id}
func (h *ServiceHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.service.DeleteService(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(h.log, w, r, err, "delete service")
		return
	}

	utils.ResponseSuccess(w, "success", deleted)
}
