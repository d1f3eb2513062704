package adaptor

import (
	"errors"
	"net/http"

	"tour-sport/internal/data/repository"
	"tour-sport/internal/usecase"
	"tour-sport/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	Service *ServiceHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, config.JWT.CookieSecure, log),
		Service: NewServiceHandler(service.Catalog, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps store errors to status codes. Unknown errors are logged
// with the request id and answered with an opaque message.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, r *http.Request, err error, operation string) {
	reqLog := utils.RequestLogger(log, r).With(zap.String("operation", operation))

	switch {
	case errors.Is(err, repository.ErrNotFound):
		reqLog.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "Record not found")

	case errors.Is(err, repository.ErrInvalidID):
		reqLog.Warn("Invalid id for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, "Invalid id", nil)

	default:
		reqLog.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// requireOwner returns the authenticated email when it matches one of the
// candidates. Otherwise it writes 401 and returns false. Callers filter by the
// returned email, never by a raw candidate.
func requireOwner(log *zap.Logger, w http.ResponseWriter, r *http.Request, candidates ...string) (string, bool) {
	email, _ := utils.GetEmailFromContext(r.Context())
	if utils.OwnsResource(email, candidates...) {
		return email, true
	}

	masked := make([]string, len(candidates))
	for i, candidate := range candidates {
		masked[i] = utils.MaskEmail(candidate)
	}
	utils.RequestLogger(log, r).Warn("Ownership check failed",
		zap.String("token_email", utils.MaskEmail(email)),
		zap.Strings("requested", masked))
	utils.ResponseUnauthorized(w, "Unauthorized")
	return "", false
}
