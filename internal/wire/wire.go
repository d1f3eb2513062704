package wire

import (
	"context"
	"net/http"
	"time"

	"tour-sport/internal/adaptor"
	"tour-sport/internal/data/repository"
	"tour-sport/internal/usecase"
	"tour-sport/pkg/middleware"
	"tour-sport/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const banner = "<h1>TourSport Server is Running ...</h1>"

// App holds the assembled HTTP surface.
type App struct {
	Router *chi.Mux
}

// Wiring builds the token manager, use cases, handlers and router on top of repo.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := utils.NewTokenManager(config.JWT.Secret, config.JWT.Expiry())

	service := usecase.NewService(repo, tokens, logger)
	handler := adaptor.NewHandler(service, config, logger)

	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *utils.TokenManager,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.CORS.Origins))

	gate := middleware.AuthCookie(tokens, logger)

	wireAuth(r, handler.Auth)
	r.Route("/api/v1", func(api chi.Router) {
		wireService(api, handler.Service, gate)
		wireBooking(api, handler.Booking, gate)
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(banner))
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := repo.Ping(ctx); err != nil {
			utils.RequestLogger(logger, r).Error("Health check failed", zap.Error(err))
			utils.ResponseUnavailable(w, "Store unavailable")
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
