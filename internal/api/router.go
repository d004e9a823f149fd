package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/unyx/random"
	"github.com/unyx/random/internal/api/apierr"
	"github.com/unyx/random/internal/api/handler"
	"github.com/unyx/random/internal/middleware"
	"github.com/unyx/random/internal/services/token"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger       *slog.Logger
	Generator    *random.Generator
	TokenService *token.Service
	RateLimiter  *middleware.RateLimiter
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	randomHandler := handler.NewRandomHandler(cfg.Generator)
	tokenHandler := handler.NewTokenHandler(cfg.TokenService)

	// Create middleware
	recoveryMiddleware := middleware.Recovery(cfg.Logger, panicHandler)
	loggingMiddleware := middleware.Logging(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)
	if cfg.RateLimiter != nil {
		api.Use(middleware.RateLimit(cfg.RateLimiter))
	}

	// Generation routes
	api.HandleFunc("/bytes", randomHandler.Bytes).Methods(http.MethodGet)
	api.HandleFunc("/int", randomHandler.Int).Methods(http.MethodGet)
	api.HandleFunc("/float", randomHandler.Float).Methods(http.MethodGet)
	api.HandleFunc("/bool", randomHandler.Bool).Methods(http.MethodGet)
	api.HandleFunc("/string", randomHandler.String).Methods(http.MethodGet)
	api.HandleFunc("/alphabet", randomHandler.Alphabet).Methods(http.MethodGet)

	// Token routes
	api.HandleFunc("/tokens", tokenHandler.Issue).Methods(http.MethodPost)
	api.HandleFunc("/tokens/{id}", tokenHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/tokens/{id}", tokenHandler.Revoke).Methods(http.MethodDelete)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler(cfg.Generator)).Methods(http.MethodGet)

	return r
}

func healthHandler(generator *random.Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// One probe draw proves the strongest source is still answering.
		if _, err := generator.Bytes(1); err != nil {
			apierr.WriteError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok","strength":"` + generator.Strength().String() + `"}`))
	}
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
