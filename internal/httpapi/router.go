package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/luminauth/idp-console/internal/httpapi/handlers"
)

// RouterDeps defines router construction dependencies.
type RouterDeps struct {
	HealthHandler       *handlers.HealthHandler
	ClientHandler       *handlers.ClientHandler
	ConsentHandler      *handlers.ConsentHandler
	RequireAuthHandler  func(http.Handler) http.Handler
	RequireAdminHandler func(http.Handler) http.Handler
	RateLimitConsent    func(http.Handler) http.Handler
	MetricsHandler      http.Handler
}

// NewRouter wires HTTP routes.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Accept-Language", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if deps.HealthHandler != nil {
		r.Get("/healthz", deps.HealthHandler.Live)
		r.Get("/readyz", deps.HealthHandler.Ready)
	}
	if deps.MetricsHandler != nil {
		r.Method("GET", "/metrics", deps.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/oauth-clients", func(r chi.Router) {
			if deps.RequireAdminHandler != nil {
				r.Use(deps.RequireAdminHandler)
			}
			deps.ClientHandler.Routes(r)
		})
		r.Route("/consent", func(r chi.Router) {
			if deps.RequireAuthHandler != nil {
				r.Use(deps.RequireAuthHandler)
			}
			if deps.RateLimitConsent != nil {
				r.Use(deps.RateLimitConsent)
			}
			deps.ConsentHandler.Routes(r)
		})
	})

	return r
}
