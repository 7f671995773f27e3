package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bookit-dev/bookit/internal/metrics"
	"github.com/bookit-dev/bookit/internal/middleware"
	"github.com/bookit-dev/bookit/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// JSON API only: strict CSP
	backendCSP := "default-src 'none'; frame-ancestors 'none'"
	r.Use(middleware.SecurityHeadersWithCSP(deps.Config.Public.SecureCookies, backendCSP))

	h := deps.Handler
	needAuth := deps.AuthMiddleware.NeedAuth()

	r.Get("/health", h.Health)
	r.Method("GET", "/metrics", promhttp.Handler())

	// Public routes
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/allplaces", h.GetAllPlaces)
	r.Get("/place/{id}", h.GetPlace)

	// Routes requiring a verified session
	r.Group(func(r chi.Router) {
		r.Use(needAuth)

		r.Get("/profile", h.Profile)
		r.Post("/place", h.CreatePlace)
		r.Get("/userplaces", h.GetUserPlaces)
		r.Delete("/place/{id}", h.DeletePlace)
		r.Post("/booking", h.CreateBooking)
		r.Get("/userbookings", h.GetUserBookings)
		r.Post("/upload", h.Upload)
	})

	return r
}
