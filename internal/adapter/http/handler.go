package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"clicktracker/internal/core/port"
)

// Services bundles the use cases served over HTTP.
type Services struct {
	Tracker port.TrackerUseCase
	// Visits queues visits for background recording. When nil, visits are
	// recorded before the redirect is written.
	Visits     port.VisitQueue
	Campaigns  port.CampaignUseCase
	Auth       port.AuthUseCase
	Reconciler port.ReconcileUseCase
	// Health lists the backends pinged by the health endpoint, by name.
	Health map[string]port.Pinger
}

// Options configure request handling.
type Options struct {
	// DefaultURL is sent to visitors of unknown campaigns.
	DefaultURL string
	// TrustForwardedFor takes the client address from X-Forwarded-For.
	TrustForwardedFor bool
	// CookieSecure marks the admin session cookie Secure.
	CookieSecure bool
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc    Services
	opts   Options
	logger *slog.Logger
	router chi.Router
	now    func() time.Time
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc Services, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, opts: opts, logger: logger, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/click/{id}", h.handleClickRedirect)
		r.Post("/click/{id}", h.handleClickJSON)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/auth/login", h.handleLogin)
			r.Post("/auth/logout", h.handleLogout)

			r.Group(func(r chi.Router) {
				r.Use(h.requireAdmin)

				r.Get("/campaigns", h.handleListCampaigns)
				r.Post("/campaigns", h.handleCreateCampaign)
				r.Get("/campaigns/{id}", h.handleGetCampaign)
				r.Put("/campaigns/{id}", h.handleUpdateCampaign)
				r.Delete("/campaigns/{id}", h.handleDeleteCampaign)

				r.Get("/platforms", h.handleListPlatforms)
				r.Post("/platforms", h.handleCreatePlatform)

				r.Post("/reconcile", h.handleReconcile)
				r.Get("/health", h.handleHealth)
			})
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
