// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/member-roster/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
// Middleware is applied globally in the order given and runs before route
// matching, so a method override is honoured by the router.
func NewRouter(
	memberHandler *handlers.MemberHandler,
	apiHandler *handlers.MemberAPIHandler,
	healthHandler *handlers.HealthHandler,
	middlewares ...func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range middlewares {
		r.Use(mw)
	}

	// Health endpoints (outside /api/v1 prefix).
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	r.Get("/", memberHandler.Index)

	// HTML pages.
	r.Route("/members", func(r chi.Router) {
		r.Get("/", memberHandler.List)
		r.Post("/", memberHandler.Create)
		r.Get("/new", memberHandler.New)
		r.Get("/{id}", memberHandler.Show)
		r.Put("/{id}", memberHandler.Update)
		r.Delete("/{id}", memberHandler.Delete)
		r.Get("/{id}/edit", memberHandler.Edit)
		r.Get("/{id}/delete", memberHandler.ConfirmDelete)
	})

	// API v1 routes.
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/members", apiHandler.ListMembers)
		r.Post("/members", apiHandler.CreateMember)
		r.Get("/members/{id}", apiHandler.GetMember)
		r.Put("/members/{id}", apiHandler.UpdateMember)
		r.Delete("/members/{id}", apiHandler.DeleteMember)
	})

	return r
}
