// internal/app/features/config/routes.go
package config

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the config endpoints behind the admin guard.
// Typically: r.Mount("/config", config.Routes(h, requireAdmin))
func Routes(h *Handler, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(requireAdmin)
	r.Get("/", h.HandleGet)
	r.Post("/", h.HandleSet)
	return r
}
