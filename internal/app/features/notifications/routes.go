// internal/app/features/notifications/routes.go
package notifications

import "github.com/go-chi/chi/v5"

// Routes mounts the notification endpoints.
// Typically: r.Mount("/notifications", notifications.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.HandleList)
	r.Patch("/{id}/read", h.HandleMarkRead)
	r.Post("/mark-all-read", h.HandleMarkAllRead)
	return r
}
