// internal/app/features/logs/routes.go
package logs

import "github.com/go-chi/chi/v5"

// Routes mounts the log endpoints.
// Typically: r.Mount("/logs", logs.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	return r
}
