// internal/app/features/volunteers/routes.go
package volunteers

import "github.com/go-chi/chi/v5"

// Routes mounts the volunteer CRUD endpoints.
// Typically: r.Mount("/voluntarios", volunteers.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGet)
	r.Put("/{id}", h.HandleUpdate)
	r.Delete("/{id}", h.HandleDelete)
	return r
}
