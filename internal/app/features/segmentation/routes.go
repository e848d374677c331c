// internal/app/features/segmentation/routes.go
package segmentation

import "github.com/go-chi/chi/v5"

// Routes mounts the segmentation endpoints.
// Typically: r.Mount("/segmentation", segmentation.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Get("/{id}", h.HandleGet)
	return r
}
