// internal/app/features/metrics/routes.go
package metrics

import "github.com/go-chi/chi/v5"

// Routes mounts the metrics endpoints.
// Typically: r.Mount("/metrics", metrics.Routes(h))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/overview", h.HandleOverview)
	r.Get("/regions", h.HandleRegions)
	r.Get("/skills", h.HandleSkills)
	r.Get("/timeline", h.HandleTimeline)
	return r
}
