// internal/app/features/bots/routes.go
package bots

import (
	"github.com/dalemusser/volunteerhub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the bot polling endpoints behind the shared API key.
// Typically: r.Mount("/bots", bots.Routes(h, apiKey))
func Routes(h *Handler, apiKey string) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireAPIKey(apiKey))
	r.Get("/pending-tasks", h.HandlePendingTasks)
	r.Post("/task/{id}/complete", h.HandleComplete)
	return r
}
