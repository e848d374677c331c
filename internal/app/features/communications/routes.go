// internal/app/features/communications/routes.go
package communications

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the communications endpoints. The send route takes its own
// guard because only admins may dispatch real email.
// Typically: r.Mount("/communications", communications.Routes(h, requireAdmin))
func Routes(h *Handler, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/simular", h.HandleSimulate)
	r.Get("/{segmentID}/generar-csv", h.HandleGenerateCSV)
	r.Post("/generar-csv", h.HandleGenerateCSVPost)

	r.Group(func(pr chi.Router) {
		pr.Use(requireAdmin)
		pr.Post("/enviar", h.HandleSend)
	})

	return r
}
