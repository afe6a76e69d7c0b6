package holiday

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns public holiday routes
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	return r
}

// AdminRoutes returns admin holiday routes
func (h *Handler) AdminRoutes(authMiddleware, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Use(requireAdmin)

	r.Post("/", h.Create)
	r.Delete("/{id}", h.Delete)

	return r
}
