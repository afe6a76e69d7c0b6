package resort

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns resort routes. Public browsing stays open; owner
// operations sit behind auth.
func (h *Handler) Routes(authMiddleware, requireOwner func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/time-slots", h.TimeSlotCatalog)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(requireOwner)
		r.Post("/", h.Create)
		r.Get("/mine", h.ListMine)
	})

	r.Route("/{id}", func(r chi.Router) {
		r.Get("/", h.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(requireOwner)
			r.Patch("/", h.Update)
			r.Delete("/", h.Delete)
			r.Get("/pricing-config", h.GetPricingConfig)
			r.Put("/pricing-config", h.SavePricingConfig)
		})
	})

	return r
}

// AdminRoutes returns admin moderation routes
func (h *Handler) AdminRoutes(authMiddleware, requireAdmin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(authMiddleware)
	r.Use(requireAdmin)

	r.Get("/pending", h.ListPending)
	r.Post("/{id}/approve", h.Approve)
	r.Post("/{id}/reject", h.Reject)

	return r
}
