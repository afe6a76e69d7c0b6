package holiday

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/resortify/resortify-api/internal/pkg/response"
	"github.com/resortify/resortify-api/internal/pkg/validator"
)

// Handler handles holiday HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates holiday handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// List handles GET /holidays?year=2026
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	year := 0
	if y := r.URL.Query().Get("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			response.BadRequest(w, "Invalid year")
			return
		}
		year = v
	}

	holidays, err := h.svc.List(r.Context(), year)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*HolidayResponse, len(holidays))
	for i, hd := range holidays {
		items[i] = ToResponse(hd)
	}
	response.OK(w, map[string]interface{}{"items": items, "total": len(items)})
}

// Create handles POST /admin/holidays
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateHolidayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	hd, err := h.svc.Add(r.Context(), req.Date, req.Name, Kind(req.Kind))
	if err != nil {
		if err == ErrInvalidDate {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format")
			return
		}
		response.InternalError(w)
		return
	}
	response.Created(w, ToResponse(hd))
}

// Delete handles DELETE /admin/holidays/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid holiday ID")
		return
	}

	if err := h.svc.Remove(r.Context(), id); err != nil {
		if err == ErrHolidayNotFound {
			response.NotFound(w, "Holiday not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.NoContent(w)
}
