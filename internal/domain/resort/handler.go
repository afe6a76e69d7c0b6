package resort

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/resortify/resortify-api/internal/domain/pricing"
	"github.com/resortify/resortify-api/internal/middleware"
	"github.com/resortify/resortify-api/internal/pkg/response"
	"github.com/resortify/resortify-api/internal/pkg/validator"
)

// Handler handles resort HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates resort handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /resorts
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req CreateResortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resort, err := h.svc.Create(r.Context(), ownerID, &req)
	if err != nil {
		response.InternalError(w)
		return
	}
	response.Created(w, ToResponse(resort))
}

// List handles GET /resorts (public, approved only)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r, 20)
	city := r.URL.Query().Get("city")

	resorts, total, err := h.svc.ListApproved(r.Context(), city, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*ResortResponse, len(resorts))
	for i, res := range resorts {
		items[i] = ToResponse(res)
	}
	response.OK(w, map[string]interface{}{"items": items, "total": total})
}

// GetByID handles GET /resorts/{id} (public)
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}

	resort, err := h.svc.GetPublic(r.Context(), id)
	if err != nil {
		if err == ErrResortNotFound {
			response.NotFound(w, "Resort not found")
			return
		}
		response.InternalError(w)
		return
	}
	response.OK(w, ToResponse(resort))
}

// ListMine handles GET /resorts/mine (owner)
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	resorts, err := h.svc.ListByOwner(r.Context(), ownerID)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*ResortResponse, len(resorts))
	for i, res := range resorts {
		items[i] = ToResponse(res)
	}
	response.OK(w, map[string]interface{}{"items": items, "total": len(items)})
}

// Update handles PATCH /resorts/{id} (owner)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}

	var req UpdateResortRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	resort, err := h.svc.Update(r.Context(), ownerID, id, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, ToResponse(resort))
}

// Delete handles DELETE /resorts/{id} (owner)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}

	if err := h.svc.Delete(r.Context(), ownerID, id); err != nil {
		h.writeError(w, err)
		return
	}
	response.NoContent(w)
}

// GetPricingConfig handles GET /resorts/{id}/pricing-config (owner)
func (h *Handler) GetPricingConfig(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}

	resp, err := h.svc.GetPricingConfig(r.Context(), ownerID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, resp)
}

// SavePricingConfig handles PUT /resorts/{id}/pricing-config (owner)
func (h *Handler) SavePricingConfig(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}

	var cfg pricing.ResortPricingConfig
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}

	resp, fieldErrs, err := h.svc.SavePricingConfig(r.Context(), ownerID, id, &cfg)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if fieldErrs != nil {
		response.ValidationError(w, fieldErrs)
		return
	}
	response.OK(w, resp)
}

// TimeSlotCatalog handles GET /resorts/time-slots (public reference data)
func (h *Handler) TimeSlotCatalog(w http.ResponseWriter, r *http.Request) {
	if bt := r.URL.Query().Get("booking_type"); bt != "" {
		t := pricing.BookingType(bt)
		if !t.IsValid() {
			response.BadRequest(w, "Unknown booking type")
			return
		}
		response.OK(w, map[string]interface{}{"items": pricing.TimeSlotsForType(t)})
		return
	}
	response.OK(w, map[string]interface{}{"items": pricing.Catalog()})
}

// ListPending handles GET /admin/resorts/pending
func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	limit, offset := pagination(r, 50)

	resorts, total, err := h.svc.ListPending(r.Context(), limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}

	items := make([]*ResortResponse, len(resorts))
	for i, res := range resorts {
		items[i] = ToResponse(res)
	}
	response.OK(w, map[string]interface{}{"items": items, "total": total})
}

// Approve handles POST /admin/resorts/{id}/approve
func (h *Handler) Approve(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, ModerationApproved)
}

// Reject handles POST /admin/resorts/{id}/reject
func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	h.moderate(w, r, ModerationRejected)
}

func (h *Handler) moderate(w http.ResponseWriter, r *http.Request, status ModerationStatus) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}

	var req ModerateRequest
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	if err := h.svc.Moderate(r.Context(), id, status, req.Reason); err != nil {
		if err == ErrAlreadyModerated {
			response.Conflict(w, "Resort was already moderated")
			return
		}
		h.writeError(w, err)
		return
	}
	response.OK(w, map[string]string{"status": string(status)})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch err {
	case ErrResortNotFound:
		response.NotFound(w, "Resort not found")
	case ErrNotOwner:
		response.Forbidden(w, "You do not own this resort")
	default:
		response.InternalError(w)
	}
}

func pagination(r *http.Request, def int) (limit, offset int) {
	limit = def
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	if o := r.URL.Query().Get("offset"); o != "" {
		if v, err := strconv.Atoi(o); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
