package booking

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/resortify/resortify-api/internal/domain/resort"
	"github.com/resortify/resortify-api/internal/middleware"
	"github.com/resortify/resortify-api/internal/pkg/response"
	"github.com/resortify/resortify-api/internal/pkg/validator"
)

// Handler handles booking HTTP requests
type Handler struct {
	svc *Service
}

// NewHandler creates booking handler
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Quote handles POST /resorts/{id}/quote (public)
func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	resortID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}

	var req QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	quote, err := h.svc.Quote(r.Context(), resortID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, quote)
}

// Availability handles GET /resorts/{id}/availability?date=YYYY-MM-DD (public)
func (h *Handler) Availability(w http.ResponseWriter, r *http.Request) {
	resortID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		response.BadRequest(w, "Missing date query parameter")
		return
	}

	avail, err := h.svc.Availability(r.Context(), resortID, date)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, avail)
}

// Create handles POST /bookings
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}

	var req CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ValidationError(w, errs)
		return
	}

	b, err := h.svc.Create(r.Context(), guestID, &req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.Created(w, ToResponse(b))
}

// ListMine handles GET /bookings
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	guestID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	limit, offset := pagination(r)

	bookings, total, err := h.svc.ListByGuest(r.Context(), guestID, limit, offset)
	if err != nil {
		response.InternalError(w)
		return
	}
	h.writeList(w, bookings, total)
}

// ListByResort handles GET /resorts/{id}/bookings (owner)
func (h *Handler) ListByResort(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	resortID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid resort ID")
		return
	}
	limit, offset := pagination(r)

	bookings, total, err := h.svc.ListByResort(r.Context(), ownerID, resortID, limit, offset)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeList(w, bookings, total)
}

// GetByID handles GET /bookings/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.GetByID(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, ToResponse(b))
}

// Cancel handles POST /bookings/{id}/cancel
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.Cancel(r.Context(), userID, id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, ToResponse(b))
}

// Confirm handles POST /bookings/{id}/confirm (owner)
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, StatusConfirmed)
}

// Complete handles POST /bookings/{id}/complete (owner)
func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, StatusCompleted)
}

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, status Status) {
	ownerID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Missing user identity")
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Invalid booking ID")
		return
	}

	b, err := h.svc.UpdateStatus(r.Context(), ownerID, id, status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	response.OK(w, ToResponse(b))
}

func (h *Handler) writeList(w http.ResponseWriter, bookings []*Booking, total int) {
	items := make([]*BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = ToResponse(b)
	}
	response.OK(w, map[string]interface{}{"items": items, "total": total})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	switch err {
	case ErrBookingNotFound:
		response.NotFound(w, "Booking not found")
	case resort.ErrResortNotFound:
		response.NotFound(w, "Resort not found")
	case ErrPricingUnavailable:
		response.NotFound(w, "No price is configured for this combination")
	case ErrSlotConflict:
		response.Conflict(w, "The slot conflicts with an existing booking")
	case ErrSlotNotBookable:
		response.BadRequest(w, "The time slot is not bookable for this resort")
	case ErrSlotTypeMismatch:
		response.BadRequest(w, "The time slot does not belong to the requested booking type")
	case ErrNotParticipant, resort.ErrNotOwner:
		response.Forbidden(w, "You do not have access to this booking")
	case ErrInvalidTransition:
		response.Conflict(w, "Booking status cannot change this way")
	default:
		var parseErr *time.ParseError
		if errors.As(err, &parseErr) {
			response.BadRequest(w, "Date must be in YYYY-MM-DD format")
			return
		}
		response.InternalError(w)
	}
}

func pagination(r *http.Request) (limit, offset int) {
	limit = 20
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
