package booking

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/resortify/resortify-api/internal/domain/pricing"
	"github.com/resortify/resortify-api/internal/domain/resort"
)

// ResortProvider supplies resort records. Interface for mocking in tests.
type ResortProvider interface {
	GetPublic(ctx context.Context, id uuid.UUID) (*resort.Resort, error)
	GetByID(ctx context.Context, id uuid.UUID) (*resort.Resort, error)
}

// CalendarProvider supplies the holiday calendar for day-type
// classification
type CalendarProvider interface {
	Calendar(ctx context.Context) (pricing.HolidayCalendar, error)
}

// Service handles booking business logic. All pricing and conflict
// decisions delegate to the pure pricing core over already-fetched
// data; this layer owns the I/O around it.
type Service struct {
	repo      Repository
	resorts   ResortProvider
	calendars CalendarProvider
}

// NewService creates booking service
func NewService(repo Repository, resorts ResortProvider, calendars CalendarProvider) *Service {
	return &Service{repo: repo, resorts: resorts, calendars: calendars}
}

// Quote resolves a price for a candidate stay. ErrPricingUnavailable
// means the owner has not priced this combination — the caller shows
// "pricing unavailable", nothing failed.
func (s *Service) Quote(ctx context.Context, resortID uuid.UUID, req *QuoteRequest) (*QuoteResponse, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}

	res, err := s.resorts.GetPublic(ctx, resortID)
	if err != nil {
		return nil, err
	}

	cal, err := s.calendars.Calendar(ctx)
	if err != nil {
		return nil, err
	}

	cfg := res.PricingConfig.Config
	quote := pricing.ResolvePrice(cfg, res.LegacyPrices(), pricing.BookingType(req.BookingType), date, req.GuestCount, cal)
	if quote == nil {
		return nil, ErrPricingUnavailable
	}

	percent := cfg.Downpayment()
	return &QuoteResponse{
		Price:              quote.Price,
		DayType:            quote.DayType,
		GuestTierID:        quote.GuestTierID,
		DownpaymentPercent: percent,
		DownpaymentAmount:  pricing.DownpaymentAmount(quote.Price, percent),
		Legacy:             quote.Legacy,
	}, nil
}

// Availability reports, per bookable slot, whether a date/slot
// combination is still selectable given the resort's active bookings.
func (s *Service) Availability(ctx context.Context, resortID uuid.UUID, dateStr string) (*AvailabilityResponse, error) {
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return nil, err
	}

	res, err := s.resorts.GetPublic(ctx, resortID)
	if err != nil {
		return nil, err
	}

	active, err := s.repo.ListActiveByResortDate(ctx, resortID, date)
	if err != nil {
		return nil, err
	}

	cfg := res.PricingConfig.Config
	existing := make([]pricing.ExistingBooking, len(active))
	for i, b := range active {
		existing[i] = pricing.ExistingBooking{Date: b.DateKey(), TimeSlotID: b.TimeSlotID}
	}

	var custom []pricing.TimeSlot
	if cfg != nil {
		custom = cfg.CustomTimeSlots
	}

	resp := &AvailabilityResponse{Date: dateStr}
	for _, slot := range s.bookableSlots(cfg) {
		conflict := pricing.HasConflict(
			pricing.SlotRequest{Date: dateStr, TimeSlotID: slot.ID},
			existing, custom,
		)
		resp.Slots = append(resp.Slots, SlotAvailability{Slot: slot, Available: !conflict})
	}
	return resp, nil
}

// Create persists a booking after re-running the quote and conflict
// checks server-side; the resolved price and keys are snapshotted onto
// the record.
func (s *Service) Create(ctx context.Context, guestID uuid.UUID, req *CreateBookingRequest) (*Booking, error) {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, err
	}
	bt := pricing.BookingType(req.BookingType)

	res, err := s.resorts.GetPublic(ctx, req.ResortID)
	if err != nil {
		return nil, err
	}
	cfg := res.PricingConfig.Config

	var custom []pricing.TimeSlot
	if cfg != nil {
		custom = cfg.CustomTimeSlots
	}

	slot := pricing.TimeSlotByID(req.TimeSlotID, custom)
	if slot == nil {
		return nil, ErrSlotNotBookable
	}
	if slot.BookingType != bt {
		return nil, ErrSlotTypeMismatch
	}
	if !s.slotBookable(cfg, slot) {
		return nil, ErrSlotNotBookable
	}

	active, err := s.repo.ListActiveByResortDate(ctx, req.ResortID, date)
	if err != nil {
		return nil, err
	}
	existing := make([]pricing.ExistingBooking, len(active))
	for i, b := range active {
		existing[i] = pricing.ExistingBooking{Date: b.DateKey(), TimeSlotID: b.TimeSlotID}
	}
	if pricing.HasConflict(pricing.SlotRequest{Date: req.Date, TimeSlotID: req.TimeSlotID}, existing, custom) {
		return nil, ErrSlotConflict
	}

	cal, err := s.calendars.Calendar(ctx)
	if err != nil {
		return nil, err
	}
	quote := pricing.ResolvePrice(cfg, res.LegacyPrices(), bt, date, req.GuestCount, cal)
	if quote == nil {
		return nil, ErrPricingUnavailable
	}

	checkout := date
	if slot.CrossesMidnight {
		checkout = date.AddDate(0, 0, 1)
	}

	percent := cfg.Downpayment()
	now := time.Now()
	b := &Booking{
		ID:                 uuid.New(),
		ResortID:           req.ResortID,
		GuestID:            guestID,
		BookingDate:        date,
		CheckoutDate:       checkout,
		BookingType:        bt,
		TimeSlotID:         req.TimeSlotID,
		GuestCount:         req.GuestCount,
		DayType:            quote.DayType,
		Price:              quote.Price,
		DownpaymentPercent: percent,
		DownpaymentAmount:  pricing.DownpaymentAmount(quote.Price, percent),
		LegacyPricing:      quote.Legacy,
		Status:             StatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if quote.GuestTierID != "" {
		b.GuestTierID = sql.NullString{String: quote.GuestTierID, Valid: true}
	}
	if req.Notes != "" {
		b.Notes = sql.NullString{String: req.Notes, Valid: true}
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// GetByID returns a booking visible to the requesting user (the guest
// or the resort owner)
func (s *Service) GetByID(ctx context.Context, userID, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	if b.GuestID == userID {
		return b, nil
	}
	res, err := s.resorts.GetByID(ctx, b.ResortID)
	if err != nil {
		return nil, err
	}
	if !res.CanBeEditedBy(userID) {
		return nil, ErrNotParticipant
	}
	return b, nil
}

// ListByGuest lists the requesting guest's bookings
func (s *Service) ListByGuest(ctx context.Context, guestID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	return s.repo.ListByGuest(ctx, guestID, limit, offset)
}

// ListByResort lists a resort's bookings for its owner
func (s *Service) ListByResort(ctx context.Context, ownerID, resortID uuid.UUID, limit, offset int) ([]*Booking, int, error) {
	res, err := s.resorts.GetByID(ctx, resortID)
	if err != nil {
		return nil, 0, err
	}
	if !res.CanBeEditedBy(ownerID) {
		return nil, 0, resort.ErrNotOwner
	}
	return s.repo.ListByResort(ctx, resortID, limit, offset)
}

// Cancel releases a slot. The guest who booked or the resort owner may
// cancel; completed bookings stay as they are.
func (s *Service) Cancel(ctx context.Context, userID, id uuid.UUID) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	res, err := s.resorts.GetByID(ctx, b.ResortID)
	if err != nil {
		return nil, err
	}
	if !b.CanBeCancelledBy(userID, res.OwnerID) {
		return nil, ErrNotParticipant
	}
	if b.Status != StatusPending && b.Status != StatusConfirmed {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled
	return b, nil
}

// UpdateStatus moves a booking along the owner's workflow:
// pending -> confirmed -> completed
func (s *Service) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status Status) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}

	res, err := s.resorts.GetByID(ctx, b.ResortID)
	if err != nil {
		return nil, err
	}
	if !res.CanBeEditedBy(ownerID) {
		return nil, resort.ErrNotOwner
	}

	valid := (b.Status == StatusPending && status == StatusConfirmed) ||
		(b.Status == StatusConfirmed && status == StatusCompleted)
	if !valid {
		return nil, ErrInvalidTransition
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status
	return b, nil
}

// bookableSlots returns the slots a guest may pick: the config's
// enabled slots when tiered pricing is configured, the full predefined
// catalog for legacy resorts.
func (s *Service) bookableSlots(cfg *pricing.ResortPricingConfig) []pricing.TimeSlot {
	if cfg == nil || len(cfg.EnabledTimeSlots) == 0 {
		return pricing.Catalog()
	}
	var slots []pricing.TimeSlot
	for _, id := range cfg.EnabledTimeSlots {
		if slot := pricing.TimeSlotByID(id, cfg.CustomTimeSlots); slot != nil {
			slots = append(slots, *slot)
		}
	}
	return slots
}

func (s *Service) slotBookable(cfg *pricing.ResortPricingConfig, slot *pricing.TimeSlot) bool {
	for _, candidate := range s.bookableSlots(cfg) {
		if candidate.ID == slot.ID {
			return true
		}
	}
	return false
}
