package booking

import (
	"github.com/google/uuid"

	"github.com/resortify/resortify-api/internal/domain/pricing"
)

// QuoteRequest asks for a price for a candidate stay
type QuoteRequest struct {
	BookingType string `json:"booking_type" validate:"required,booking_type"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	GuestCount  int    `json:"guest_count" validate:"required,min=1"`
}

// QuoteResponse is a resolved price quote. Payment is arranged
// out-of-band; the downpayment figures are informational.
type QuoteResponse struct {
	Price              float64         `json:"price"`
	DayType            pricing.DayType `json:"day_type"`
	GuestTierID        string          `json:"guest_tier_id,omitempty"`
	DownpaymentPercent int             `json:"downpayment_percent"`
	DownpaymentAmount  float64         `json:"downpayment_amount"`
	Legacy             bool            `json:"legacy"`
}

// SlotAvailability reports whether one slot is selectable on a date
type SlotAvailability struct {
	Slot      pricing.TimeSlot `json:"slot"`
	Available bool             `json:"available"`
}

// AvailabilityResponse lists slot availability for one date
type AvailabilityResponse struct {
	Date  string             `json:"date"`
	Slots []SlotAvailability `json:"slots"`
}

// CreateBookingRequest represents booking creation from a guest
type CreateBookingRequest struct {
	ResortID    uuid.UUID `json:"resort_id" validate:"required"`
	BookingType string    `json:"booking_type" validate:"required,booking_type"`
	TimeSlotID  string    `json:"time_slot_id" validate:"required"`
	Date        string    `json:"date" validate:"required,datetime=2006-01-02"`
	GuestCount  int       `json:"guest_count" validate:"required,min=1"`
	Notes       string    `json:"notes" validate:"max=1000"`
}

// BookingResponse represents booking information
type BookingResponse struct {
	ID                 uuid.UUID           `json:"id"`
	ResortID           uuid.UUID           `json:"resort_id"`
	GuestID            uuid.UUID           `json:"guest_id"`
	Date               string              `json:"date"`
	CheckoutDate       string              `json:"checkout_date"`
	BookingType        pricing.BookingType `json:"booking_type"`
	TimeSlotID         string              `json:"time_slot_id"`
	GuestCount         int                 `json:"guest_count"`
	DayType            pricing.DayType     `json:"day_type"`
	GuestTierID        string              `json:"guest_tier_id,omitempty"`
	Price              float64             `json:"price"`
	DownpaymentPercent int                 `json:"downpayment_percent"`
	DownpaymentAmount  float64             `json:"downpayment_amount"`
	Status             Status              `json:"status"`
	Notes              string              `json:"notes,omitempty"`
}

// ToResponse converts an entity to its API shape
func ToResponse(b *Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:                 b.ID,
		ResortID:           b.ResortID,
		GuestID:            b.GuestID,
		Date:               b.DateKey(),
		CheckoutDate:       b.CheckoutDate.Format("2006-01-02"),
		BookingType:        b.BookingType,
		TimeSlotID:         b.TimeSlotID,
		GuestCount:         b.GuestCount,
		DayType:            b.DayType,
		Price:              b.Price,
		DownpaymentPercent: b.DownpaymentPercent,
		DownpaymentAmount:  b.DownpaymentAmount,
		Status:             b.Status,
	}
	if b.GuestTierID.Valid {
		resp.GuestTierID = b.GuestTierID.String
	}
	if b.Notes.Valid {
		resp.Notes = b.Notes.String
	}
	return resp
}
