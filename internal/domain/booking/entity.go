package booking

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/resortify/resortify-api/internal/domain/pricing"
)

// Status represents booking status
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Booking represents a persisted reservation. Price, downpayment, day
// type and guest tier are snapshots captured at booking time — later
// pricing edits never touch existing bookings.
type Booking struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	ResortID uuid.UUID `db:"resort_id"`
	GuestID  uuid.UUID `db:"guest_id"`

	// Check-in calendar day; checkout lands a day later when the slot
	// crosses midnight
	BookingDate  time.Time `db:"booking_date"`
	CheckoutDate time.Time `db:"checkout_date"`

	BookingType pricing.BookingType `db:"booking_type"`
	TimeSlotID  string              `db:"time_slot_id"`
	GuestCount  int                 `db:"guest_count"`

	// Pricing snapshot
	DayType            pricing.DayType `db:"day_type"`
	GuestTierID        sql.NullString  `db:"guest_tier_id"`
	Price              float64         `db:"price"`
	DownpaymentPercent int             `db:"downpayment_percent"`
	DownpaymentAmount  float64         `db:"downpayment_amount"`
	LegacyPricing      bool            `db:"legacy_pricing"`

	Status Status         `db:"status"`
	Notes  sql.NullString `db:"notes"`
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// DateKey returns the check-in day in YYYY-MM-DD form
func (b *Booking) DateKey() string {
	return b.BookingDate.Format("2006-01-02")
}

// CanBeCancelledBy checks if a user may cancel this booking: the guest
// who made it, or the resort owner passed in
func (b *Booking) CanBeCancelledBy(userID, resortOwnerID uuid.UUID) bool {
	return b.GuestID == userID || resortOwnerID == userID
}
