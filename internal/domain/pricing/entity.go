package pricing

// BookingType represents the kind of stay a slot belongs to
type BookingType string

const (
	BookingTypeDaytour   BookingType = "daytour"
	BookingTypeOvernight BookingType = "overnight"
	BookingType22Hrs     BookingType = "22hrs"
)

// IsValid returns true if the booking type is a known value
func (bt BookingType) IsValid() bool {
	switch bt {
	case BookingTypeDaytour, BookingTypeOvernight, BookingType22Hrs:
		return true
	}
	return false
}

// DayType represents the rate class of a calendar date
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
)

// IsValid returns true if the day type is a known value
func (dt DayType) IsValid() bool {
	return dt == DayTypeWeekday || dt == DayTypeWeekend
}

// TimeSlot represents one bookable window of a day.
// Times are local wall-clock "HH:MM" strings with no timezone.
type TimeSlot struct {
	ID              string      `json:"id"`
	Label           string      `json:"label"`
	StartTime       string      `json:"start_time"`
	EndTime         string      `json:"end_time"`
	CrossesMidnight bool        `json:"crosses_midnight"`
	Hours           float64     `json:"hours"`
	BookingType     BookingType `json:"booking_type"`
}

// GuestTier is a labeled inclusive range of guest counts.
// MaxGuests == nil means unbounded above.
type GuestTier struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	MinGuests int    `json:"min_guests"`
	MaxGuests *int   `json:"max_guests"`
}

// Contains reports whether guestCount falls inside the tier's range
func (t GuestTier) Contains(guestCount int) bool {
	if guestCount < t.MinGuests {
		return false
	}
	return t.MaxGuests == nil || guestCount <= *t.MaxGuests
}

// Overlaps reports whether two tiers share at least one guest count
func (t GuestTier) Overlaps(other GuestTier) bool {
	if t.MaxGuests != nil && other.MinGuests > *t.MaxGuests {
		return false
	}
	if other.MaxGuests != nil && t.MinGuests > *other.MaxGuests {
		return false
	}
	return true
}

// PricingEntry is one cell of the pricing matrix, keyed by
// (booking type, day type, guest tier)
type PricingEntry struct {
	BookingType BookingType `json:"booking_type"`
	DayType     DayType     `json:"day_type"`
	GuestTierID string      `json:"guest_tier_id"`
	Price       float64     `json:"price"`
}

// DefaultDownpaymentPercent applies when an owner never set one
const DefaultDownpaymentPercent = 50

// ResortPricingConfig is the aggregate an owner authors per resort.
// It is persisted as a single JSON document.
type ResortPricingConfig struct {
	EnabledBookingTypes []BookingType  `json:"enabled_booking_types"`
	EnabledTimeSlots    []string       `json:"enabled_time_slots"`
	CustomTimeSlots     []TimeSlot     `json:"custom_time_slots"`
	GuestTiers          []GuestTier    `json:"guest_tiers"`
	Pricing             []PricingEntry `json:"pricing"`
	DownpaymentPercent  *int           `json:"downpayment_percent"`
}

// HasStructuredPricing reports whether the structured pricing path
// should be used instead of the legacy flat prices. Structured wins
// whenever its pricing list is non-empty.
func (c *ResortPricingConfig) HasStructuredPricing() bool {
	return c != nil && len(c.Pricing) > 0
}

// Downpayment returns the configured percentage or the default
func (c *ResortPricingConfig) Downpayment() int {
	if c == nil || c.DownpaymentPercent == nil {
		return DefaultDownpaymentPercent
	}
	return *c.DownpaymentPercent
}

// TypeEnabled reports whether a booking type is enabled in the config
func (c *ResortPricingConfig) TypeEnabled(bt BookingType) bool {
	if c == nil {
		return false
	}
	for _, t := range c.EnabledBookingTypes {
		if t == bt {
			return true
		}
	}
	return false
}

// SetPrice adds an entry or overwrites the entry with the same
// (booking type, day type, guest tier) triple
func (c *ResortPricingConfig) SetPrice(entry PricingEntry) {
	for i, e := range c.Pricing {
		if e.BookingType == entry.BookingType && e.DayType == entry.DayType && e.GuestTierID == entry.GuestTierID {
			c.Pricing[i] = entry
			return
		}
	}
	c.Pricing = append(c.Pricing, entry)
}

// Prune drops configuration that dangles after an edit: custom slots
// whose booking type is no longer enabled, enabled-slot ids that no
// longer resolve, and pricing entries referencing a disabled booking
// type or a removed guest tier.
func (c *ResortPricingConfig) Prune() {
	if c == nil {
		return
	}

	customs := c.CustomTimeSlots[:0]
	for _, slot := range c.CustomTimeSlots {
		if c.TypeEnabled(slot.BookingType) {
			customs = append(customs, slot)
		}
	}
	c.CustomTimeSlots = customs

	enabled := c.EnabledTimeSlots[:0]
	for _, id := range c.EnabledTimeSlots {
		if slot := TimeSlotByID(id, c.CustomTimeSlots); slot != nil && c.TypeEnabled(slot.BookingType) {
			enabled = append(enabled, id)
		}
	}
	c.EnabledTimeSlots = enabled

	tiers := make(map[string]bool, len(c.GuestTiers))
	for _, t := range c.GuestTiers {
		tiers[t.ID] = true
	}

	entries := c.Pricing[:0]
	for _, e := range c.Pricing {
		if c.TypeEnabled(e.BookingType) && tiers[e.GuestTierID] {
			entries = append(entries, e)
		}
	}
	c.Pricing = entries
}

// LegacyPrices are the flat per-resort price columns used by resorts
// configured before the tiered model. Nil means the column is unset.
type LegacyPrices struct {
	Price          *float64 `json:"price"`
	DayTourPrice   *float64 `json:"day_tour_price"`
	NightTourPrice *float64 `json:"night_tour_price"`
	OvernightPrice *float64 `json:"overnight_price"`
}
