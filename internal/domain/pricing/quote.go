package pricing

import "time"

// QuoteInput carries everything a price quote needs, already fetched.
// Quote itself does no I/O.
type QuoteInput struct {
	BookingType BookingType
	Date        time.Time
	GuestCount  int
	Pricing     []PricingEntry
	GuestTiers  []GuestTier
	Holidays    HolidayCalendar
}

// QuoteResult is a resolved price with the lookup keys that produced it,
// snapshotted onto the booking record at creation time.
type QuoteResult struct {
	Price       float64
	DayType     DayType
	GuestTierID string
	Legacy      bool
}

// Quote resolves a price from the tiered pricing matrix: classify the
// day type, resolve the guest tier, then linear-scan for the matching
// (booking type, day type, tier) entry. Returns nil when the tier does
// not resolve or no entry is priced for the combination.
func Quote(in QuoteInput) *QuoteResult {
	dayType := DayTypeFor(in.Date, in.Holidays)

	tier := GuestTierFor(in.GuestCount, in.GuestTiers)
	if tier == nil {
		return nil
	}

	for _, e := range in.Pricing {
		if e.BookingType == in.BookingType && e.DayType == dayType && e.GuestTierID == tier.ID {
			return &QuoteResult{
				Price:       e.Price,
				DayType:     dayType,
				GuestTierID: tier.ID,
			}
		}
	}
	return nil
}

// LegacyQuote resolves a flat per-booking-type price for resorts
// configured before the tiered model. Day type and guest tier do not
// affect the price; the day type is still classified for the booking
// snapshot. The bare "price" column is the fallback of last resort.
func LegacyQuote(bt BookingType, date time.Time, legacy LegacyPrices, holidays HolidayCalendar) *QuoteResult {
	var price *float64
	switch bt {
	case BookingTypeDaytour:
		price = legacy.DayTourPrice
	case BookingTypeOvernight:
		price = legacy.NightTourPrice
	case BookingType22Hrs:
		price = legacy.OvernightPrice
	}
	if price == nil {
		price = legacy.Price
	}
	if price == nil {
		return nil
	}
	return &QuoteResult{
		Price:   *price,
		DayType: DayTypeFor(date, holidays),
		Legacy:  true,
	}
}

// ResolvePrice picks the structured path when the config carries any
// pricing entries and falls back to the legacy flat prices otherwise.
// Resorts mid-migration may have both; structured wins.
func ResolvePrice(cfg *ResortPricingConfig, legacy LegacyPrices, bt BookingType, date time.Time, guestCount int, holidays HolidayCalendar) *QuoteResult {
	if cfg.HasStructuredPricing() {
		return Quote(QuoteInput{
			BookingType: bt,
			Date:        date,
			GuestCount:  guestCount,
			Pricing:     cfg.Pricing,
			GuestTiers:  cfg.GuestTiers,
			Holidays:    holidays,
		})
	}
	return LegacyQuote(bt, date, legacy, holidays)
}

// DownpaymentAmount computes the amount due up front for a resolved
// price. Payment itself is always arranged out-of-band.
func DownpaymentAmount(price float64, percent int) float64 {
	return price * float64(percent) / 100
}
