package pricing

import (
	"testing"
	"time"
)

func floatp(v float64) *float64 { return &v }

func TestQuoteRoundTripsConfiguration(t *testing.T) {
	tiers := []GuestTier{{ID: "tier_1", MinGuests: 1, MaxGuests: intp(20)}}
	entries := []PricingEntry{{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "tier_1", Price: 5000}}

	monday := date(2025, time.June, 2)
	res := Quote(QuoteInput{
		BookingType: BookingTypeDaytour,
		Date:        monday,
		GuestCount:  10,
		Pricing:     entries,
		GuestTiers:  tiers,
	})
	if res == nil || res.Price != 5000 {
		t.Fatalf("weekday daytour: got %+v, want price 5000", res)
	}
	if res.DayType != DayTypeWeekday || res.GuestTierID != "tier_1" {
		t.Fatalf("weekday daytour: wrong lookup keys %+v", res)
	}

	saturday := date(2025, time.June, 7)
	if res := Quote(QuoteInput{
		BookingType: BookingTypeDaytour,
		Date:        saturday,
		GuestCount:  10,
		Pricing:     entries,
		GuestTiers:  tiers,
	}); res != nil {
		t.Fatalf("no weekend entry exists, got %+v", res)
	}
}

func TestQuoteTierResolvesButPriceDoesNot(t *testing.T) {
	// Tier t1 resolves for 10 guests, but only weekday overnight is
	// priced; a weekend overnight request must come back unpriced.
	tiers := []GuestTier{
		{ID: "t1", MinGuests: 1, MaxGuests: intp(20)},
		{ID: "t2", MinGuests: 21, MaxGuests: nil},
	}
	entries := []PricingEntry{
		{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 3000},
		{BookingType: BookingTypeDaytour, DayType: DayTypeWeekend, GuestTierID: "t1", Price: 3500},
		{BookingType: BookingTypeOvernight, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 5000},
	}

	saturday := date(2025, time.June, 7)
	if res := Quote(QuoteInput{
		BookingType: BookingTypeOvernight,
		Date:        saturday,
		GuestCount:  10,
		Pricing:     entries,
		GuestTiers:  tiers,
	}); res != nil {
		t.Fatalf("weekend overnight is unpriced, got %+v", res)
	}

	monday := date(2025, time.June, 2)
	if res := Quote(QuoteInput{
		BookingType: BookingTypeOvernight,
		Date:        monday,
		GuestCount:  10,
		Pricing:     entries,
		GuestTiers:  tiers,
	}); res == nil || res.Price != 5000 {
		t.Fatalf("weekday overnight: got %+v, want 5000", res)
	}
}

func TestQuoteNoTierNoPrice(t *testing.T) {
	entries := []PricingEntry{{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 3000}}
	tiers := []GuestTier{{ID: "t1", MinGuests: 5, MaxGuests: intp(20)}}

	if res := Quote(QuoteInput{
		BookingType: BookingTypeDaytour,
		Date:        date(2025, time.June, 2),
		GuestCount:  2,
		Pricing:     entries,
		GuestTiers:  tiers,
	}); res != nil {
		t.Fatalf("guest count below every tier, got %+v", res)
	}
}

func TestLegacyQuote(t *testing.T) {
	legacy := LegacyPrices{
		Price:          floatp(4000),
		DayTourPrice:   floatp(3000),
		NightTourPrice: floatp(5000),
	}
	monday := date(2025, time.June, 2)

	if res := LegacyQuote(BookingTypeDaytour, monday, legacy, nil); res == nil || res.Price != 3000 || !res.Legacy {
		t.Fatalf("daytour legacy: got %+v", res)
	}
	if res := LegacyQuote(BookingTypeOvernight, monday, legacy, nil); res == nil || res.Price != 5000 {
		t.Fatalf("overnight legacy: got %+v", res)
	}
	// 22hrs price unset, falls back to the bare price column
	if res := LegacyQuote(BookingType22Hrs, monday, legacy, nil); res == nil || res.Price != 4000 {
		t.Fatalf("22hrs legacy fallback: got %+v", res)
	}
	if res := LegacyQuote(BookingTypeDaytour, monday, LegacyPrices{}, nil); res != nil {
		t.Fatalf("no legacy prices at all: got %+v", res)
	}
}

func TestResolvePricePrecedence(t *testing.T) {
	legacy := LegacyPrices{DayTourPrice: floatp(1000)}
	monday := date(2025, time.June, 2)

	structured := &ResortPricingConfig{
		EnabledBookingTypes: []BookingType{BookingTypeDaytour},
		GuestTiers:          []GuestTier{{ID: "t1", MinGuests: 1, MaxGuests: nil}},
		Pricing:             []PricingEntry{{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 2500}},
	}
	if res := ResolvePrice(structured, legacy, BookingTypeDaytour, monday, 4, nil); res == nil || res.Price != 2500 || res.Legacy {
		t.Fatalf("structured config must win: got %+v", res)
	}

	// Empty pricing list means the structured path is not in effect yet
	empty := &ResortPricingConfig{EnabledBookingTypes: []BookingType{BookingTypeDaytour}}
	if res := ResolvePrice(empty, legacy, BookingTypeDaytour, monday, 4, nil); res == nil || res.Price != 1000 || !res.Legacy {
		t.Fatalf("empty structured pricing must fall back: got %+v", res)
	}

	if res := ResolvePrice(nil, legacy, BookingTypeDaytour, monday, 4, nil); res == nil || res.Price != 1000 {
		t.Fatalf("nil config must fall back: got %+v", res)
	}
}

func TestDownpaymentAmount(t *testing.T) {
	if got := DownpaymentAmount(5000, 50); got != 2500 {
		t.Errorf("50%% of 5000 = %v", got)
	}
	if got := DownpaymentAmount(3500, 30); got != 1050 {
		t.Errorf("30%% of 3500 = %v", got)
	}
	if got := DownpaymentAmount(3500, 0); got != 0 {
		t.Errorf("0%% of 3500 = %v", got)
	}
}
