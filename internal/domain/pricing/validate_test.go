package pricing

import "testing"

func validConfig() *ResortPricingConfig {
	return &ResortPricingConfig{
		EnabledBookingTypes: []BookingType{BookingTypeDaytour},
		EnabledTimeSlots:    []string{"daytour_8am_5pm"},
		GuestTiers: []GuestTier{
			{ID: "t1", Label: "1-20", MinGuests: 1, MaxGuests: intp(20)},
			{ID: "t2", Label: "21+", MinGuests: 21, MaxGuests: nil},
		},
		Pricing: []PricingEntry{
			{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 3000},
		},
	}
}

func TestValidateConfigAcceptsIncompletePricing(t *testing.T) {
	// 1 type x 2 day types x 2 tiers = 4 possible cells, only 1 priced.
	// Completeness is advisory; the schema must still accept.
	cfg := validConfig()
	if errs := ValidateConfig(cfg); errs != nil {
		t.Fatalf("incomplete but valid config rejected: %v", errs)
	}

	c := ConfigCompleteness(cfg)
	if c.Priced != 1 || c.Total != 4 {
		t.Fatalf("completeness = %d/%d, want 1/4", c.Priced, c.Total)
	}
}

func TestValidateConfigRequiredCollections(t *testing.T) {
	cfg := validConfig()
	cfg.GuestTiers = nil
	errs := ValidateConfig(cfg)
	if errs == nil || errs["guest_tiers"] == "" {
		t.Fatalf("zero guest tiers must be rejected, got %v", errs)
	}

	cfg = validConfig()
	cfg.EnabledBookingTypes = nil
	if errs := ValidateConfig(cfg); errs == nil || errs["enabled_booking_types"] == "" {
		t.Fatalf("zero booking types must be rejected, got %v", errs)
	}

	cfg = validConfig()
	cfg.EnabledTimeSlots = nil
	if errs := ValidateConfig(cfg); errs == nil || errs["enabled_time_slots"] == "" {
		t.Fatalf("zero time slots must be rejected, got %v", errs)
	}
}

func TestValidateConfigCrossReferences(t *testing.T) {
	// enabled slot's booking type must itself be enabled
	cfg := validConfig()
	cfg.EnabledTimeSlots = append(cfg.EnabledTimeSlots, "overnight_7pm_6am")
	errs := ValidateConfig(cfg)
	if errs == nil || errs["enabled_time_slots[1]"] == "" {
		t.Fatalf("slot of a disabled type must be rejected, got %v", errs)
	}

	// pricing entry's booking type must be enabled
	cfg = validConfig()
	cfg.Pricing = append(cfg.Pricing, PricingEntry{BookingType: BookingTypeOvernight, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 5000})
	if errs := ValidateConfig(cfg); errs == nil || errs["pricing[1].booking_type"] == "" {
		t.Fatalf("entry of a disabled type must be rejected, got %v", errs)
	}

	// pricing entry must reference an existing tier
	cfg = validConfig()
	cfg.Pricing[0].GuestTierID = "ghost"
	if errs := ValidateConfig(cfg); errs == nil || errs["pricing[0].guest_tier_id"] == "" {
		t.Fatalf("entry with unknown tier must be rejected, got %v", errs)
	}
}

func TestValidateConfigFieldRules(t *testing.T) {
	cfg := validConfig()
	cfg.Pricing[0].Price = -1
	if errs := ValidateConfig(cfg); errs == nil || errs["pricing[0].price"] == "" {
		t.Fatalf("negative price must be rejected, got %v", errs)
	}

	cfg = validConfig()
	cfg.DownpaymentPercent = intp(120)
	if errs := ValidateConfig(cfg); errs == nil || errs["downpayment_percent"] == "" {
		t.Fatalf("downpayment over 100 must be rejected, got %v", errs)
	}

	cfg = validConfig()
	cfg.GuestTiers[0].MinGuests = 0
	if errs := ValidateConfig(cfg); errs == nil || errs["guest_tiers[0].min_guests"] == "" {
		t.Fatalf("tier min below 1 must be rejected, got %v", errs)
	}
}

func TestValidateConfigCustomSlotHours(t *testing.T) {
	cfg := validConfig()
	cfg.CustomTimeSlots = []TimeSlot{{
		ID:          "custom_short",
		BookingType: BookingTypeDaytour,
		StartTime:   "10:00",
		EndTime:     "16:00",
		Hours:       7, // inconsistent with 10:00-16:00
	}}
	errs := ValidateConfig(cfg)
	if errs == nil || errs["custom_time_slots[0].hours"] == "" {
		t.Fatalf("inconsistent custom slot hours must be rejected, got %v", errs)
	}

	cfg.CustomTimeSlots[0].Hours = 6
	if errs := ValidateConfig(cfg); errs != nil {
		t.Fatalf("consistent custom slot rejected: %v", errs)
	}
}

func TestDownpaymentDefault(t *testing.T) {
	cfg := validConfig()
	if cfg.Downpayment() != DefaultDownpaymentPercent {
		t.Fatalf("unset downpayment = %d, want %d", cfg.Downpayment(), DefaultDownpaymentPercent)
	}
	cfg.DownpaymentPercent = intp(30)
	if cfg.Downpayment() != 30 {
		t.Fatalf("set downpayment = %d, want 30", cfg.Downpayment())
	}
}

func TestSetPriceOverwritesTriple(t *testing.T) {
	cfg := validConfig()
	cfg.SetPrice(PricingEntry{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 3200})
	if len(cfg.Pricing) != 1 || cfg.Pricing[0].Price != 3200 {
		t.Fatalf("same triple must overwrite: %+v", cfg.Pricing)
	}
	cfg.SetPrice(PricingEntry{BookingType: BookingTypeDaytour, DayType: DayTypeWeekend, GuestTierID: "t1", Price: 3500})
	if len(cfg.Pricing) != 2 {
		t.Fatalf("new triple must append: %+v", cfg.Pricing)
	}
}

func TestPruneDropsOrphans(t *testing.T) {
	cfg := &ResortPricingConfig{
		EnabledBookingTypes: []BookingType{BookingTypeDaytour},
		EnabledTimeSlots:    []string{"daytour_8am_5pm", "overnight_7pm_6am", "custom_gone"},
		CustomTimeSlots: []TimeSlot{
			{ID: "custom_day", BookingType: BookingTypeDaytour, StartTime: "10:00", EndTime: "16:00", Hours: 6},
			{ID: "custom_night", BookingType: BookingTypeOvernight, StartTime: "21:00", EndTime: "08:00", CrossesMidnight: true, Hours: 11},
		},
		GuestTiers: []GuestTier{{ID: "t1", MinGuests: 1, MaxGuests: nil}},
		Pricing: []PricingEntry{
			{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 3000},
			{BookingType: BookingTypeOvernight, DayType: DayTypeWeekday, GuestTierID: "t1", Price: 5000},
			{BookingType: BookingTypeDaytour, DayType: DayTypeWeekday, GuestTierID: "removed", Price: 2000},
		},
	}

	cfg.Prune()

	if len(cfg.CustomTimeSlots) != 1 || cfg.CustomTimeSlots[0].ID != "custom_day" {
		t.Fatalf("custom slot of disabled type must be pruned: %+v", cfg.CustomTimeSlots)
	}
	if len(cfg.EnabledTimeSlots) != 1 || cfg.EnabledTimeSlots[0] != "daytour_8am_5pm" {
		t.Fatalf("disabled-type and unknown slot ids must be pruned: %+v", cfg.EnabledTimeSlots)
	}
	if len(cfg.Pricing) != 1 || cfg.Pricing[0].Price != 3000 {
		t.Fatalf("orphaned pricing entries must be pruned: %+v", cfg.Pricing)
	}
}
