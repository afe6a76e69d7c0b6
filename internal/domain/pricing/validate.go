package pricing

import "fmt"

// ValidateConfig checks a full pricing configuration at the save
// boundary. It returns a map of field-scoped messages so the owner
// form can highlight exactly which input is invalid; nil means valid.
// Cross-field pricing completeness is deliberately not checked here —
// that is an advisory (see Completeness), not a rejection.
func ValidateConfig(cfg *ResortPricingConfig) map[string]string {
	errs := make(map[string]string)

	if cfg == nil {
		errs["config"] = "Pricing configuration is required"
		return errs
	}

	if len(cfg.EnabledBookingTypes) == 0 {
		errs["enabled_booking_types"] = "At least one booking type must be enabled"
	}
	for i, bt := range cfg.EnabledBookingTypes {
		if !bt.IsValid() {
			errs[fmt.Sprintf("enabled_booking_types[%d]", i)] = fmt.Sprintf("Unknown booking type %q", bt)
		}
	}

	if len(cfg.EnabledTimeSlots) == 0 {
		errs["enabled_time_slots"] = "At least one time slot must be enabled"
	}
	for i, id := range cfg.EnabledTimeSlots {
		field := fmt.Sprintf("enabled_time_slots[%d]", i)
		slot := TimeSlotByID(id, cfg.CustomTimeSlots)
		if slot == nil {
			errs[field] = fmt.Sprintf("Unknown time slot %q", id)
			continue
		}
		if !cfg.TypeEnabled(slot.BookingType) {
			errs[field] = fmt.Sprintf("Time slot %q belongs to disabled booking type %q", id, slot.BookingType)
		}
	}

	for i, slot := range cfg.CustomTimeSlots {
		field := fmt.Sprintf("custom_time_slots[%d]", i)
		if slot.ID == "" {
			errs[field+".id"] = "Custom time slot id is required"
		}
		if !slot.BookingType.IsValid() {
			errs[field+".booking_type"] = fmt.Sprintf("Unknown booking type %q", slot.BookingType)
		}
		hours, ok := SlotHours(slot.StartTime, slot.EndTime, slot.CrossesMidnight)
		if !ok {
			errs[field+".start_time"] = "Times must be in HH:MM format"
			continue
		}
		if hours != slot.Hours {
			errs[field+".hours"] = fmt.Sprintf("Duration %.2f does not match start/end times (expected %.2f)", slot.Hours, hours)
		}
		if start, _ := ParseClock(slot.StartTime); !slot.CrossesMidnight {
			if end, _ := ParseClock(slot.EndTime); end < start {
				errs[field+".crosses_midnight"] = "End before start requires the crosses-midnight flag"
			}
		}
	}

	if len(cfg.GuestTiers) == 0 {
		errs["guest_tiers"] = "At least one guest tier is required"
	}
	for i, tier := range cfg.GuestTiers {
		field := fmt.Sprintf("guest_tiers[%d]", i)
		if tier.ID == "" {
			errs[field+".id"] = "Guest tier id is required"
		}
		if tier.MinGuests < 1 {
			errs[field+".min_guests"] = "Minimum guests must be at least 1"
		}
		if tier.MaxGuests != nil && *tier.MaxGuests < tier.MinGuests {
			errs[field+".max_guests"] = "Maximum guests must not be below the minimum"
		}
	}

	tierIDs := make(map[string]bool, len(cfg.GuestTiers))
	for _, t := range cfg.GuestTiers {
		tierIDs[t.ID] = true
	}

	for i, e := range cfg.Pricing {
		field := fmt.Sprintf("pricing[%d]", i)
		if !e.BookingType.IsValid() {
			errs[field+".booking_type"] = fmt.Sprintf("Unknown booking type %q", e.BookingType)
		} else if !cfg.TypeEnabled(e.BookingType) {
			errs[field+".booking_type"] = fmt.Sprintf("Booking type %q is not enabled", e.BookingType)
		}
		if !e.DayType.IsValid() {
			errs[field+".day_type"] = fmt.Sprintf("Unknown day type %q", e.DayType)
		}
		if e.GuestTierID == "" {
			errs[field+".guest_tier_id"] = "Guest tier id is required"
		} else if !tierIDs[e.GuestTierID] {
			errs[field+".guest_tier_id"] = fmt.Sprintf("Unknown guest tier %q", e.GuestTierID)
		}
		if e.Price < 0 {
			errs[field+".price"] = "Price must be zero or greater"
		}
	}

	if cfg.DownpaymentPercent != nil {
		if p := *cfg.DownpaymentPercent; p < 0 || p > 100 {
			errs["downpayment_percent"] = "Downpayment must be between 0 and 100"
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Completeness counts how much of the enabled pricing matrix is filled
// in: one expected cell per (enabled booking type, day type, guest
// tier). This is the "X of Y prices set" advisory shown to owners;
// unpriced cells are allowed and simply quote as unavailable.
type Completeness struct {
	Priced int `json:"priced"`
	Total  int `json:"total"`
}

// ConfigCompleteness computes the advisory counter for a config
func ConfigCompleteness(cfg *ResortPricingConfig) Completeness {
	if cfg == nil {
		return Completeness{}
	}

	priced := make(map[[3]string]bool, len(cfg.Pricing))
	for _, e := range cfg.Pricing {
		priced[[3]string{string(e.BookingType), string(e.DayType), e.GuestTierID}] = true
	}

	var c Completeness
	for _, bt := range cfg.EnabledBookingTypes {
		for _, dt := range []DayType{DayTypeWeekday, DayTypeWeekend} {
			for _, tier := range cfg.GuestTiers {
				c.Total++
				if priced[[3]string{string(bt), string(dt), tier.ID}] {
					c.Priced++
				}
			}
		}
	}
	return c
}
