package pricing

import "testing"

func TestCatalogSlotHoursConsistent(t *testing.T) {
	for _, slot := range Catalog() {
		hours, ok := SlotHours(slot.StartTime, slot.EndTime, slot.CrossesMidnight)
		if !ok {
			t.Fatalf("slot %s: failed to parse times %s-%s", slot.ID, slot.StartTime, slot.EndTime)
		}
		if hours != slot.Hours {
			t.Errorf("slot %s: declared %v hours, recomputed %v", slot.ID, slot.Hours, hours)
		}
	}
}

func TestTimeSlotsForTypeOrderAndFilter(t *testing.T) {
	slots := TimeSlotsForType(BookingTypeOvernight)
	if len(slots) != 2 {
		t.Fatalf("expected 2 overnight slots, got %d", len(slots))
	}
	if slots[0].ID != "overnight_7pm_6am" || slots[1].ID != "overnight_8pm_7am" {
		t.Fatalf("unexpected catalog order: %s, %s", slots[0].ID, slots[1].ID)
	}
	for _, slot := range slots {
		if slot.BookingType != BookingTypeOvernight {
			t.Errorf("slot %s has type %s", slot.ID, slot.BookingType)
		}
	}
}

func TestTimeSlotByID(t *testing.T) {
	if slot := TimeSlotByID("overnight_7pm_6am", nil); slot == nil || slot.Hours != 11 {
		t.Fatalf("expected catalog slot with 11 hours, got %+v", slot)
	}

	custom := []TimeSlot{{ID: "custom_1", BookingType: BookingTypeDaytour, StartTime: "10:00", EndTime: "16:00", Hours: 6}}
	if slot := TimeSlotByID("custom_1", custom); slot == nil || slot.Hours != 6 {
		t.Fatalf("expected custom slot, got %+v", slot)
	}

	if slot := TimeSlotByID("nope", custom); slot != nil {
		t.Fatalf("expected nil for unknown id, got %+v", slot)
	}
}

func TestSlotHours(t *testing.T) {
	tests := []struct {
		start, end string
		crosses    bool
		want       float64
	}{
		{"08:00", "17:00", false, 9},
		{"19:00", "06:00", true, 11},
		{"08:00", "06:00", true, 22},
		{"14:00", "12:00", true, 22},
		{"09:30", "18:00", false, 8.5},
	}
	for _, tt := range tests {
		got, ok := SlotHours(tt.start, tt.end, tt.crosses)
		if !ok {
			t.Fatalf("SlotHours(%s, %s, %v): parse failed", tt.start, tt.end, tt.crosses)
		}
		if got != tt.want {
			t.Errorf("SlotHours(%s, %s, %v) = %v, want %v", tt.start, tt.end, tt.crosses, got, tt.want)
		}
	}
}

func TestParseClockRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "8", "25:00", "08:61", "ab:cd", "08-00"} {
		if _, ok := ParseClock(s); ok {
			t.Errorf("ParseClock(%q) accepted malformed input", s)
		}
	}
}
