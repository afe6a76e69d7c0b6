package pricing

import "testing"

func TestHasConflictSameType(t *testing.T) {
	existing := []ExistingBooking{{Date: "2025-06-07", TimeSlotID: "overnight_7pm_6am"}}
	req := SlotRequest{Date: "2025-06-07", TimeSlotID: "overnight_8pm_7am"}

	if !HasConflict(req, existing, nil) {
		t.Fatal("two overnight bookings on one date must conflict")
	}
}

func TestHasConflictDaytourOvernightCoexist(t *testing.T) {
	existing := []ExistingBooking{{Date: "2025-06-07", TimeSlotID: "overnight_7pm_6am"}}
	req := SlotRequest{Date: "2025-06-07", TimeSlotID: "daytour_8am_5pm"}

	if HasConflict(req, existing, nil) {
		t.Fatal("daytour and overnight on one date must coexist")
	}
	// and symmetrically
	existing = []ExistingBooking{{Date: "2025-06-07", TimeSlotID: "daytour_8am_5pm"}}
	req = SlotRequest{Date: "2025-06-07", TimeSlotID: "overnight_7pm_6am"}
	if HasConflict(req, existing, nil) {
		t.Fatal("overnight after daytour must coexist")
	}
}

func TestHasConflict22HrsBlocksEverything(t *testing.T) {
	existing := []ExistingBooking{{Date: "2025-06-07", TimeSlotID: "22hrs_8am_6am"}}

	for _, id := range []string{"daytour_8am_5pm", "overnight_7pm_6am", "22hrs_2pm_12nn"} {
		if !HasConflict(SlotRequest{Date: "2025-06-07", TimeSlotID: id}, existing, nil) {
			t.Errorf("slot %s must conflict with an existing 22hrs booking", id)
		}
	}

	// new 22hrs request against anything already there
	existing = []ExistingBooking{{Date: "2025-06-07", TimeSlotID: "daytour_8am_5pm"}}
	if !HasConflict(SlotRequest{Date: "2025-06-07", TimeSlotID: "22hrs_8am_6am"}, existing, nil) {
		t.Error("a 22hrs request must conflict with any existing booking")
	}
}

func TestHasConflictDifferentDates(t *testing.T) {
	existing := []ExistingBooking{
		{Date: "2025-06-06", TimeSlotID: "22hrs_8am_6am"},
		{Date: "2025-06-08", TimeSlotID: "daytour_8am_5pm"},
	}
	if HasConflict(SlotRequest{Date: "2025-06-07", TimeSlotID: "daytour_8am_5pm"}, existing, nil) {
		t.Fatal("bookings on other dates never conflict")
	}
}

func TestHasConflictUnknownSlotsSkipped(t *testing.T) {
	existing := []ExistingBooking{
		{Date: "2025-06-07", TimeSlotID: "deleted_custom_slot"},
		{Date: "2025-06-07", TimeSlotID: "daytour_8am_5pm"},
	}
	// unknown existing slot contributes nothing; daytour vs overnight is fine
	if HasConflict(SlotRequest{Date: "2025-06-07", TimeSlotID: "overnight_7pm_6am"}, existing, nil) {
		t.Fatal("unknown slot ids must be skipped")
	}
	// unknown new slot cannot conflict with anything
	if HasConflict(SlotRequest{Date: "2025-06-07", TimeSlotID: "deleted_custom_slot"}, existing, nil) {
		t.Fatal("unknown requested slot must not conflict")
	}
}

func TestHasConflictCustomSlots(t *testing.T) {
	custom := []TimeSlot{{ID: "custom_night", BookingType: BookingTypeOvernight, StartTime: "21:00", EndTime: "08:00", CrossesMidnight: true, Hours: 11}}
	existing := []ExistingBooking{{Date: "2025-06-07", TimeSlotID: "custom_night"}}

	if !HasConflict(SlotRequest{Date: "2025-06-07", TimeSlotID: "overnight_7pm_6am"}, existing, custom) {
		t.Fatal("custom overnight slot must conflict with catalog overnight")
	}
}
