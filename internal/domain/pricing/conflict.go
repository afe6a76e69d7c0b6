package pricing

// SlotRequest is a proposed (date, time slot) pair. Date is the
// check-in calendar day in "YYYY-MM-DD" form.
type SlotRequest struct {
	Date       string
	TimeSlotID string
}

// ExistingBooking is the minimal view of a persisted booking the
// conflict detector needs
type ExistingBooking struct {
	Date       string
	TimeSlotID string
}

// HasConflict decides whether a proposed slot can coexist with the
// existing bookings. Only same-date bookings are considered. Two
// bookings of the same type conflict; a 22-hour booking occupies the
// whole day and conflicts with everything; a daytour and an overnight
// coexist. Unknown slot ids contribute nothing.
func HasConflict(req SlotRequest, existing []ExistingBooking, custom []TimeSlot) bool {
	newSlot := TimeSlotByID(req.TimeSlotID, custom)
	if newSlot == nil {
		return false
	}

	for _, b := range existing {
		if b.Date != req.Date {
			continue
		}
		slot := TimeSlotByID(b.TimeSlotID, custom)
		if slot == nil {
			continue
		}
		if slot.BookingType == newSlot.BookingType {
			return true
		}
		if slot.BookingType == BookingType22Hrs || newSlot.BookingType == BookingType22Hrs {
			return true
		}
	}
	return false
}
