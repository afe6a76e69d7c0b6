package pricing

import (
	"strconv"
	"strings"
)

// Predefined time-slot catalog. These are immutable constants shared by
// every resort; owners enable a subset and may add custom slots on top.
var catalog = []TimeSlot{
	{
		ID:          "daytour_8am_5pm",
		Label:       "Day Tour (8:00 AM - 5:00 PM)",
		StartTime:   "08:00",
		EndTime:     "17:00",
		Hours:       9,
		BookingType: BookingTypeDaytour,
	},
	{
		ID:          "daytour_9am_6pm",
		Label:       "Day Tour (9:00 AM - 6:00 PM)",
		StartTime:   "09:00",
		EndTime:     "18:00",
		Hours:       9,
		BookingType: BookingTypeDaytour,
	},
	{
		ID:              "overnight_7pm_6am",
		Label:           "Overnight (7:00 PM - 6:00 AM)",
		StartTime:       "19:00",
		EndTime:         "06:00",
		CrossesMidnight: true,
		Hours:           11,
		BookingType:     BookingTypeOvernight,
	},
	{
		ID:              "overnight_8pm_7am",
		Label:           "Overnight (8:00 PM - 7:00 AM)",
		StartTime:       "20:00",
		EndTime:         "07:00",
		CrossesMidnight: true,
		Hours:           11,
		BookingType:     BookingTypeOvernight,
	},
	{
		ID:              "22hrs_8am_6am",
		Label:           "22 Hours (8:00 AM - 6:00 AM)",
		StartTime:       "08:00",
		EndTime:         "06:00",
		CrossesMidnight: true,
		Hours:           22,
		BookingType:     BookingType22Hrs,
	},
	{
		ID:              "22hrs_2pm_12nn",
		Label:           "22 Hours (2:00 PM - 12:00 NN)",
		StartTime:       "14:00",
		EndTime:         "12:00",
		CrossesMidnight: true,
		Hours:           22,
		BookingType:     BookingType22Hrs,
	},
}

// Catalog returns a copy of the predefined slots
func Catalog() []TimeSlot {
	out := make([]TimeSlot, len(catalog))
	copy(out, catalog)
	return out
}

// TimeSlotsForType returns catalog slots of the given booking type,
// in catalog order
func TimeSlotsForType(bt BookingType) []TimeSlot {
	var out []TimeSlot
	for _, slot := range catalog {
		if slot.BookingType == bt {
			out = append(out, slot)
		}
	}
	return out
}

// TimeSlotByID looks up a slot in the predefined catalog and then in
// the supplied custom slots. Returns nil when the id is unknown;
// callers skip such entries rather than fail.
func TimeSlotByID(id string, custom []TimeSlot) *TimeSlot {
	for i := range catalog {
		if catalog[i].ID == id {
			slot := catalog[i]
			return &slot
		}
	}
	for i := range custom {
		if custom[i].ID == id {
			slot := custom[i]
			return &slot
		}
	}
	return nil
}

// ParseClock converts an "HH:MM" wall-clock string to decimal hours,
// truncated to minute granularity. Returns false on malformed input.
func ParseClock(s string) (float64, bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, false
	}
	return float64(h) + float64(m)/60, true
}

// SlotHours recomputes a slot's duration from its start/end times and
// midnight-crossing flag: (24 - start) + end when crossing, end - start
// otherwise. Owners editing a custom slot must keep the stored hours in
// sync with this value.
func SlotHours(startTime, endTime string, crossesMidnight bool) (float64, bool) {
	start, ok := ParseClock(startTime)
	if !ok {
		return 0, false
	}
	end, ok := ParseClock(endTime)
	if !ok {
		return 0, false
	}
	if crossesMidnight {
		return (24 - start) + end, true
	}
	return end - start, true
}
