package holiday

// Observed Philippine public holidays, used when the holidays table has
// not been populated yet. Extend yearly; proclamation-dependent dates
// (Eid'l Fitr, Eid'l Adha) follow the official announcements.
type seedEntry struct {
	Date string
	Name string
	Kind Kind
}

var seed = []seedEntry{
	// 2025
	{"2025-01-01", "New Year's Day", KindRegular},
	{"2025-01-29", "Chinese New Year", KindSpecial},
	{"2025-04-01", "Eid'l Fitr", KindRegular},
	{"2025-04-09", "Araw ng Kagitingan", KindRegular},
	{"2025-04-17", "Maundy Thursday", KindRegular},
	{"2025-04-18", "Good Friday", KindRegular},
	{"2025-04-19", "Black Saturday", KindSpecial},
	{"2025-05-01", "Labor Day", KindRegular},
	{"2025-06-06", "Eid'l Adha", KindRegular},
	{"2025-06-12", "Independence Day", KindRegular},
	{"2025-08-21", "Ninoy Aquino Day", KindSpecial},
	{"2025-08-25", "National Heroes Day", KindRegular},
	{"2025-10-31", "All Saints' Day Eve", KindSpecial},
	{"2025-11-01", "All Saints' Day", KindSpecial},
	{"2025-11-30", "Bonifacio Day", KindRegular},
	{"2025-12-08", "Feast of the Immaculate Conception", KindSpecial},
	{"2025-12-24", "Christmas Eve", KindSpecial},
	{"2025-12-25", "Christmas Day", KindRegular},
	{"2025-12-30", "Rizal Day", KindRegular},
	{"2025-12-31", "New Year's Eve", KindSpecial},

	// 2026
	{"2026-01-01", "New Year's Day", KindRegular},
	{"2026-02-17", "Chinese New Year", KindSpecial},
	{"2026-04-02", "Maundy Thursday", KindRegular},
	{"2026-04-03", "Good Friday", KindRegular},
	{"2026-04-04", "Black Saturday", KindSpecial},
	{"2026-04-09", "Araw ng Kagitingan", KindRegular},
	{"2026-05-01", "Labor Day", KindRegular},
	{"2026-06-12", "Independence Day", KindRegular},
	{"2026-08-21", "Ninoy Aquino Day", KindSpecial},
	{"2026-08-31", "National Heroes Day", KindRegular},
	{"2026-11-01", "All Saints' Day", KindSpecial},
	{"2026-11-30", "Bonifacio Day", KindRegular},
	{"2026-12-24", "Christmas Eve", KindSpecial},
	{"2026-12-25", "Christmas Day", KindRegular},
	{"2026-12-30", "Rizal Day", KindRegular},
	{"2026-12-31", "New Year's Eve", KindSpecial},
}

// SeedDates returns the static holiday dates in YYYY-MM-DD form
func SeedDates() []string {
	dates := make([]string, len(seed))
	for i, s := range seed {
		dates[i] = s.Date
	}
	return dates
}
