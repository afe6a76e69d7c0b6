package holiday

import (
	"time"

	"github.com/google/uuid"
)

// Kind distinguishes regular holidays from special non-working days.
// Both rate as weekend; the split only matters for display.
type Kind string

const (
	KindRegular Kind = "regular"
	KindSpecial Kind = "special"
)

// IsValid returns true if the kind is a known value
func (k Kind) IsValid() bool {
	return k == KindRegular || k == KindSpecial
}

// Holiday is one observed non-working date
type Holiday struct {
	ID        uuid.UUID `db:"id"`
	Date      time.Time `db:"holiday_date"`
	Name      string    `db:"name"`
	Kind      Kind      `db:"kind"`
	CreatedAt time.Time `db:"created_at"`
}

// DateKey returns the date in the YYYY-MM-DD form the day-type
// classifier keys on
func (h *Holiday) DateKey() string {
	return h.Date.Format("2006-01-02")
}
