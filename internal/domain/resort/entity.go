package resort

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/resortify/resortify-api/internal/domain/pricing"
)

// ModerationStatus represents resort moderation status
type ModerationStatus string

const (
	ModerationPending  ModerationStatus = "pending"
	ModerationApproved ModerationStatus = "approved"
	ModerationRejected ModerationStatus = "rejected"
)

// Resort represents one listed property (matches resorts table)
type Resort struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	// Owner (FK to users in the external identity store)
	OwnerID uuid.UUID `db:"owner_id"`

	// Basic info
	Name        string         `db:"name"`
	Description string         `db:"description"`
	City        string         `db:"city"`
	Address     sql.NullString `db:"address"`
	Amenities   pq.StringArray `db:"amenities"`
	MaxGuests   sql.NullInt32  `db:"max_guests"`

	// Legacy flat prices — two representations during migration:
	// these scalar columns serve resorts configured before the tiered
	// model; PricingConfig supersedes them once it carries entries.
	Price          sql.NullFloat64 `db:"price"`
	DayTourPrice   sql.NullFloat64 `db:"day_tour_price"`
	NightTourPrice sql.NullFloat64 `db:"night_tour_price"`
	OvernightPrice sql.NullFloat64 `db:"overnight_price"`

	// Structured pricing configuration (JSONB)
	PricingConfig ConfigColumn `db:"pricing_config"`

	// Moderation
	ModerationStatus ModerationStatus `db:"moderation_status"`
	RejectionReason  sql.NullString   `db:"rejection_reason"`

	IsActive bool `db:"is_active"`
}

// IsApproved returns true if the resort passed moderation
func (r *Resort) IsApproved() bool {
	return r.ModerationStatus == ModerationApproved
}

// CanBeEditedBy checks if user can edit this resort
func (r *Resort) CanBeEditedBy(userID uuid.UUID) bool {
	return r.OwnerID == userID
}

// LegacyPrices returns the flat price columns in the form the pricing
// core consumes
func (r *Resort) LegacyPrices() pricing.LegacyPrices {
	lp := pricing.LegacyPrices{}
	if r.Price.Valid {
		v := r.Price.Float64
		lp.Price = &v
	}
	if r.DayTourPrice.Valid {
		v := r.DayTourPrice.Float64
		lp.DayTourPrice = &v
	}
	if r.NightTourPrice.Valid {
		v := r.NightTourPrice.Float64
		lp.NightTourPrice = &v
	}
	if r.OvernightPrice.Valid {
		v := r.OvernightPrice.Float64
		lp.OvernightPrice = &v
	}
	return lp
}

// ConfigColumn wraps the pricing config for JSONB storage. A nil
// Config round-trips as SQL NULL, meaning the resort was never
// configured for tiered pricing.
type ConfigColumn struct {
	Config *pricing.ResortPricingConfig
}

// Value implements driver.Valuer
func (c ConfigColumn) Value() (driver.Value, error) {
	if c.Config == nil {
		return nil, nil
	}
	return json.Marshal(c.Config)
}

// Scan implements sql.Scanner
func (c *ConfigColumn) Scan(src interface{}) error {
	if src == nil {
		c.Config = nil
		return nil
	}
	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("pricing_config: unsupported scan type %T", src)
	}
	cfg := &pricing.ResortPricingConfig{}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return err
	}
	c.Config = cfg
	return nil
}
