package resort

import (
	"github.com/google/uuid"

	"github.com/resortify/resortify-api/internal/domain/pricing"
)

// CreateResortRequest represents resort creation request from an owner
type CreateResortRequest struct {
	Name        string   `json:"name" validate:"required,min=3,max=160"`
	Description string   `json:"description" validate:"max=4000"`
	City        string   `json:"city" validate:"required,min=2,max=120"`
	Address     string   `json:"address" validate:"max=300"`
	Amenities   []string `json:"amenities" validate:"max=50,dive,min=1,max=80"`
	MaxGuests   int      `json:"max_guests" validate:"omitempty,min=1,max=500"`

	// Legacy flat prices, optional
	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	DayTourPrice   *float64 `json:"day_tour_price" validate:"omitempty,gte=0"`
	NightTourPrice *float64 `json:"night_tour_price" validate:"omitempty,gte=0"`
	OvernightPrice *float64 `json:"overnight_price" validate:"omitempty,gte=0"`
}

// UpdateResortRequest represents a partial resort update
type UpdateResortRequest struct {
	Name        *string  `json:"name" validate:"omitempty,min=3,max=160"`
	Description *string  `json:"description" validate:"omitempty,max=4000"`
	City        *string  `json:"city" validate:"omitempty,min=2,max=120"`
	Address     *string  `json:"address" validate:"omitempty,max=300"`
	Amenities   []string `json:"amenities" validate:"omitempty,max=50,dive,min=1,max=80"`
	MaxGuests   *int     `json:"max_guests" validate:"omitempty,min=1,max=500"`

	Price          *float64 `json:"price" validate:"omitempty,gte=0"`
	DayTourPrice   *float64 `json:"day_tour_price" validate:"omitempty,gte=0"`
	NightTourPrice *float64 `json:"night_tour_price" validate:"omitempty,gte=0"`
	OvernightPrice *float64 `json:"overnight_price" validate:"omitempty,gte=0"`
}

// ModerateRequest approves or rejects a pending resort
type ModerateRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// SaveConfigResponse is returned after a pricing config save: the
// stored config plus the advisory completeness counter and any tier
// overlap warnings. Warnings never block the save.
type SaveConfigResponse struct {
	Config       *pricing.ResortPricingConfig `json:"config"`
	Completeness pricing.Completeness         `json:"completeness"`
	Warnings     []string                     `json:"warnings,omitempty"`
}

// ResortResponse represents resort information
type ResortResponse struct {
	ID               uuid.UUID        `json:"id"`
	OwnerID          uuid.UUID        `json:"owner_id"`
	Name             string           `json:"name"`
	Description      string           `json:"description"`
	City             string           `json:"city"`
	Address          string           `json:"address,omitempty"`
	Amenities        []string         `json:"amenities"`
	MaxGuests        int              `json:"max_guests,omitempty"`
	Price            *float64         `json:"price,omitempty"`
	DayTourPrice     *float64         `json:"day_tour_price,omitempty"`
	NightTourPrice   *float64         `json:"night_tour_price,omitempty"`
	OvernightPrice   *float64         `json:"overnight_price,omitempty"`
	HasTieredPricing bool             `json:"has_tiered_pricing"`
	ModerationStatus ModerationStatus `json:"moderation_status"`
	IsActive         bool             `json:"is_active"`
}

// ToResponse converts an entity to its API shape
func ToResponse(r *Resort) *ResortResponse {
	resp := &ResortResponse{
		ID:               r.ID,
		OwnerID:          r.OwnerID,
		Name:             r.Name,
		Description:      r.Description,
		City:             r.City,
		Amenities:        r.Amenities,
		HasTieredPricing: r.PricingConfig.Config.HasStructuredPricing(),
		ModerationStatus: r.ModerationStatus,
		IsActive:         r.IsActive,
	}
	if r.Address.Valid {
		resp.Address = r.Address.String
	}
	if r.MaxGuests.Valid {
		resp.MaxGuests = int(r.MaxGuests.Int32)
	}
	lp := r.LegacyPrices()
	resp.Price = lp.Price
	resp.DayTourPrice = lp.DayTourPrice
	resp.NightTourPrice = lp.NightTourPrice
	resp.OvernightPrice = lp.OvernightPrice
	return resp
}
