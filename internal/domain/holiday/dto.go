package holiday

// CreateHolidayRequest adds one date to the holiday list
type CreateHolidayRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Name string `json:"name" validate:"required,min=2,max=120"`
	Kind string `json:"kind" validate:"omitempty,oneof=regular special"`
}

// HolidayResponse is the API shape of one holiday
type HolidayResponse struct {
	ID   string `json:"id"`
	Date string `json:"date"`
	Name string `json:"name"`
	Kind Kind   `json:"kind"`
}

// ToResponse converts an entity to its API shape
func ToResponse(h *Holiday) *HolidayResponse {
	return &HolidayResponse{
		ID:   h.ID.String(),
		Date: h.DateKey(),
		Name: h.Name,
		Kind: h.Kind,
	}
}
