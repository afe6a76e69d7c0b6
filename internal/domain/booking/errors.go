package booking

import "errors"

var (
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPricingUnavailable = errors.New("no price is configured for this combination")
	ErrSlotConflict       = errors.New("the slot conflicts with an existing booking")
	ErrSlotNotBookable    = errors.New("the time slot is not bookable for this resort")
	ErrSlotTypeMismatch   = errors.New("the time slot does not belong to the requested booking type")
	ErrNotParticipant     = errors.New("booking belongs to another guest")
	ErrInvalidTransition  = errors.New("booking status cannot change this way")
)
