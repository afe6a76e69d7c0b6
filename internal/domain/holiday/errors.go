package holiday

import "errors"

var (
	ErrHolidayNotFound = errors.New("holiday not found")
	ErrInvalidDate     = errors.New("invalid holiday date")
)
