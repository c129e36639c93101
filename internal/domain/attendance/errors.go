package attendance

import "errors"

var (
	ErrInvalidPeriod  = errors.New("month must be between 1 and 12")
	ErrCorruptSession = errors.New("attendance session has check-out before check-in")
)
