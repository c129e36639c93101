package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveNotFound         = errors.New("leave request not found")
	ErrOverlappingLeave      = errors.New("an overlapping leave request already exists")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been processed")
	ErrNoWorkingDays         = errors.New("no working day in range")
)

// InsufficientBalanceError is returned when a request exceeds the
// remaining annual allowance. Both figures are carried for display.
type InsufficientBalanceError struct {
	Remaining float64
	Requested float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient leave balance (remaining: %g, requested: %g)", e.Remaining, e.Requested)
}
