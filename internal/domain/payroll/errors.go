package payroll

import (
	"errors"
	"fmt"
)

var ErrReportNotFound = errors.New("salary report not found")

// ComputationError wraps an unexpected aggregation failure, keeping the
// offending record identified for manual review.
type ComputationError struct {
	EmployeeID string
	RecordID   string
	Err        error
}

func (e *ComputationError) Error() string {
	if e.RecordID != "" {
		return fmt.Sprintf("payroll computation failed for employee %s (record %s): %v", e.EmployeeID, e.RecordID, e.Err)
	}
	return fmt.Sprintf("payroll computation failed for employee %s: %v", e.EmployeeID, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}
