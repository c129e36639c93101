package leave

import (
	"context"
	"time"
)

// LeaveRepository - interface for the leave_requests table
type LeaveRepository interface {
	Create(ctx context.Context, record LeaveRecord) (LeaveRecord, error)
	GetByID(ctx context.Context, id string) (LeaveRecord, error)

	// Update persists status transitions and approver metadata.
	Update(ctx context.Context, record LeaveRecord) (LeaveRecord, error)

	// GetOverlapping returns the employee's PENDING and APPROVED requests
	// whose [start_date, end_date] interval intersects [start, end].
	GetOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRecord, error)

	// GetApprovedInRange returns APPROVED requests intersecting [start, end].
	GetApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]LeaveRecord, error)

	// GetByYearAndStatus returns requests whose start date falls in the year.
	GetByYearAndStatus(ctx context.Context, employeeID string, year int, status LeaveStatus) ([]LeaveRecord, error)
}
