package attendance

import (
	"context"
	"time"
)

// SessionRepository - interface for the attendance_sessions table
type SessionRepository interface {
	// GetByEmployeeAndRange returns all sessions for the employee whose date
	// falls in the inclusive [start, end] range.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]SessionRecord, error)

	// Upsert inserts the record or replaces the existing one keyed on
	// (employee_id, date, slot).
	Upsert(ctx context.Context, record SessionRecord) (SessionRecord, error)

	// DeleteByStatus removes the employee's sessions on the given date that
	// carry the given status.
	DeleteByStatus(ctx context.Context, employeeID string, date time.Time, status SessionStatus) error
}
