package attendance

import (
	"context"
	"time"
)

// AttendanceService aggregates raw sessions into monthly calculations.
type AttendanceService interface {
	CalculateMonth(ctx context.Context, employeeID string, year int, month time.Month) (Calculation, error)
}

// SessionMaterializer turns leave/reward lifecycle events into synthetic
// attendance sessions. Keeping the cross-aggregate write behind an explicit
// event interface makes the causal dependency between the leave/reward
// domains and attendance visible.
type SessionMaterializer interface {
	LeaveApproved(ctx context.Context, event LeaveApprovedEvent) error
	RewardGranted(ctx context.Context, event RewardGrantedEvent) error
	RewardRevoked(ctx context.Context, event RewardRevokedEvent) error
}
