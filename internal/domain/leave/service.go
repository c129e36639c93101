package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	CreateRequest(ctx context.Context, req *CreateLeaveRequest) (LeaveRecord, error)
	Approve(ctx context.Context, id, approverID string) (LeaveRecord, error)
	Reject(ctx context.Context, id, reason string) (LeaveRecord, error)
	GetMonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (Summary, error)
	GetBalance(ctx context.Context, employeeID string, year int) (Balance, error)
}
