package reward

import (
	"context"
	"time"
)

// RewardRepository - interface for the reward_days table
type RewardRepository interface {
	Create(ctx context.Context, record RewardRecord) (RewardRecord, error)
	GetByID(ctx context.Context, id string) (RewardRecord, error)

	// GetByEmployeeAndDate returns the reward for the exact (employee, date)
	// pair regardless of status, or ErrRewardNotFound.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (RewardRecord, error)

	// GetApprovedInRange returns APPROVED rewards dated in [start, end].
	GetApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]RewardRecord, error)

	Update(ctx context.Context, record RewardRecord) (RewardRecord, error)
}
