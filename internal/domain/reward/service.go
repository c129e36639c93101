package reward

import (
	"context"
	"time"
)

type RewardService interface {
	Grant(ctx context.Context, req *GrantRewardRequest) (RewardRecord, error)
	Revoke(ctx context.Context, id string) (RewardRecord, error)
	GetMonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (Summary, error)
}
