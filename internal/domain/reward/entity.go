package reward

import (
	"time"

	"github.com/shopspring/decimal"
)

type RewardStatus string

const (
	StatusApproved RewardStatus = "APPROVED"
	StatusRevoked  RewardStatus = "REVOKED"
)

// RewardRecord is one administratively granted reward day. The day counts
// as fully worked and may carry a bonus amount. At most one reward exists
// per (employee, date).
type RewardRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Reason     string
	GrantedBy  string

	BonusAmount decimal.Decimal
	Status      RewardStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the per-employee monthly reward aggregate.
type Summary struct {
	EmployeeID string     `json:"employee_id"`
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`

	RewardDays int             `json:"reward_days"`
	TotalBonus decimal.Decimal `json:"total_bonus"`
}
