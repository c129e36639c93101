package leave

import (
	"time"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
)

type LeaveType string

const (
	TypePaid      LeaveType = "PAID"
	TypeUnpaid    LeaveType = "UNPAID"
	TypeMaternite LeaveType = "MATERNITE"
	TypeMaladie   LeaveType = "MALADIE"
	TypePreavis   LeaveType = "PREAVIS"
	TypeReward    LeaveType = "REWARD"
)

// Paid reports whether days of this type are paid in full. Only unpaid
// leave produces a salary deduction.
func (t LeaveType) Paid() bool {
	return t != TypeUnpaid
}

// CountsAgainstAllowance reports whether the type consumes the annual
// paid-leave allowance.
func (t LeaveType) CountsAgainstAllowance() bool {
	return t == TypePaid
}

type LeaveStatus string

const (
	StatusPending  LeaveStatus = "PENDING"
	StatusApproved LeaveStatus = "APPROVED"
	// StatusRejected is stored as REFUSE. Existing rows and report consumers
	// use that string, so it stays.
	StatusRejected LeaveStatus = "REFUSE"
)

// LeaveRecord is one leave request. Created PENDING, then approved or
// rejected by an approver. Approval triggers synthetic attendance sessions
// through the materializer; rejection has no session side effect.
type LeaveRecord struct {
	ID         string
	EmployeeID string
	Type       LeaveType

	StartDate time.Time
	EndDate   time.Time

	HalfDay bool
	Slot    *attendance.SessionSlot

	// DurationDays is 0.5 for a half-day request, otherwise the count of
	// work days in [StartDate, EndDate].
	DurationDays float64

	ImpactsSalary bool
	Status        LeaveStatus
	Reason        string
	RejectReason  *string

	ApprovedBy *string
	ApprovedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the per-employee monthly leave aggregate, clipped to the
// month window.
type Summary struct {
	EmployeeID string     `json:"employee_id"`
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`

	PaidDays      float64 `json:"paid_days"`
	UnpaidDays    float64 `json:"unpaid_days"`
	SickDays      float64 `json:"sick_days"`
	MaternityDays float64 `json:"maternity_days"`
	OtherDays     float64 `json:"other_days"`

	TotalDays float64 `json:"total_days"`

	// SalaryDeductionDays equals UnpaidDays.
	SalaryDeductionDays float64 `json:"salary_deduction_days"`
}

// Balance is the per-employee annual paid-leave balance.
type Balance struct {
	EmployeeID string `json:"employee_id"`
	Year       int    `json:"year"`

	AnnualAllowance float64 `json:"annual_allowance"`
	Used            float64 `json:"used"`
	Pending         float64 `json:"pending"`
	Remaining       float64 `json:"remaining"`

	ByType map[LeaveType]float64 `json:"by_type"`
}
