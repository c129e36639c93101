package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalaryBreakdown is the final per-employee monthly payroll figure set.
// Every monetary field is rounded to 2 decimal places with half-up
// rounding at the step that produced it; persisted reports must reproduce
// these figures bit for bit.
type SalaryBreakdown struct {
	EmployeeID string     `json:"employee_id"`
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`

	BaseSalary decimal.Decimal `json:"base_salary"`
	DailyRate  decimal.Decimal `json:"daily_rate"`
	HourlyRate decimal.Decimal `json:"hourly_rate"`

	WorkedDaysPay decimal.Decimal `json:"worked_days_pay"`
	OvertimePay   decimal.Decimal `json:"overtime_pay"`
	RewardBonus   decimal.Decimal `json:"reward_bonus"`

	// AbsenceDeduction includes the partial-day deduction on top of the
	// full-absence one, while PartialDayDeduction repeats the partial part
	// and UnpaidLeaveDeduction stays separate. Report consumers depend on
	// this exact shape.
	AbsenceDeduction     decimal.Decimal `json:"absence_deduction"`
	PartialDayDeduction  decimal.Decimal `json:"partial_day_deduction"`
	UnpaidLeaveDeduction decimal.Decimal `json:"unpaid_leave_deduction"`
	TotalDeductions      decimal.Decimal `json:"total_deductions"`

	PaidLeaveDays   float64 `json:"paid_leave_days"`
	UnpaidLeaveDays float64 `json:"unpaid_leave_days"`
	SickLeaveDays   float64 `json:"sick_leave_days"`
	OtherLeaveDays  float64 `json:"other_leave_days"`
	RewardDays      int     `json:"reward_days"`

	GrossSalary decimal.Decimal `json:"gross_salary"`
	NetSalary   decimal.Decimal `json:"net_salary"`

	// NegativeNet is set when deductions exceed gross salary.
	NegativeNet bool `json:"negative_net,omitempty"`
}

// MonthlySalaryResult couples a breakdown with employee metadata for the
// single-employee engine operations.
type MonthlySalaryResult struct {
	EmployeeID   string          `json:"employee_id"`
	FullName     string          `json:"full_name"`
	ContractType string          `json:"contract_type"`
	Breakdown    SalaryBreakdown `json:"breakdown"`
}

// EmployeeFailure records one employee whose computation failed during a
// batch run.
type EmployeeFailure struct {
	EmployeeID string `json:"employee_id"`
	Error      string `json:"error"`
}

// BatchResult is the outcome of a month-wide payroll run. A failure for
// one employee never aborts the batch.
type BatchResult struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`

	Results  []MonthlySalaryResult `json:"results"`
	Failures []EmployeeFailure     `json:"failures,omitempty"`
}
