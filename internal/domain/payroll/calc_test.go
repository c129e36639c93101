package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/domain/leave"
	"github.com/chraietrayen/PFE/internal/domain/reward"
)

func assertMoney(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"%s: expected %s, got %s", field, expected, actual.String())
}

func terms(baseSalary string) employee.EmploymentTerms {
	return employee.EmploymentTerms{
		BaseSalary:   decimal.RequireFromString(baseSalary),
		HourlyRate:   decimal.Zero,
		ContractType: employee.ContractCDI,
	}
}

func TestComputeSalaryRoundingStability(t *testing.T) {
	// September 2026 has 22 work days: 1000/22 displays as 45.45 but a
	// two-day deduction must round the product, giving 90.91 and not 90.90.
	att := attendance.Calculation{
		EmployeeID: "emp-1",
		AbsentDays: 2,
	}

	b := ComputeSalary(terms("1000"), att, leave.Summary{}, reward.Summary{}, calendar.DefaultPolicy(), 2026, time.September)

	assertMoney(t, "45.45", b.DailyRate, "daily rate")
	assertMoney(t, "90.91", b.AbsenceDeduction, "absence deduction")
	assertMoney(t, "909.09", b.NetSalary, "net salary")
}

func TestComputeSalaryEndToEnd(t *testing.T) {
	// February 2026 has 20 work days. 18 full days, 1 half day, 1 absent.
	att := attendance.Calculation{
		EmployeeID:       "emp-1",
		ExpectedWorkDays: 20,
		FullDays:         18,
		PartialDays:      1,
		AbsentDays:       1,
		TotalWorkedDays:  18.5,
	}

	b := ComputeSalary(terms("1500"), att, leave.Summary{}, reward.Summary{}, calendar.DefaultPolicy(), 2026, time.February)

	assertMoney(t, "75.00", b.DailyRate, "daily rate")
	assertMoney(t, "1500.00", b.WorkedDaysPay, "worked days pay")
	assertMoney(t, "112.50", b.AbsenceDeduction, "absence deduction")
	assertMoney(t, "37.50", b.PartialDayDeduction, "partial day deduction")
	assertMoney(t, "112.50", b.TotalDeductions, "total deductions")
	assertMoney(t, "1500.00", b.GrossSalary, "gross salary")
	assertMoney(t, "1387.50", b.NetSalary, "net salary")
	assert.False(t, b.NegativeNet)
}

func TestComputeSalaryWithReward(t *testing.T) {
	att := attendance.Calculation{
		EmployeeID:  "emp-1",
		FullDays:    18,
		PartialDays: 1,
		AbsentDays:  1,
	}
	rewards := reward.Summary{
		RewardDays: 1,
		TotalBonus: decimal.RequireFromString("50"),
	}

	b := ComputeSalary(terms("1500"), att, leave.Summary{}, rewards, calendar.DefaultPolicy(), 2026, time.February)

	assertMoney(t, "50.00", b.RewardBonus, "reward bonus")
	assertMoney(t, "1550.00", b.GrossSalary, "gross salary")
	assertMoney(t, "1437.50", b.NetSalary, "net salary")
	assert.Equal(t, 1, b.RewardDays)
}

func TestComputeSalaryDeductionAsymmetry(t *testing.T) {
	// The absence figure folds the partial-day deduction in, while unpaid
	// leave is reported on its own. Both feed total deductions once.
	att := attendance.Calculation{
		EmployeeID:  "emp-1",
		AbsentDays:  1,
		PartialDays: 1,
	}
	leaves := leave.Summary{
		UnpaidDays:          2,
		SalaryDeductionDays: 2,
	}

	b := ComputeSalary(terms("1500"), att, leaves, reward.Summary{}, calendar.DefaultPolicy(), 2026, time.February)

	assertMoney(t, "112.50", b.AbsenceDeduction, "absence deduction")
	assertMoney(t, "37.50", b.PartialDayDeduction, "partial day deduction")
	assertMoney(t, "150.00", b.UnpaidLeaveDeduction, "unpaid leave deduction")
	assertMoney(t, "262.50", b.TotalDeductions, "total deductions")
	assertMoney(t, "1237.50", b.NetSalary, "net salary")
	assert.Equal(t, 2.0, b.UnpaidLeaveDays)
}

func TestComputeSalaryOvertime(t *testing.T) {
	att := attendance.Calculation{
		EmployeeID:    "emp-1",
		FullDays:      20,
		OvertimeHours: 2,
	}

	b := ComputeSalary(terms("1500"), att, leave.Summary{}, reward.Summary{}, calendar.DefaultPolicy(), 2026, time.February)

	// 1500/20 = 75/day, 75/8 = 9.375/hour, 2h * 9.375 * 1.25 = 23.4375.
	assertMoney(t, "9.38", b.HourlyRate, "hourly rate")
	assertMoney(t, "23.44", b.OvertimePay, "overtime pay")
	assertMoney(t, "1523.44", b.GrossSalary, "gross salary")
}

func TestComputeSalaryExplicitHourlyRate(t *testing.T) {
	explicitTerms := employee.EmploymentTerms{
		BaseSalary:   decimal.RequireFromString("1500"),
		HourlyRate:   decimal.RequireFromString("12"),
		ContractType: employee.ContractCDD,
	}
	att := attendance.Calculation{
		EmployeeID:    "emp-1",
		OvertimeHours: 2,
	}

	b := ComputeSalary(explicitTerms, att, leave.Summary{}, reward.Summary{}, calendar.DefaultPolicy(), 2026, time.February)

	assertMoney(t, "12.00", b.HourlyRate, "hourly rate")
	assertMoney(t, "30.00", b.OvertimePay, "overtime pay")
}

func TestComputeSalaryNegativeNetFlagged(t *testing.T) {
	att := attendance.Calculation{
		EmployeeID: "emp-1",
		AbsentDays: 25,
	}

	b := ComputeSalary(terms("100"), att, leave.Summary{}, reward.Summary{}, calendar.DefaultPolicy(), 2026, time.February)

	assert.True(t, b.NetSalary.IsNegative())
	assert.True(t, b.NegativeNet)
	assert.True(t, b.TotalDeductions.IsPositive())
}
