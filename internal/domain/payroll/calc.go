package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/domain/leave"
	"github.com/chraietrayen/PFE/internal/domain/reward"
)

var half = decimal.NewFromFloat(0.5)

// ComputeSalary derives the monthly salary breakdown from the three
// aggregates and the employment terms. Pure, no I/O.
//
// The model is "deduct from full pay": the full base salary is owed by
// default and absences subtract from it. Deductions and overtime are
// computed from the unrounded daily and hourly rates so that a multi-day
// deduction rounds once, on the product; the rates themselves are rounded
// only for display. Every monetary output field carries exactly 2 decimal
// places, half-up.
func ComputeSalary(
	terms employee.EmploymentTerms,
	att attendance.Calculation,
	leaves leave.Summary,
	rewards reward.Summary,
	policy *calendar.Policy,
	year int,
	month time.Month,
) SalaryBreakdown {
	workDays := policy.CountWorkDaysInMonth(year, month)

	dailyRate := decimal.Zero
	if workDays > 0 {
		dailyRate = terms.BaseSalary.Div(decimal.NewFromInt(int64(workDays)))
	}

	hourlyRate := terms.HourlyRate
	if !hourlyRate.IsPositive() {
		hourlyRate = dailyRate.Div(decimal.NewFromInt(int64(policy.StandardHoursPerDay)))
	}

	workedDaysPay := terms.BaseSalary.Round(2)

	overtimePay := decimal.NewFromFloat(att.OvertimeHours).
		Mul(hourlyRate).
		Mul(decimal.NewFromFloat(policy.OvertimeMultiplier)).
		Round(2)

	rewardBonus := rewards.TotalBonus.Round(2)

	fullAbsenceDeduction := decimal.NewFromInt(int64(att.AbsentDays)).
		Mul(dailyRate).
		Round(2)

	partialDeduction := decimal.NewFromFloat(att.PartialDays).
		Mul(dailyRate).
		Mul(half).
		Round(2)

	unpaidDeduction := decimal.NewFromFloat(leaves.SalaryDeductionDays).
		Mul(dailyRate).
		Round(2)

	totalDeductions := fullAbsenceDeduction.Add(partialDeduction).Add(unpaidDeduction)
	grossSalary := workedDaysPay.Add(overtimePay).Add(rewardBonus)
	netSalary := grossSalary.Sub(totalDeductions)

	return SalaryBreakdown{
		EmployeeID: att.EmployeeID,
		Year:       year,
		Month:      month,

		BaseSalary: terms.BaseSalary.Round(2),
		DailyRate:  dailyRate.Round(2),
		HourlyRate: hourlyRate.Round(2),

		WorkedDaysPay: workedDaysPay,
		OvertimePay:   overtimePay,
		RewardBonus:   rewardBonus,

		AbsenceDeduction:     fullAbsenceDeduction.Add(partialDeduction),
		PartialDayDeduction:  partialDeduction,
		UnpaidLeaveDeduction: unpaidDeduction,
		TotalDeductions:      totalDeductions,

		PaidLeaveDays:   leaves.PaidDays,
		UnpaidLeaveDays: leaves.UnpaidDays,
		SickLeaveDays:   leaves.SickDays,
		OtherLeaveDays:  leaves.MaternityDays + leaves.OtherDays,
		RewardDays:      rewards.RewardDays,

		GrossSalary: grossSalary,
		NetSalary:   netSalary,

		NegativeNet: netSalary.IsNegative(),
	}
}
