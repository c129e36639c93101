package payroll

import (
	"context"
	"time"
)

// PayrollService is the monthly payroll engine.
type PayrollService interface {
	// CalculateMonthlySalary computes a single employee's salary for the
	// period without persisting anything.
	CalculateMonthlySalary(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySalaryResult, error)

	// EstimateSalary is CalculateMonthlySalary for a still-open month; it
	// never persists.
	EstimateSalary(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySalaryResult, error)

	// GenerateReport computes and persists the breakdown, overwriting any
	// existing report for the same (employee, year, month).
	GenerateReport(ctx context.Context, employeeID string, year int, month time.Month) (MonthlySalaryResult, error)

	// CalculateAllSalaries runs the computation for every active employee.
	// Per-employee failures are collected, not propagated.
	CalculateAllSalaries(ctx context.Context, year int, month time.Month) (BatchResult, error)
}
