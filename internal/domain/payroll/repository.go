package payroll

import (
	"context"
	"time"
)

// ReportRepository - interface for the salary_reports table
type ReportRepository interface {
	// Upsert inserts the breakdown or replaces the existing row keyed on
	// (employee_id, year, month).
	Upsert(ctx context.Context, breakdown SalaryBreakdown) (SalaryBreakdown, error)

	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year int, month time.Month) (SalaryBreakdown, error)
	GetByPeriod(ctx context.Context, year int, month time.Month) ([]SalaryBreakdown, error)
}
