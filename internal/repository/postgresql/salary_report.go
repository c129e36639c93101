package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chraietrayen/PFE/internal/domain/payroll"
	"github.com/chraietrayen/PFE/internal/pkg/database"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) payroll.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

const reportColumns = `employee_id, year, month, base_salary, daily_rate, hourly_rate, worked_days_pay, overtime_pay, reward_bonus, absence_deduction, partial_day_deduction, unpaid_leave_deduction, total_deductions, paid_leave_days, unpaid_leave_days, sick_leave_days, other_leave_days, reward_days, gross_salary, net_salary, negative_net`

func scanReport(row pgx.Row) (payroll.SalaryBreakdown, error) {
	var b payroll.SalaryBreakdown
	err := row.Scan(
		&b.EmployeeID,
		&b.Year,
		&b.Month,
		&b.BaseSalary,
		&b.DailyRate,
		&b.HourlyRate,
		&b.WorkedDaysPay,
		&b.OvertimePay,
		&b.RewardBonus,
		&b.AbsenceDeduction,
		&b.PartialDayDeduction,
		&b.UnpaidLeaveDeduction,
		&b.TotalDeductions,
		&b.PaidLeaveDays,
		&b.UnpaidLeaveDays,
		&b.SickLeaveDays,
		&b.OtherLeaveDays,
		&b.RewardDays,
		&b.GrossSalary,
		&b.NetSalary,
		&b.NegativeNet,
	)
	return b, err
}

// Upsert implements payroll.ReportRepository. The unique key on
// (employee_id, year, month) makes report regeneration overwrite in place.
func (r *reportRepositoryImpl) Upsert(ctx context.Context, breakdown payroll.SalaryBreakdown) (payroll.SalaryBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO salary_reports (id, employee_id, year, month, base_salary, daily_rate, hourly_rate, worked_days_pay, overtime_pay, reward_bonus, absence_deduction, partial_day_deduction, unpaid_leave_deduction, total_deductions, paid_leave_days, unpaid_leave_days, sick_leave_days, other_leave_days, reward_days, gross_salary, net_salary, negative_net)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)
		ON CONFLICT (employee_id, year, month) DO UPDATE SET
			base_salary = EXCLUDED.base_salary,
			daily_rate = EXCLUDED.daily_rate,
			hourly_rate = EXCLUDED.hourly_rate,
			worked_days_pay = EXCLUDED.worked_days_pay,
			overtime_pay = EXCLUDED.overtime_pay,
			reward_bonus = EXCLUDED.reward_bonus,
			absence_deduction = EXCLUDED.absence_deduction,
			partial_day_deduction = EXCLUDED.partial_day_deduction,
			unpaid_leave_deduction = EXCLUDED.unpaid_leave_deduction,
			total_deductions = EXCLUDED.total_deductions,
			paid_leave_days = EXCLUDED.paid_leave_days,
			unpaid_leave_days = EXCLUDED.unpaid_leave_days,
			sick_leave_days = EXCLUDED.sick_leave_days,
			other_leave_days = EXCLUDED.other_leave_days,
			reward_days = EXCLUDED.reward_days,
			gross_salary = EXCLUDED.gross_salary,
			net_salary = EXCLUDED.net_salary,
			negative_net = EXCLUDED.negative_net,
			updated_at = NOW()
		RETURNING ` + reportColumns

	saved, err := scanReport(q.QueryRow(ctx, query,
		uuid.NewString(),
		breakdown.EmployeeID,
		breakdown.Year,
		breakdown.Month,
		breakdown.BaseSalary,
		breakdown.DailyRate,
		breakdown.HourlyRate,
		breakdown.WorkedDaysPay,
		breakdown.OvertimePay,
		breakdown.RewardBonus,
		breakdown.AbsenceDeduction,
		breakdown.PartialDayDeduction,
		breakdown.UnpaidLeaveDeduction,
		breakdown.TotalDeductions,
		breakdown.PaidLeaveDays,
		breakdown.UnpaidLeaveDays,
		breakdown.SickLeaveDays,
		breakdown.OtherLeaveDays,
		breakdown.RewardDays,
		breakdown.GrossSalary,
		breakdown.NetSalary,
		breakdown.NegativeNet,
	))
	if err != nil {
		return payroll.SalaryBreakdown{}, err
	}

	return saved, nil
}

// GetByEmployeeAndPeriod implements payroll.ReportRepository.
func (r *reportRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, year int, month time.Month) (payroll.SalaryBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM salary_reports WHERE employee_id = $1 AND year = $2 AND month = $3`

	report, err := scanReport(q.QueryRow(ctx, query, employeeID, year, month))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.SalaryBreakdown{}, payroll.ErrReportNotFound
		}
		return payroll.SalaryBreakdown{}, err
	}

	return report, nil
}

// GetByPeriod implements payroll.ReportRepository.
func (r *reportRepositoryImpl) GetByPeriod(ctx context.Context, year int, month time.Month) ([]payroll.SalaryBreakdown, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + reportColumns + ` FROM salary_reports WHERE year = $1 AND month = $2 ORDER BY employee_id`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reports []payroll.SalaryBreakdown
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}
