package payroll

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/domain/leave"
	"github.com/chraietrayen/PFE/internal/domain/payroll"
	"github.com/chraietrayen/PFE/internal/domain/reward"
)

type PayrollServiceImpl struct {
	logger *slog.Logger
	policy *calendar.Policy
	employee.EmployeeRepository
	payroll.ReportRepository
	attendanceService attendance.AttendanceService
	leaveService      leave.LeaveService
	rewardService     reward.RewardService
}

func NewPayrollService(
	logger *slog.Logger,
	policy *calendar.Policy,
	employeeRepository employee.EmployeeRepository,
	reportRepository payroll.ReportRepository,
	attendanceService attendance.AttendanceService,
	leaveService leave.LeaveService,
	rewardService reward.RewardService,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		logger:             logger,
		policy:             policy,
		EmployeeRepository: employeeRepository,
		ReportRepository:   reportRepository,
		attendanceService:  attendanceService,
		leaveService:       leaveService,
		rewardService:      rewardService,
	}
}

// CalculateMonthlySalary implements payroll.PayrollService. The three
// aggregators are independent reads; they run sequentially and feed the
// pure calculator.
func (s *PayrollServiceImpl) CalculateMonthlySalary(ctx context.Context, employeeID string, year int, month time.Month) (payroll.MonthlySalaryResult, error) {
	if month < time.January || month > time.December {
		return payroll.MonthlySalaryResult{}, attendance.ErrInvalidPeriod
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.MonthlySalaryResult{}, err
	}

	att, err := s.attendanceService.CalculateMonth(ctx, employeeID, year, month)
	if err != nil {
		return payroll.MonthlySalaryResult{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	leaves, err := s.leaveService.GetMonthlySummary(ctx, employeeID, year, month)
	if err != nil {
		return payroll.MonthlySalaryResult{}, fmt.Errorf("failed to aggregate leaves: %w", err)
	}

	rewards, err := s.rewardService.GetMonthlySummary(ctx, employeeID, year, month)
	if err != nil {
		return payroll.MonthlySalaryResult{}, fmt.Errorf("failed to aggregate rewards: %w", err)
	}

	breakdown := payroll.ComputeSalary(emp.Terms(), att, leaves, rewards, s.policy, year, month)

	if breakdown.NegativeNet {
		s.logger.Warn("net salary is negative",
			slog.String("employee_id", employeeID),
			slog.Int("year", year),
			slog.Int("month", int(month)),
			slog.String("net_salary", breakdown.NetSalary.String()),
		)
	}

	return payroll.MonthlySalaryResult{
		EmployeeID:   emp.ID,
		FullName:     emp.FullName,
		ContractType: string(emp.ContractType),
		Breakdown:    breakdown,
	}, nil
}

// EstimateSalary implements payroll.PayrollService. Same computation as
// CalculateMonthlySalary with no persistence, usable while the month is
// still open.
func (s *PayrollServiceImpl) EstimateSalary(ctx context.Context, employeeID string, year int, month time.Month) (payroll.MonthlySalaryResult, error) {
	return s.CalculateMonthlySalary(ctx, employeeID, year, month)
}

// GenerateReport implements payroll.PayrollService. Re-running for the
// same period overwrites the stored row, never duplicates it.
func (s *PayrollServiceImpl) GenerateReport(ctx context.Context, employeeID string, year int, month time.Month) (payroll.MonthlySalaryResult, error) {
	result, err := s.CalculateMonthlySalary(ctx, employeeID, year, month)
	if err != nil {
		return payroll.MonthlySalaryResult{}, err
	}

	persisted, err := s.ReportRepository.Upsert(ctx, result.Breakdown)
	if err != nil {
		return payroll.MonthlySalaryResult{}, fmt.Errorf("failed to persist salary report: %w", err)
	}

	result.Breakdown = persisted
	return result, nil
}

// CalculateAllSalaries implements payroll.PayrollService. One employee's
// failure is recorded and the batch continues.
func (s *PayrollServiceImpl) CalculateAllSalaries(ctx context.Context, year int, month time.Month) (payroll.BatchResult, error) {
	if month < time.January || month > time.December {
		return payroll.BatchResult{}, attendance.ErrInvalidPeriod
	}

	employees, err := s.EmployeeRepository.GetActive(ctx)
	if err != nil {
		return payroll.BatchResult{}, fmt.Errorf("failed to list active employees: %w", err)
	}

	batch := payroll.BatchResult{
		Year:  year,
		Month: month,
	}

	for _, emp := range employees {
		result, err := s.GenerateReport(ctx, emp.ID, year, month)
		if err != nil {
			s.logger.Error("salary computation failed",
				slog.String("employee_id", emp.ID),
				slog.Int("year", year),
				slog.Int("month", int(month)),
				slog.String("error", err.Error()),
			)
			batch.Failures = append(batch.Failures, payroll.EmployeeFailure{
				EmployeeID: emp.ID,
				Error:      err.Error(),
			})
			continue
		}
		batch.Results = append(batch.Results, result)
	}

	return batch, nil
}
