package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/domain/leave"
	"github.com/chraietrayen/PFE/internal/pkg/database"
	"github.com/chraietrayen/PFE/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	policy *calendar.Policy
	tx     database.TxRunner
	leave.LeaveRepository
	employee.EmployeeRepository
	materializer attendance.SessionMaterializer
}

func NewLeaveService(
	policy *calendar.Policy,
	tx database.TxRunner,
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	materializer attendance.SessionMaterializer,
) leave.LeaveService {
	return &LeaveServiceImpl{
		policy:             policy,
		tx:                 tx,
		LeaveRepository:    leaveRepository,
		EmployeeRepository: employeeRepository,
		materializer:       materializer,
	}
}

// CreateRequest implements leave.LeaveService. The validation chain short
// circuits on the first failure: half-day shape, date order, non-empty
// duration, overlap, then balance.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req *leave.CreateLeaveRequest) (leave.LeaveRecord, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRecord{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)
	leaveType := leave.LeaveType(req.Type)

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	if req.HalfDay && !startDate.Equal(endDate) {
		return leave.LeaveRecord{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "a half-day leave must start and end on the same date",
		}}
	}

	if endDate.Before(startDate) {
		return leave.LeaveRecord{}, validator.ValidationErrors{{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		}}
	}

	var duration float64
	if req.HalfDay {
		duration = 0.5
	} else {
		duration = float64(s.policy.CountWorkDaysBetween(startDate, endDate))
	}
	if duration <= 0 {
		return leave.LeaveRecord{}, leave.ErrNoWorkingDays
	}

	overlapping, err := s.LeaveRepository.GetOverlapping(ctx, req.EmployeeID, startDate, endDate)
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to check overlapping leaves: %w", err)
	}
	if len(overlapping) > 0 {
		return leave.LeaveRecord{}, leave.ErrOverlappingLeave
	}

	if leaveType.CountsAgainstAllowance() {
		balance, err := s.balanceFor(ctx, emp, startDate.Year())
		if err != nil {
			return leave.LeaveRecord{}, err
		}
		if balance.Remaining < duration {
			return leave.LeaveRecord{}, &leave.InsufficientBalanceError{
				Remaining: balance.Remaining,
				Requested: duration,
			}
		}
	}

	record := leave.LeaveRecord{
		EmployeeID:    req.EmployeeID,
		Type:          leaveType,
		StartDate:     startDate,
		EndDate:       endDate,
		HalfDay:       req.HalfDay,
		DurationDays:  duration,
		ImpactsSalary: !leaveType.Paid(),
		Status:        leave.StatusPending,
		Reason:        req.Reason,
	}
	if req.HalfDay {
		slot := attendance.SessionSlot(req.Slot)
		record.Slot = &slot
	}

	created, err := s.LeaveRepository.Create(ctx, record)
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return created, nil
}

// Approve implements leave.LeaveService. Approval materializes synthetic
// attendance sessions over the leave's work days.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id, approverID string) (leave.LeaveRecord, error) {
	record, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	if record.Status != leave.StatusPending {
		return leave.LeaveRecord{}, leave.ErrLeaveAlreadyProcessed
	}

	now := time.Now().UTC()
	record.Status = leave.StatusApproved
	record.ApprovedBy = &approverID
	record.ApprovedAt = &now

	event := attendance.LeaveApprovedEvent{
		EmployeeID: record.EmployeeID,
		StartDate:  record.StartDate,
		EndDate:    record.EndDate,
		HalfDay:    record.HalfDay,
	}
	if record.Slot != nil {
		event.Slot = *record.Slot
	}

	// Status transition and session materialization land together or not
	// at all.
	var updated leave.LeaveRecord
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.LeaveRepository.Update(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if err := s.materializer.LeaveApproved(ctx, event); err != nil {
			return fmt.Errorf("failed to materialize leave sessions: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	return updated, nil
}

// Reject implements leave.LeaveService. No session side effect; sessions
// created by a prior approval are only removed by explicit revocation.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id, reason string) (leave.LeaveRecord, error) {
	record, err := s.LeaveRepository.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	if record.Status != leave.StatusPending {
		return leave.LeaveRecord{}, leave.ErrLeaveAlreadyProcessed
	}

	record.Status = leave.StatusRejected
	record.RejectReason = &reason

	updated, err := s.LeaveRepository.Update(ctx, record)
	if err != nil {
		return leave.LeaveRecord{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return updated, nil
}

// GetMonthlySummary implements leave.LeaveService. Each approved leave is
// clipped to the month window before its days are bucketed by type.
func (s *LeaveServiceImpl) GetMonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (leave.Summary, error) {
	if month < time.January || month > time.December {
		return leave.Summary{}, attendance.ErrInvalidPeriod
	}

	monthStart, monthEnd := calendar.MonthBounds(year, month)

	records, err := s.LeaveRepository.GetApprovedInRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return leave.Summary{}, fmt.Errorf("failed to get approved leaves: %w", err)
	}

	summary := leave.Summary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}

	for _, record := range records {
		clippedStart, clippedEnd, ok := calendar.ClipToMonth(record.StartDate, record.EndDate, year, month)
		if !ok {
			continue
		}

		var days float64
		if record.HalfDay {
			days = 0.5
		} else {
			days = float64(s.policy.CountWorkDaysBetween(clippedStart, clippedEnd))
		}
		if days == 0 {
			continue
		}

		switch record.Type {
		case leave.TypePaid, leave.TypeReward:
			summary.PaidDays += days
		case leave.TypeUnpaid:
			summary.UnpaidDays += days
			summary.SalaryDeductionDays += days
		case leave.TypeMaladie:
			summary.SickDays += days
		case leave.TypeMaternite:
			summary.MaternityDays += days
		default:
			summary.OtherDays += days
		}
		summary.TotalDays += days
	}

	return summary, nil
}

// GetBalance implements leave.LeaveService.
func (s *LeaveServiceImpl) GetBalance(ctx context.Context, employeeID string, year int) (leave.Balance, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return leave.Balance{}, err
	}
	return s.balanceFor(ctx, emp, year)
}

func (s *LeaveServiceImpl) balanceFor(ctx context.Context, emp employee.Employee, year int) (leave.Balance, error) {
	allowance := s.policy.AnnualLeaveAllowance
	if emp.AnnualLeaveAllowance != nil {
		allowance = *emp.AnnualLeaveAllowance
	}

	approved, err := s.LeaveRepository.GetByYearAndStatus(ctx, emp.ID, year, leave.StatusApproved)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get approved leaves: %w", err)
	}

	pending, err := s.LeaveRepository.GetByYearAndStatus(ctx, emp.ID, year, leave.StatusPending)
	if err != nil {
		return leave.Balance{}, fmt.Errorf("failed to get pending leaves: %w", err)
	}

	balance := leave.Balance{
		EmployeeID:      emp.ID,
		Year:            year,
		AnnualAllowance: allowance,
		ByType:          make(map[leave.LeaveType]float64),
	}

	for _, record := range approved {
		balance.ByType[record.Type] += record.DurationDays
		if record.Type.CountsAgainstAllowance() {
			balance.Used += record.DurationDays
		}
	}
	for _, record := range pending {
		if record.Type.CountsAgainstAllowance() {
			balance.Pending += record.DurationDays
		}
	}

	balance.Remaining = allowance - balance.Used - balance.Pending
	return balance, nil
}
