package reward

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/domain/reward"
	"github.com/chraietrayen/PFE/internal/pkg/database"
	"github.com/chraietrayen/PFE/internal/pkg/validator"
)

type RewardServiceImpl struct {
	policy *calendar.Policy
	tx     database.TxRunner
	reward.RewardRepository
	employee.EmployeeRepository
	materializer attendance.SessionMaterializer
}

func NewRewardService(
	policy *calendar.Policy,
	tx database.TxRunner,
	rewardRepository reward.RewardRepository,
	employeeRepository employee.EmployeeRepository,
	materializer attendance.SessionMaterializer,
) reward.RewardService {
	return &RewardServiceImpl{
		policy:             policy,
		tx:                 tx,
		RewardRepository:   rewardRepository,
		EmployeeRepository: employeeRepository,
		materializer:       materializer,
	}
}

// Grant implements reward.RewardService. One reward per (employee, date);
// the synthetic sessions are only written when the date is a work day.
func (s *RewardServiceImpl) Grant(ctx context.Context, req *reward.GrantRewardRequest) (reward.RewardRecord, error) {
	if err := req.Validate(); err != nil {
		return reward.RewardRecord{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if _, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID); err != nil {
		return reward.RewardRecord{}, err
	}

	_, err := s.RewardRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err == nil {
		return reward.RewardRecord{}, reward.ErrRewardAlreadyGranted
	}
	if !errors.Is(err, reward.ErrRewardNotFound) {
		return reward.RewardRecord{}, fmt.Errorf("failed to check existing reward: %w", err)
	}

	record := reward.RewardRecord{
		EmployeeID:  req.EmployeeID,
		Date:        date,
		Reason:      req.Reason,
		GrantedBy:   req.GrantedBy,
		BonusAmount: req.BonusAmount,
		Status:      reward.StatusApproved,
	}

	// Grant row and synthetic sessions land together or not at all.
	var created reward.RewardRecord
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.RewardRepository.Create(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to create reward: %w", err)
		}
		return s.materializer.RewardGranted(ctx, attendance.RewardGrantedEvent{
			EmployeeID: created.EmployeeID,
			Date:       created.Date,
		})
	})
	if err != nil {
		return reward.RewardRecord{}, err
	}

	return created, nil
}

// Revoke implements reward.RewardService. Revocation also deletes the
// REWARD sessions created at grant time.
func (s *RewardServiceImpl) Revoke(ctx context.Context, id string) (reward.RewardRecord, error) {
	record, err := s.RewardRepository.GetByID(ctx, id)
	if err != nil {
		return reward.RewardRecord{}, err
	}

	if record.Status == reward.StatusRevoked {
		return reward.RewardRecord{}, reward.ErrRewardAlreadyRevoked
	}

	record.Status = reward.StatusRevoked

	var updated reward.RewardRecord
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.RewardRepository.Update(ctx, record)
		if err != nil {
			return fmt.Errorf("failed to update reward: %w", err)
		}
		return s.materializer.RewardRevoked(ctx, attendance.RewardRevokedEvent{
			EmployeeID: record.EmployeeID,
			Date:       record.Date,
		})
	})
	if err != nil {
		return reward.RewardRecord{}, err
	}

	return updated, nil
}

// GetMonthlySummary implements reward.RewardService.
func (s *RewardServiceImpl) GetMonthlySummary(ctx context.Context, employeeID string, year int, month time.Month) (reward.Summary, error) {
	if month < time.January || month > time.December {
		return reward.Summary{}, attendance.ErrInvalidPeriod
	}

	monthStart, monthEnd := calendar.MonthBounds(year, month)

	records, err := s.RewardRepository.GetApprovedInRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return reward.Summary{}, fmt.Errorf("failed to get rewards: %w", err)
	}

	summary := reward.Summary{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
		TotalBonus: decimal.Zero,
	}
	for _, record := range records {
		summary.RewardDays++
		summary.TotalBonus = summary.TotalBonus.Add(record.BonusAmount)
	}

	return summary, nil
}
