package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chraietrayen/PFE/internal/domain/reward"
	"github.com/chraietrayen/PFE/internal/pkg/database"
)

type rewardRepositoryImpl struct {
	db *database.DB
}

func NewRewardRepository(db *database.DB) reward.RewardRepository {
	return &rewardRepositoryImpl{db: db}
}

const rewardColumns = `id, employee_id, date, reason, granted_by, bonus_amount, status, created_at, updated_at`

func scanReward(row pgx.Row) (reward.RewardRecord, error) {
	var rr reward.RewardRecord
	err := row.Scan(
		&rr.ID,
		&rr.EmployeeID,
		&rr.Date,
		&rr.Reason,
		&rr.GrantedBy,
		&rr.BonusAmount,
		&rr.Status,
		&rr.CreatedAt,
		&rr.UpdatedAt,
	)
	return rr, err
}

// Create implements reward.RewardRepository.
func (r *rewardRepositoryImpl) Create(ctx context.Context, record reward.RewardRecord) (reward.RewardRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO reward_days (id, employee_id, date, reason, granted_by, bonus_amount, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + rewardColumns

	created, err := scanReward(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.Reason,
		record.GrantedBy,
		record.BonusAmount,
		record.Status,
	))
	if err != nil {
		return reward.RewardRecord{}, err
	}

	return created, nil
}

// GetByID implements reward.RewardRepository.
func (r *rewardRepositoryImpl) GetByID(ctx context.Context, id string) (reward.RewardRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rewardColumns + ` FROM reward_days WHERE id = $1`

	record, err := scanReward(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reward.RewardRecord{}, reward.ErrRewardNotFound
		}
		return reward.RewardRecord{}, err
	}

	return record, nil
}

// GetByEmployeeAndDate implements reward.RewardRepository.
func (r *rewardRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (reward.RewardRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + rewardColumns + ` FROM reward_days WHERE employee_id = $1 AND date = $2`

	record, err := scanReward(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reward.RewardRecord{}, reward.ErrRewardNotFound
		}
		return reward.RewardRecord{}, err
	}

	return record, nil
}

// GetApprovedInRange implements reward.RewardRepository.
func (r *rewardRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]reward.RewardRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + rewardColumns + `
		FROM reward_days
		WHERE employee_id = $1 AND status = 'APPROVED' AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []reward.RewardRecord
	for rows.Next() {
		record, err := scanReward(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// Update implements reward.RewardRepository.
func (r *rewardRepositoryImpl) Update(ctx context.Context, record reward.RewardRecord) (reward.RewardRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE reward_days
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + rewardColumns

	updated, err := scanReward(q.QueryRow(ctx, query, record.ID, record.Status))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return reward.RewardRecord{}, reward.ErrRewardNotFound
		}
		return reward.RewardRecord{}, err
	}

	return updated, nil
}
