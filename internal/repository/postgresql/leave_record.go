package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/chraietrayen/PFE/internal/domain/leave"
	"github.com/chraietrayen/PFE/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

const leaveColumns = `id, employee_id, type, start_date, end_date, half_day, slot, duration_days, impacts_salary, status, reason, reject_reason, approved_by, approved_at, created_at, updated_at`

func scanLeave(row pgx.Row) (leave.LeaveRecord, error) {
	var lr leave.LeaveRecord
	err := row.Scan(
		&lr.ID,
		&lr.EmployeeID,
		&lr.Type,
		&lr.StartDate,
		&lr.EndDate,
		&lr.HalfDay,
		&lr.Slot,
		&lr.DurationDays,
		&lr.ImpactsSalary,
		&lr.Status,
		&lr.Reason,
		&lr.RejectReason,
		&lr.ApprovedBy,
		&lr.ApprovedAt,
		&lr.CreatedAt,
		&lr.UpdatedAt,
	)
	return lr, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO leave_requests (id, employee_id, type, start_date, end_date, half_day, slot, duration_days, impacts_salary, status, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + leaveColumns

	created, err := scanLeave(q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Type,
		record.StartDate,
		record.EndDate,
		record.HalfDay,
		record.Slot,
		record.DurationDays,
		record.ImpactsSalary,
		record.Status,
		record.Reason,
	))
	if err != nil {
		return leave.LeaveRecord{}, err
	}

	return created, nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + leaveColumns + ` FROM leave_requests WHERE id = $1`

	record, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRecord{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRecord{}, err
	}

	return record, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2, reject_reason = $3, approved_by = $4, approved_at = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + leaveColumns

	updated, err := scanLeave(q.QueryRow(ctx, query,
		record.ID,
		record.Status,
		record.RejectReason,
		record.ApprovedBy,
		record.ApprovedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRecord{}, leave.ErrLeaveNotFound
		}
		return leave.LeaveRecord{}, err
	}

	return updated, nil
}

// GetOverlapping implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetOverlapping(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status IN ('PENDING', 'APPROVED')
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	return r.queryLeaves(ctx, q, query, employeeID, start, end)
}

// GetApprovedInRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetApprovedInRange(ctx context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND status = 'APPROVED'
		  AND start_date <= $3 AND end_date >= $2
		ORDER BY start_date
	`

	return r.queryLeaves(ctx, q, query, employeeID, start, end)
}

// GetByYearAndStatus implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByYearAndStatus(ctx context.Context, employeeID string, year int, status leave.LeaveStatus) ([]leave.LeaveRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveColumns + `
		FROM leave_requests
		WHERE employee_id = $1
		  AND EXTRACT(YEAR FROM start_date) = $2
		  AND status = $3
		ORDER BY start_date
	`

	return r.queryLeaves(ctx, q, query, employeeID, year, status)
}

func (r *leaveRepositoryImpl) queryLeaves(ctx context.Context, q database.Querier, query string, args ...any) ([]leave.LeaveRecord, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []leave.LeaveRecord
	for rows.Next() {
		record, err := scanLeave(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
