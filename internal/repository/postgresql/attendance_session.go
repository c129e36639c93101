package postgresql

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/pkg/database"
)

type sessionRepositoryImpl struct {
	db *database.DB
}

func NewSessionRepository(db *database.DB) attendance.SessionRepository {
	return &sessionRepositoryImpl{db: db}
}

// GetByEmployeeAndRange implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) GetByEmployeeAndRange(ctx context.Context, employeeID string, start, end time.Time) ([]attendance.SessionRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, date, slot, check_in, check_out, worked_minutes, status, created_at, updated_at
		FROM attendance_sessions
		WHERE employee_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date, slot
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []attendance.SessionRecord
	for rows.Next() {
		var s attendance.SessionRecord
		err := rows.Scan(
			&s.ID,
			&s.EmployeeID,
			&s.Date,
			&s.Slot,
			&s.CheckIn,
			&s.CheckOut,
			&s.WorkedMinutes,
			&s.Status,
			&s.CreatedAt,
			&s.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

// Upsert implements attendance.SessionRepository. The unique key on
// (employee_id, date, slot) makes re-materializing an approval replace the
// existing row instead of duplicating it.
func (r *sessionRepositoryImpl) Upsert(ctx context.Context, record attendance.SessionRecord) (attendance.SessionRecord, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_sessions (id, employee_id, date, slot, check_in, check_out, worked_minutes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (employee_id, date, slot) DO UPDATE SET
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			worked_minutes = EXCLUDED.worked_minutes,
			status = EXCLUDED.status,
			updated_at = NOW()
		RETURNING id, employee_id, date, slot, check_in, check_out, worked_minutes, status, created_at, updated_at
	`

	var saved attendance.SessionRecord
	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.Slot,
		record.CheckIn,
		record.CheckOut,
		record.WorkedMinutes,
		record.Status,
	).Scan(
		&saved.ID,
		&saved.EmployeeID,
		&saved.Date,
		&saved.Slot,
		&saved.CheckIn,
		&saved.CheckOut,
		&saved.WorkedMinutes,
		&saved.Status,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return attendance.SessionRecord{}, err
	}

	return saved, nil
}

// DeleteByStatus implements attendance.SessionRepository.
func (r *sessionRepositoryImpl) DeleteByStatus(ctx context.Context, employeeID string, date time.Time, status attendance.SessionStatus) error {
	q := GetQuerier(ctx, r.db)

	query := `
		DELETE FROM attendance_sessions
		WHERE employee_id = $1 AND date = $2 AND status = $3
	`

	_, err := q.Exec(ctx, query, employeeID, date, status)
	return err
}
