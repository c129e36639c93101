package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
)

type fakeSessionRepo struct {
	sessions map[string]attendance.SessionRecord
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]attendance.SessionRecord)}
}

func sessionKey(employeeID string, date time.Time, slot attendance.SessionSlot) string {
	return employeeID + "|" + date.Format("2006-01-02") + "|" + string(slot)
}

func (r *fakeSessionRepo) GetByEmployeeAndRange(_ context.Context, employeeID string, start, end time.Time) ([]attendance.SessionRecord, error) {
	var result []attendance.SessionRecord
	for _, s := range r.sessions {
		if s.EmployeeID == employeeID && !s.Date.Before(start) && !s.Date.After(end) {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeSessionRepo) Upsert(_ context.Context, record attendance.SessionRecord) (attendance.SessionRecord, error) {
	r.sessions[sessionKey(record.EmployeeID, record.Date, record.Slot)] = record
	return record, nil
}

func (r *fakeSessionRepo) DeleteByStatus(_ context.Context, employeeID string, date time.Time, status attendance.SessionStatus) error {
	for key, s := range r.sessions {
		if s.EmployeeID == employeeID && s.Date.Equal(date) && s.Status == status {
			delete(r.sessions, key)
		}
	}
	return nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(ids ...string) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, id := range ids {
		repo.employees[id] = employee.Employee{ID: id, Active: true}
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(_ context.Context, record employee.Employee) (employee.Employee, error) {
	r.employees[record.ID] = record
	return record, nil
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	emp, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) GetActive(_ context.Context) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.Active {
			result = append(result, emp)
		}
	}
	return result, nil
}

func date(day int) time.Time {
	return time.Date(2026, time.February, day, 0, 0, 0, 0, time.UTC)
}

func fullSession(employeeID string, day int, slot attendance.SessionSlot) attendance.SessionRecord {
	return attendance.SessionRecord{
		EmployeeID:    employeeID,
		Date:          date(day),
		Slot:          slot,
		WorkedMinutes: 240,
		Status:        attendance.SessionFull,
	}
}

func seedFullDay(repo *fakeSessionRepo, employeeID string, day int) {
	_, _ = repo.Upsert(context.Background(), fullSession(employeeID, day, attendance.SlotMorning))
	_, _ = repo.Upsert(context.Background(), fullSession(employeeID, day, attendance.SlotAfternoon))
}

// February 2026 work days: 2-6, 9-13, 16-20, 23-27.
var februaryWorkDays = []int{2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 16, 17, 18, 19, 20, 23, 24, 25, 26, 27}

func TestCalculateMonthFullAttendance(t *testing.T) {
	sessions := newFakeSessionRepo()
	for _, day := range februaryWorkDays {
		seedFullDay(sessions, "emp-1", day)
	}
	service := NewAttendanceService(calendar.DefaultPolicy(), sessions, newFakeEmployeeRepo("emp-1"))

	calc, err := service.CalculateMonth(context.Background(), "emp-1", 2026, time.February)
	require.NoError(t, err)

	assert.Equal(t, 20, calc.ExpectedWorkDays)
	assert.Equal(t, 160.0, calc.ExpectedWorkHours)
	assert.Equal(t, 20.0, calc.FullDays)
	assert.Equal(t, 20.0, calc.TotalWorkedDays)
	assert.Equal(t, 160.0, calc.TotalWorkedHours)
	assert.Equal(t, 0, calc.AbsentDays)
	assert.Len(t, calc.Days, 20)

	// Conservation: every work day accounted for.
	assert.Equal(t, float64(calc.ExpectedWorkDays), calc.FullDays+calc.PartialDays*0.5+float64(calc.AbsentDays))
}

func TestCalculateMonthDayClassification(t *testing.T) {
	tests := []struct {
		name          string
		seed          func(repo *fakeSessionRepo)
		status        attendance.DayStatus
		fullDays      float64
		partialDays   float64
		absentDays    int
		workedMinutes int
	}{
		{
			name: "both slots full",
			seed: func(repo *fakeSessionRepo) {
				seedFullDay(repo, "emp-1", 2)
			},
			status:        attendance.DayFull,
			fullDays:      1,
			workedMinutes: 480,
		},
		{
			name: "morning only",
			seed: func(repo *fakeSessionRepo) {
				_, _ = repo.Upsert(context.Background(), fullSession("emp-1", 2, attendance.SlotMorning))
			},
			status:        attendance.DayHalfAM,
			partialDays:   1,
			workedMinutes: 240,
		},
		{
			name: "afternoon only",
			seed: func(repo *fakeSessionRepo) {
				_, _ = repo.Upsert(context.Background(), fullSession("emp-1", 2, attendance.SlotAfternoon))
			},
			status:        attendance.DayHalfPM,
			partialDays:   1,
			workedMinutes: 240,
		},
		{
			name: "full day leave",
			seed: func(repo *fakeSessionRepo) {
				for _, slot := range []attendance.SessionSlot{attendance.SlotMorning, attendance.SlotAfternoon} {
					_, _ = repo.Upsert(context.Background(), attendance.SessionRecord{
						EmployeeID:    "emp-1",
						Date:          date(2),
						Slot:          slot,
						WorkedMinutes: attendance.LeaveCreditMinutes,
						Status:        attendance.SessionLeaveFull,
					})
				}
			},
			status:        attendance.DayLeaveFull,
			fullDays:      1,
			workedMinutes: 480,
		},
		{
			name: "half day leave in the morning, worked afternoon",
			seed: func(repo *fakeSessionRepo) {
				_, _ = repo.Upsert(context.Background(), attendance.SessionRecord{
					EmployeeID:    "emp-1",
					Date:          date(2),
					Slot:          attendance.SlotMorning,
					WorkedMinutes: attendance.LeaveCreditMinutes,
					Status:        attendance.SessionLeaveHalf,
				})
				_, _ = repo.Upsert(context.Background(), fullSession("emp-1", 2, attendance.SlotAfternoon))
			},
			status:        attendance.DayLeaveHalfAM,
			fullDays:      0.5,
			partialDays:   0.5,
			workedMinutes: 240,
		},
		{
			name: "reward day",
			seed: func(repo *fakeSessionRepo) {
				for _, slot := range []attendance.SessionSlot{attendance.SlotMorning, attendance.SlotAfternoon} {
					_, _ = repo.Upsert(context.Background(), attendance.SessionRecord{
						EmployeeID:    "emp-1",
						Date:          date(2),
						Slot:          slot,
						WorkedMinutes: attendance.LeaveCreditMinutes,
						Status:        attendance.SessionReward,
					})
				}
			},
			status:        attendance.DayReward,
			fullDays:      1,
			workedMinutes: 480,
		},
		{
			name:       "no sessions",
			seed:       func(repo *fakeSessionRepo) {},
			status:     attendance.DayAbsent,
			absentDays: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sessions := newFakeSessionRepo()
			tt.seed(sessions)
			service := NewAttendanceService(calendar.DefaultPolicy(), sessions, newFakeEmployeeRepo("emp-1"))

			calc, err := service.CalculateMonth(context.Background(), "emp-1", 2026, time.February)
			require.NoError(t, err)

			require.NotEmpty(t, calc.Days)
			assert.Equal(t, tt.status, calc.Days[0].Status)
			assert.Equal(t, tt.workedMinutes, calc.Days[0].WorkedMinutes)
			assert.Equal(t, tt.fullDays, calc.FullDays)
			assert.Equal(t, tt.partialDays, calc.PartialDays)
			// The other 19 work days have no sessions at all.
			assert.Equal(t, tt.absentDays+19, calc.AbsentDays)
		})
	}
}

func TestCalculateMonthOvertime(t *testing.T) {
	sessions := newFakeSessionRepo()
	checkIn := time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.February, 2, 13, 0, 0, 0, time.UTC)
	_, _ = sessions.Upsert(context.Background(), attendance.SessionRecord{
		EmployeeID: "emp-1",
		Date:       date(2),
		Slot:       attendance.SlotMorning,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     attendance.SessionFull,
	})
	_, _ = sessions.Upsert(context.Background(), fullSession("emp-1", 2, attendance.SlotAfternoon))

	service := NewAttendanceService(calendar.DefaultPolicy(), sessions, newFakeEmployeeRepo("emp-1"))

	calc, err := service.CalculateMonth(context.Background(), "emp-1", 2026, time.February)
	require.NoError(t, err)

	// 300 + 240 worked minutes against 480 expected: one overtime hour.
	assert.Equal(t, 1.0, calc.OvertimeHours)
	assert.Equal(t, 9.0, calc.TotalWorkedHours)
}

func TestCalculateMonthNoOvertimeOnPartialDays(t *testing.T) {
	sessions := newFakeSessionRepo()
	checkIn := time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.February, 2, 18, 0, 0, 0, time.UTC)
	_, _ = sessions.Upsert(context.Background(), attendance.SessionRecord{
		EmployeeID: "emp-1",
		Date:       date(2),
		Slot:       attendance.SlotMorning,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     attendance.SessionPartial,
	})

	service := NewAttendanceService(calendar.DefaultPolicy(), sessions, newFakeEmployeeRepo("emp-1"))

	calc, err := service.CalculateMonth(context.Background(), "emp-1", 2026, time.February)
	require.NoError(t, err)

	assert.Equal(t, 1.0, calc.PartialDays)
	assert.Equal(t, 0.0, calc.OvertimeHours)
}

func TestCalculateMonthSkipsNonWorkDays(t *testing.T) {
	sessions := newFakeSessionRepo()
	// February 7 2026 is a Saturday.
	seedFullDay(sessions, "emp-1", 7)

	service := NewAttendanceService(calendar.DefaultPolicy(), sessions, newFakeEmployeeRepo("emp-1"))

	calc, err := service.CalculateMonth(context.Background(), "emp-1", 2026, time.February)
	require.NoError(t, err)

	assert.Equal(t, 0.0, calc.FullDays)
	assert.Equal(t, 0.0, calc.TotalWorkedHours)
	assert.Equal(t, 20, calc.AbsentDays)
}

func TestCalculateMonthCorruptSession(t *testing.T) {
	sessions := newFakeSessionRepo()
	checkIn := time.Date(2026, time.February, 2, 12, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.February, 2, 8, 0, 0, 0, time.UTC)
	_, _ = sessions.Upsert(context.Background(), attendance.SessionRecord{
		ID:         "bad-session",
		EmployeeID: "emp-1",
		Date:       date(2),
		Slot:       attendance.SlotMorning,
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     attendance.SessionFull,
	})

	service := NewAttendanceService(calendar.DefaultPolicy(), sessions, newFakeEmployeeRepo("emp-1"))

	_, err := service.CalculateMonth(context.Background(), "emp-1", 2026, time.February)
	assert.ErrorIs(t, err, attendance.ErrCorruptSession)
	assert.ErrorContains(t, err, "bad-session")
}

func TestCalculateMonthInvalidMonth(t *testing.T) {
	service := NewAttendanceService(calendar.DefaultPolicy(), newFakeSessionRepo(), newFakeEmployeeRepo("emp-1"))

	_, err := service.CalculateMonth(context.Background(), "emp-1", 2026, time.Month(13))
	assert.ErrorIs(t, err, attendance.ErrInvalidPeriod)
}

func TestCalculateMonthUnknownEmployee(t *testing.T) {
	service := NewAttendanceService(calendar.DefaultPolicy(), newFakeSessionRepo(), newFakeEmployeeRepo())

	_, err := service.CalculateMonth(context.Background(), "ghost", 2026, time.February)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
