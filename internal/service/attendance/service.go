package attendance

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	policy *calendar.Policy
	attendance.SessionRepository
	employee.EmployeeRepository
}

func NewAttendanceService(
	policy *calendar.Policy,
	sessionRepository attendance.SessionRepository,
	employeeRepository employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		policy:             policy,
		SessionRepository:  sessionRepository,
		EmployeeRepository: employeeRepository,
	}
}

// CalculateMonth implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CalculateMonth(ctx context.Context, employeeID string, year int, month time.Month) (attendance.Calculation, error) {
	if month < time.January || month > time.December {
		return attendance.Calculation{}, attendance.ErrInvalidPeriod
	}

	if _, err := s.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return attendance.Calculation{}, err
	}

	monthStart, monthEnd := calendar.MonthBounds(year, month)

	sessions, err := s.SessionRepository.GetByEmployeeAndRange(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return attendance.Calculation{}, fmt.Errorf("failed to get attendance sessions: %w", err)
	}

	type slotPair map[attendance.SessionSlot]attendance.SessionRecord
	byDay := make(map[string]slotPair, len(sessions))
	for _, session := range sessions {
		key := session.Date.Format("2006-01-02")
		if byDay[key] == nil {
			byDay[key] = make(slotPair, 2)
		}
		byDay[key][session.Slot] = session
	}

	calc := attendance.Calculation{
		EmployeeID: employeeID,
		Year:       year,
		Month:      month,
	}

	expectedMinutes := s.policy.ExpectedMinutesPerDay()
	var workedMinutes, overtimeMinutes int

	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		// Weekends and holidays are skipped outright; sessions logged on
		// them never reach the totals.
		if !s.policy.IsWorkDay(d) {
			continue
		}
		calc.ExpectedWorkDays++

		slots := byDay[d.Format("2006-01-02")]
		morning, hasAM := presentSlot(slots, attendance.SlotMorning)
		afternoon, hasPM := presentSlot(slots, attendance.SlotAfternoon)

		morningMinutes, err := slotMinutes(morning, hasAM)
		if err != nil {
			return attendance.Calculation{}, err
		}
		afternoonMinutes, err := slotMinutes(afternoon, hasPM)
		if err != nil {
			return attendance.Calculation{}, err
		}

		day := attendance.DaySummary{
			Date:            d,
			ExpectedMinutes: expectedMinutes,
		}

		switch {
		case hasAM && morning.Status == attendance.SessionLeaveHalf:
			day.Status = attendance.DayLeaveHalfAM
			day.WorkedMinutes = afternoonMinutes
			calc.FullDays += 0.5
			calc.PartialDays += 0.5
			workedMinutes += afternoonMinutes

		case hasPM && afternoon.Status == attendance.SessionLeaveHalf:
			day.Status = attendance.DayLeaveHalfPM
			day.WorkedMinutes = morningMinutes
			calc.FullDays += 0.5
			calc.PartialDays += 0.5
			workedMinutes += morningMinutes

		case hasAM && hasPM && morning.Status == attendance.SessionLeaveFull && afternoon.Status == attendance.SessionLeaveFull:
			day.Status = attendance.DayLeaveFull
			day.WorkedMinutes = expectedMinutes
			calc.FullDays++
			workedMinutes += expectedMinutes

		case hasAM && hasPM && morning.Status == attendance.SessionReward && afternoon.Status == attendance.SessionReward:
			day.Status = attendance.DayReward
			day.WorkedMinutes = expectedMinutes
			calc.FullDays++
			workedMinutes += expectedMinutes

		case hasAM && hasPM:
			day.Status = attendance.DayFull
			day.WorkedMinutes = morningMinutes + afternoonMinutes
			calc.FullDays++
			workedMinutes += day.WorkedMinutes
			if day.WorkedMinutes > expectedMinutes {
				overtimeMinutes += day.WorkedMinutes - expectedMinutes
			}

		case hasAM:
			day.Status = attendance.DayHalfAM
			day.WorkedMinutes = morningMinutes
			calc.PartialDays++
			workedMinutes += morningMinutes

		case hasPM:
			day.Status = attendance.DayHalfPM
			day.WorkedMinutes = afternoonMinutes
			calc.PartialDays++
			workedMinutes += afternoonMinutes

		default:
			day.Status = attendance.DayAbsent
			calc.AbsentDays++
		}

		calc.Days = append(calc.Days, day)
	}

	calc.ExpectedWorkHours = float64(calc.ExpectedWorkDays * s.policy.StandardHoursPerDay)
	calc.TotalWorkedDays = calc.FullDays + calc.PartialDays*0.5
	calc.TotalWorkedHours = round2(float64(workedMinutes) / calendar.MinutesPerHour)
	calc.AbsentHours = float64(calc.AbsentDays * s.policy.StandardHoursPerDay)
	calc.OvertimeHours = round2(float64(overtimeMinutes) / calendar.MinutesPerHour)

	return calc, nil
}

// presentSlot returns the slot's record when it holds usable data. A stored
// ABSENT marker is treated the same as a missing row.
func presentSlot(slots map[attendance.SessionSlot]attendance.SessionRecord, slot attendance.SessionSlot) (attendance.SessionRecord, bool) {
	record, ok := slots[slot]
	if !ok || record.Status == attendance.SessionAbsent {
		return attendance.SessionRecord{}, false
	}
	return record, true
}

// slotMinutes resolves the worked minutes of one session, preferring the
// check-in/check-out pair when both timestamps exist.
func slotMinutes(record attendance.SessionRecord, present bool) (int, error) {
	if !present {
		return 0, nil
	}
	if record.CheckIn != nil && record.CheckOut != nil {
		if record.CheckOut.Before(*record.CheckIn) {
			return 0, fmt.Errorf("session %s on %s: %w",
				record.ID, record.Date.Format("2006-01-02"), attendance.ErrCorruptSession)
		}
		return int(record.CheckOut.Sub(*record.CheckIn).Minutes()), nil
	}
	return record.WorkedMinutes, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
