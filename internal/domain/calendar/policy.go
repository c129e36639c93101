// Package calendar defines the work-calendar policy shared by every payroll
// aggregator: which dates count as work days, how long a standard day is,
// and how overtime is multiplied. A Policy is immutable after construction.
package calendar

import "time"

const (
	// MinutesPerHour is the conversion factor for worked-time totals.
	MinutesPerHour = 60

	// DefaultStandardHoursPerDay is the standard length of a full work day.
	DefaultStandardHoursPerDay = 8

	// DefaultOvertimeMultiplier is applied to the hourly rate for overtime pay.
	DefaultOvertimeMultiplier = 1.25

	// DefaultAnnualLeaveAllowance is the paid-leave allowance in days per year
	// for employees whose profile does not override it.
	DefaultAnnualLeaveAllowance = 26
)

type Policy struct {
	StandardHoursPerDay  int
	OvertimeMultiplier   float64
	AnnualLeaveAllowance float64

	weekend  map[time.Weekday]bool
	holidays map[string]bool
}

// NewPolicy builds a Policy. Holidays are YYYY-MM-DD strings; malformed
// entries are expected to have been rejected by configuration validation.
func NewPolicy(standardHoursPerDay int, overtimeMultiplier float64, weekendDays []time.Weekday, holidays []string, annualLeaveAllowance float64) *Policy {
	p := &Policy{
		StandardHoursPerDay:  standardHoursPerDay,
		OvertimeMultiplier:   overtimeMultiplier,
		AnnualLeaveAllowance: annualLeaveAllowance,
		weekend:              make(map[time.Weekday]bool, len(weekendDays)),
		holidays:             make(map[string]bool, len(holidays)),
	}
	for _, d := range weekendDays {
		p.weekend[d] = true
	}
	for _, h := range holidays {
		p.holidays[h] = true
	}
	return p
}

// DefaultPolicy returns the standard 8h/day, Saturday-Sunday weekend policy
// with no public holidays.
func DefaultPolicy() *Policy {
	return NewPolicy(
		DefaultStandardHoursPerDay,
		DefaultOvertimeMultiplier,
		[]time.Weekday{time.Saturday, time.Sunday},
		nil,
		DefaultAnnualLeaveAllowance,
	)
}

// IsWorkDay reports whether date is a work day: neither a configured weekend
// day nor a public holiday.
func (p *Policy) IsWorkDay(date time.Time) bool {
	if p.weekend[date.Weekday()] {
		return false
	}
	return !p.holidays[date.Format("2006-01-02")]
}

// CountWorkDaysInMonth counts the work days in the given month. The result is
// both the expected-work-days denominator of the attendance aggregation and
// the proration denominator for the daily rate; keeping a single source for
// the two keeps salary results internally consistent.
func (p *Policy) CountWorkDaysInMonth(year int, month time.Month) int {
	start, end := MonthBounds(year, month)
	return p.CountWorkDaysBetween(start, end)
}

// CountWorkDaysBetween counts work days in the inclusive [start, end] range.
func (p *Policy) CountWorkDaysBetween(start, end time.Time) int {
	count := 0
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if p.IsWorkDay(d) {
			count++
		}
	}
	return count
}

// ExpectedMinutesPerDay is the expected worked minutes of one full work day.
func (p *Policy) ExpectedMinutesPerDay() int {
	return p.StandardHoursPerDay * MinutesPerHour
}

// MonthBounds returns the first and last day of a month at midnight UTC.
func MonthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// ClipToMonth clips the inclusive [start, end] range to the given month's
// bounds. ok is false when the range does not intersect the month.
func ClipToMonth(start, end time.Time, year int, month time.Month) (clippedStart, clippedEnd time.Time, ok bool) {
	monthStart, monthEnd := MonthBounds(year, month)
	if end.Before(monthStart) || start.After(monthEnd) {
		return time.Time{}, time.Time{}, false
	}
	clippedStart = start
	if clippedStart.Before(monthStart) {
		clippedStart = monthStart
	}
	clippedEnd = end
	if clippedEnd.After(monthEnd) {
		clippedEnd = monthEnd
	}
	return clippedStart, clippedEnd, true
}
