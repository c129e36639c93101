package attendance

import "time"

// SessionSlot is the half-day unit of attendance tracking.
type SessionSlot string

const (
	SlotMorning   SessionSlot = "MORNING"
	SlotAfternoon SessionSlot = "AFTERNOON"
)

// SessionStatus tags one observed or synthetic half-day session.
type SessionStatus string

const (
	SessionFull      SessionStatus = "FULL"
	SessionPartial   SessionStatus = "PARTIAL"
	SessionReward    SessionStatus = "REWARD"
	SessionLeaveFull SessionStatus = "LEAVE_FULL"
	SessionLeaveHalf SessionStatus = "LEAVE_HALF"
	SessionAbsent    SessionStatus = "ABSENT"
)

// LeaveCreditMinutes is the worked-minutes credit written on each synthetic
// leave or reward session slot. The value assumes the 8h/day, 4h/slot
// schedule and is not derived from the policy's StandardHoursPerDay.
const LeaveCreditMinutes = 240

// SessionRecord is one half-day attendance session. At most one record
// exists per (employee, date, slot); synthetic leave/reward sessions share
// the same keyspace so a day never carries both a raw and a leave status
// for one slot.
type SessionRecord struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Slot       SessionSlot

	CheckIn  *time.Time
	CheckOut *time.Time

	WorkedMinutes int
	Status        SessionStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayStatus is the merged classification of both slots for one date.
type DayStatus string

const (
	DayFull        DayStatus = "FULL_DAY"
	DayHalfAM      DayStatus = "HALF_DAY_AM"
	DayHalfPM      DayStatus = "HALF_DAY_PM"
	DayLeaveFull   DayStatus = "LEAVE_FULL"
	DayLeaveHalfAM DayStatus = "LEAVE_HALF_AM"
	DayLeaveHalfPM DayStatus = "LEAVE_HALF_PM"
	DayReward      DayStatus = "REWARD"
	DayAbsent      DayStatus = "ABSENT"
)

// DaySummary is one work day's classification. Non-work days are never
// summarized. Derived per query, never persisted.
type DaySummary struct {
	Date            time.Time `json:"date"`
	Status          DayStatus `json:"status"`
	WorkedMinutes   int       `json:"worked_minutes"`
	ExpectedMinutes int       `json:"expected_minutes"`
}

// Calculation is the per-employee monthly attendance aggregate. Immutable
// once produced.
type Calculation struct {
	EmployeeID string     `json:"employee_id"`
	Year       int        `json:"year"`
	Month      time.Month `json:"month"`

	ExpectedWorkDays  int     `json:"expected_work_days"`
	ExpectedWorkHours float64 `json:"expected_work_hours"`

	// TotalWorkedDays counts half days as 0.5.
	TotalWorkedDays  float64 `json:"total_worked_days"`
	TotalWorkedHours float64 `json:"total_worked_hours"`

	FullDays    float64 `json:"full_days"`
	PartialDays float64 `json:"partial_days"`
	AbsentDays  int     `json:"absent_days"`
	AbsentHours float64 `json:"absent_hours"`

	OvertimeHours float64 `json:"overtime_hours"`

	Days []DaySummary `json:"days"`
}

// LeaveApprovedEvent is emitted when a leave request is approved; the
// session materializer consumes it to write synthetic sessions.
type LeaveApprovedEvent struct {
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	HalfDay    bool
	Slot       SessionSlot
}

// RewardGrantedEvent is emitted when a reward day is granted.
type RewardGrantedEvent struct {
	EmployeeID string
	Date       time.Time
}

// RewardRevokedEvent is emitted when a reward day is revoked.
type RewardRevokedEvent struct {
	EmployeeID string
	Date       time.Time
}
