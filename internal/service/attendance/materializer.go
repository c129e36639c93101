package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
)

type SessionMaterializerImpl struct {
	policy *calendar.Policy
	attendance.SessionRepository
}

func NewSessionMaterializer(policy *calendar.Policy, sessionRepository attendance.SessionRepository) attendance.SessionMaterializer {
	return &SessionMaterializerImpl{
		policy:            policy,
		SessionRepository: sessionRepository,
	}
}

// LeaveApproved implements attendance.SessionMaterializer. It writes one
// LEAVE_HALF session for a half-day leave, or both LEAVE_FULL slots for
// every work day of the leave range. Re-approving an already-approved
// leave upserts into the same (employee, date, slot) keys, so the
// operation is idempotent.
func (m *SessionMaterializerImpl) LeaveApproved(ctx context.Context, event attendance.LeaveApprovedEvent) error {
	if event.HalfDay {
		if !m.policy.IsWorkDay(event.StartDate) {
			return nil
		}
		return m.upsertSynthetic(ctx, event.EmployeeID, event.StartDate, event.Slot, attendance.SessionLeaveHalf)
	}

	for d := event.StartDate; !d.After(event.EndDate); d = d.AddDate(0, 0, 1) {
		if !m.policy.IsWorkDay(d) {
			continue
		}
		if err := m.upsertSynthetic(ctx, event.EmployeeID, d, attendance.SlotMorning, attendance.SessionLeaveFull); err != nil {
			return err
		}
		if err := m.upsertSynthetic(ctx, event.EmployeeID, d, attendance.SlotAfternoon, attendance.SessionLeaveFull); err != nil {
			return err
		}
	}
	return nil
}

// RewardGranted implements attendance.SessionMaterializer. Non-work days
// get no sessions.
func (m *SessionMaterializerImpl) RewardGranted(ctx context.Context, event attendance.RewardGrantedEvent) error {
	if !m.policy.IsWorkDay(event.Date) {
		return nil
	}
	if err := m.upsertSynthetic(ctx, event.EmployeeID, event.Date, attendance.SlotMorning, attendance.SessionReward); err != nil {
		return err
	}
	return m.upsertSynthetic(ctx, event.EmployeeID, event.Date, attendance.SlotAfternoon, attendance.SessionReward)
}

// RewardRevoked implements attendance.SessionMaterializer.
func (m *SessionMaterializerImpl) RewardRevoked(ctx context.Context, event attendance.RewardRevokedEvent) error {
	if err := m.SessionRepository.DeleteByStatus(ctx, event.EmployeeID, event.Date, attendance.SessionReward); err != nil {
		return fmt.Errorf("failed to delete reward sessions: %w", err)
	}
	return nil
}

func (m *SessionMaterializerImpl) upsertSynthetic(ctx context.Context, employeeID string, date time.Time, slot attendance.SessionSlot, status attendance.SessionStatus) error {
	_, err := m.SessionRepository.Upsert(ctx, attendance.SessionRecord{
		EmployeeID:    employeeID,
		Date:          date,
		Slot:          slot,
		WorkedMinutes: attendance.LeaveCreditMinutes,
		Status:        status,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert synthetic session: %w", err)
	}
	return nil
}
