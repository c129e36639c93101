package leave

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chraietrayen/PFE/internal/domain/attendance"
	"github.com/chraietrayen/PFE/internal/domain/calendar"
	"github.com/chraietrayen/PFE/internal/domain/employee"
	"github.com/chraietrayen/PFE/internal/domain/leave"
	"github.com/chraietrayen/PFE/internal/pkg/validator"
)

type fakeLeaveRepo struct {
	records map[string]leave.LeaveRecord
	seq     int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{records: make(map[string]leave.LeaveRecord)}
}

func (r *fakeLeaveRepo) Create(_ context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	r.seq++
	record.ID = fmt.Sprintf("leave-%d", r.seq)
	r.records[record.ID] = record
	return record, nil
}

func (r *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRecord, error) {
	record, ok := r.records[id]
	if !ok {
		return leave.LeaveRecord{}, leave.ErrLeaveNotFound
	}
	return record, nil
}

func (r *fakeLeaveRepo) Update(_ context.Context, record leave.LeaveRecord) (leave.LeaveRecord, error) {
	if _, ok := r.records[record.ID]; !ok {
		return leave.LeaveRecord{}, leave.ErrLeaveNotFound
	}
	r.records[record.ID] = record
	return record, nil
}

func (r *fakeLeaveRepo) GetOverlapping(_ context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRecord, error) {
	var result []leave.LeaveRecord
	for _, record := range r.records {
		if record.EmployeeID != employeeID {
			continue
		}
		if record.Status != leave.StatusPending && record.Status != leave.StatusApproved {
			continue
		}
		if !record.StartDate.After(end) && !record.EndDate.Before(start) {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeLeaveRepo) GetApprovedInRange(_ context.Context, employeeID string, start, end time.Time) ([]leave.LeaveRecord, error) {
	var result []leave.LeaveRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.Status == leave.StatusApproved &&
			!record.StartDate.After(end) && !record.EndDate.Before(start) {
			result = append(result, record)
		}
	}
	return result, nil
}

func (r *fakeLeaveRepo) GetByYearAndStatus(_ context.Context, employeeID string, year int, status leave.LeaveStatus) ([]leave.LeaveRecord, error) {
	var result []leave.LeaveRecord
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.StartDate.Year() == year && record.Status == status {
			result = append(result, record)
		}
	}
	return result, nil
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
		result = append(result, emp)
	}
	return result, nil
}

type recordingMaterializer struct {
	approvals []attendance.LeaveApprovedEvent
	grants    []attendance.RewardGrantedEvent
	revokes   []attendance.RewardRevokedEvent
}

func (m *recordingMaterializer) LeaveApproved(_ context.Context, event attendance.LeaveApprovedEvent) error {
	m.approvals = append(m.approvals, event)
	return nil
}

func (m *recordingMaterializer) RewardGranted(_ context.Context, event attendance.RewardGrantedEvent) error {
	m.grants = append(m.grants, event)
	return nil
}

func (m *recordingMaterializer) RewardRevoked(_ context.Context, event attendance.RewardRevokedEvent) error {
	m.revokes = append(m.revokes, event)
	return nil
}

type passThroughTx struct{}

func (passThroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type leaveFixture struct {
	repo         *fakeLeaveRepo
	materializer *recordingMaterializer
	service      leave.LeaveService
}

func newLeaveFixture() *leaveFixture {
	repo := newFakeLeaveRepo()
	materializer := &recordingMaterializer{}
	return &leaveFixture{
		repo:         repo,
		materializer: materializer,
		service:      NewLeaveService(calendar.DefaultPolicy(), passThroughTx{}, repo, newFakeEmployeeRepo("emp-1"), materializer),
	}
}

func seedLeave(repo *fakeLeaveRepo, leaveType leave.LeaveType, status leave.LeaveStatus, start, end string, duration float64) {
	startDate, _ := time.Parse("2006-01-02", start)
	endDate, _ := time.Parse("2006-01-02", end)
	_, _ = repo.Create(context.Background(), leave.LeaveRecord{
		EmployeeID:   "emp-1",
		Type:         leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		DurationDays: duration,
		Status:       status,
	})
}

func TestCreateLeaveRequestHalfDayNeedsSingleDate(t *testing.T) {
	f := newLeaveFixture()

	_, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-02",
		EndDate:    "2026-02-03",
		HalfDay:    true,
		Slot:       "MORNING",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestCreateLeaveRequestHalfDayNeedsSlot(t *testing.T) {
	f := newLeaveFixture()

	_, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-02",
		EndDate:    "2026-02-02",
		HalfDay:    true,
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestCreateLeaveRequestEndBeforeStart(t *testing.T) {
	f := newLeaveFixture()

	_, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-05",
		EndDate:    "2026-02-02",
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestCreateLeaveRequestNoWorkingDays(t *testing.T) {
	f := newLeaveFixture()

	// February 7-8 2026 is a weekend.
	_, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-07",
		EndDate:    "2026-02-08",
	})

	assert.ErrorIs(t, err, leave.ErrNoWorkingDays)
}

func TestCreateLeaveRequestOverlapRejected(t *testing.T) {
	f := newLeaveFixture()
	seedLeave(f.repo, leave.TypePaid, leave.StatusApproved, "2026-02-06", "2026-02-06", 1)

	_, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-05",
		EndDate:    "2026-02-07",
	})

	assert.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestCreateLeaveRequestInsufficientBalance(t *testing.T) {
	f := newLeaveFixture()
	seedLeave(f.repo, leave.TypePaid, leave.StatusApproved, "2026-01-05", "2026-01-16", 10)
	seedLeave(f.repo, leave.TypePaid, leave.StatusPending, "2026-03-02", "2026-03-04", 3)

	// February 2 through 19 covers 14 work days; remaining is 26-10-3=13.
	_, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-02",
		EndDate:    "2026-02-19",
	})

	var balanceErr *leave.InsufficientBalanceError
	require.ErrorAs(t, err, &balanceErr)
	assert.Equal(t, 13.0, balanceErr.Remaining)
	assert.Equal(t, 14.0, balanceErr.Requested)
	assert.Contains(t, err.Error(), "remaining: 13, requested: 14")
}

func TestCreateLeaveRequestUnpaidSkipsBalanceCheck(t *testing.T) {
	f := newLeaveFixture()
	seedLeave(f.repo, leave.TypePaid, leave.StatusApproved, "2026-01-05", "2026-01-16", 26)

	created, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "UNPAID",
		StartDate:  "2026-02-02",
		EndDate:    "2026-02-06",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status)
	assert.True(t, created.ImpactsSalary)
	assert.Equal(t, 5.0, created.DurationDays)
}

func TestCreateLeaveRequestSuccess(t *testing.T) {
	f := newLeaveFixture()

	created, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-02",
		EndDate:    "2026-02-04",
		Reason:     "vacances",
	})
	require.NoError(t, err)

	assert.Equal(t, leave.StatusPending, created.Status)
	assert.Equal(t, 3.0, created.DurationDays)
	assert.False(t, created.ImpactsSalary)
	assert.Empty(t, f.materializer.approvals, "creation must not materialize sessions")
}

func TestApproveLeave(t *testing.T) {
	f := newLeaveFixture()

	created, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-02",
		EndDate:    "2026-02-04",
	})
	require.NoError(t, err)

	approved, err := f.service.Approve(context.Background(), created.ID, "manager-1")
	require.NoError(t, err)

	assert.Equal(t, leave.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, "manager-1", *approved.ApprovedBy)
	assert.NotNil(t, approved.ApprovedAt)

	require.Len(t, f.materializer.approvals, 1)
	assert.Equal(t, created.StartDate, f.materializer.approvals[0].StartDate)

	_, err = f.service.Approve(context.Background(), created.ID, "manager-1")
	assert.ErrorIs(t, err, leave.ErrLeaveAlreadyProcessed)
}

func TestRejectLeave(t *testing.T) {
	f := newLeaveFixture()

	created, err := f.service.CreateRequest(context.Background(), &leave.CreateLeaveRequest{
		EmployeeID: "emp-1",
		Type:       "PAID",
		StartDate:  "2026-02-02",
		EndDate:    "2026-02-04",
	})
	require.NoError(t, err)

	rejected, err := f.service.Reject(context.Background(), created.ID, "effectif insuffisant")
	require.NoError(t, err)

	assert.Equal(t, leave.StatusRejected, rejected.Status)
	assert.Equal(t, "REFUSE", string(rejected.Status))
	require.NotNil(t, rejected.RejectReason)
	assert.Equal(t, "effectif insuffisant", *rejected.RejectReason)
	assert.Empty(t, f.materializer.approvals, "rejection must not materialize sessions")
}

func TestGetMonthlySummaryClipsAndBuckets(t *testing.T) {
	f := newLeaveFixture()
	// Spans January into February; only Feb 2-3 are February work days.
	seedLeave(f.repo, leave.TypePaid, leave.StatusApproved, "2026-01-28", "2026-02-03", 5)
	seedLeave(f.repo, leave.TypeUnpaid, leave.StatusApproved, "2026-02-10", "2026-02-11", 2)
	seedLeave(f.repo, leave.TypeMaladie, leave.StatusApproved, "2026-02-16", "2026-02-17", 2)
	seedLeave(f.repo, leave.TypeMaternite, leave.StatusApproved, "2026-02-23", "2026-02-24", 2)
	seedLeave(f.repo, leave.TypePreavis, leave.StatusApproved, "2026-02-26", "2026-02-26", 1)
	// Pending leaves never count.
	seedLeave(f.repo, leave.TypePaid, leave.StatusPending, "2026-02-19", "2026-02-19", 1)

	summary, err := f.service.GetMonthlySummary(context.Background(), "emp-1", 2026, time.February)
	require.NoError(t, err)

	assert.Equal(t, 2.0, summary.PaidDays)
	assert.Equal(t, 2.0, summary.UnpaidDays)
	assert.Equal(t, 2.0, summary.SickDays)
	assert.Equal(t, 2.0, summary.MaternityDays)
	assert.Equal(t, 1.0, summary.OtherDays)
	assert.Equal(t, 9.0, summary.TotalDays)
	assert.Equal(t, 2.0, summary.SalaryDeductionDays)
}

func TestGetMonthlySummaryHalfDay(t *testing.T) {
	f := newLeaveFixture()
	slot := attendance.SlotMorning
	startDate, _ := time.Parse("2006-01-02", "2026-02-12")
	_, _ = f.repo.Create(context.Background(), leave.LeaveRecord{
		EmployeeID:   "emp-1",
		Type:         leave.TypePaid,
		StartDate:    startDate,
		EndDate:      startDate,
		HalfDay:      true,
		Slot:         &slot,
		DurationDays: 0.5,
		Status:       leave.StatusApproved,
	})

	summary, err := f.service.GetMonthlySummary(context.Background(), "emp-1", 2026, time.February)
	require.NoError(t, err)

	assert.Equal(t, 0.5, summary.PaidDays)
	assert.Equal(t, 0.5, summary.TotalDays)
}

func TestGetBalance(t *testing.T) {
	f := newLeaveFixture()
	seedLeave(f.repo, leave.TypePaid, leave.StatusApproved, "2026-01-05", "2026-01-16", 10)
	seedLeave(f.repo, leave.TypePaid, leave.StatusPending, "2026-03-02", "2026-03-04", 3)
	// Sick leave never consumes the allowance.
	seedLeave(f.repo, leave.TypeMaladie, leave.StatusApproved, "2026-04-06", "2026-04-08", 3)

	balance, err := f.service.GetBalance(context.Background(), "emp-1", 2026)
	require.NoError(t, err)

	assert.Equal(t, 26.0, balance.AnnualAllowance)
	assert.Equal(t, 10.0, balance.Used)
	assert.Equal(t, 3.0, balance.Pending)
	assert.Equal(t, 13.0, balance.Remaining)
	assert.Equal(t, 10.0, balance.ByType[leave.TypePaid])
	assert.Equal(t, 3.0, balance.ByType[leave.TypeMaladie])
}

func TestGetBalanceUsesEmployeeAllowanceOverride(t *testing.T) {
	repo := newFakeLeaveRepo()
	employees := newFakeEmployeeRepo()
	allowance := 30.0
	_, _ = employees.Create(context.Background(), employee.Employee{ID: "emp-2", Active: true, AnnualLeaveAllowance: &allowance})
	service := NewLeaveService(calendar.DefaultPolicy(), passThroughTx{}, repo, employees, &recordingMaterializer{})

	balance, err := service.GetBalance(context.Background(), "emp-2", 2026)
	require.NoError(t, err)

	assert.Equal(t, 30.0, balance.AnnualAllowance)
	assert.Equal(t, 30.0, balance.Remaining)
}
