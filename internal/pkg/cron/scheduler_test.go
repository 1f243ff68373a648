package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/schedule"
)

type stubScheduleRepo struct {
	schedules []schedule.RunSchedule
	marked    []string
}

func (r *stubScheduleRepo) Upsert(ctx context.Context, s schedule.RunSchedule) (schedule.RunSchedule, error) {
	return s, nil
}

func (r *stubScheduleRepo) List(ctx context.Context) ([]schedule.RunSchedule, error) {
	return r.schedules, nil
}

func (r *stubScheduleRepo) ListEnabled(ctx context.Context) ([]schedule.RunSchedule, error) {
	enabled := make([]schedule.RunSchedule, 0, len(r.schedules))
	for _, s := range r.schedules {
		if s.Enabled {
			enabled = append(enabled, s)
		}
	}
	return enabled, nil
}

func (r *stubScheduleRepo) MarkRun(ctx context.Context, group employee.PayrollGroup, month string) error {
	r.marked = append(r.marked, string(group)+"/"+month)
	return nil
}

type stubPayrollService struct {
	requests    []payroll.GenerateRequest
	generateErr error
}

func (s *stubPayrollService) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error) {
	s.requests = append(s.requests, req)
	if s.generateErr != nil {
		return payroll.GenerateResponse{}, s.generateErr
	}
	return payroll.GenerateResponse{Month: req.Month, PayrollGroup: req.PayrollGroup, Count: 1}, nil
}

func (s *stubPayrollService) GenerateForEmployee(ctx context.Context, req payroll.GenerateEmployeeRequest) (payroll.SettlementRecordResponse, error) {
	return payroll.SettlementRecordResponse{}, nil
}

func (s *stubPayrollService) Undo(ctx context.Context, req payroll.UndoRequest) (payroll.UndoResponse, error) {
	return payroll.UndoResponse{}, nil
}

func (s *stubPayrollService) Recalculate(ctx context.Context, req payroll.RecalculateRequest) (payroll.GenerateResponse, error) {
	return payroll.GenerateResponse{}, nil
}

func (s *stubPayrollService) ListRecords(ctx context.Context, month string) ([]payroll.SettlementRecordResponse, error) {
	return nil, nil
}

func TestRunDueSchedules(t *testing.T) {
	now := time.Date(2026, 5, 28, 10, 0, 0, 0, time.UTC)

	repo := &stubScheduleRepo{schedules: []schedule.RunSchedule{
		{PayrollGroup: employee.GroupCut, RunDay: 25, RunHour: 8, Enabled: true},
		{PayrollGroup: employee.GroupNoCut, RunDay: 25, RunHour: 8, Enabled: true, LastRunMonth: "2026-05"},
		{PayrollGroup: employee.GroupMonthly, RunDay: 30, RunHour: 8, Enabled: true},
	}}
	svc := &stubPayrollService{}
	s := NewScheduler(time.Minute, repo, svc)

	require.NoError(t, s.RunDueSchedules(context.Background(), now))

	// Only the cut group is due: no-cut already ran this month and the
	// monthly group's run day has not arrived.
	require.Len(t, svc.requests, 1)
	assert.Equal(t, "2026-05", svc.requests[0].Month)
	assert.Equal(t, string(employee.GroupCut), svc.requests[0].PayrollGroup)
	assert.Equal(t, "sched-cut-2026-05", svc.requests[0].IdempotencyKey)
	assert.Equal(t, []string{"cut/2026-05"}, repo.marked)
}

func TestRunDueSchedulesDuplicateRunStillMarks(t *testing.T) {
	now := time.Date(2026, 5, 28, 10, 0, 0, 0, time.UTC)

	repo := &stubScheduleRepo{schedules: []schedule.RunSchedule{
		{PayrollGroup: employee.GroupCut, RunDay: 25, RunHour: 8, Enabled: true},
	}}
	svc := &stubPayrollService{generateErr: payroll.ErrDuplicateRun}
	s := NewScheduler(time.Minute, repo, svc)

	require.NoError(t, s.RunDueSchedules(context.Background(), now))
	assert.Equal(t, []string{"cut/2026-05"}, repo.marked)
}

func TestRunDueSchedulesFailureLeavesScheduleArmed(t *testing.T) {
	now := time.Date(2026, 5, 28, 10, 0, 0, 0, time.UTC)

	repo := &stubScheduleRepo{schedules: []schedule.RunSchedule{
		{PayrollGroup: employee.GroupCut, RunDay: 25, RunHour: 8, Enabled: true},
	}}
	svc := &stubPayrollService{generateErr: errors.New("database down")}
	s := NewScheduler(time.Minute, repo, svc)

	require.NoError(t, s.RunDueSchedules(context.Background(), now))
	assert.Empty(t, repo.marked)
}
