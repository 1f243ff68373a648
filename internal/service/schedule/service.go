package schedule

import (
	"context"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	scheduleRepo schedule.ScheduleRepository
}

func NewScheduleService(scheduleRepo schedule.ScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{scheduleRepo: scheduleRepo}
}

// Upsert implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) Upsert(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	saved, err := s.scheduleRepo.Upsert(ctx, schedule.RunSchedule{
		PayrollGroup: employee.PayrollGroup(req.PayrollGroup),
		RunDay:       req.RunDay,
		RunHour:      req.RunHour,
		Enabled:      req.Enabled,
	})
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return schedule.ToScheduleResponse(saved), nil
}

// List implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) List(ctx context.Context) ([]schedule.ScheduleResponse, error) {
	schedules, err := s.scheduleRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]schedule.ScheduleResponse, 0, len(schedules))
	for _, sc := range schedules {
		responses = append(responses, schedule.ToScheduleResponse(sc))
	}

	return responses, nil
}
