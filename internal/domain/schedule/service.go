package schedule

import "context"

// ScheduleService owns the per-group run schedule registry.
type ScheduleService interface {
	Upsert(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
	List(ctx context.Context) ([]ScheduleResponse, error)
}
