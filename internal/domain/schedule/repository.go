package schedule

import (
	"context"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
)

// ScheduleRepository defines data access methods for the run schedule
// registry.
type ScheduleRepository interface {
	Upsert(ctx context.Context, s RunSchedule) (RunSchedule, error)
	List(ctx context.Context) ([]RunSchedule, error)
	ListEnabled(ctx context.Context) ([]RunSchedule, error)
	MarkRun(ctx context.Context, group employee.PayrollGroup, month string) error
}
