package attendance

import "context"

// AttendanceRepository defines data access methods for attendance periods.
type AttendanceRepository interface {
	Upsert(ctx context.Context, period AttendancePeriod) (AttendancePeriod, error)
	GetByEmployeeMonth(ctx context.Context, employeeID, month string) (AttendancePeriod, error)
	ListByMonth(ctx context.Context, month string) ([]AttendancePeriod, error)
}
