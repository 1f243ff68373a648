package attendance

import (
	"context"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// Upsert records an attendance period. A period crossing a month boundary
// is split pro-rata into one record per month before anything is written.
func (s *AttendanceServiceImpl) Upsert(ctx context.Context, req attendance.UpsertAttendanceRequest) ([]attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(req.PeriodStart)
	end, _ := validator.IsValidDate(req.PeriodEnd)

	shares := attendance.SplitPeriod(start, end, req.DaysWorked, req.DaysAbsent)
	if len(shares) == 0 {
		return nil, attendance.ErrInvalidPeriod
	}

	responses := make([]attendance.AttendanceResponse, 0, len(shares))
	for _, share := range shares {
		shareStart, shareEnd := share.Start, share.End
		saved, err := s.attendanceRepo.Upsert(ctx, attendance.AttendancePeriod{
			EmployeeID:  req.EmployeeID,
			Month:       share.Month,
			DaysWorked:  share.DaysWorked,
			DaysAbsent:  share.DaysAbsent,
			PeriodStart: &shareStart,
			PeriodEnd:   &shareEnd,
		})
		if err != nil {
			return nil, err
		}
		responses = append(responses, attendance.ToAttendanceResponse(saved))
	}

	return responses, nil
}

// ListByMonth returns every attendance period recorded for a month.
func (s *AttendanceServiceImpl) ListByMonth(ctx context.Context, month string) ([]attendance.AttendanceResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	periods, err := s.attendanceRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(periods))
	for _, p := range periods {
		responses = append(responses, attendance.ToAttendanceResponse(p))
	}

	return responses, nil
}
