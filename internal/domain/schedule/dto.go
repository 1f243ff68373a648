package schedule

import (
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type UpsertScheduleRequest struct {
	PayrollGroup string `json:"payroll_group"`
	RunDay       int    `json:"run_day"`
	RunHour      int    `json:"run_hour"`
	Enabled      bool   `json:"enabled"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !employee.PayrollGroup(r.PayrollGroup).Valid() {
		errs = append(errs, validator.ValidationError{Field: "payroll_group", Message: "must be 'cut', 'no-cut' or 'monthly'"})
	}
	if r.RunDay < 1 || r.RunDay > 28 {
		errs = append(errs, validator.ValidationError{Field: "run_day", Message: "must be between 1 and 28"})
	}
	if r.RunHour < 0 || r.RunHour > 23 {
		errs = append(errs, validator.ValidationError{Field: "run_hour", Message: "must be between 0 and 23"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ScheduleResponse struct {
	ID           string `json:"id"`
	PayrollGroup string `json:"payroll_group"`
	RunDay       int    `json:"run_day"`
	RunHour      int    `json:"run_hour"`
	Enabled      bool   `json:"enabled"`
	LastRunMonth string `json:"last_run_month,omitempty"`
}

func ToScheduleResponse(s RunSchedule) ScheduleResponse {
	return ScheduleResponse{
		ID:           s.ID,
		PayrollGroup: string(s.PayrollGroup),
		RunDay:       s.RunDay,
		RunHour:      s.RunHour,
		Enabled:      s.Enabled,
		LastRunMonth: s.LastRunMonth,
	}
}
