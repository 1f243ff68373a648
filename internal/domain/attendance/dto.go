package attendance

import (
	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type UpsertAttendanceRequest struct {
	EmployeeID  string          `json:"employee_id"`
	DaysWorked  decimal.Decimal `json:"days_worked"`
	DaysAbsent  decimal.Decimal `json:"days_absent"`
	PeriodStart string          `json:"period_start"`
	PeriodEnd   string          `json:"period_end"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.DaysWorked.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must be non-negative"})
	}
	if r.DaysAbsent.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "days_absent", Message: "must be non-negative"})
	}
	start, okStart := validator.IsValidDate(r.PeriodStart)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "period_start", Message: "must be in YYYY-MM-DD format"})
	}
	end, okEnd := validator.IsValidDate(r.PeriodEnd)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must be in YYYY-MM-DD format"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "period_end", Message: "must not be before period_start"})
	}
	if okStart && okEnd && !end.Before(start) {
		// A period record can never credit more days than it covers.
		span := decimal.NewFromInt(int64(end.Sub(start).Hours()/24) + 1)
		if r.DaysWorked.GreaterThan(span) {
			errs = append(errs, validator.ValidationError{Field: "days_worked", Message: "must not exceed the period length"})
		}
		if r.DaysAbsent.GreaterThan(span) {
			errs = append(errs, validator.ValidationError{Field: "days_absent", Message: "must not exceed the period length"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Month       string          `json:"month"`
	DaysWorked  decimal.Decimal `json:"days_worked"`
	DaysAbsent  decimal.Decimal `json:"days_absent"`
	PeriodStart *string         `json:"period_start,omitempty"`
	PeriodEnd   *string         `json:"period_end,omitempty"`
}

func ToAttendanceResponse(p AttendancePeriod) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Month:      p.Month,
		DaysWorked: p.DaysWorked,
		DaysAbsent: p.DaysAbsent,
	}
	if p.PeriodStart != nil {
		s := p.PeriodStart.Format("2006-01-02")
		resp.PeriodStart = &s
	}
	if p.PeriodEnd != nil {
		s := p.PeriodEnd.Format("2006-01-02")
		resp.PeriodEnd = &s
	}
	return resp
}
