package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName              string          `json:"full_name"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	PayrollGroup          string          `json:"payroll_group"`
	HasFlatDeduction      bool            `json:"has_flat_deduction"`
	HasHoldingWithholding bool            `json:"has_holding_withholding"`
	HasDebtDeduction      bool            `json:"has_debt_deduction"`
	StartDate             *string         `json:"start_date,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if !PayrollGroup(r.PayrollGroup).Valid() {
		errs = append(errs, validator.ValidationError{Field: "payroll_group", Message: "must be 'cut', 'no-cut' or 'monthly'"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                    string           `json:"-"`
	FullName              *string          `json:"full_name,omitempty"`
	BaseSalary            *decimal.Decimal `json:"base_salary,omitempty"`
	PayrollGroup          *string          `json:"payroll_group,omitempty"`
	HasFlatDeduction      *bool            `json:"has_flat_deduction,omitempty"`
	HasHoldingWithholding *bool            `json:"has_holding_withholding,omitempty"`
	HasDebtDeduction      *bool            `json:"has_debt_deduction,omitempty"`
	StartDate             *string          `json:"start_date,omitempty"`
	Active                *bool            `json:"active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "must not be empty"})
	}
	if r.BaseSalary != nil && r.BaseSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "base_salary", Message: "must be non-negative"})
	}
	if r.PayrollGroup != nil && !PayrollGroup(*r.PayrollGroup).Valid() {
		errs = append(errs, validator.ValidationError{Field: "payroll_group", Message: "must be 'cut', 'no-cut' or 'monthly'"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateSalaryRevisionRequest struct {
	EmployeeID    string          `json:"-"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveFrom string          `json:"effective_from"`
}

func (r *CreateSalaryRevisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.EffectiveFrom); !ok {
		errs = append(errs, validator.ValidationError{Field: "effective_from", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                    string          `json:"id"`
	FullName              string          `json:"full_name"`
	BaseSalary            decimal.Decimal `json:"base_salary"`
	PayrollGroup          string          `json:"payroll_group"`
	HasFlatDeduction      bool            `json:"has_flat_deduction"`
	HasHoldingWithholding bool            `json:"has_holding_withholding"`
	HasDebtDeduction      bool            `json:"has_debt_deduction"`
	StartDate             *string         `json:"start_date,omitempty"`
	Active                bool            `json:"active"`
	CreatedAt             time.Time       `json:"created_at"`
}

type SalaryRevisionResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Amount        decimal.Decimal `json:"amount"`
	EffectiveFrom string          `json:"effective_from"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                    e.ID,
		FullName:              e.FullName,
		BaseSalary:            e.BaseSalary,
		PayrollGroup:          string(e.PayrollGroup),
		HasFlatDeduction:      e.HasFlatDeduction,
		HasHoldingWithholding: e.HasHoldingWithholding,
		HasDebtDeduction:      e.HasDebtDeduction,
		Active:                e.Active,
		CreatedAt:             e.CreatedAt,
	}
	if e.StartDate != nil {
		s := e.StartDate.Format("2006-01-02")
		resp.StartDate = &s
	}
	return resp
}

func ToSalaryRevisionResponse(r SalaryRevision) SalaryRevisionResponse {
	return SalaryRevisionResponse{
		ID:            r.ID,
		EmployeeID:    r.EmployeeID,
		Amount:        r.Amount,
		EffectiveFrom: r.EffectiveFrom.Format("2006-01-02"),
	}
}
