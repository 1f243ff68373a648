package deduction

import (
	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type CreateDeductionRequest struct {
	EmployeeID string          `json:"employee_id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Month      string          `json:"month"`
}

func (r *CreateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	t := Type(r.Type)
	if !t.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be one of savings, debt, damage, monthly_debt, other"})
	} else if t.SystemManaged() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "is system-managed and cannot be created directly"})
	}
	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateDeductionRequest struct {
	ID     string           `json:"-"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Reason *string          `json:"reason,omitempty"`
	Month  *string          `json:"month,omitempty"`
}

func (r *UpdateDeductionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be positive"})
	}
	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreateDebtPaymentRequest struct {
	EmployeeID  string          `json:"employee_id"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	PaymentDate string          `json:"payment_date"`
	Note        string          `json:"note"`
}

func (r *CreateDebtPaymentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !r.AmountPaid.IsPositive() {
		errs = append(errs, validator.ValidationError{Field: "amount_paid", Message: "must be positive"})
	}
	if _, ok := validator.IsValidDate(r.PaymentDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "payment_date", Message: "must be in YYYY-MM-DD format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type DeductionResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Type       string          `json:"type"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Month      string          `json:"month"`
}

func ToDeductionResponse(d StandingDeduction) DeductionResponse {
	return DeductionResponse{
		ID:         d.ID,
		EmployeeID: d.EmployeeID,
		Type:       string(d.Type),
		Amount:     d.Amount,
		Reason:     d.Reason,
		Month:      d.Month,
	}
}

type DebtPaymentResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	AmountPaid  decimal.Decimal `json:"amount_paid"`
	PaymentDate string          `json:"payment_date"`
	Note        string          `json:"note"`
}

func ToDebtPaymentResponse(p DebtPayment) DebtPaymentResponse {
	return DebtPaymentResponse{
		ID:          p.ID,
		EmployeeID:  p.EmployeeID,
		AmountPaid:  p.AmountPaid,
		PaymentDate: p.PaymentDate.Format("2006-01-02"),
		Note:        p.Note,
	}
}

type DebtSummaryResponse struct {
	EmployeeID  string          `json:"employee_id"`
	TotalDebt   decimal.Decimal `json:"total_debt"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Outstanding decimal.Decimal `json:"outstanding"`
}
