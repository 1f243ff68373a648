package savings

import (
	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type UpdateSavingsRequest struct {
	EmployeeID string          `json:"-"`
	Amount     decimal.Decimal `json:"amount"`
}

func (r *UpdateSavingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "amount", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SavingsResponse struct {
	ID               string          `json:"id"`
	EmployeeID       string          `json:"employee_id"`
	Amount           decimal.Decimal `json:"amount"`
	AccumulatedTotal decimal.Decimal `json:"accumulated_total"`
}

func ToSavingsResponse(s SavingsAccount) SavingsResponse {
	return SavingsResponse{
		ID:               s.ID,
		EmployeeID:       s.EmployeeID,
		Amount:           s.Amount,
		AccumulatedTotal: s.AccumulatedTotal,
	}
}

type PayoutResponse struct {
	EmployeeID string          `json:"employee_id"`
	PaidOut    decimal.Decimal `json:"paid_out"`
}
