package bonus

import (
	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type CreateBonusRequest struct {
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Month      string          `json:"month"`
}

func (r *CreateBonusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
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

type BonusResponse struct {
	ID         string          `json:"id"`
	EmployeeID string          `json:"employee_id"`
	Amount     decimal.Decimal `json:"amount"`
	Reason     string          `json:"reason"`
	Month      string          `json:"month"`
}

func ToBonusResponse(b Bonus) BonusResponse {
	return BonusResponse{
		ID:         b.ID,
		EmployeeID: b.EmployeeID,
		Amount:     b.Amount,
		Reason:     b.Reason,
		Month:      b.Month,
	}
}
