package deduction

import "context"

// DeductionService owns user-entered standing deductions, the hold rows the
// engine writes, and debt payments.
type DeductionService interface {
	Create(ctx context.Context, req CreateDeductionRequest) (DeductionResponse, error)
	List(ctx context.Context, employeeID, month string) ([]DeductionResponse, error)
	Update(ctx context.Context, req UpdateDeductionRequest) (DeductionResponse, error)
	Delete(ctx context.Context, id string) error

	ListHolds(ctx context.Context, month string) ([]DeductionResponse, error)
	ClearHold(ctx context.Context, id string) error

	CreateDebtPayment(ctx context.Context, req CreateDebtPaymentRequest) (DebtPaymentResponse, error)
	ListDebtPayments(ctx context.Context, employeeID string) ([]DebtPaymentResponse, error)
	GetDebtSummary(ctx context.Context, employeeID string) (DebtSummaryResponse, error)
}
