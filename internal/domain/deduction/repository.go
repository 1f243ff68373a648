package deduction

import "context"

// DeductionRepository defines data access methods for standing deductions,
// hold rows and debt payments.
type DeductionRepository interface {
	Create(ctx context.Context, d StandingDeduction) (StandingDeduction, error)
	GetByID(ctx context.Context, id string) (StandingDeduction, error)
	ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]StandingDeduction, error)
	ListByMonth(ctx context.Context, month string) ([]StandingDeduction, error)
	ListByMonthType(ctx context.Context, month string, t Type) ([]StandingDeduction, error)
	Update(ctx context.Context, req UpdateDeductionRequest) error
	Delete(ctx context.Context, id string) error

	// DeleteByEmployeeMonthType removes the engine-managed rows touched by
	// reverse and undo flows.
	DeleteByEmployeeMonthType(ctx context.Context, employeeID, month string, t Type) error
	DeleteByMonthTypeEmployees(ctx context.Context, month string, t Type, employeeIDs []string) error

	CreateDebtPayment(ctx context.Context, p DebtPayment) (DebtPayment, error)
	ListDebtPayments(ctx context.Context, employeeID string) ([]DebtPayment, error)
	GetDebtSummary(ctx context.Context, employeeID string) (DebtSummary, error)
}
