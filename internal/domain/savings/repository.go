package savings

import (
	"context"

	"github.com/shopspring/decimal"
)

// SavingsRepository defines data access methods for savings accounts.
type SavingsRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID string) (SavingsAccount, error)
	List(ctx context.Context) ([]SavingsAccount, error)
	UpsertContribution(ctx context.Context, employeeID string, amount decimal.Decimal) (SavingsAccount, error)
	SetAccumulated(ctx context.Context, employeeID string, total decimal.Decimal) error
}
