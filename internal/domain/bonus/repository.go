package bonus

import "context"

// BonusRepository defines data access methods for bonuses.
type BonusRepository interface {
	Create(ctx context.Context, b Bonus) (Bonus, error)
	ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]Bonus, error)
	ListByMonth(ctx context.Context, month string) ([]Bonus, error)
	Delete(ctx context.Context, id string) error
}
