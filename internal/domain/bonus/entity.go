package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bonus - A one-off addition paid on top of gross in a settlement month.
type Bonus struct {
	ID         string
	EmployeeID string
	Amount     decimal.Decimal
	Reason     string
	Month      string // YYYY-MM
	CreatedAt  time.Time
}
