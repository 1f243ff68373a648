package savings

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsAccount - Per-employee savings plan. Amount is the monthly
// contribution taken as a deduction; AccumulatedTotal is the running
// carryover the engine maintains across settlement runs.
type SavingsAccount struct {
	ID               string
	EmployeeID       string
	Amount           decimal.Decimal
	AccumulatedTotal decimal.Decimal
	UpdatedAt        time.Time
}
