package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

// Type enum. hold rows are system-managed: only settlement runs write
// them. monthly_debt rows are entered like any other deduction; the engine
// defers them on partial monthly-group months and consumes them on full
// ones (undo restores consumed lines).
type Type string

const (
	TypeSavings     Type = "savings"
	TypeDebt        Type = "debt"
	TypeDamage      Type = "damage"
	TypeHold        Type = "hold"
	TypeMonthlyDebt Type = "monthly_debt"
	TypeOther       Type = "other"
)

func (t Type) Valid() bool {
	switch t {
	case TypeSavings, TypeDebt, TypeDamage, TypeHold, TypeMonthlyDebt, TypeOther:
		return true
	}
	return false
}

// SystemManaged reports whether rows of this type may only be written by
// the engine, never via the deductions API.
func (t Type) SystemManaged() bool {
	return t == TypeHold
}

// StandingDeduction - A deduction line waiting to be applied in a
// settlement month.
type StandingDeduction struct {
	ID         string
	EmployeeID string
	Type       Type
	Amount     decimal.Decimal
	Reason     string
	Month      string // YYYY-MM
	CreatedAt  time.Time
}

// DebtPayment - Out-of-band repayment against an employee's debt lines.
type DebtPayment struct {
	ID          string
	EmployeeID  string
	AmountPaid  decimal.Decimal
	PaymentDate time.Time
	Note        string
	CreatedAt   time.Time
}

// DebtSummary - Aggregate of debt deductions minus payments for one employee.
type DebtSummary struct {
	EmployeeID  string
	TotalDebt   decimal.Decimal
	TotalPaid   decimal.Decimal
	Outstanding decimal.Decimal
}
