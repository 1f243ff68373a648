package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Deduction line tags as they appear in the deductions_applied snapshot.
// Standing deduction lines carry their own type (savings, debt, damage,
// monthly_debt, other).
const (
	LineProfileFlat = "profile_flat"
	LineSavings     = "savings"
	LineHold        = "hold"
	LineMonthlyDebt = "monthly_debt"
)

// DeductionLine - One applied deduction term, in application order.
type DeductionLine struct {
	Type   string          `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason,omitempty"`
}

// SettlementRecord - The persisted output of one settlement run for one
// employee and one month. A second attempt for the same (employee, month)
// is rejected or must reverse this one first.
type SettlementRecord struct {
	ID                string
	EmployeeID        string
	Month             string // YYYY-MM
	Gross             decimal.Decimal
	TotalDeductions   decimal.Decimal
	BonusesTotal      decimal.Decimal
	Net               decimal.Decimal
	DeductionsApplied []DeductionLine
	WithheldAmount    decimal.Decimal
	CarryoverSavings  decimal.Decimal
	CreatedAt         time.Time
}

// IdempotencyToken - Write-once marker for a completed batch run. Checked
// before any run with the same key begins.
type IdempotencyToken struct {
	Key          string
	PayrollGroup string
	Month        string
	CreatedAt    time.Time
}
