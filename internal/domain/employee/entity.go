package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollGroup enum
type PayrollGroup string

const (
	GroupCut     PayrollGroup = "cut"
	GroupNoCut   PayrollGroup = "no-cut"
	GroupMonthly PayrollGroup = "monthly"
)

func (g PayrollGroup) Valid() bool {
	switch g {
	case GroupCut, GroupNoCut, GroupMonthly:
		return true
	}
	return false
}

// Groups lists every payroll group, in settlement order.
func Groups() []PayrollGroup {
	return []PayrollGroup{GroupCut, GroupNoCut, GroupMonthly}
}

// Employee - Worker on the payroll
type Employee struct {
	ID                    string
	FullName              string
	BaseSalary            decimal.Decimal
	PayrollGroup          PayrollGroup
	HasFlatDeduction      bool
	HasHoldingWithholding bool
	HasDebtDeduction      bool
	StartDate             *time.Time
	Active                bool
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// SalaryRevision - A base salary change effective from a given date.
// The revision history drives mid-month proration.
type SalaryRevision struct {
	ID            string
	EmployeeID    string
	Amount        decimal.Decimal
	EffectiveFrom time.Time
	CreatedAt     time.Time
}
