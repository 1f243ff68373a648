package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

// Policy - How a hire date shapes one employee's settlement for one month.
type Policy struct {
	// UseDailyRateForPartialMonth pays the hire month at a daily rate.
	// Every later month pays the fixed segmented/full rate even under
	// partial attendance.
	UseDailyRateForPartialMonth bool
	// ApplyProfileAndSavings gates the profile flat deduction, the holding
	// withholding and the savings contribution. Suppressed only during a
	// partial hire month.
	ApplyProfileAndSavings bool
}

var fullMonthDays = decimal.NewFromInt(30)

// ResolvePolicy derives the policy from the employee's start date, the
// settlement month (YYYY-MM) and the floored worked-day count. A missing
// start date or an unparseable month keeps the legacy behavior: both
// switches on.
func ResolvePolicy(startDate *time.Time, month string, daysWorked decimal.Decimal) Policy {
	monthStart, ok := validator.ParseMonth(month)
	if startDate == nil || !ok {
		return Policy{UseDailyRateForPartialMonth: true, ApplyProfileAndSavings: true}
	}

	isHireMonth := startDate.Year() == monthStart.Year() && startDate.Month() == monthStart.Month()
	isHireMonthPartial := isHireMonth && daysWorked.LessThan(fullMonthDays)

	return Policy{
		UseDailyRateForPartialMonth: isHireMonth,
		ApplyProfileAndSavings:      !isHireMonthPartial,
	}
}
