package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// AttendancePeriod - Worked/absent day counts for one employee-month.
// One row per (employee, month); upserts replace the counts.
type AttendancePeriod struct {
	ID          string
	EmployeeID  string
	Month       string // YYYY-MM
	DaysWorked  decimal.Decimal
	DaysAbsent  decimal.Decimal
	PeriodStart *time.Time
	PeriodEnd   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
