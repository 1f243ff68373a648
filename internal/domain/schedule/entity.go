package schedule

import (
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
)

// RunSchedule - When a payroll group's settlement run fires automatically.
// One row per group; LastRunMonth stops a schedule from re-firing within
// the same month.
type RunSchedule struct {
	ID           string
	PayrollGroup employee.PayrollGroup
	RunDay       int
	RunHour      int
	Enabled      bool
	LastRunMonth string // YYYY-MM, empty until first automatic run
	UpdatedAt    time.Time
}

// Due reports whether the schedule should fire at the given time.
func (s RunSchedule) Due(now time.Time) bool {
	if !s.Enabled {
		return false
	}
	month := now.Format("2006-01")
	if s.LastRunMonth == month {
		return false
	}
	if now.Day() < s.RunDay {
		return false
	}
	return now.Day() > s.RunDay || now.Hour() >= s.RunHour
}
