package payroll

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
)

// SalarySegment - A stretch of the settlement period paid at one salary.
type SalarySegment struct {
	Start  time.Time
	End    time.Time
	Days   int64
	Amount decimal.Decimal
}

// SegmentSalary slices the inclusive [start, end] period at every salary
// revision that takes effect strictly inside it. Segments cover the whole
// period with no gaps or overlaps; each one is paid at the salary effective
// on its first day. With an empty history the whole period is one segment
// at the base salary.
func SegmentSalary(base decimal.Decimal, history []employee.SalaryRevision, start, end time.Time) []SalarySegment {
	if end.Before(start) {
		return nil
	}

	sorted := make([]employee.SalaryRevision, len(history))
	copy(sorted, history)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].EffectiveFrom.Before(sorted[j].EffectiveFrom)
	})

	boundaries := []time.Time{start}
	for _, rev := range sorted {
		eff := rev.EffectiveFrom
		if eff.After(start) && !eff.After(end) {
			last := boundaries[len(boundaries)-1]
			if !eff.Equal(last) {
				boundaries = append(boundaries, eff)
			}
		}
	}

	segments := make([]SalarySegment, 0, len(boundaries))
	for i, segStart := range boundaries {
		segEnd := end
		if i+1 < len(boundaries) {
			segEnd = boundaries[i+1].AddDate(0, 0, -1)
		}

		segments = append(segments, SalarySegment{
			Start:  segStart,
			End:    segEnd,
			Days:   inclusiveDays(segStart, segEnd),
			Amount: salaryEffectiveOn(base, sorted, segStart),
		})
	}

	return segments
}

// salaryEffectiveOn returns the last revision taking effect on or before
// the date; history must already be sorted ascending.
func salaryEffectiveOn(base decimal.Decimal, sorted []employee.SalaryRevision, date time.Time) decimal.Decimal {
	amount := base
	for _, rev := range sorted {
		if rev.EffectiveFrom.After(date) {
			break
		}
		amount = rev.Amount
	}
	return amount
}

func inclusiveDays(start, end time.Time) int64 {
	return int64(end.Sub(start).Hours()/24) + 1
}
