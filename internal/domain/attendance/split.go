package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthShare is the portion of a recorded period that falls in one
// calendar month.
type MonthShare struct {
	Month      string // YYYY-MM
	DaysWorked decimal.Decimal
	DaysAbsent decimal.Decimal
	Start      time.Time
	End        time.Time
}

// SplitPeriod distributes worked and absent day counts across the calendar
// months a period touches, pro-rata by inclusive day count. Worked days are
// floored and absent days ceiled, both to one decimal, so a split never
// credits more work than was recorded. A period inside a single month comes
// back unchanged as one share.
func SplitPeriod(start, end time.Time, worked, absent decimal.Decimal) []MonthShare {
	if end.Before(start) {
		return nil
	}

	totalDays := decimal.NewFromInt(int64(end.Sub(start).Hours()/24) + 1)

	var shares []MonthShare
	cursor := start
	for !cursor.After(end) {
		monthEnd := time.Date(cursor.Year(), cursor.Month(), 1, 0, 0, 0, 0, cursor.Location()).
			AddDate(0, 1, -1)
		segEnd := monthEnd
		if segEnd.After(end) {
			segEnd = end
		}

		segDays := decimal.NewFromInt(int64(segEnd.Sub(cursor).Hours()/24) + 1)
		ratio := segDays.Div(totalDays)

		shares = append(shares, MonthShare{
			Month:      cursor.Format("2006-01"),
			DaysWorked: worked.Mul(ratio).RoundFloor(1),
			DaysAbsent: absent.Mul(ratio).RoundCeil(1),
			Start:      cursor,
			End:        segEnd,
		})

		cursor = segEnd.AddDate(0, 0, 1)
	}

	return shares
}
