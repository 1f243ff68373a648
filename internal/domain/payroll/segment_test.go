package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rev(amount int64, from time.Time) employee.SalaryRevision {
	return employee.SalaryRevision{Amount: decimal.NewFromInt(amount), EffectiveFrom: from}
}

func TestSegmentSalaryNoHistory(t *testing.T) {
	segs := SegmentSalary(decimal.NewFromInt(24000), nil,
		date(2025, time.January, 1), date(2025, time.January, 30))

	require.Len(t, segs, 1)
	assert.Equal(t, int64(30), segs[0].Days)
	assert.True(t, segs[0].Amount.Equal(decimal.NewFromInt(24000)))
}

func TestSegmentSalaryMidPeriodRevision(t *testing.T) {
	history := []employee.SalaryRevision{
		rev(30000, date(2025, time.January, 1)),
		rev(36000, date(2025, time.January, 16)),
	}

	segs := SegmentSalary(decimal.NewFromInt(30000), history,
		date(2025, time.January, 1), date(2025, time.January, 30))

	require.Len(t, segs, 2)
	assert.Equal(t, int64(15), segs[0].Days)
	assert.True(t, segs[0].Amount.Equal(decimal.NewFromInt(30000)))
	assert.Equal(t, date(2025, time.January, 15), segs[0].End)
	assert.Equal(t, int64(15), segs[1].Days)
	assert.True(t, segs[1].Amount.Equal(decimal.NewFromInt(36000)))
	assert.Equal(t, date(2025, time.January, 16), segs[1].Start)
}

func TestSegmentSalaryRevisionBeforePeriod(t *testing.T) {
	history := []employee.SalaryRevision{rev(50000, date(2024, time.June, 1))}

	segs := SegmentSalary(decimal.NewFromInt(30000), history,
		date(2025, time.January, 1), date(2025, time.January, 31))

	require.Len(t, segs, 1)
	assert.True(t, segs[0].Amount.Equal(decimal.NewFromInt(50000)))
}

func TestSegmentSalaryUnsortedHistory(t *testing.T) {
	history := []employee.SalaryRevision{
		rev(36000, date(2025, time.January, 16)),
		rev(30000, date(2025, time.January, 1)),
	}

	segs := SegmentSalary(decimal.NewFromInt(30000), history,
		date(2025, time.January, 1), date(2025, time.January, 30))

	require.Len(t, segs, 2)
	assert.True(t, segs[0].Amount.Equal(decimal.NewFromInt(30000)))
	assert.True(t, segs[1].Amount.Equal(decimal.NewFromInt(36000)))
}

func TestSegmentSalaryCoversPeriodWithoutGaps(t *testing.T) {
	history := []employee.SalaryRevision{
		rev(10000, date(2025, time.March, 5)),
		rev(12000, date(2025, time.March, 20)),
	}

	start, end := date(2025, time.March, 1), date(2025, time.March, 31)
	segs := SegmentSalary(decimal.NewFromInt(9000), history, start, end)

	require.Len(t, segs, 3)
	assert.Equal(t, start, segs[0].Start)
	assert.Equal(t, end, segs[len(segs)-1].End)

	var total int64
	for i, seg := range segs {
		total += seg.Days
		if i > 0 {
			assert.Equal(t, segs[i-1].End.AddDate(0, 0, 1), seg.Start)
		}
	}
	assert.Equal(t, int64(31), total)
}

func TestSegmentSalaryInvertedPeriod(t *testing.T) {
	segs := SegmentSalary(decimal.NewFromInt(1000), nil,
		date(2025, time.March, 10), date(2025, time.March, 1))
	assert.Nil(t, segs)
}
