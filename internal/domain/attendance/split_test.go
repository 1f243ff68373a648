package attendance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestSplitPeriodSingleMonth(t *testing.T) {
	shares := SplitPeriod(
		date(2025, time.March, 1), date(2025, time.March, 31),
		decimal.NewFromInt(26), decimal.NewFromInt(5),
	)

	require.Len(t, shares, 1)
	assert.Equal(t, "2025-03", shares[0].Month)
	assert.True(t, shares[0].DaysWorked.Equal(decimal.NewFromInt(26)))
	assert.True(t, shares[0].DaysAbsent.Equal(decimal.NewFromInt(5)))
}

func TestSplitPeriodAcrossTwoMonths(t *testing.T) {
	// 20 days total: 10 in March (Mar 22-31), 10 in April (Apr 1-10).
	shares := SplitPeriod(
		date(2025, time.March, 22), date(2025, time.April, 10),
		decimal.NewFromInt(18), decimal.NewFromInt(2),
	)

	require.Len(t, shares, 2)
	assert.Equal(t, "2025-03", shares[0].Month)
	assert.Equal(t, "2025-04", shares[1].Month)

	// Even split: worked 9/9, absent 1/1.
	assert.True(t, shares[0].DaysWorked.Equal(decimal.NewFromInt(9)), shares[0].DaysWorked.String())
	assert.True(t, shares[1].DaysWorked.Equal(decimal.NewFromInt(9)))
	assert.True(t, shares[0].DaysAbsent.Equal(decimal.NewFromInt(1)))
	assert.True(t, shares[1].DaysAbsent.Equal(decimal.NewFromInt(1)))
}

func TestSplitPeriodRoundingDirections(t *testing.T) {
	// 7 days: 3 in Jan (29-31), 4 in Feb (1-4). worked=5 -> shares
	// 5*3/7=2.142... and 5*4/7=2.857...; floor to 2.1 and 2.8.
	shares := SplitPeriod(
		date(2025, time.January, 29), date(2025, time.February, 4),
		decimal.NewFromInt(5), decimal.NewFromInt(2),
	)

	require.Len(t, shares, 2)
	assert.True(t, shares[0].DaysWorked.Equal(decimal.RequireFromString("2.1")), shares[0].DaysWorked.String())
	assert.True(t, shares[1].DaysWorked.Equal(decimal.RequireFromString("2.8")), shares[1].DaysWorked.String())

	// Absent ceiled: 2*3/7=0.857...->0.9, 2*4/7=1.142...->1.2.
	assert.True(t, shares[0].DaysAbsent.Equal(decimal.RequireFromString("0.9")), shares[0].DaysAbsent.String())
	assert.True(t, shares[1].DaysAbsent.Equal(decimal.RequireFromString("1.2")), shares[1].DaysAbsent.String())

	// Worked never exceeds the recorded total.
	sum := shares[0].DaysWorked.Add(shares[1].DaysWorked)
	assert.True(t, sum.LessThanOrEqual(decimal.NewFromInt(5)))
}

func TestSplitPeriodInvertedRange(t *testing.T) {
	shares := SplitPeriod(
		date(2025, time.March, 10), date(2025, time.March, 1),
		decimal.NewFromInt(5), decimal.Zero,
	)
	assert.Nil(t, shares)
}
