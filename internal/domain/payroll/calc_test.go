package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/bonus"
	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
)

func testConfig() Config {
	return Config{
		RoundDecimals:       2,
		FlatDeductionAmount: decimal.NewFromInt(20),
		HoldingDays:         decimal.NewFromInt(10),
	}
}

func baseInput(emp employee.Employee, worked int64) CalculationInput {
	return CalculationInput{
		Employee:     emp,
		Month:        "2025-06",
		DaysWorked:   decimal.NewFromInt(worked),
		Policy:       Policy{UseDailyRateForPartialMonth: true, ApplyProfileAndSavings: true},
		ApplyCuts:    true,
		ApplySavings: true,
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculateHoldingScenario(t *testing.T) {
	emp := employee.Employee{
		ID:                    "emp-1",
		BaseSalary:            decimal.NewFromInt(24000),
		PayrollGroup:          employee.GroupCut,
		HasHoldingWithholding: true,
	}
	in := baseInput(emp, 20)
	in.ApplyHolding = true

	res := Calculate(testConfig(), in)

	assert.True(t, res.Gross.Equal(decimal.NewFromInt(16000)), res.Gross.String())
	assert.True(t, res.Withheld.Equal(decimal.NewFromInt(8000)), res.Withheld.String())
	assert.True(t, res.TotalDeductions.Equal(decimal.NewFromInt(8000)))
	assert.True(t, res.Net.Equal(decimal.NewFromInt(8000)))

	// A $500 debt entry lands the documented 7500 net.
	in.StandingDeductions = []deduction.StandingDeduction{{
		EmployeeID: emp.ID, Type: deduction.TypeDebt,
		Amount: decimal.NewFromInt(500), Month: "2025-06",
	}}
	res = Calculate(testConfig(), in)

	assert.True(t, res.TotalDeductions.Equal(decimal.NewFromInt(8500)), res.TotalDeductions.String())
	assert.True(t, res.Net.Equal(decimal.NewFromInt(7500)), res.Net.String())
}

func TestCalculateNetFlooredAtZero(t *testing.T) {
	emp := employee.Employee{
		ID:                    "emp-2",
		BaseSalary:            decimal.NewFromInt(1000),
		PayrollGroup:          employee.GroupCut,
		HasFlatDeduction:      true,
		HasHoldingWithholding: true,
	}
	in := baseInput(emp, 7)
	in.ApplyHolding = true

	res := Calculate(testConfig(), in)

	assert.True(t, res.Gross.Equal(dec("233.33")), res.Gross.String())
	assert.True(t, res.Withheld.Equal(dec("333.34")), res.Withheld.String())
	assert.True(t, res.TotalDeductions.Equal(dec("353.34")), res.TotalDeductions.String())
	assert.True(t, res.Net.IsZero(), res.Net.String())

	require.Len(t, res.DeductionsApplied, 2)
	assert.Equal(t, LineProfileFlat, res.DeductionsApplied[0].Type)
	assert.True(t, res.DeductionsApplied[0].Amount.Equal(decimal.NewFromInt(20)))
	assert.Equal(t, LineHold, res.DeductionsApplied[1].Type)
}

func TestCalculateSegmentedGross(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-3",
		BaseSalary:   decimal.NewFromInt(30000),
		PayrollGroup: employee.GroupCut,
	}
	start, end := date(2025, time.January, 1), date(2025, time.January, 30)

	in := baseInput(emp, 30)
	in.PeriodStart, in.PeriodEnd = &start, &end
	in.SalaryHistory = []employee.SalaryRevision{
		rev(30000, date(2025, time.January, 1)),
		rev(36000, date(2025, time.January, 16)),
	}

	res := Calculate(testConfig(), in)

	assert.True(t, res.Gross.Equal(decimal.NewFromInt(33000)), res.Gross.String())
}

func TestCalculateSegmentedGrossFixedRate(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-3b",
		BaseSalary:   decimal.NewFromInt(30000),
		PayrollGroup: employee.GroupCut,
	}
	start, end := date(2025, time.January, 1), date(2025, time.January, 30)

	in := baseInput(emp, 12)
	in.PeriodStart, in.PeriodEnd = &start, &end
	in.Policy.UseDailyRateForPartialMonth = false

	res := Calculate(testConfig(), in)

	// Fixed-rate mode pays every segment in full regardless of attendance.
	assert.True(t, res.Gross.Equal(decimal.NewFromInt(30000)), res.Gross.String())
}

func TestCalculateFullAttendancePaysBase(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-4",
		BaseSalary:   decimal.NewFromInt(18500),
		PayrollGroup: employee.GroupNoCut,
	}

	for _, worked := range []int64{30, 31} {
		res := Calculate(testConfig(), baseInput(emp, worked))
		assert.True(t, res.Gross.Equal(decimal.NewFromInt(18500)), res.Gross.String())
	}
}

func TestCalculateMonthlyGroupPaysFullBase(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-5",
		BaseSalary:   decimal.NewFromInt(12000),
		PayrollGroup: employee.GroupMonthly,
	}

	res := Calculate(testConfig(), baseInput(emp, 11))

	assert.True(t, res.Gross.Equal(decimal.NewFromInt(12000)), res.Gross.String())
}

func TestCalculateWorkedDaysTruncated(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-6",
		BaseSalary:   decimal.NewFromInt(3000),
		PayrollGroup: employee.GroupCut,
	}

	in := baseInput(emp, 0)
	in.DaysWorked = dec("20.57")

	res := Calculate(testConfig(), in)

	// 20.57 truncates to 20.5, never up: 3000/30*20.5 = 2050.
	assert.True(t, res.Gross.Equal(decimal.NewFromInt(2050)), res.Gross.String())
}

func TestCalculateNegativeWorkedClampedToZero(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-7",
		BaseSalary:   decimal.NewFromInt(3000),
		PayrollGroup: employee.GroupCut,
	}

	in := baseInput(emp, 0)
	in.DaysWorked = decimal.NewFromInt(-4)

	res := Calculate(testConfig(), in)

	assert.True(t, res.Gross.IsZero(), res.Gross.String())
	assert.True(t, res.Net.IsZero())
}

func TestCalculateDeductionTermsCeiled(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-8",
		BaseSalary:   decimal.NewFromInt(9000),
		PayrollGroup: employee.GroupCut,
	}

	in := baseInput(emp, 30)
	in.StandingDeductions = []deduction.StandingDeduction{
		{EmployeeID: emp.ID, Type: deduction.TypeDamage, Amount: dec("10.001"), Month: "2025-06"},
		{EmployeeID: emp.ID, Type: deduction.TypeOther, Amount: dec("5.555"), Month: "2025-06"},
	}

	res := Calculate(testConfig(), in)

	require.Len(t, res.DeductionsApplied, 2)
	assert.True(t, res.DeductionsApplied[0].Amount.Equal(dec("10.01")), res.DeductionsApplied[0].Amount.String())
	assert.True(t, res.DeductionsApplied[1].Amount.Equal(dec("5.56")))
	assert.True(t, res.TotalDeductions.Equal(dec("15.57")))
}

func TestCalculateMonthlyDebtDeferredUntilFullMonth(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-9",
		BaseSalary:   decimal.NewFromInt(12000),
		PayrollGroup: employee.GroupMonthly,
	}
	debtLine := deduction.StandingDeduction{
		EmployeeID: emp.ID, Type: deduction.TypeMonthlyDebt,
		Amount: decimal.NewFromInt(300), Month: "2025-06",
	}

	in := baseInput(emp, 14)
	in.StandingDeductions = []deduction.StandingDeduction{debtLine}
	res := Calculate(testConfig(), in)
	assert.Empty(t, res.DeductionsApplied)

	in = baseInput(emp, 30)
	in.StandingDeductions = []deduction.StandingDeduction{debtLine}
	res = Calculate(testConfig(), in)
	require.Len(t, res.DeductionsApplied, 1)
	assert.Equal(t, LineMonthlyDebt, res.DeductionsApplied[0].Type)

	// The deferral is specific to the monthly group.
	cutEmp := emp
	cutEmp.PayrollGroup = employee.GroupCut
	in = baseInput(cutEmp, 14)
	in.StandingDeductions = []deduction.StandingDeduction{debtLine}
	res = Calculate(testConfig(), in)
	require.Len(t, res.DeductionsApplied, 1)
}

func TestCalculateSavingsCarryover(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-10",
		BaseSalary:   decimal.NewFromInt(6000),
		PayrollGroup: employee.GroupCut,
	}

	in := baseInput(emp, 30)
	in.SavingsContribution = decimal.NewFromInt(150)
	in.SavingsAccumulated = decimal.NewFromInt(450)

	res := Calculate(testConfig(), in)

	require.Len(t, res.DeductionsApplied, 1)
	assert.Equal(t, LineSavings, res.DeductionsApplied[0].Type)
	assert.True(t, res.CarryoverSavings.Equal(decimal.NewFromInt(600)), res.CarryoverSavings.String())

	// Suppressed savings leave the carryover untouched.
	in.ApplySavings = false
	res = Calculate(testConfig(), in)
	assert.Empty(t, res.DeductionsApplied)
	assert.True(t, res.CarryoverSavings.Equal(decimal.NewFromInt(450)))
}

func TestCalculateFlatDeductionNeedsCutsAndFlag(t *testing.T) {
	emp := employee.Employee{
		ID:               "emp-11",
		BaseSalary:       decimal.NewFromInt(6000),
		PayrollGroup:     employee.GroupNoCut,
		HasFlatDeduction: true,
	}

	in := baseInput(emp, 30)
	in.ApplyCuts = false
	res := Calculate(testConfig(), in)
	assert.Empty(t, res.DeductionsApplied)

	in.ApplyCuts = true
	res = Calculate(testConfig(), in)
	require.Len(t, res.DeductionsApplied, 1)
	assert.Equal(t, LineProfileFlat, res.DeductionsApplied[0].Type)
}

func TestCalculateBonusesAddedToGross(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-12",
		BaseSalary:   decimal.NewFromInt(9000),
		PayrollGroup: employee.GroupCut,
	}

	in := baseInput(emp, 30)
	in.Bonuses = []bonus.Bonus{
		{EmployeeID: emp.ID, Amount: decimal.NewFromInt(250), Month: "2025-06"},
		{EmployeeID: emp.ID, Amount: dec("99.50"), Month: "2025-06"},
	}

	res := Calculate(testConfig(), in)

	assert.True(t, res.BonusesTotal.Equal(dec("349.50")))
	assert.True(t, res.Gross.Equal(dec("9349.50")), res.Gross.String())
}

func TestCalculateHoldingRequiresFlagAndPolicy(t *testing.T) {
	emp := employee.Employee{
		ID:           "emp-13",
		BaseSalary:   decimal.NewFromInt(24000),
		PayrollGroup: employee.GroupCut,
	}

	// Flag off: no hold even when the policy allows it.
	in := baseInput(emp, 30)
	in.ApplyHolding = true
	res := Calculate(testConfig(), in)
	assert.True(t, res.Withheld.IsZero())

	// Flag on, policy off: still no hold.
	emp.HasHoldingWithholding = true
	in = baseInput(emp, 30)
	res = Calculate(testConfig(), in)
	assert.True(t, res.Withheld.IsZero())
}
