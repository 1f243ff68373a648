package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/domain/bonus"
	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
)

// Config holds the calculation tunables.
type Config struct {
	RoundDecimals       int32
	FlatDeductionAmount decimal.Decimal
	HoldingDays         decimal.Decimal
}

// CalculationInput is everything one employee-month settlement needs,
// gathered by the orchestrator. The calculation itself performs no I/O.
type CalculationInput struct {
	Employee            employee.Employee
	Month               string // YYYY-MM
	DaysWorked          decimal.Decimal
	PeriodStart         *time.Time
	PeriodEnd           *time.Time
	SalaryHistory       []employee.SalaryRevision
	StandingDeductions  []deduction.StandingDeduction
	SavingsContribution decimal.Decimal
	SavingsAccumulated  decimal.Decimal
	Bonuses             []bonus.Bonus
	Policy              Policy
	ApplyCuts           bool
	ApplySavings        bool
	ApplyHolding        bool
}

// Result is the gross/deduction/net breakdown of one settlement run.
// CarryoverSavings is the accumulated total after this run, not yet
// persisted.
type Result struct {
	Gross             decimal.Decimal
	TotalDeductions   decimal.Decimal
	Net               decimal.Decimal
	BonusesTotal      decimal.Decimal
	DeductionsApplied []DeductionLine
	Withheld          decimal.Decimal
	CarryoverSavings  decimal.Decimal
}

// Calculate turns raw settlement inputs into a breakdown under the
// proration and rounding rules. Worked days are truncated down to one
// decimal; gross and net round symmetrically; every deduction term is
// ceiling-rounded before accumulation so a fractional cent is never
// under-deducted. Net never goes below zero.
func Calculate(cfg Config, in CalculationInput) Result {
	worked := in.DaysWorked
	if worked.IsNegative() {
		worked = decimal.Zero
	}
	worked = worked.RoundFloor(1)

	bonusesTotal := decimal.Zero
	for _, b := range in.Bonuses {
		bonusesTotal = bonusesTotal.Add(b.Amount)
	}

	gross := grossBeforeBonuses(in, worked).
		Add(bonusesTotal).
		Round(cfg.RoundDecimals)

	st := &calcState{
		cfg:       cfg,
		in:        in,
		worked:    worked,
		carryover: in.SavingsAccumulated,
	}

	var lines []DeductionLine
	for _, rule := range deductionPipeline {
		lines = append(lines, rule(st)...)
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.Amount)
	}
	total = total.Round(cfg.RoundDecimals)

	net := gross.Sub(total).Round(cfg.RoundDecimals)
	if net.IsNegative() {
		net = decimal.Zero
	}

	return Result{
		Gross:             gross,
		TotalDeductions:   total,
		Net:               net,
		BonusesTotal:      bonusesTotal,
		DeductionsApplied: lines,
		Withheld:          st.withheld,
		CarryoverSavings:  st.carryover,
	}
}

// grossBeforeBonuses prorates pay across salary segments when period bounds
// are known, otherwise falls back to whole-month logic.
func grossBeforeBonuses(in CalculationInput, worked decimal.Decimal) decimal.Decimal {
	if in.PeriodStart != nil && in.PeriodEnd != nil {
		segments := SegmentSalary(in.Employee.BaseSalary, in.SalaryHistory, *in.PeriodStart, *in.PeriodEnd)
		totalDays := decimal.Zero
		for _, seg := range segments {
			totalDays = totalDays.Add(decimal.NewFromInt(seg.Days))
		}
		if totalDays.IsZero() {
			return decimal.Zero
		}

		gross := decimal.Zero
		for _, seg := range segments {
			segDays := decimal.NewFromInt(seg.Days)
			segWorked := segDays
			if in.Policy.UseDailyRateForPartialMonth {
				segWorked = worked.Mul(segDays).Div(totalDays)
			}
			gross = gross.Add(seg.Amount.Div(fullMonthDays).Mul(segWorked))
		}
		return gross
	}

	base := in.Employee.BaseSalary
	if in.Employee.PayrollGroup == employee.GroupMonthly {
		return base
	}
	if worked.GreaterThanOrEqual(fullMonthDays) {
		return base
	}
	return base.Div(fullMonthDays).Mul(worked)
}

type calcState struct {
	cfg       Config
	in        CalculationInput
	worked    decimal.Decimal
	withheld  decimal.Decimal
	carryover decimal.Decimal
}

// deductionRule produces the lines one deduction concern contributes, or
// nothing when its conditions do not hold.
type deductionRule func(*calcState) []DeductionLine

// The order is fixed: profile flat, standing, savings, holding.
var deductionPipeline = []deductionRule{
	profileFlatRule,
	standingDeductionsRule,
	savingsRule,
	holdingRule,
}

func profileFlatRule(st *calcState) []DeductionLine {
	if !st.in.ApplyCuts || !st.in.Employee.HasFlatDeduction {
		return nil
	}
	return []DeductionLine{{
		Type:   LineProfileFlat,
		Amount: st.cfg.FlatDeductionAmount.RoundCeil(st.cfg.RoundDecimals),
	}}
}

func standingDeductionsRule(st *calcState) []DeductionLine {
	var lines []DeductionLine
	for _, d := range st.in.StandingDeductions {
		// monthly_debt waits for a full month on the monthly group; the
		// line is neither added nor consumed until month-end.
		if d.Type == deduction.TypeMonthlyDebt &&
			st.in.Employee.PayrollGroup == employee.GroupMonthly &&
			st.worked.LessThan(fullMonthDays) {
			continue
		}
		lines = append(lines, DeductionLine{
			Type:   string(d.Type),
			Amount: d.Amount.RoundCeil(st.cfg.RoundDecimals),
			Reason: d.Reason,
		})
	}
	return lines
}

func savingsRule(st *calcState) []DeductionLine {
	if !st.in.ApplySavings || !st.in.SavingsContribution.IsPositive() {
		return nil
	}
	saved := st.in.SavingsContribution.RoundCeil(st.cfg.RoundDecimals)
	st.carryover = st.in.SavingsAccumulated.Add(saved).Round(st.cfg.RoundDecimals)
	return []DeductionLine{{Type: LineSavings, Amount: saved}}
}

func holdingRule(st *calcState) []DeductionLine {
	if !st.in.ApplyHolding || !st.in.Employee.HasHoldingWithholding {
		return nil
	}
	hold := st.in.Employee.BaseSalary.
		Div(fullMonthDays).
		Mul(st.cfg.HoldingDays).
		RoundCeil(st.cfg.RoundDecimals)
	st.withheld = hold
	return []DeductionLine{{Type: LineHold, Amount: hold}}
}
