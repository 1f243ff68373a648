package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/bonus"
	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/domain/savings"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
)

const holdReason = "holding withholding"

type PayrollServiceImpl struct {
	db             *database.DB
	cfg            payroll.Config
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	deductionRepo  deduction.DeductionRepository
	savingsRepo    savings.SavingsRepository
	bonusRepo      bonus.BonusRepository
}

func NewPayrollService(
	db *database.DB,
	cfg payroll.Config,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	deductionRepo deduction.DeductionRepository,
	savingsRepo savings.SavingsRepository,
	bonusRepo bonus.BonusRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		cfg:            cfg,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		deductionRepo:  deductionRepo,
		savingsRepo:    savingsRepo,
		bonusRepo:      bonusRepo,
	}
}

// Generate runs a batch settlement for one group and month. Employees are
// processed sequentially, each inside its own transaction; one employee's
// failure is collected in the results without halting the batch.
func (s *PayrollServiceImpl) Generate(ctx context.Context, req payroll.GenerateRequest) (payroll.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResponse{}, err
	}

	if req.IdempotencyKey != "" && !req.Force {
		exists, err := s.payrollRepo.TokenExists(ctx, req.IdempotencyKey, req.PayrollGroup, req.Month)
		if err != nil {
			return payroll.GenerateResponse{}, err
		}
		if exists {
			return payroll.GenerateResponse{}, payroll.ErrDuplicateRun
		}
	}

	employees, err := s.employeeRepo.ListByGroup(ctx, employee.PayrollGroup(req.PayrollGroup), true)
	if err != nil {
		return payroll.GenerateResponse{}, err
	}

	slog.Info("Payroll batch starting",
		"month", req.Month, "payroll_group", req.PayrollGroup,
		"employees", len(employees), "force", req.Force)

	resp := payroll.GenerateResponse{
		Month:        req.Month,
		PayrollGroup: req.PayrollGroup,
		Results:      make([]payroll.EmployeeResult, 0, len(employees)),
	}

	for _, emp := range employees {
		var record payroll.SettlementRecord
		var status string

		err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
			var err error
			record, status, err = s.settleEmployee(txCtx, emp, req.Month, req.Force)
			return err
		})
		if err != nil {
			slog.Error("Payroll employee settlement failed",
				"employee_id", emp.ID, "month", req.Month, "error", err)
			resp.Results = append(resp.Results, payroll.EmployeeResult{
				EmployeeID: emp.ID,
				Status:     payroll.StatusFailed,
				Error:      err.Error(),
			})
			continue
		}

		result := payroll.EmployeeResult{EmployeeID: emp.ID, Status: status}
		if status == payroll.StatusGenerated {
			r := payroll.ToSettlementRecordResponse(record)
			result.Record = &r
			resp.Count++
		}
		resp.Results = append(resp.Results, result)
	}

	if req.IdempotencyKey != "" {
		err := s.payrollRepo.CreateToken(ctx, payroll.IdempotencyToken{
			Key:          req.IdempotencyKey,
			PayrollGroup: req.PayrollGroup,
			Month:        req.Month,
		})
		// A forced re-run reuses its original key.
		if err != nil && !errors.Is(err, payroll.ErrDuplicateRun) {
			return resp, err
		}
	}

	slog.Info("Payroll batch finished",
		"month", req.Month, "payroll_group", req.PayrollGroup, "generated", resp.Count)

	return resp, nil
}

// GenerateForEmployee settles a single employee. An existing record is a
// conflict unless force reverses it first.
func (s *PayrollServiceImpl) GenerateForEmployee(ctx context.Context, req payroll.GenerateEmployeeRequest) (payroll.SettlementRecordResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettlementRecordResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return payroll.SettlementRecordResponse{}, err
	}
	if !emp.Active {
		return payroll.SettlementRecordResponse{}, payroll.ErrEmployeeInactive
	}

	var record payroll.SettlementRecord
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		rec, status, err := s.settleEmployee(txCtx, emp, req.Month, req.Force)
		if err != nil {
			return err
		}
		if status == payroll.StatusSkipped {
			return payroll.ErrSettlementExists
		}
		record = rec
		return nil
	})
	if err != nil {
		return payroll.SettlementRecordResponse{}, err
	}

	return payroll.ToSettlementRecordResponse(record), nil
}

// settleEmployee applies the per-employee state machine: skip when a record
// exists without force, reverse-then-run under force, otherwise fresh run.
func (s *PayrollServiceImpl) settleEmployee(ctx context.Context, emp employee.Employee, month string, force bool) (payroll.SettlementRecord, string, error) {
	existing, err := s.payrollRepo.GetRecordByEmployeeMonth(ctx, emp.ID, month)
	switch {
	case err == nil:
		if !force {
			return payroll.SettlementRecord{}, payroll.StatusSkipped, nil
		}
		if err := s.reverseRecord(ctx, existing); err != nil {
			return payroll.SettlementRecord{}, "", err
		}
	case !errors.Is(err, payroll.ErrRecordNotFound):
		return payroll.SettlementRecord{}, "", err
	}

	record, err := s.freshRun(ctx, emp, month)
	if err != nil {
		return payroll.SettlementRecord{}, "", err
	}

	return record, payroll.StatusGenerated, nil
}

// reverseRecord compensates one settlement: savings roll back to the
// pre-run total, the month's hold rows go away, then the record itself.
func (s *PayrollServiceImpl) reverseRecord(ctx context.Context, record payroll.SettlementRecord) error {
	if err := s.rollbackSavings(ctx, record); err != nil {
		return err
	}

	if err := s.deductionRepo.DeleteByEmployeeMonthType(ctx, record.EmployeeID, record.Month, deduction.TypeHold); err != nil {
		return err
	}

	return s.payrollRepo.DeleteRecord(ctx, record.ID)
}

// rollbackSavings restores the accumulated total to what it was before the
// record's run, clamped at zero. The contribution comes from the record's
// own snapshot so later plan changes cannot skew the rollback.
func (s *PayrollServiceImpl) rollbackSavings(ctx context.Context, record payroll.SettlementRecord) error {
	saved := decimal.Zero
	for _, line := range record.DeductionsApplied {
		if line.Type == payroll.LineSavings {
			saved = saved.Add(line.Amount)
		}
	}
	if saved.IsZero() {
		return nil
	}

	restored := record.CarryoverSavings.Sub(saved)
	if restored.IsNegative() {
		restored = decimal.Zero
	}

	err := s.savingsRepo.SetAccumulated(ctx, record.EmployeeID, restored)
	if errors.Is(err, savings.ErrSavingsNotFound) {
		return nil
	}
	return err
}

// freshRun gathers one employee's inputs, runs the calculation and persists
// its outcome.
func (s *PayrollServiceImpl) freshRun(ctx context.Context, emp employee.Employee, month string) (payroll.SettlementRecord, error) {
	in := payroll.CalculationInput{
		Employee: emp,
		Month:    month,
	}

	period, err := s.attendanceRepo.GetByEmployeeMonth(ctx, emp.ID, month)
	switch {
	case err == nil:
		in.DaysWorked = period.DaysWorked
		in.PeriodStart = period.PeriodStart
		in.PeriodEnd = period.PeriodEnd
	case !errors.Is(err, attendance.ErrAttendanceNotFound):
		return payroll.SettlementRecord{}, err
	}

	in.SalaryHistory, err = s.employeeRepo.GetSalaryRevisions(ctx, emp.ID)
	if err != nil {
		return payroll.SettlementRecord{}, err
	}

	in.StandingDeductions, err = s.deductionRepo.ListByEmployeeMonth(ctx, emp.ID, month)
	if err != nil {
		return payroll.SettlementRecord{}, err
	}

	hasSavings := true
	account, err := s.savingsRepo.GetByEmployeeID(ctx, emp.ID)
	switch {
	case err == nil:
		in.SavingsContribution = account.Amount
		in.SavingsAccumulated = account.AccumulatedTotal
	case errors.Is(err, savings.ErrSavingsNotFound):
		hasSavings = false
	default:
		return payroll.SettlementRecord{}, err
	}

	in.Bonuses, err = s.bonusRepo.ListByEmployeeMonth(ctx, emp.ID, month)
	if err != nil {
		return payroll.SettlementRecord{}, err
	}

	worked := in.DaysWorked
	if worked.IsNegative() {
		worked = decimal.Zero
	}
	worked = worked.RoundFloor(1)

	in.Policy = payroll.ResolvePolicy(emp.StartDate, month, worked)
	in.ApplyCuts = emp.PayrollGroup != employee.GroupNoCut && in.Policy.ApplyProfileAndSavings
	in.ApplySavings = in.Policy.ApplyProfileAndSavings

	if in.ApplyCuts && emp.HasHoldingWithholding {
		withheldBefore, err := s.payrollRepo.HasWithheld(ctx, emp.ID)
		if err != nil {
			return payroll.SettlementRecord{}, err
		}
		// The holding withholding applies at most once in an employee's
		// entire history.
		in.ApplyHolding = !withheldBefore
	}

	res := payroll.Calculate(s.cfg, in)

	if hasSavings {
		if err := s.savingsRepo.SetAccumulated(ctx, emp.ID, res.CarryoverSavings); err != nil {
			return payroll.SettlementRecord{}, err
		}
	}

	if res.Withheld.IsPositive() {
		_, err := s.deductionRepo.Create(ctx, deduction.StandingDeduction{
			EmployeeID: emp.ID,
			Type:       deduction.TypeHold,
			Amount:     res.Withheld,
			Reason:     holdReason,
			Month:      month,
		})
		if err != nil {
			return payroll.SettlementRecord{}, err
		}
	}

	record, err := s.payrollRepo.CreateRecord(ctx, payroll.SettlementRecord{
		EmployeeID:        emp.ID,
		Month:             month,
		Gross:             res.Gross,
		TotalDeductions:   res.TotalDeductions,
		BonusesTotal:      res.BonusesTotal,
		Net:               res.Net,
		DeductionsApplied: res.DeductionsApplied,
		WithheldAmount:    res.Withheld,
		CarryoverSavings:  res.CarryoverSavings,
	})
	if err != nil {
		return payroll.SettlementRecord{}, err
	}

	// A full month on the monthly group consumes its monthly_debt lines;
	// they were part of this run's total and must not reappear.
	if emp.PayrollGroup == employee.GroupMonthly && worked.GreaterThanOrEqual(decimal.NewFromInt(30)) {
		if err := s.deductionRepo.DeleteByEmployeeMonthType(ctx, emp.ID, month, deduction.TypeMonthlyDebt); err != nil {
			return payroll.SettlementRecord{}, err
		}
	}

	return record, nil
}

// Undo compensates every settlement of a month in a single transaction.
func (s *PayrollServiceImpl) Undo(ctx context.Context, req payroll.UndoRequest) (payroll.UndoResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.UndoResponse{}, err
	}

	var undone int
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		records, err := s.payrollRepo.ListRecordsByMonth(txCtx, req.Month)
		if err != nil {
			return err
		}
		// Undoing a month with nothing settled is a no-op, not an error.
		if len(records) == 0 {
			return nil
		}

		employeeIDs := make([]string, 0, len(records))
		for _, record := range records {
			if err := s.rollbackSavings(txCtx, record); err != nil {
				return err
			}
			// Consumed monthly_debt lines come back from the snapshot so a
			// future run can apply them again.
			for _, line := range record.DeductionsApplied {
				if line.Type != payroll.LineMonthlyDebt {
					continue
				}
				_, err := s.deductionRepo.Create(txCtx, deduction.StandingDeduction{
					EmployeeID: record.EmployeeID,
					Type:       deduction.TypeMonthlyDebt,
					Amount:     line.Amount,
					Reason:     line.Reason,
					Month:      record.Month,
				})
				if err != nil {
					return err
				}
			}
			employeeIDs = append(employeeIDs, record.EmployeeID)
		}

		if err := s.deductionRepo.DeleteByMonthTypeEmployees(txCtx, req.Month, deduction.TypeHold, employeeIDs); err != nil {
			return err
		}
		if err := s.payrollRepo.DeleteRecordsByMonth(txCtx, req.Month); err != nil {
			return err
		}

		undone = len(records)
		return nil
	})
	if err != nil {
		return payroll.UndoResponse{}, err
	}

	slog.Info("Payroll month undone", "month", req.Month, "records", undone)

	return payroll.UndoResponse{Month: req.Month, Undone: undone}, nil
}

// Recalculate undoes a month and runs it fresh for one group.
func (s *PayrollServiceImpl) Recalculate(ctx context.Context, req payroll.RecalculateRequest) (payroll.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.GenerateResponse{}, err
	}

	if _, err := s.Undo(ctx, payroll.UndoRequest{Month: req.Month}); err != nil {
		return payroll.GenerateResponse{}, fmt.Errorf("undo before recalculate: %w", err)
	}

	// Force bypasses any token left by the original run; the records
	// themselves are already gone.
	return s.Generate(ctx, payroll.GenerateRequest{
		Month:          req.Month,
		PayrollGroup:   req.PayrollGroup,
		Force:          true,
		IdempotencyKey: req.IdempotencyKey,
	})
}

// ListRecords returns a month's settlement records.
func (s *PayrollServiceImpl) ListRecords(ctx context.Context, month string) ([]payroll.SettlementRecordResponse, error) {
	records, err := s.payrollRepo.ListRecordsByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]payroll.SettlementRecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, payroll.ToSettlementRecordResponse(record))
	}

	return responses, nil
}
