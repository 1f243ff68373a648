package payroll

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
	"github.com/paydesk/payroll-backend-go/internal/repository/postgresql"
)

var (
	testPayrollDB   *database.DB
	testPayrollOnce sync.Once
)

// payrollTestDB connects and migrates once per test binary. Tests are
// skipped when no test database is configured.
func payrollTestDB(t *testing.T) *database.DB {
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	testPayrollOnce.Do(func() {
		db, err := database.NewPostgreSQLDB(context.Background(), dsn)
		if err != nil {
			panic("Failed to connect to test database: " + err.Error())
		}
		if err := database.Migrate(context.Background(), db); err != nil {
			panic("Failed to migrate test database: " + err.Error())
		}
		testPayrollDB = db
	})

	return testPayrollDB
}

func truncatePayrollTables(t *testing.T, ctx context.Context, db *database.DB) {
	tables := []string{
		"debt_payments",
		"idempotency_tokens",
		"payroll_records",
		"payroll_schedules",
		"bonuses",
		"savings_accounts",
		"standing_deductions",
		"attendance_periods",
		"salary_revisions",
		"employees",
		"users",
	}
	for _, table := range tables {
		_, err := db.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		require.NoError(t, err)
	}
}

type payrollTestEnv struct {
	db             *database.DB
	service        payroll.PayrollService
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	deductionRepo  deduction.DeductionRepository
	payrollRepo    payroll.PayrollRepository
}

func newPayrollTestEnv(t *testing.T) payrollTestEnv {
	db := payrollTestDB(t)
	truncatePayrollTables(t, context.Background(), db)

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	deductionRepo := postgresql.NewDeductionRepository(db)
	savRepo := postgresql.NewSavingsRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	payrollRepo := postgresql.NewPayrollRepository(db)

	svc := NewPayrollService(db, payroll.Config{
		RoundDecimals:       2,
		FlatDeductionAmount: decimal.NewFromInt(20),
		HoldingDays:         decimal.NewFromInt(10),
	}, payrollRepo, employeeRepo, attendanceRepo, deductionRepo, savRepo, bonusRepo)

	return payrollTestEnv{
		db:             db,
		service:        svc,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		deductionRepo:  deductionRepo,
		payrollRepo:    payrollRepo,
	}
}

func (e payrollTestEnv) createEmployee(t *testing.T, ctx context.Context, emp employee.Employee) employee.Employee {
	emp.Active = true
	created, err := e.employeeRepo.Create(ctx, emp)
	require.NoError(t, err)
	return created
}

func (e payrollTestEnv) seedAttendance(t *testing.T, ctx context.Context, employeeID, month string, worked float64) {
	_, err := e.attendanceRepo.Upsert(ctx, attendance.AttendancePeriod{
		EmployeeID: employeeID,
		Month:      month,
		DaysWorked: decimal.NewFromFloat(worked),
		DaysAbsent: decimal.Zero,
	})
	require.NoError(t, err)
}

func requireDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	exp, err := decimal.NewFromString(expected)
	require.NoError(t, err)
	require.True(t, exp.Equal(actual), "expected %s, got %s", expected, actual)
}

func TestGenerate_HoldingAppliesOnce(t *testing.T) {
	ctx := context.Background()
	env := newPayrollTestEnv(t)

	emp := env.createEmployee(t, ctx, employee.Employee{
		FullName:              "Holding Case",
		BaseSalary:            decimal.NewFromInt(24000),
		PayrollGroup:          employee.GroupCut,
		HasHoldingWithholding: true,
	})
	env.seedAttendance(t, ctx, emp.ID, "2026-05", 20)
	env.seedAttendance(t, ctx, emp.ID, "2026-06", 20)

	resp, err := env.service.Generate(ctx, payroll.GenerateRequest{
		Month:        "2026-05",
		PayrollGroup: string(employee.GroupCut),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	require.Len(t, resp.Results, 1)
	require.Equal(t, payroll.StatusGenerated, resp.Results[0].Status)

	record := resp.Results[0].Record
	require.NotNil(t, record)
	requireDecimal(t, "16000", record.Gross)
	requireDecimal(t, "8000", record.WithheldAmount)
	requireDecimal(t, "8000", record.Net)

	holds, err := env.deductionRepo.ListByMonthType(ctx, "2026-05", deduction.TypeHold)
	require.NoError(t, err)
	require.Len(t, holds, 1)
	requireDecimal(t, "8000", holds[0].Amount)

	// The withholding is lifetime-once: the next month settles in full.
	resp, err = env.service.Generate(ctx, payroll.GenerateRequest{
		Month:        "2026-06",
		PayrollGroup: string(employee.GroupCut),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	record = resp.Results[0].Record
	requireDecimal(t, "0", record.WithheldAmount)
	requireDecimal(t, "16000", record.Net)
}

func TestGenerate_IdempotencyKey(t *testing.T) {
	ctx := context.Background()
	env := newPayrollTestEnv(t)

	emp := env.createEmployee(t, ctx, employee.Employee{
		FullName:     "Idempotent Case",
		BaseSalary:   decimal.NewFromInt(3000),
		PayrollGroup: employee.GroupCut,
	})
	env.seedAttendance(t, ctx, emp.ID, "2026-05", 30)

	req := payroll.GenerateRequest{
		Month:          "2026-05",
		PayrollGroup:   string(employee.GroupCut),
		IdempotencyKey: "run-may",
	}

	resp, err := env.service.Generate(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)

	_, err = env.service.Generate(ctx, req)
	require.ErrorIs(t, err, payroll.ErrDuplicateRun)

	// Without a key the batch runs but skips the settled employee.
	resp, err = env.service.Generate(ctx, payroll.GenerateRequest{
		Month:        "2026-05",
		PayrollGroup: string(employee.GroupCut),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Count)
	require.Len(t, resp.Results, 1)
	assert.Equal(t, payroll.StatusSkipped, resp.Results[0].Status)
}

func TestGenerate_ForceReversesAndReruns(t *testing.T) {
	ctx := context.Background()
	env := newPayrollTestEnv(t)

	emp := env.createEmployee(t, ctx, employee.Employee{
		FullName:              "Force Case",
		BaseSalary:            decimal.NewFromInt(24000),
		PayrollGroup:          employee.GroupCut,
		HasHoldingWithholding: true,
	})
	env.seedAttendance(t, ctx, emp.ID, "2026-08", 20)

	req := payroll.GenerateRequest{
		Month:        "2026-08",
		PayrollGroup: string(employee.GroupCut),
	}
	_, err := env.service.Generate(ctx, req)
	require.NoError(t, err)

	req.Force = true
	resp, err := env.service.Generate(ctx, req)
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)

	// Reversal keeps exactly one hold row and one record.
	holds, err := env.deductionRepo.ListByMonthType(ctx, "2026-08", deduction.TypeHold)
	require.NoError(t, err)
	require.Len(t, holds, 1)

	records, err := env.payrollRepo.ListRecordsByMonth(ctx, "2026-08")
	require.NoError(t, err)
	require.Len(t, records, 1)
	requireDecimal(t, "8000", records[0].WithheldAmount)
	requireDecimal(t, "8000", records[0].Net)
}

func TestUndo_RestoresSavings(t *testing.T) {
	ctx := context.Background()
	env := newPayrollTestEnv(t)

	emp := env.createEmployee(t, ctx, employee.Employee{
		FullName:     "Savings Case",
		BaseSalary:   decimal.NewFromInt(3000),
		PayrollGroup: employee.GroupCut,
	})
	env.seedAttendance(t, ctx, emp.ID, "2026-05", 30)

	savRepo := postgresql.NewSavingsRepository(env.db)
	_, err := savRepo.UpsertContribution(ctx, emp.ID, decimal.NewFromInt(150))
	require.NoError(t, err)
	require.NoError(t, savRepo.SetAccumulated(ctx, emp.ID, decimal.NewFromInt(450)))

	resp, err := env.service.Generate(ctx, payroll.GenerateRequest{
		Month:        "2026-05",
		PayrollGroup: string(employee.GroupCut),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)

	record := resp.Results[0].Record
	requireDecimal(t, "2850", record.Net)
	requireDecimal(t, "600", record.CarryoverSavings)

	account, err := savRepo.GetByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	requireDecimal(t, "600", account.AccumulatedTotal)

	undone, err := env.service.Undo(ctx, payroll.UndoRequest{Month: "2026-05"})
	require.NoError(t, err)
	assert.Equal(t, 1, undone.Undone)

	account, err = savRepo.GetByEmployeeID(ctx, emp.ID)
	require.NoError(t, err)
	requireDecimal(t, "450", account.AccumulatedTotal)

	// A second undo has nothing left to compensate and reports zero.
	undone, err = env.service.Undo(ctx, payroll.UndoRequest{Month: "2026-05"})
	require.NoError(t, err)
	assert.Equal(t, 0, undone.Undone)
	assert.Equal(t, "2026-05", undone.Month)
}

func TestUndo_RecreatesMonthlyDebt(t *testing.T) {
	ctx := context.Background()
	env := newPayrollTestEnv(t)

	emp := env.createEmployee(t, ctx, employee.Employee{
		FullName:     "Monthly Debt Case",
		BaseSalary:   decimal.NewFromInt(5000),
		PayrollGroup: employee.GroupMonthly,
	})
	env.seedAttendance(t, ctx, emp.ID, "2026-07", 30)

	_, err := env.deductionRepo.Create(ctx, deduction.StandingDeduction{
		EmployeeID: emp.ID,
		Type:       deduction.TypeMonthlyDebt,
		Amount:     decimal.NewFromInt(100),
		Reason:     "advance repayment",
		Month:      "2026-07",
	})
	require.NoError(t, err)

	resp, err := env.service.Generate(ctx, payroll.GenerateRequest{
		Month:        "2026-07",
		PayrollGroup: string(employee.GroupMonthly),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)

	record := resp.Results[0].Record
	requireDecimal(t, "4900", record.Net)

	// A full month consumed the line.
	remaining, err := env.deductionRepo.ListByEmployeeMonth(ctx, emp.ID, "2026-07")
	require.NoError(t, err)
	require.Empty(t, remaining)

	_, err = env.service.Undo(ctx, payroll.UndoRequest{Month: "2026-07"})
	require.NoError(t, err)

	remaining, err = env.deductionRepo.ListByEmployeeMonth(ctx, emp.ID, "2026-07")
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, deduction.TypeMonthlyDebt, remaining[0].Type)
	requireDecimal(t, "100", remaining[0].Amount)
}

func TestRecalculate_MatchesFreshRun(t *testing.T) {
	ctx := context.Background()
	env := newPayrollTestEnv(t)

	emp := env.createEmployee(t, ctx, employee.Employee{
		FullName:     "Recalc Case",
		BaseSalary:   decimal.NewFromInt(24000),
		PayrollGroup: employee.GroupCut,
	})
	env.seedAttendance(t, ctx, emp.ID, "2026-05", 20)

	_, err := env.service.Generate(ctx, payroll.GenerateRequest{
		Month:        "2026-05",
		PayrollGroup: string(employee.GroupCut),
	})
	require.NoError(t, err)

	resp, err := env.service.Recalculate(ctx, payroll.RecalculateRequest{
		Month:        "2026-05",
		PayrollGroup: string(employee.GroupCut),
	})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Count)
	requireDecimal(t, "16000", resp.Results[0].Record.Net)

	records, err := env.payrollRepo.ListRecordsByMonth(ctx, "2026-05")
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestGenerateForEmployee_Conflicts(t *testing.T) {
	ctx := context.Background()
	env := newPayrollTestEnv(t)

	emp := env.createEmployee(t, ctx, employee.Employee{
		FullName:     "Single Case",
		BaseSalary:   decimal.NewFromInt(3000),
		PayrollGroup: employee.GroupCut,
	})
	env.seedAttendance(t, ctx, emp.ID, "2026-05", 30)

	record, err := env.service.GenerateForEmployee(ctx, payroll.GenerateEmployeeRequest{
		EmployeeID: emp.ID,
		Month:      "2026-05",
	})
	require.NoError(t, err)
	requireDecimal(t, "3000", record.Net)

	_, err = env.service.GenerateForEmployee(ctx, payroll.GenerateEmployeeRequest{
		EmployeeID: emp.ID,
		Month:      "2026-05",
	})
	require.ErrorIs(t, err, payroll.ErrSettlementExists)

	// Force reverses the existing record instead.
	record, err = env.service.GenerateForEmployee(ctx, payroll.GenerateEmployeeRequest{
		EmployeeID: emp.ID,
		Month:      "2026-05",
		Force:      true,
	})
	require.NoError(t, err)
	requireDecimal(t, "3000", record.Net)

	require.NoError(t, env.employeeRepo.Delete(ctx, emp.ID))
	inactive := env.createEmployee(t, ctx, employee.Employee{
		FullName:     "Inactive Case",
		BaseSalary:   decimal.NewFromInt(3000),
		PayrollGroup: employee.GroupCut,
	})
	deactivate := false
	require.NoError(t, env.employeeRepo.Update(ctx, employee.UpdateEmployeeRequest{ID: inactive.ID, Active: &deactivate}))

	_, err = env.service.GenerateForEmployee(ctx, payroll.GenerateEmployeeRequest{
		EmployeeID: inactive.ID,
		Month:      "2026-05",
	})
	require.ErrorIs(t, err, payroll.ErrEmployeeInactive)
}
