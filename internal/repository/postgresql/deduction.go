package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type deductionRepositoryImpl struct {
	db *database.DB
}

func NewDeductionRepository(db *database.DB) deduction.DeductionRepository {
	return &deductionRepositoryImpl{db: db}
}

// Create implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Create(ctx context.Context, d deduction.StandingDeduction) (deduction.StandingDeduction, error) {
	q := GetQuerier(ctx, r.db)

	d.ID = uuid.NewString()

	query := `
		INSERT INTO standing_deductions (id, employee_id, type, amount, reason, month)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, d.ID, d.EmployeeID, d.Type, d.Amount, d.Reason, d.Month).
		Scan(&d.CreatedAt)
	if err != nil {
		return deduction.StandingDeduction{}, fmt.Errorf("failed to create deduction: %w", err)
	}

	return d, nil
}

// GetByID implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) GetByID(ctx context.Context, id string) (deduction.StandingDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, amount, reason, month, created_at
		FROM standing_deductions
		WHERE id = $1
	`

	var d deduction.StandingDeduction
	err := q.QueryRow(ctx, query, id).
		Scan(&d.ID, &d.EmployeeID, &d.Type, &d.Amount, &d.Reason, &d.Month, &d.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.StandingDeduction{}, deduction.ErrDeductionNotFound
		}
		return deduction.StandingDeduction{}, fmt.Errorf("failed to get deduction: %w", err)
	}

	return d, nil
}

// ListByEmployeeMonth implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]deduction.StandingDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, amount, reason, month, created_at
		FROM standing_deductions
		WHERE employee_id = $1 AND month = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions: %w", err)
	}
	defer rows.Close()

	return collectDeductions(rows)
}

// ListByMonth implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]deduction.StandingDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, amount, reason, month, created_at
		FROM standing_deductions
		WHERE month = $1
		ORDER BY employee_id, created_at
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions by month: %w", err)
	}
	defer rows.Close()

	return collectDeductions(rows)
}

// ListByMonthType implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) ListByMonthType(ctx context.Context, month string, t deduction.Type) ([]deduction.StandingDeduction, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, type, amount, reason, month, created_at
		FROM standing_deductions
		WHERE month = $1 AND type = $2
		ORDER BY employee_id, created_at
	`

	rows, err := q.Query(ctx, query, month, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list deductions by month and type: %w", err)
	}
	defer rows.Close()

	return collectDeductions(rows)
}

func collectDeductions(rows pgx.Rows) ([]deduction.StandingDeduction, error) {
	var deductions []deduction.StandingDeduction
	for rows.Next() {
		var d deduction.StandingDeduction
		if err := rows.Scan(&d.ID, &d.EmployeeID, &d.Type, &d.Amount, &d.Reason, &d.Month, &d.CreatedAt); err != nil {
			return nil, err
		}
		deductions = append(deductions, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return deductions, nil
}

// Update implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Update(ctx context.Context, req deduction.UpdateDeductionRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.Amount != nil {
		setParts = append(setParts, fmt.Sprintf("amount = $%d", argIdx))
		args = append(args, *req.Amount)
		argIdx++
	}
	if req.Reason != nil {
		setParts = append(setParts, fmt.Sprintf("reason = $%d", argIdx))
		args = append(args, *req.Reason)
		argIdx++
	}
	if req.Month != nil {
		setParts = append(setParts, fmt.Sprintf("month = $%d", argIdx))
		args = append(args, *req.Month)
		argIdx++
	}

	if len(setParts) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		UPDATE standing_deductions
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return deduction.ErrDeductionNotFound
		}
		return fmt.Errorf("failed to update deduction: %w", err)
	}

	return nil
}

// Delete implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM standing_deductions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete deduction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return deduction.ErrDeductionNotFound
	}

	return nil
}

// DeleteByEmployeeMonthType implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) DeleteByEmployeeMonthType(ctx context.Context, employeeID, month string, t deduction.Type) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM standing_deductions WHERE employee_id = $1 AND month = $2 AND type = $3`,
		employeeID, month, t,
	)
	if err != nil {
		return fmt.Errorf("failed to delete deductions by employee/month/type: %w", err)
	}

	return nil
}

// DeleteByMonthTypeEmployees implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) DeleteByMonthTypeEmployees(ctx context.Context, month string, t deduction.Type, employeeIDs []string) error {
	if len(employeeIDs) == 0 {
		return nil
	}

	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`DELETE FROM standing_deductions WHERE month = $1 AND type = $2 AND employee_id = ANY($3)`,
		month, t, employeeIDs,
	)
	if err != nil {
		return fmt.Errorf("failed to bulk delete deductions: %w", err)
	}

	return nil
}

// CreateDebtPayment implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) CreateDebtPayment(ctx context.Context, p deduction.DebtPayment) (deduction.DebtPayment, error) {
	q := GetQuerier(ctx, r.db)

	p.ID = uuid.NewString()

	query := `
		INSERT INTO debt_payments (id, employee_id, amount_paid, payment_date, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, p.ID, p.EmployeeID, p.AmountPaid, p.PaymentDate, p.Note).
		Scan(&p.CreatedAt)
	if err != nil {
		return deduction.DebtPayment{}, fmt.Errorf("failed to create debt payment: %w", err)
	}

	return p, nil
}

// ListDebtPayments implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) ListDebtPayments(ctx context.Context, employeeID string) ([]deduction.DebtPayment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount_paid, payment_date, note, created_at
		FROM debt_payments
		WHERE employee_id = $1
		ORDER BY payment_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list debt payments: %w", err)
	}
	defer rows.Close()

	var payments []deduction.DebtPayment
	for rows.Next() {
		var p deduction.DebtPayment
		if err := rows.Scan(&p.ID, &p.EmployeeID, &p.AmountPaid, &p.PaymentDate, &p.Note, &p.CreatedAt); err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// GetDebtSummary implements deduction.DeductionRepository.
func (r *deductionRepositoryImpl) GetDebtSummary(ctx context.Context, employeeID string) (deduction.DebtSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE((SELECT SUM(amount) FROM standing_deductions
				WHERE employee_id = $1 AND type IN ('debt', 'monthly_debt')), 0),
			COALESCE((SELECT SUM(amount_paid) FROM debt_payments
				WHERE employee_id = $1), 0)
	`

	summary := deduction.DebtSummary{EmployeeID: employeeID}
	err := q.QueryRow(ctx, query, employeeID).Scan(&summary.TotalDebt, &summary.TotalPaid)
	if err != nil {
		return deduction.DebtSummary{}, fmt.Errorf("failed to get debt summary: %w", err)
	}
	summary.Outstanding = summary.TotalDebt.Sub(summary.TotalPaid)

	return summary, nil
}
