package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/payroll"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// CreateRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateRecord(ctx context.Context, record payroll.SettlementRecord) (payroll.SettlementRecord, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	applied, err := json.Marshal(record.DeductionsApplied)
	if err != nil {
		return payroll.SettlementRecord{}, fmt.Errorf("failed to encode deductions snapshot: %w", err)
	}
	if record.DeductionsApplied == nil {
		applied = []byte("[]")
	}

	query := `
		INSERT INTO payroll_records (
			id, employee_id, month, gross, total_deductions, bonuses_total,
			net, deductions_applied, withheld_amount, carryover_savings
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query,
		record.ID, record.EmployeeID, record.Month, record.Gross,
		record.TotalDeductions, record.BonusesTotal, record.Net,
		applied, record.WithheldAmount, record.CarryoverSavings,
	).Scan(&record.CreatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "payroll_records_employee_id_month_key") {
			return payroll.SettlementRecord{}, payroll.ErrSettlementExists
		}
		return payroll.SettlementRecord{}, fmt.Errorf("failed to create settlement record: %w", err)
	}

	return record, nil
}

const recordColumns = `id, employee_id, month, gross, total_deductions, bonuses_total,
		net, deductions_applied, withheld_amount, carryover_savings, created_at`

func scanRecord(row pgx.Row) (payroll.SettlementRecord, error) {
	var record payroll.SettlementRecord
	var applied []byte

	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Month, &record.Gross,
		&record.TotalDeductions, &record.BonusesTotal, &record.Net,
		&applied, &record.WithheldAmount, &record.CarryoverSavings, &record.CreatedAt,
	)
	if err != nil {
		return payroll.SettlementRecord{}, err
	}

	if err := json.Unmarshal(applied, &record.DeductionsApplied); err != nil {
		return payroll.SettlementRecord{}, fmt.Errorf("failed to decode deductions snapshot: %w", err)
	}

	return record, nil
}

// GetRecordByEmployeeMonth implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) GetRecordByEmployeeMonth(ctx context.Context, employeeID, month string) (payroll.SettlementRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM payroll_records
		WHERE employee_id = $1 AND month = $2
	`, recordColumns)

	record, err := scanRecord(q.QueryRow(ctx, query, employeeID, month))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.SettlementRecord{}, payroll.ErrRecordNotFound
		}
		return payroll.SettlementRecord{}, fmt.Errorf("failed to get settlement record: %w", err)
	}

	return record, nil
}

// ListRecordsByMonth implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListRecordsByMonth(ctx context.Context, month string) ([]payroll.SettlementRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s FROM payroll_records
		WHERE month = $1
		ORDER BY employee_id
	`, recordColumns)

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list settlement records: %w", err)
	}
	defer rows.Close()

	var records []payroll.SettlementRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// DeleteRecord implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteRecord(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete settlement record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrRecordNotFound
	}

	return nil
}

// DeleteRecordsByMonth implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) DeleteRecordsByMonth(ctx context.Context, month string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM payroll_records WHERE month = $1`, month)
	if err != nil {
		return fmt.Errorf("failed to delete settlement records for month: %w", err)
	}

	return nil
}

// HasWithheld implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) HasWithheld(ctx context.Context, employeeID string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_records
			WHERE employee_id = $1 AND withheld_amount > 0
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check withheld history: %w", err)
	}

	return exists, nil
}

// TokenExists implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) TokenExists(ctx context.Context, key, payrollGroup, month string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM idempotency_tokens
			WHERE key = $1 AND payroll_group = $2 AND month = $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, key, payrollGroup, month).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check idempotency token: %w", err)
	}

	return exists, nil
}

// CreateToken implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) CreateToken(ctx context.Context, token payroll.IdempotencyToken) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO idempotency_tokens (key, payroll_group, month)
		VALUES ($1, $2, $3)
	`

	_, err := q.Exec(ctx, query, token.Key, token.PayrollGroup, token.Month)
	if err != nil {
		if strings.Contains(err.Error(), "idempotency_tokens_pkey") {
			return payroll.ErrDuplicateRun
		}
		return fmt.Errorf("failed to create idempotency token: %w", err)
	}

	return nil
}
