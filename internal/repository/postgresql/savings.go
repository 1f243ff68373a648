package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/domain/savings"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type savingsRepositoryImpl struct {
	db *database.DB
}

func NewSavingsRepository(db *database.DB) savings.SavingsRepository {
	return &savingsRepositoryImpl{db: db}
}

// GetByEmployeeID implements savings.SavingsRepository.
func (r *savingsRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID string) (savings.SavingsAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, accumulated_total, updated_at
		FROM savings_accounts
		WHERE employee_id = $1
	`

	var acc savings.SavingsAccount
	err := q.QueryRow(ctx, query, employeeID).
		Scan(&acc.ID, &acc.EmployeeID, &acc.Amount, &acc.AccumulatedTotal, &acc.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return savings.SavingsAccount{}, savings.ErrSavingsNotFound
		}
		return savings.SavingsAccount{}, fmt.Errorf("failed to get savings account: %w", err)
	}

	return acc, nil
}

// List implements savings.SavingsRepository.
func (r *savingsRepositoryImpl) List(ctx context.Context) ([]savings.SavingsAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, accumulated_total, updated_at
		FROM savings_accounts
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list savings accounts: %w", err)
	}
	defer rows.Close()

	var accounts []savings.SavingsAccount
	for rows.Next() {
		var acc savings.SavingsAccount
		if err := rows.Scan(&acc.ID, &acc.EmployeeID, &acc.Amount, &acc.AccumulatedTotal, &acc.UpdatedAt); err != nil {
			return nil, err
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

// UpsertContribution implements savings.SavingsRepository.
func (r *savingsRepositoryImpl) UpsertContribution(ctx context.Context, employeeID string, amount decimal.Decimal) (savings.SavingsAccount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO savings_accounts (id, employee_id, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id) DO UPDATE SET
			amount = EXCLUDED.amount,
			updated_at = NOW()
		RETURNING id, employee_id, amount, accumulated_total, updated_at
	`

	var acc savings.SavingsAccount
	err := q.QueryRow(ctx, query, uuid.NewString(), employeeID, amount).
		Scan(&acc.ID, &acc.EmployeeID, &acc.Amount, &acc.AccumulatedTotal, &acc.UpdatedAt)
	if err != nil {
		return savings.SavingsAccount{}, fmt.Errorf("failed to upsert savings contribution: %w", err)
	}

	return acc, nil
}

// SetAccumulated implements savings.SavingsRepository.
func (r *savingsRepositoryImpl) SetAccumulated(ctx context.Context, employeeID string, total decimal.Decimal) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE savings_accounts
		SET accumulated_total = $2, updated_at = NOW()
		WHERE employee_id = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, employeeID, total).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return savings.ErrSavingsNotFound
		}
		return fmt.Errorf("failed to set accumulated savings: %w", err)
	}

	return nil
}
