package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/bonus"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type bonusRepositoryImpl struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.BonusRepository {
	return &bonusRepositoryImpl{db: db}
}

// Create implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Create(ctx context.Context, b bonus.Bonus) (bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	b.ID = uuid.NewString()

	query := `
		INSERT INTO bonuses (id, employee_id, amount, reason, month)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, b.ID, b.EmployeeID, b.Amount, b.Reason, b.Month).
		Scan(&b.CreatedAt)
	if err != nil {
		return bonus.Bonus{}, fmt.Errorf("failed to create bonus: %w", err)
	}

	return b, nil
}

// ListByEmployeeMonth implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) ListByEmployeeMonth(ctx context.Context, employeeID, month string) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, reason, month, created_at
		FROM bonuses
		WHERE employee_id = $1 AND month = $2
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, employeeID, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses: %w", err)
	}
	defer rows.Close()

	return collectBonuses(rows)
}

// ListByMonth implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]bonus.Bonus, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, reason, month, created_at
		FROM bonuses
		WHERE month = $1
		ORDER BY employee_id, created_at
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonuses by month: %w", err)
	}
	defer rows.Close()

	return collectBonuses(rows)
}

func collectBonuses(rows pgx.Rows) ([]bonus.Bonus, error) {
	var bonuses []bonus.Bonus
	for rows.Next() {
		var b bonus.Bonus
		if err := rows.Scan(&b.ID, &b.EmployeeID, &b.Amount, &b.Reason, &b.Month, &b.CreatedAt); err != nil {
			return nil, err
		}
		bonuses = append(bonuses, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return bonuses, nil
}

// Delete implements bonus.BonusRepository.
func (r *bonusRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bonuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrBonusNotFound
	}

	return nil
}
