package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/schedule"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type scheduleRepositoryImpl struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) schedule.ScheduleRepository {
	return &scheduleRepositoryImpl{db: db}
}

// Upsert implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) Upsert(ctx context.Context, s schedule.RunSchedule) (schedule.RunSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_schedules (id, payroll_group, run_day, run_hour, enabled)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (payroll_group) DO UPDATE SET
			run_day = EXCLUDED.run_day,
			run_hour = EXCLUDED.run_hour,
			enabled = EXCLUDED.enabled,
			updated_at = NOW()
		RETURNING id, payroll_group, run_day, run_hour, enabled, last_run_month, updated_at
	`

	var saved schedule.RunSchedule
	err := q.QueryRow(ctx, query, uuid.NewString(), s.PayrollGroup, s.RunDay, s.RunHour, s.Enabled).
		Scan(&saved.ID, &saved.PayrollGroup, &saved.RunDay, &saved.RunHour,
			&saved.Enabled, &saved.LastRunMonth, &saved.UpdatedAt)
	if err != nil {
		return schedule.RunSchedule{}, fmt.Errorf("failed to upsert run schedule: %w", err)
	}

	return saved, nil
}

// List implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) List(ctx context.Context) ([]schedule.RunSchedule, error) {
	return r.list(ctx, false)
}

// ListEnabled implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) ListEnabled(ctx context.Context) ([]schedule.RunSchedule, error) {
	return r.list(ctx, true)
}

func (r *scheduleRepositoryImpl) list(ctx context.Context, enabledOnly bool) ([]schedule.RunSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, payroll_group, run_day, run_hour, enabled, last_run_month, updated_at
		FROM payroll_schedules
	`
	if enabledOnly {
		query += ` WHERE enabled = TRUE`
	}
	query += ` ORDER BY payroll_group`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list run schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.RunSchedule
	for rows.Next() {
		var s schedule.RunSchedule
		err := rows.Scan(&s.ID, &s.PayrollGroup, &s.RunDay, &s.RunHour,
			&s.Enabled, &s.LastRunMonth, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return schedules, nil
}

// MarkRun implements schedule.ScheduleRepository.
func (r *scheduleRepositoryImpl) MarkRun(ctx context.Context, group employee.PayrollGroup, month string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_schedules
		SET last_run_month = $2, updated_at = NOW()
		WHERE payroll_group = $1
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query, group, month).Scan(&id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.ErrScheduleNotFound
		}
		return fmt.Errorf("failed to mark schedule run: %w", err)
	}

	return nil
}
