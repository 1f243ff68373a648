package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/attendance"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Upsert implements attendance.AttendanceRepository. Writes are keyed by
// the (employee, month) natural key; a second write replaces the counts.
func (r *attendanceRepositoryImpl) Upsert(ctx context.Context, period attendance.AttendancePeriod) (attendance.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_periods (
			id, employee_id, month, days_worked, days_absent, period_start, period_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (employee_id, month) DO UPDATE SET
			days_worked = EXCLUDED.days_worked,
			days_absent = EXCLUDED.days_absent,
			period_start = EXCLUDED.period_start,
			period_end = EXCLUDED.period_end,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		uuid.NewString(), period.EmployeeID, period.Month,
		period.DaysWorked, period.DaysAbsent, period.PeriodStart, period.PeriodEnd,
	).Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		return attendance.AttendancePeriod{}, fmt.Errorf("failed to upsert attendance period: %w", err)
	}

	return period, nil
}

// GetByEmployeeMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByEmployeeMonth(ctx context.Context, employeeID, month string) (attendance.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, days_worked, days_absent,
			period_start, period_end, created_at, updated_at
		FROM attendance_periods
		WHERE employee_id = $1 AND month = $2
	`

	var p attendance.AttendancePeriod
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&p.ID, &p.EmployeeID, &p.Month, &p.DaysWorked, &p.DaysAbsent,
		&p.PeriodStart, &p.PeriodEnd, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.AttendancePeriod{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendancePeriod{}, fmt.Errorf("failed to get attendance period: %w", err)
	}

	return p, nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByMonth(ctx context.Context, month string) ([]attendance.AttendancePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, month, days_worked, days_absent,
			period_start, period_end, created_at, updated_at
		FROM attendance_periods
		WHERE month = $1
		ORDER BY employee_id
	`

	rows, err := q.Query(ctx, query, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance periods: %w", err)
	}
	defer rows.Close()

	var periods []attendance.AttendancePeriod
	for rows.Next() {
		var p attendance.AttendancePeriod
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Month, &p.DaysWorked, &p.DaysAbsent,
			&p.PeriodStart, &p.PeriodEnd, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return periods, nil
}
