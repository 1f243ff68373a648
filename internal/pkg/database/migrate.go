package database

import (
	"context"
	"fmt"
)

// Migrate applies the schema at startup. Statements are idempotent so the
// call is safe on every boot.
func Migrate(ctx context.Context, db *DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'staff',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS employees (
		id TEXT PRIMARY KEY,
		full_name TEXT NOT NULL,
		base_salary NUMERIC(14,4) NOT NULL,
		payroll_group TEXT NOT NULL,
		has_flat_deduction BOOLEAN NOT NULL DEFAULT FALSE,
		has_holding_withholding BOOLEAN NOT NULL DEFAULT FALSE,
		has_debt_deduction BOOLEAN NOT NULL DEFAULT FALSE,
		start_date DATE,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS salary_revisions (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		amount NUMERIC(14,4) NOT NULL,
		effective_from DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_salary_revisions_employee ON salary_revisions(employee_id)`,
	`CREATE TABLE IF NOT EXISTS attendance_periods (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		month TEXT NOT NULL,
		days_worked NUMERIC(5,1) NOT NULL,
		days_absent NUMERIC(5,1) NOT NULL DEFAULT 0,
		period_start DATE,
		period_end DATE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, month)
	)`,
	`CREATE TABLE IF NOT EXISTS standing_deductions (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		type TEXT NOT NULL,
		amount NUMERIC(14,4) NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		month TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_standing_deductions_employee_month ON standing_deductions(employee_id, month)`,
	`CREATE INDEX IF NOT EXISTS idx_standing_deductions_month_type ON standing_deductions(month, type)`,
	`CREATE TABLE IF NOT EXISTS savings_accounts (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL UNIQUE REFERENCES employees(id) ON DELETE CASCADE,
		amount NUMERIC(14,4) NOT NULL DEFAULT 0,
		accumulated_total NUMERIC(14,4) NOT NULL DEFAULT 0,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS bonuses (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		amount NUMERIC(14,4) NOT NULL,
		reason TEXT NOT NULL DEFAULT '',
		month TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_bonuses_employee_month ON bonuses(employee_id, month)`,
	`CREATE TABLE IF NOT EXISTS payroll_records (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		month TEXT NOT NULL,
		gross NUMERIC(14,4) NOT NULL,
		total_deductions NUMERIC(14,4) NOT NULL,
		bonuses_total NUMERIC(14,4) NOT NULL DEFAULT 0,
		net NUMERIC(14,4) NOT NULL,
		deductions_applied JSONB NOT NULL DEFAULT '[]',
		withheld_amount NUMERIC(14,4) NOT NULL DEFAULT 0,
		carryover_savings NUMERIC(14,4) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (employee_id, month)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_payroll_records_month ON payroll_records(month)`,
	`CREATE TABLE IF NOT EXISTS idempotency_tokens (
		key TEXT PRIMARY KEY,
		payroll_group TEXT NOT NULL,
		month TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS payroll_schedules (
		id TEXT PRIMARY KEY,
		payroll_group TEXT NOT NULL UNIQUE,
		run_day INT NOT NULL DEFAULT 1,
		run_hour INT NOT NULL DEFAULT 5,
		enabled BOOLEAN NOT NULL DEFAULT TRUE,
		last_run_month TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS debt_payments (
		id TEXT PRIMARY KEY,
		employee_id TEXT NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		amount_paid NUMERIC(14,4) NOT NULL,
		payment_date DATE NOT NULL,
		note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}
