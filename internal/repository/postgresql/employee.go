package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, full_name, base_salary, payroll_group, has_flat_deduction,
		has_holding_withholding, has_debt_deduction, start_date, active, created_at, updated_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.BaseSalary, &emp.PayrollGroup,
		&emp.HasFlatDeduction, &emp.HasHoldingWithholding, &emp.HasDebtDeduction,
		&emp.StartDate, &emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	emp.ID = uuid.NewString()

	query := fmt.Sprintf(`
		INSERT INTO employees (
			id, full_name, base_salary, payroll_group, has_flat_deduction,
			has_holding_withholding, has_debt_deduction, start_date, active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.ID, emp.FullName, emp.BaseSalary, emp.PayrollGroup,
		emp.HasFlatDeduction, emp.HasHoldingWithholding, emp.HasDebtDeduction,
		emp.StartDate, emp.Active,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE id = $1`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees`, employeeColumns)
	if activeOnly {
		query += ` WHERE active = TRUE`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListByGroup implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) ListByGroup(ctx context.Context, group employee.PayrollGroup, activeOnly bool) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE payroll_group = $1`, employeeColumns)
	if activeOnly {
		query += ` AND active = TRUE`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query, group)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by group: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	q := GetQuerier(ctx, r.db)

	setParts := []string{"updated_at = NOW()"}
	args := []interface{}{req.ID}
	argIdx := 2

	if req.FullName != nil {
		setParts = append(setParts, fmt.Sprintf("full_name = $%d", argIdx))
		args = append(args, *req.FullName)
		argIdx++
	}
	if req.BaseSalary != nil {
		setParts = append(setParts, fmt.Sprintf("base_salary = $%d", argIdx))
		args = append(args, *req.BaseSalary)
		argIdx++
	}
	if req.PayrollGroup != nil {
		setParts = append(setParts, fmt.Sprintf("payroll_group = $%d", argIdx))
		args = append(args, *req.PayrollGroup)
		argIdx++
	}
	if req.HasFlatDeduction != nil {
		setParts = append(setParts, fmt.Sprintf("has_flat_deduction = $%d", argIdx))
		args = append(args, *req.HasFlatDeduction)
		argIdx++
	}
	if req.HasHoldingWithholding != nil {
		setParts = append(setParts, fmt.Sprintf("has_holding_withholding = $%d", argIdx))
		args = append(args, *req.HasHoldingWithholding)
		argIdx++
	}
	if req.HasDebtDeduction != nil {
		setParts = append(setParts, fmt.Sprintf("has_debt_deduction = $%d", argIdx))
		args = append(args, *req.HasDebtDeduction)
		argIdx++
	}
	if req.StartDate != nil {
		setParts = append(setParts, fmt.Sprintf("start_date = $%d", argIdx))
		args = append(args, *req.StartDate)
		argIdx++
	}
	if req.Active != nil {
		setParts = append(setParts, fmt.Sprintf("active = $%d", argIdx))
		args = append(args, *req.Active)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employees
		SET %s
		WHERE id = $1
		RETURNING id
	`, strings.Join(setParts, ", "))

	var updatedID string
	err := q.QueryRow(ctx, query, args...).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// CreateSalaryRevision implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) CreateSalaryRevision(ctx context.Context, rev employee.SalaryRevision) (employee.SalaryRevision, error) {
	q := GetQuerier(ctx, r.db)

	rev.ID = uuid.NewString()

	query := `
		INSERT INTO salary_revisions (id, employee_id, amount, effective_from)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query, rev.ID, rev.EmployeeID, rev.Amount, rev.EffectiveFrom).
		Scan(&rev.CreatedAt)
	if err != nil {
		return employee.SalaryRevision{}, fmt.Errorf("failed to create salary revision: %w", err)
	}

	return rev, nil
}

// GetSalaryRevisions implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetSalaryRevisions(ctx context.Context, employeeID string) ([]employee.SalaryRevision, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, amount, effective_from, created_at
		FROM salary_revisions
		WHERE employee_id = $1
		ORDER BY effective_from
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list salary revisions: %w", err)
	}
	defer rows.Close()

	var revs []employee.SalaryRevision
	for rows.Next() {
		var rev employee.SalaryRevision
		if err := rows.Scan(&rev.ID, &rev.EmployeeID, &rev.Amount, &rev.EffectiveFrom, &rev.CreatedAt); err != nil {
			return nil, err
		}
		revs = append(revs, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return revs, nil
}
