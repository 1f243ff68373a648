package employee

import "context"

// EmployeeService owns employee records and salary revision history.
type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, group string, activeOnly bool) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	SetActive(ctx context.Context, id string, active bool) error
	AddSalaryRevision(ctx context.Context, req CreateSalaryRevisionRequest) (SalaryRevisionResponse, error)
	ListSalaryRevisions(ctx context.Context, employeeID string) ([]SalaryRevisionResponse, error)
}
