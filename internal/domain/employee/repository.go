package employee

import "context"

// EmployeeRepository defines data access methods for employees and their
// salary revision history.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	List(ctx context.Context, activeOnly bool) ([]Employee, error)
	ListByGroup(ctx context.Context, group PayrollGroup, activeOnly bool) ([]Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error

	CreateSalaryRevision(ctx context.Context, rev SalaryRevision) (SalaryRevision, error)
	GetSalaryRevisions(ctx context.Context, employeeID string) ([]SalaryRevision, error)
}
