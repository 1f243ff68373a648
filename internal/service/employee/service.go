package employee

import (
	"context"
	"time"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:              req.FullName,
		BaseSalary:            req.BaseSalary,
		PayrollGroup:          employee.PayrollGroup(req.PayrollGroup),
		HasFlatDeduction:      req.HasFlatDeduction,
		HasHoldingWithholding: req.HasHoldingWithholding,
		HasDebtDeduction:      req.HasDebtDeduction,
		Active:                true,
	}
	if req.StartDate != nil {
		start, _ := time.Parse("2006-01-02", *req.StartDate)
		emp.StartDate = &start
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(created), nil
}

// GetByID implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService. Group filters when non-empty.
func (s *EmployeeServiceImpl) List(ctx context.Context, group string, activeOnly bool) ([]employee.EmployeeResponse, error) {
	var (
		employees []employee.Employee
		err       error
	)

	if group != "" {
		g := employee.PayrollGroup(group)
		if !g.Valid() {
			return nil, employee.ErrInvalidPayrollGroup
		}
		employees, err = s.employeeRepo.ListByGroup(ctx, g, activeOnly)
	} else {
		employees, err = s.employeeRepo.List(ctx, activeOnly)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToEmployeeResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if err := s.employeeRepo.Update(ctx, req); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.GetByID(ctx, req.ID)
}

// SetActive implements employee.EmployeeService.
func (s *EmployeeServiceImpl) SetActive(ctx context.Context, id string, active bool) error {
	return s.employeeRepo.Update(ctx, employee.UpdateEmployeeRequest{ID: id, Active: &active})
}

// AddSalaryRevision implements employee.EmployeeService.
func (s *EmployeeServiceImpl) AddSalaryRevision(ctx context.Context, req employee.CreateSalaryRevisionRequest) (employee.SalaryRevisionResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.SalaryRevisionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return employee.SalaryRevisionResponse{}, err
	}

	effectiveFrom, _ := validator.IsValidDate(req.EffectiveFrom)

	rev, err := s.employeeRepo.CreateSalaryRevision(ctx, employee.SalaryRevision{
		EmployeeID:    req.EmployeeID,
		Amount:        req.Amount,
		EffectiveFrom: effectiveFrom,
	})
	if err != nil {
		return employee.SalaryRevisionResponse{}, err
	}

	return employee.ToSalaryRevisionResponse(rev), nil
}

// ListSalaryRevisions implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListSalaryRevisions(ctx context.Context, employeeID string) ([]employee.SalaryRevisionResponse, error) {
	revs, err := s.employeeRepo.GetSalaryRevisions(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.SalaryRevisionResponse, 0, len(revs))
	for _, rev := range revs {
		responses = append(responses, employee.ToSalaryRevisionResponse(rev))
	}

	return responses, nil
}
