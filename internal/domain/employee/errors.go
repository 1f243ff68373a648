package employee

import "errors"

var (
	ErrEmployeeNotFound       = errors.New("employee not found")
	ErrSalaryRevisionNotFound = errors.New("salary revision not found")
	ErrInvalidPayrollGroup    = errors.New("invalid payroll group")
)
