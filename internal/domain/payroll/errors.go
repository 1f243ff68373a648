package payroll

import "errors"

var (
	ErrDuplicateRun     = errors.New("idempotency key already used for this group and month")
	ErrSettlementExists = errors.New("settlement record already exists for this month")
	ErrRecordNotFound   = errors.New("settlement record not found")
	ErrEmployeeInactive = errors.New("employee is not active")
)
