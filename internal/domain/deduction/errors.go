package deduction

import "errors"

var (
	ErrDeductionNotFound = errors.New("deduction not found")
	ErrHoldNotFound      = errors.New("hold not found")
	ErrSystemManagedType = errors.New("deduction type is system-managed")
)
