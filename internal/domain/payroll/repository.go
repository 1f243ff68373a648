package payroll

import "context"

// PayrollRepository defines data access methods for settlement records and
// idempotency tokens.
type PayrollRepository interface {
	CreateRecord(ctx context.Context, record SettlementRecord) (SettlementRecord, error)
	GetRecordByEmployeeMonth(ctx context.Context, employeeID, month string) (SettlementRecord, error)
	ListRecordsByMonth(ctx context.Context, month string) ([]SettlementRecord, error)
	DeleteRecord(ctx context.Context, id string) error
	DeleteRecordsByMonth(ctx context.Context, month string) error

	// HasWithheld reports whether any settlement record in the employee's
	// history carries a positive withheld amount.
	HasWithheld(ctx context.Context, employeeID string) (bool, error)

	TokenExists(ctx context.Context, key, payrollGroup, month string) (bool, error)
	CreateToken(ctx context.Context, token IdempotencyToken) error
}
