package payroll

import "context"

// PayrollService runs, reverses and re-runs settlements.
type PayrollService interface {
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)
	GenerateForEmployee(ctx context.Context, req GenerateEmployeeRequest) (SettlementRecordResponse, error)
	Undo(ctx context.Context, req UndoRequest) (UndoResponse, error)
	Recalculate(ctx context.Context, req RecalculateRequest) (GenerateResponse, error)
	ListRecords(ctx context.Context, month string) ([]SettlementRecordResponse, error)
}
