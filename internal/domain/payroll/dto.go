package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type GenerateRequest struct {
	Month          string `json:"month"`
	PayrollGroup   string `json:"payroll_group"`
	Force          bool   `json:"force"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if !employee.PayrollGroup(r.PayrollGroup).Valid() {
		errs = append(errs, validator.ValidationError{Field: "payroll_group", Message: "must be 'cut', 'no-cut' or 'monthly'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type GenerateEmployeeRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      string `json:"month"`
	Force      bool   `json:"force"`
}

func (r *GenerateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UndoRequest struct {
	Month string `json:"month"`
}

func (r *UndoRequest) Validate() error {
	if !validator.IsValidMonth(r.Month) {
		return validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}
	return nil
}

type RecalculateRequest struct {
	Month          string `json:"month"`
	PayrollGroup   string `json:"payroll_group"`
	IdempotencyKey string `json:"idempotency_key,omitempty"`
}

func (r *RecalculateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be in YYYY-MM format"})
	}
	if !employee.PayrollGroup(r.PayrollGroup).Valid() {
		errs = append(errs, validator.ValidationError{Field: "payroll_group", Message: "must be 'cut', 'no-cut' or 'monthly'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Per-employee batch outcome statuses.
const (
	StatusGenerated = "generated"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

type EmployeeResult struct {
	EmployeeID string                    `json:"employee_id"`
	Status     string                    `json:"status"`
	Error      string                    `json:"error,omitempty"`
	Record     *SettlementRecordResponse `json:"record,omitempty"`
}

type GenerateResponse struct {
	Month        string           `json:"month"`
	PayrollGroup string           `json:"payroll_group"`
	Count        int              `json:"count"`
	Results      []EmployeeResult `json:"results"`
}

type UndoResponse struct {
	Month  string `json:"month"`
	Undone int    `json:"undone"`
}

type SettlementRecordResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	Month             string          `json:"month"`
	Gross             decimal.Decimal `json:"gross"`
	TotalDeductions   decimal.Decimal `json:"total_deductions"`
	BonusesTotal      decimal.Decimal `json:"bonuses_total"`
	Net               decimal.Decimal `json:"net"`
	DeductionsApplied []DeductionLine `json:"deductions_applied"`
	WithheldAmount    decimal.Decimal `json:"withheld_amount"`
	CarryoverSavings  decimal.Decimal `json:"carryover_savings"`
	CreatedAt         time.Time       `json:"created_at"`
}

func ToSettlementRecordResponse(r SettlementRecord) SettlementRecordResponse {
	return SettlementRecordResponse{
		ID:                r.ID,
		EmployeeID:        r.EmployeeID,
		Month:             r.Month,
		Gross:             r.Gross,
		TotalDeductions:   r.TotalDeductions,
		BonusesTotal:      r.BonusesTotal,
		Net:               r.Net,
		DeductionsApplied: r.DeductionsApplied,
		WithheldAmount:    r.WithheldAmount,
		CarryoverSavings:  r.CarryoverSavings,
		CreatedAt:         r.CreatedAt,
	}
}
