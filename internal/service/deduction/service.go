package deduction

import (
	"context"

	"github.com/paydesk/payroll-backend-go/internal/domain/deduction"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type DeductionServiceImpl struct {
	deductionRepo deduction.DeductionRepository
	employeeRepo  employee.EmployeeRepository
}

func NewDeductionService(
	deductionRepo deduction.DeductionRepository,
	employeeRepo employee.EmployeeRepository,
) deduction.DeductionService {
	return &DeductionServiceImpl{
		deductionRepo: deductionRepo,
		employeeRepo:  employeeRepo,
	}
}

// Create implements deduction.DeductionService. System-managed types are
// rejected at validation.
func (s *DeductionServiceImpl) Create(ctx context.Context, req deduction.CreateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return deduction.DeductionResponse{}, err
	}

	d, err := s.deductionRepo.Create(ctx, deduction.StandingDeduction{
		EmployeeID: req.EmployeeID,
		Type:       deduction.Type(req.Type),
		Amount:     req.Amount,
		Reason:     req.Reason,
		Month:      req.Month,
	})
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	return deduction.ToDeductionResponse(d), nil
}

// List implements deduction.DeductionService. Filters by employee when the
// id is non-empty, otherwise lists the whole month.
func (s *DeductionServiceImpl) List(ctx context.Context, employeeID, month string) ([]deduction.DeductionResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	var (
		deductions []deduction.StandingDeduction
		err        error
	)
	if employeeID != "" {
		deductions, err = s.deductionRepo.ListByEmployeeMonth(ctx, employeeID, month)
	} else {
		deductions, err = s.deductionRepo.ListByMonth(ctx, month)
	}
	if err != nil {
		return nil, err
	}

	return toDeductionResponses(deductions), nil
}

// Update implements deduction.DeductionService.
func (s *DeductionServiceImpl) Update(ctx context.Context, req deduction.UpdateDeductionRequest) (deduction.DeductionResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DeductionResponse{}, err
	}

	existing, err := s.deductionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}
	if existing.Type.SystemManaged() {
		return deduction.DeductionResponse{}, deduction.ErrSystemManagedType
	}

	if err := s.deductionRepo.Update(ctx, req); err != nil {
		return deduction.DeductionResponse{}, err
	}

	updated, err := s.deductionRepo.GetByID(ctx, req.ID)
	if err != nil {
		return deduction.DeductionResponse{}, err
	}

	return deduction.ToDeductionResponse(updated), nil
}

// Delete implements deduction.DeductionService.
func (s *DeductionServiceImpl) Delete(ctx context.Context, id string) error {
	existing, err := s.deductionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Type.SystemManaged() {
		return deduction.ErrSystemManagedType
	}

	return s.deductionRepo.Delete(ctx, id)
}

// ListHolds implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListHolds(ctx context.Context, month string) ([]deduction.DeductionResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	holds, err := s.deductionRepo.ListByMonthType(ctx, month, deduction.TypeHold)
	if err != nil {
		return nil, err
	}

	return toDeductionResponses(holds), nil
}

// ClearHold implements deduction.DeductionService. Clearing a hold releases
// the withheld amount without touching the settlement history, so holding
// stays suppressed for that employee.
func (s *DeductionServiceImpl) ClearHold(ctx context.Context, id string) error {
	existing, err := s.deductionRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.Type != deduction.TypeHold {
		return deduction.ErrHoldNotFound
	}

	return s.deductionRepo.Delete(ctx, id)
}

// CreateDebtPayment implements deduction.DeductionService.
func (s *DeductionServiceImpl) CreateDebtPayment(ctx context.Context, req deduction.CreateDebtPaymentRequest) (deduction.DebtPaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return deduction.DebtPaymentResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return deduction.DebtPaymentResponse{}, err
	}

	paymentDate, _ := validator.IsValidDate(req.PaymentDate)

	p, err := s.deductionRepo.CreateDebtPayment(ctx, deduction.DebtPayment{
		EmployeeID:  req.EmployeeID,
		AmountPaid:  req.AmountPaid,
		PaymentDate: paymentDate,
		Note:        req.Note,
	})
	if err != nil {
		return deduction.DebtPaymentResponse{}, err
	}

	return deduction.ToDebtPaymentResponse(p), nil
}

// ListDebtPayments implements deduction.DeductionService.
func (s *DeductionServiceImpl) ListDebtPayments(ctx context.Context, employeeID string) ([]deduction.DebtPaymentResponse, error) {
	payments, err := s.deductionRepo.ListDebtPayments(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]deduction.DebtPaymentResponse, 0, len(payments))
	for _, p := range payments {
		responses = append(responses, deduction.ToDebtPaymentResponse(p))
	}

	return responses, nil
}

// GetDebtSummary implements deduction.DeductionService.
func (s *DeductionServiceImpl) GetDebtSummary(ctx context.Context, employeeID string) (deduction.DebtSummaryResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return deduction.DebtSummaryResponse{}, err
	}

	summary, err := s.deductionRepo.GetDebtSummary(ctx, employeeID)
	if err != nil {
		return deduction.DebtSummaryResponse{}, err
	}

	return deduction.DebtSummaryResponse{
		EmployeeID:  summary.EmployeeID,
		TotalDebt:   summary.TotalDebt,
		TotalPaid:   summary.TotalPaid,
		Outstanding: summary.Outstanding,
	}, nil
}

func toDeductionResponses(deductions []deduction.StandingDeduction) []deduction.DeductionResponse {
	responses := make([]deduction.DeductionResponse, 0, len(deductions))
	for _, d := range deductions {
		responses = append(responses, deduction.ToDeductionResponse(d))
	}
	return responses
}
