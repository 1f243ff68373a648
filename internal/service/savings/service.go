package savings

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/domain/savings"
)

type SavingsServiceImpl struct {
	savingsRepo  savings.SavingsRepository
	employeeRepo employee.EmployeeRepository
}

func NewSavingsService(
	savingsRepo savings.SavingsRepository,
	employeeRepo employee.EmployeeRepository,
) savings.SavingsService {
	return &SavingsServiceImpl{
		savingsRepo:  savingsRepo,
		employeeRepo: employeeRepo,
	}
}

// List implements savings.SavingsService.
func (s *SavingsServiceImpl) List(ctx context.Context) ([]savings.SavingsResponse, error) {
	accounts, err := s.savingsRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]savings.SavingsResponse, 0, len(accounts))
	for _, acc := range accounts {
		responses = append(responses, savings.ToSavingsResponse(acc))
	}

	return responses, nil
}

// Get implements savings.SavingsService.
func (s *SavingsServiceImpl) Get(ctx context.Context, employeeID string) (savings.SavingsResponse, error) {
	acc, err := s.savingsRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return savings.SavingsResponse{}, err
	}
	return savings.ToSavingsResponse(acc), nil
}

// UpdateContribution implements savings.SavingsService.
func (s *SavingsServiceImpl) UpdateContribution(ctx context.Context, req savings.UpdateSavingsRequest) (savings.SavingsResponse, error) {
	if err := req.Validate(); err != nil {
		return savings.SavingsResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return savings.SavingsResponse{}, err
	}

	acc, err := s.savingsRepo.UpsertContribution(ctx, req.EmployeeID, req.Amount)
	if err != nil {
		return savings.SavingsResponse{}, err
	}

	return savings.ToSavingsResponse(acc), nil
}

// Payout implements savings.SavingsService.
func (s *SavingsServiceImpl) Payout(ctx context.Context, employeeID string) (savings.PayoutResponse, error) {
	acc, err := s.savingsRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return savings.PayoutResponse{}, err
	}

	if err := s.savingsRepo.SetAccumulated(ctx, employeeID, decimal.Zero); err != nil {
		return savings.PayoutResponse{}, err
	}

	slog.Info("Savings paid out", "employee_id", employeeID, "amount", acc.AccumulatedTotal)

	return savings.PayoutResponse{
		EmployeeID: employeeID,
		PaidOut:    acc.AccumulatedTotal,
	}, nil
}
