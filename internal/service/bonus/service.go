package bonus

import (
	"context"

	"github.com/paydesk/payroll-backend-go/internal/domain/bonus"
	"github.com/paydesk/payroll-backend-go/internal/domain/employee"
	"github.com/paydesk/payroll-backend-go/internal/pkg/validator"
)

type BonusServiceImpl struct {
	bonusRepo    bonus.BonusRepository
	employeeRepo employee.EmployeeRepository
}

func NewBonusService(
	bonusRepo bonus.BonusRepository,
	employeeRepo employee.EmployeeRepository,
) bonus.BonusService {
	return &BonusServiceImpl{
		bonusRepo:    bonusRepo,
		employeeRepo: employeeRepo,
	}
}

// Create implements bonus.BonusService.
func (s *BonusServiceImpl) Create(ctx context.Context, req bonus.CreateBonusRequest) (bonus.BonusResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.BonusResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return bonus.BonusResponse{}, err
	}

	b, err := s.bonusRepo.Create(ctx, bonus.Bonus{
		EmployeeID: req.EmployeeID,
		Amount:     req.Amount,
		Reason:     req.Reason,
		Month:      req.Month,
	})
	if err != nil {
		return bonus.BonusResponse{}, err
	}

	return bonus.ToBonusResponse(b), nil
}

// ListByMonth implements bonus.BonusService.
func (s *BonusServiceImpl) ListByMonth(ctx context.Context, month string) ([]bonus.BonusResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "must be in YYYY-MM format"}}
	}

	bonuses, err := s.bonusRepo.ListByMonth(ctx, month)
	if err != nil {
		return nil, err
	}

	responses := make([]bonus.BonusResponse, 0, len(bonuses))
	for _, b := range bonuses {
		responses = append(responses, bonus.ToBonusResponse(b))
	}

	return responses, nil
}

// Delete implements bonus.BonusService.
func (s *BonusServiceImpl) Delete(ctx context.Context, id string) error {
	return s.bonusRepo.Delete(ctx, id)
}
