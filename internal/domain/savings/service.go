package savings

import "context"

// SavingsService owns savings plans; the accumulated total itself is
// maintained by settlement runs.
type SavingsService interface {
	List(ctx context.Context) ([]SavingsResponse, error)
	Get(ctx context.Context, employeeID string) (SavingsResponse, error)
	UpdateContribution(ctx context.Context, req UpdateSavingsRequest) (SavingsResponse, error)
	// Payout zeroes the accumulated total and reports what was released.
	Payout(ctx context.Context, employeeID string) (PayoutResponse, error)
}
