package bonus

import "context"

// BonusService owns one-off bonus entries.
type BonusService interface {
	Create(ctx context.Context, req CreateBonusRequest) (BonusResponse, error)
	ListByMonth(ctx context.Context, month string) ([]BonusResponse, error)
	Delete(ctx context.Context, id string) error
}
