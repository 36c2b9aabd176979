package overtime

import "context"

// CompensationService defines business logic for the overtime compensation
// ledger. Creating consumes balance, editing reverses the prior amount
// before applying the new one, deleting credits the amount back.
type CompensationService interface {
	CreateCompensation(ctx context.Context, req CreateCompensationRequest) (CompensationResponse, error)
	GetCompensation(ctx context.Context, id string) (CompensationResponse, error)
	ListCompensations(ctx context.Context) ([]CompensationResponse, error)
	UpdateCompensation(ctx context.Context, req UpdateCompensationRequest) (CompensationResponse, error)
	DeleteCompensation(ctx context.Context, id string) error
}
