package overtime

import "context"

// CompensationRepository defines data access for overtime compensations.
type CompensationRepository interface {
	Create(ctx context.Context, comp Compensation) (Compensation, error)

	GetByID(ctx context.Context, id string, companyID string) (Compensation, error)

	Update(ctx context.Context, comp Compensation) error

	Delete(ctx context.Context, id string, companyID string) error

	List(ctx context.Context, companyID string) ([]Compensation, error)
}
