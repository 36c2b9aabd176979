package authorization

import (
	"context"
	"time"
)

// AuthorizationRepository defines data access for authorizations.
type AuthorizationRepository interface {
	Create(ctx context.Context, auth Authorization) (Authorization, error)

	GetByID(ctx context.Context, id string, companyID string) (Authorization, error)

	Update(ctx context.Context, auth Authorization) error

	Delete(ctx context.Context, id string, companyID string) error

	List(ctx context.Context, companyID string) ([]Authorization, error)

	// ListByEmployeeAndDate retrieves an employee's authorizations for one
	// date. The attendance calculator consumes the approved ones.
	ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]Authorization, error)
}
