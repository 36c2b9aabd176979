package holiday

import (
	"context"
	"time"
)

// HolidayRepository defines data access for the holiday calendar.
type HolidayRepository interface {
	Create(ctx context.Context, hol Holiday) (Holiday, error)

	GetByID(ctx context.Context, id string, companyID string) (Holiday, error)

	// GetByDate returns nil when no holiday falls on the date.
	GetByDate(ctx context.Context, date time.Time, companyID string) (*Holiday, error)

	List(ctx context.Context, companyID string) ([]Holiday, error)

	Delete(ctx context.Context, id string, companyID string) error
}
