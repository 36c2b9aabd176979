package payroll

import "context"

// PayrollRepository defines data access for payroll records.
type PayrollRepository interface {
	// Upsert inserts or replaces the record for (employee, month, year).
	Upsert(ctx context.Context, rec PayrollRecord) (PayrollRecord, error)

	GetByID(ctx context.Context, id string, companyID string) (PayrollRecord, error)

	ListByPeriod(ctx context.Context, month int, year int, companyID string) ([]PayrollRecord, error)

	Delete(ctx context.Context, id string, companyID string) error
}
