package payroll

import "context"

// PayrollService defines business logic for payroll generation.
type PayrollService interface {
	// GeneratePayroll computes and stores the payroll record for one
	// employee and period: base salary from the employee row, automated
	// overtime pay aggregated from the month's attendance, manual
	// deductions, and the resulting net pay.
	GeneratePayroll(ctx context.Context, req GeneratePayrollRequest) (PayrollResponse, error)

	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)

	ListPayrollByPeriod(ctx context.Context, month int, year int) ([]PayrollResponse, error)

	DeletePayroll(ctx context.Context, id string) error
}
