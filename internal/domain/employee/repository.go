package employee

import "context"

// EmployeeRepository defines data access for employees. All methods take a
// companyID to keep tenants isolated.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	GetByID(ctx context.Context, id string, companyID string) (Employee, error)

	// GetByEmail looks an employee up across companies; used by login.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	List(ctx context.Context, companyID string) ([]Employee, error)

	Update(ctx context.Context, emp Employee) error

	Delete(ctx context.Context, id string, companyID string) error

	// UpdateAnnualLeaveBalance writes a new leave balance guarded by the
	// balance version read earlier. Returns ErrBalanceConflict when the
	// version no longer matches.
	UpdateAnnualLeaveBalance(ctx context.Context, id string, newBalance int, expectedVersion int) error

	// UpdateOvertimeBalance is the overtime-hours counterpart of
	// UpdateAnnualLeaveBalance.
	UpdateOvertimeBalance(ctx context.Context, id string, newBalance float64, expectedVersion int) error
}
