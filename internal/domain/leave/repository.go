package leave

import "context"

// LeaveRequestRepository defines data access for leave requests.
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)

	GetByID(ctx context.Context, id string, companyID string) (LeaveRequest, error)

	Update(ctx context.Context, req LeaveRequest) error

	Delete(ctx context.Context, id string, companyID string) error

	List(ctx context.Context, companyID string) ([]LeaveRequest, error)

	ListByEmployee(ctx context.Context, employeeID string, companyID string) ([]LeaveRequest, error)
}
