package leave

import "context"

// LeaveService defines business logic for leave requests. Every mutation
// that changes a request's annual-approved effect also adjusts the owning
// employee's annual-leave balance, atomically with the record write.
type LeaveService interface {
	CreateLeaveRequest(ctx context.Context, req CreateLeaveRequestRequest) (LeaveRequestResponse, error)
	GetLeaveRequest(ctx context.Context, id string) (LeaveRequestResponse, error)
	ListLeaveRequests(ctx context.Context) ([]LeaveRequestResponse, error)
	UpdateLeaveRequest(ctx context.Context, req UpdateLeaveRequestRequest) (LeaveRequestResponse, error)

	// DeleteLeaveRequest removes a request, crediting back any days the
	// request had deducted.
	DeleteLeaveRequest(ctx context.Context, id string) error
}
