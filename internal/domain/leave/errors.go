package leave

import "errors"

var (
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date must not be before start date")

	// ErrInsufficientLeaveBalance means applying the request would drive the
	// employee's annual-leave balance negative. Nothing is written.
	ErrInsufficientLeaveBalance = errors.New("insufficient annual leave balance")
)
