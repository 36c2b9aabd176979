package overtime

import "errors"

var (
	ErrCompensationNotFound = errors.New("overtime compensation not found")

	// ErrInsufficientOvertimeBalance means the compensation would drive the
	// employee's overtime-hours balance negative. Nothing is written.
	ErrInsufficientOvertimeBalance = errors.New("insufficient overtime hours balance")
)
