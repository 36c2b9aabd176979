package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmailExists      = errors.New("email already registered in this company")

	// ErrBalanceConflict means another writer updated the employee's balances
	// between our read and our version-checked write.
	ErrBalanceConflict = errors.New("employee balance was modified concurrently")
)
