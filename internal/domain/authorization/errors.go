package authorization

import "errors"

var (
	ErrAuthorizationNotFound = errors.New("authorization not found")
)
