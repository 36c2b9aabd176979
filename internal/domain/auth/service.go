package auth

import "context"

// AuthService defines the minimal authentication surface: password login
// issuing a short-lived access token. Session management beyond that is an
// external concern.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
