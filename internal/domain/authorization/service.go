package authorization

import "context"

// AuthorizationService defines business logic for attendance authorizations.
type AuthorizationService interface {
	CreateAuthorization(ctx context.Context, req CreateAuthorizationRequest) (AuthorizationResponse, error)
	GetAuthorization(ctx context.Context, id string) (AuthorizationResponse, error)
	ListAuthorizations(ctx context.Context) ([]AuthorizationResponse, error)
	UpdateAuthorization(ctx context.Context, req UpdateAuthorizationRequest) (AuthorizationResponse, error)
	DeleteAuthorization(ctx context.Context, id string) error
}
