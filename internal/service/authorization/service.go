package authorization

import (
	"context"
	"fmt"
	"time"

	"github.com/tempohr/tempo-backend-go/internal/domain/authorization"
	"github.com/tempohr/tempo-backend-go/internal/domain/employee"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
)

type AuthorizationServiceImpl struct {
	db                *database.DB
	authorizationRepo authorization.AuthorizationRepository
	employeeRepo      employee.EmployeeRepository
}

func NewAuthorizationService(
	db *database.DB,
	authorizationRepo authorization.AuthorizationRepository,
	employeeRepo employee.EmployeeRepository,
) authorization.AuthorizationService {
	return &AuthorizationServiceImpl{
		db:                db,
		authorizationRepo: authorizationRepo,
		employeeRepo:      employeeRepo,
	}
}

// CreateAuthorization implements authorization.AuthorizationService.
// New authorizations start as submitted; approval is an explicit update.
func (s *AuthorizationServiceImpl) CreateAuthorization(ctx context.Context, req authorization.CreateAuthorizationRequest) (authorization.AuthorizationResponse, error) {
	if err := req.Validate(); err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return authorization.AuthorizationResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	created, err := s.authorizationRepo.Create(ctx, authorization.Authorization{
		EmployeeID:    req.EmployeeID,
		CompanyID:     companyID,
		Type:          authorization.Type(req.Type),
		Date:          date,
		RequestedTime: req.RequestedTime,
		Reason:        req.Reason,
		Status:        authorization.StatusSubmitted,
	})
	if err != nil {
		return authorization.AuthorizationResponse{}, fmt.Errorf("failed to create authorization: %w", err)
	}

	return authorization.ToResponse(created), nil
}

// UpdateAuthorization implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) UpdateAuthorization(ctx context.Context, req authorization.UpdateAuthorizationRequest) (authorization.AuthorizationResponse, error) {
	if err := req.Validate(); err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	auth, err := s.authorizationRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	if req.Type != nil {
		auth.Type = authorization.Type(*req.Type)
	}
	if req.Date != nil {
		auth.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.RequestedTime != nil {
		auth.RequestedTime = req.RequestedTime
	}
	if req.Reason != nil {
		auth.Reason = *req.Reason
	}
	if req.Status != nil {
		auth.Status = authorization.Status(*req.Status)
	}

	if err := s.authorizationRepo.Update(ctx, auth); err != nil {
		return authorization.AuthorizationResponse{}, fmt.Errorf("failed to update authorization: %w", err)
	}

	return authorization.ToResponse(auth), nil
}

// GetAuthorization implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) GetAuthorization(ctx context.Context, id string) (authorization.AuthorizationResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	auth, err := s.authorizationRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return authorization.AuthorizationResponse{}, err
	}

	return authorization.ToResponse(auth), nil
}

// ListAuthorizations implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) ListAuthorizations(ctx context.Context) ([]authorization.AuthorizationResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	auths, err := s.authorizationRepo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list authorizations: %w", err)
	}

	responses := make([]authorization.AuthorizationResponse, 0, len(auths))
	for _, auth := range auths {
		responses = append(responses, authorization.ToResponse(auth))
	}
	return responses, nil
}

// DeleteAuthorization implements authorization.AuthorizationService.
func (s *AuthorizationServiceImpl) DeleteAuthorization(ctx context.Context, id string) error {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.authorizationRepo.GetByID(ctx, id, companyID); err != nil {
		return err
	}

	return s.authorizationRepo.Delete(ctx, id, companyID)
}
