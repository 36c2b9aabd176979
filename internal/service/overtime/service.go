package overtime

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tempohr/tempo-backend-go/internal/domain/employee"
	"github.com/tempohr/tempo-backend-go/internal/domain/overtime"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
	"github.com/tempohr/tempo-backend-go/internal/repository/postgresql"
)

type CompensationServiceImpl struct {
	db               *database.DB
	compensationRepo overtime.CompensationRepository
	employeeRepo     employee.EmployeeRepository
}

func NewCompensationService(
	db *database.DB,
	compensationRepo overtime.CompensationRepository,
	employeeRepo employee.EmployeeRepository,
) overtime.CompensationService {
	return &CompensationServiceImpl{
		db:               db,
		compensationRepo: compensationRepo,
		employeeRepo:     employeeRepo,
	}
}

// CreateCompensation implements overtime.CompensationService. Every persisted
// record consumes balance immediately; there is no approval gate.
func (s *CompensationServiceImpl) CreateCompensation(ctx context.Context, req overtime.CreateCompensationRequest) (overtime.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.CompensationResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return overtime.CompensationResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	var created overtime.Compensation
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		balance, err := nextBalance(nil, &req.CompensatedHours, emp.OvertimeHoursBalance)
		if err != nil {
			return err
		}

		if err := s.employeeRepo.UpdateOvertimeBalance(txCtx, emp.ID, balance, emp.BalanceVersion); err != nil {
			return err
		}
		slog.Info("overtime balance consumed",
			"employee_id", emp.ID,
			"hours", req.CompensatedHours,
			"balance", balance,
		)

		created, err = s.compensationRepo.Create(txCtx, overtime.Compensation{
			EmployeeID:       req.EmployeeID,
			CompanyID:        companyID,
			Date:             date,
			CompensatedHours: req.CompensatedHours,
			Reason:           req.Reason,
		})
		if err != nil {
			return fmt.Errorf("failed to create overtime compensation: %w", err)
		}
		return nil
	})
	if err != nil {
		return overtime.CompensationResponse{}, err
	}

	return overtime.ToResponse(created), nil
}

// UpdateCompensation implements overtime.CompensationService. The prior
// amount is reversed before the new one is applied.
func (s *CompensationServiceImpl) UpdateCompensation(ctx context.Context, req overtime.UpdateCompensationRequest) (overtime.CompensationResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.CompensationResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return overtime.CompensationResponse{}, err
	}

	var updated overtime.Compensation
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		prior, err := s.compensationRepo.GetByID(txCtx, req.ID, companyID)
		if err != nil {
			return err
		}

		next := prior
		if req.Date != nil {
			next.Date, _ = time.Parse("2006-01-02", *req.Date)
		}
		if req.CompensatedHours != nil {
			next.CompensatedHours = *req.CompensatedHours
		}
		if req.Reason != nil {
			next.Reason = *req.Reason
		}

		emp, err := s.employeeRepo.GetByID(txCtx, prior.EmployeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		balance, err := nextBalance(&prior.CompensatedHours, &next.CompensatedHours, emp.OvertimeHoursBalance)
		if err != nil {
			return err
		}

		if balance != emp.OvertimeHoursBalance {
			if err := s.employeeRepo.UpdateOvertimeBalance(txCtx, emp.ID, balance, emp.BalanceVersion); err != nil {
				return err
			}
			slog.Info("overtime balance adjusted",
				"employee_id", emp.ID,
				"balance", balance,
			)
		}

		if err := s.compensationRepo.Update(txCtx, next); err != nil {
			return fmt.Errorf("failed to update overtime compensation: %w", err)
		}
		updated = next
		return nil
	})
	if err != nil {
		return overtime.CompensationResponse{}, err
	}

	return overtime.ToResponse(updated), nil
}

// DeleteCompensation implements overtime.CompensationService. The deleted
// record's hours are credited back.
func (s *CompensationServiceImpl) DeleteCompensation(ctx context.Context, id string) error {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		prior, err := s.compensationRepo.GetByID(txCtx, id, companyID)
		if err != nil {
			return err
		}

		emp, err := s.employeeRepo.GetByID(txCtx, prior.EmployeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		balance, err := nextBalance(&prior.CompensatedHours, nil, emp.OvertimeHoursBalance)
		if err != nil {
			return err
		}

		if err := s.employeeRepo.UpdateOvertimeBalance(txCtx, emp.ID, balance, emp.BalanceVersion); err != nil {
			return err
		}
		slog.Info("overtime balance credited back on delete",
			"employee_id", emp.ID,
			"hours", prior.CompensatedHours,
			"balance", balance,
		)

		if err := s.compensationRepo.Delete(txCtx, id, companyID); err != nil {
			return fmt.Errorf("failed to delete overtime compensation: %w", err)
		}
		return nil
	})
}

// GetCompensation implements overtime.CompensationService.
func (s *CompensationServiceImpl) GetCompensation(ctx context.Context, id string) (overtime.CompensationResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return overtime.CompensationResponse{}, err
	}

	comp, err := s.compensationRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return overtime.CompensationResponse{}, err
	}

	return overtime.ToResponse(comp), nil
}

// ListCompensations implements overtime.CompensationService.
func (s *CompensationServiceImpl) ListCompensations(ctx context.Context) ([]overtime.CompensationResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	comps, err := s.compensationRepo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime compensations: %w", err)
	}

	responses := make([]overtime.CompensationResponse, 0, len(comps))
	for _, comp := range comps {
		responses = append(responses, overtime.ToResponse(comp))
	}
	return responses, nil
}
