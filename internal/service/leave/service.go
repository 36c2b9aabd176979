package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/tempohr/tempo-backend-go/internal/domain/employee"
	"github.com/tempohr/tempo-backend-go/internal/domain/leave"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
	"github.com/tempohr/tempo-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db               *database.DB
	leaveRequestRepo leave.LeaveRequestRepository
	employeeRepo     employee.EmployeeRepository
}

func NewLeaveService(
	db *database.DB,
	leaveRequestRepo leave.LeaveRequestRepository,
	employeeRepo employee.EmployeeRepository,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:               db,
		leaveRequestRepo: leaveRequestRepo,
		employeeRepo:     employeeRepo,
	}
}

// CreateLeaveRequest implements leave.LeaveService. The request write and
// any balance adjustment commit or roll back together.
func (s *LeaveServiceImpl) CreateLeaveRequest(ctx context.Context, req leave.CreateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	status := leave.StatusSubmitted
	if req.Status != nil {
		status = leave.Status(*req.Status)
	}

	next := leave.LeaveRequest{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Type:       leave.Type(req.Type),
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     status,
	}

	var created leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		emp, err := s.employeeRepo.GetByID(txCtx, req.EmployeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		rec, err := reconcile(nil, &next, emp.AnnualLeaveBalance)
		if err != nil {
			return err
		}

		if rec.Delta != 0 {
			if err := s.employeeRepo.UpdateAnnualLeaveBalance(txCtx, emp.ID, rec.UpdatedBalance, emp.BalanceVersion); err != nil {
				return err
			}
			slog.Info("annual leave balance adjusted",
				"employee_id", emp.ID,
				"delta", rec.Delta,
				"balance", rec.UpdatedBalance,
			)
		}

		next.DaysDeducted = rec.DaysDeducted
		created, err = s.leaveRequestRepo.Create(txCtx, next)
		if err != nil {
			return fmt.Errorf("failed to create leave request: %w", err)
		}
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(created), nil
}

// UpdateLeaveRequest implements leave.LeaveService. The prior effect is
// reversed and the new one applied in a single signed adjustment.
func (s *LeaveServiceImpl) UpdateLeaveRequest(ctx context.Context, req leave.UpdateLeaveRequestRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	var updated leave.LeaveRequest
	err = postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		prior, err := s.leaveRequestRepo.GetByID(txCtx, req.ID, companyID)
		if err != nil {
			return err
		}

		next := prior
		if req.Type != nil {
			next.Type = leave.Type(*req.Type)
		}
		if req.StartDate != nil {
			next.StartDate, _ = time.Parse("2006-01-02", *req.StartDate)
		}
		if req.EndDate != nil {
			next.EndDate, _ = time.Parse("2006-01-02", *req.EndDate)
		}
		if next.EndDate.Before(next.StartDate) {
			return leave.ErrInvalidDateRange
		}
		if req.Reason != nil {
			next.Reason = *req.Reason
		}
		if req.Status != nil {
			next.Status = leave.Status(*req.Status)
		}

		emp, err := s.employeeRepo.GetByID(txCtx, prior.EmployeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		rec, err := reconcile(&prior, &next, emp.AnnualLeaveBalance)
		if err != nil {
			return err
		}

		if rec.Delta != 0 {
			if err := s.employeeRepo.UpdateAnnualLeaveBalance(txCtx, emp.ID, rec.UpdatedBalance, emp.BalanceVersion); err != nil {
				return err
			}
			slog.Info("annual leave balance adjusted",
				"employee_id", emp.ID,
				"delta", rec.Delta,
				"balance", rec.UpdatedBalance,
			)
		}

		// DaysDeducted always reflects the new state, even when the delta
		// was zero, so the next transition reverses the right amount.
		next.DaysDeducted = rec.DaysDeducted
		if err := s.leaveRequestRepo.Update(txCtx, next); err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		updated = next
		return nil
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(updated), nil
}

// DeleteLeaveRequest implements leave.LeaveService. Deletion is a transition
// to "gone": an approved annual request credits its deducted days back.
func (s *LeaveServiceImpl) DeleteLeaveRequest(ctx context.Context, id string) error {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		prior, err := s.leaveRequestRepo.GetByID(txCtx, id, companyID)
		if err != nil {
			return err
		}

		emp, err := s.employeeRepo.GetByID(txCtx, prior.EmployeeID, companyID)
		if err != nil {
			return fmt.Errorf("failed to get employee: %w", err)
		}

		rec, err := reconcile(&prior, nil, emp.AnnualLeaveBalance)
		if err != nil {
			return err
		}

		if rec.Delta != 0 {
			if err := s.employeeRepo.UpdateAnnualLeaveBalance(txCtx, emp.ID, rec.UpdatedBalance, emp.BalanceVersion); err != nil {
				return err
			}
			slog.Info("annual leave balance credited back on delete",
				"employee_id", emp.ID,
				"delta", rec.Delta,
				"balance", rec.UpdatedBalance,
			)
		}

		if err := s.leaveRequestRepo.Delete(txCtx, id, companyID); err != nil {
			return fmt.Errorf("failed to delete leave request: %w", err)
		}
		return nil
	})
}

// GetLeaveRequest implements leave.LeaveService.
func (s *LeaveServiceImpl) GetLeaveRequest(ctx context.Context, id string) (leave.LeaveRequestResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	req, err := s.leaveRequestRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	return leave.ToResponse(req), nil
}

// ListLeaveRequests implements leave.LeaveService.
func (s *LeaveServiceImpl) ListLeaveRequests(ctx context.Context) ([]leave.LeaveRequestResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	requests, err := s.leaveRequestRepo.List(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}
	return responses, nil
}
