package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tempohr/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohr/tempo-backend-go/internal/domain/employee"
	"github.com/tempohr/tempo-backend-go/internal/domain/payroll"
	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	scheduleRepo   schedule.WorkScheduleRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	scheduleRepo schedule.WorkScheduleRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		scheduleRepo:   scheduleRepo,
	}
}

// automatedOvertimePay aggregates the employee's attendance overtime for the
// period, weighted by each weekday's rate multiplier. An unknown employee or
// an empty month yields zero; store failures propagate.
func (s *PayrollServiceImpl) automatedOvertimePay(ctx context.Context, companyID, employeeID string, month time.Month, year int) (decimal.Decimal, error) {
	records, err := s.attendanceRepo.ListByEmployeeMonth(ctx, employeeID, month, year, companyID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to list attendance for period: %w", err)
	}
	if len(records) == 0 {
		return decimal.Zero, nil
	}

	sched, err := s.scheduleRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, pgx.ErrNoRows) {
			// No schedule: every multiplier defaults to 1.
			return OvertimePayFor(records, nil), nil
		}
		return decimal.Zero, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return OvertimePayFor(records, &sched), nil
}

// GeneratePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GeneratePayroll(ctx context.Context, req payroll.GeneratePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	deductions := decimal.Zero
	if req.Deductions != "" {
		deductions, _ = decimal.NewFromString(req.Deductions)
	}

	overtimePay, err := s.automatedOvertimePay(ctx, companyID, emp.ID, time.Month(req.Month), req.Year)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec := payroll.PayrollRecord{
		EmployeeID:  emp.ID,
		CompanyID:   companyID,
		PeriodMonth: req.Month,
		PeriodYear:  req.Year,
		BaseSalary:  emp.BaseSalary,
		OvertimePay: overtimePay,
		Deductions:  deductions,
		NetPay:      NetPay(emp.BaseSalary, overtimePay, deductions),
	}

	stored, err := s.payrollRepo.Upsert(ctx, rec)
	if err != nil {
		return payroll.PayrollResponse{}, fmt.Errorf("failed to store payroll record: %w", err)
	}

	return payroll.ToResponse(stored), nil
}

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	rec, err := s.payrollRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return payroll.ToResponse(rec), nil
}

// ListPayrollByPeriod implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrollByPeriod(ctx context.Context, month int, year int) ([]payroll.PayrollResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.payrollRepo.ListByPeriod(ctx, month, year, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}

	responses := make([]payroll.PayrollResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, payroll.ToResponse(rec))
	}
	return responses, nil
}

// DeletePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.payrollRepo.GetByID(ctx, id, companyID); err != nil {
		return err
	}

	return s.payrollRepo.Delete(ctx, id, companyID)
}
