package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tempohr/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohr/tempo-backend-go/internal/domain/authorization"
	"github.com/tempohr/tempo-backend-go/internal/domain/employee"
	"github.com/tempohr/tempo-backend-go/internal/domain/holiday"
	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
)

type AttendanceServiceImpl struct {
	db                *database.DB
	attendanceRepo    attendance.AttendanceRepository
	employeeRepo      employee.EmployeeRepository
	scheduleRepo      schedule.WorkScheduleRepository
	authorizationRepo authorization.AuthorizationRepository
	holidayRepo       holiday.HolidayRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo schedule.WorkScheduleRepository,
	authorizationRepo authorization.AuthorizationRepository,
	holidayRepo holiday.HolidayRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                db,
		attendanceRepo:    attendanceRepo,
		employeeRepo:      employeeRepo,
		scheduleRepo:      scheduleRepo,
		authorizationRepo: authorizationRepo,
		holidayRepo:       holidayRepo,
	}
}

// metricsFor recomputes the derived fields for an employee/date pair. A
// missing schedule is not an error; it just yields zero metrics.
func (s *AttendanceServiceImpl) metricsFor(ctx context.Context, companyID, employeeID string, date time.Time, checkIn, checkOut *string) (Metrics, error) {
	sched, err := s.scheduleRepo.GetByCompany(ctx, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return Metrics{}, nil
		}
		return Metrics{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	auths, err := s.authorizationRepo.ListByEmployeeAndDate(ctx, employeeID, date, companyID)
	if err != nil {
		return Metrics{}, fmt.Errorf("failed to list authorizations: %w", err)
	}

	hasApprovedLateArrival := false
	for _, a := range auths {
		if a.Type == authorization.TypeLateArrival && a.Status == authorization.StatusApproved {
			hasApprovedLateArrival = true
			break
		}
	}

	return ComputeMetrics(sched.DayFor(date.Weekday()), checkIn, checkOut, hasApprovedLateArrival), nil
}

// CreateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)

	status := attendance.StatusPresent
	if req.Status != nil {
		status = attendance.Status(*req.Status)
	} else {
		hol, err := s.holidayRepo.GetByDate(ctx, date, companyID)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to check holiday calendar: %w", err)
		}
		if hol != nil {
			status = attendance.StatusHoliday
		}
	}

	metrics, err := s.metricsFor(ctx, companyID, req.EmployeeID, date, req.CheckIn, req.CheckOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	created, err := s.attendanceRepo.Create(ctx, attendance.Attendance{
		EmployeeID:    req.EmployeeID,
		CompanyID:     companyID,
		Date:          date,
		CheckIn:       req.CheckIn,
		CheckOut:      req.CheckOut,
		Status:        status,
		WorkedHours:   metrics.WorkedHours,
		LateMinutes:   metrics.LateMinutes,
		OvertimeHours: metrics.OvertimeHours,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.ToResponse(created), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		att.Date, _ = time.Parse("2006-01-02", *req.Date)
	}
	if req.CheckIn != nil {
		att.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		att.CheckOut = req.CheckOut
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}

	metrics, err := s.metricsFor(ctx, companyID, att.EmployeeID, att.Date, att.CheckIn, att.CheckOut)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	att.WorkedHours = metrics.WorkedHours
	att.LateMinutes = metrics.LateMinutes
	att.OvertimeHours = metrics.OvertimeHours

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.ToResponse(att), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.ToResponse(att), nil
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, filter, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, att := range records {
		responses = append(responses, attendance.ToResponse(att))
	}
	return responses, nil
}

// DeleteAttendance implements attendance.AttendanceService. Deleting an
// attendance record has no balance side effects.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id string) error {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return err
	}

	if _, err := s.attendanceRepo.GetByID(ctx, id, companyID); err != nil {
		return err
	}

	return s.attendanceRepo.Delete(ctx, id, companyID)
}
