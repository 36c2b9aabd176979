package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records.
// All methods take a companyID to keep tenants isolated.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)

	GetByID(ctx context.Context, id string, companyID string) (Attendance, error)

	Update(ctx context.Context, att Attendance) error

	Delete(ctx context.Context, id string, companyID string) error

	// List retrieves attendance records matching the filter, newest first.
	List(ctx context.Context, filter Filter, companyID string) ([]Attendance, error)

	// ListByEmployeeMonth retrieves all of an employee's records within the
	// calendar month, ordered by date. Used by the payroll aggregation and
	// the monthly report.
	ListByEmployeeMonth(ctx context.Context, employeeID string, month time.Month, year int, companyID string) ([]Attendance, error)
}
