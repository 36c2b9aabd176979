package attendance

import "context"

// AttendanceService defines business logic for manual attendance entries.
// Derived metrics are recomputed on every create and update.
type AttendanceService interface {
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAttendance(ctx context.Context, id string) (AttendanceResponse, error)
	ListAttendance(ctx context.Context, filter Filter) ([]AttendanceResponse, error)
	UpdateAttendance(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteAttendance removes a record. Deleting has no balance side effects.
	DeleteAttendance(ctx context.Context, id string) error
}
