package schedule

import "context"

// ScheduleService defines business logic for the company work schedule.
type ScheduleService interface {
	// GetSchedule retrieves the authenticated company's weekly schedule.
	GetSchedule(ctx context.Context) (ScheduleResponse, error)

	// UpsertSchedule replaces the authenticated company's weekly schedule.
	UpsertSchedule(ctx context.Context, req UpsertScheduleRequest) (ScheduleResponse, error)
}
