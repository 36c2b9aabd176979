package schedule

import "context"

// WorkScheduleRepository defines data access for the weekly schedule.
// One schedule row (with its seven day settings) exists per company.
type WorkScheduleRepository interface {
	// GetByCompany retrieves the company's schedule with all day settings.
	GetByCompany(ctx context.Context, companyID string) (WorkSchedule, error)

	// Upsert replaces the company's schedule and its day settings.
	Upsert(ctx context.Context, sched WorkSchedule) (WorkSchedule, error)
}
