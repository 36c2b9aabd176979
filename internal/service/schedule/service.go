package schedule

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
	"github.com/tempohr/tempo-backend-go/internal/pkg/jwt"
)

type ScheduleServiceImpl struct {
	db           *database.DB
	scheduleRepo schedule.WorkScheduleRepository
}

func NewScheduleService(db *database.DB, scheduleRepo schedule.WorkScheduleRepository) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		db:           db,
		scheduleRepo: scheduleRepo,
	}
}

var weekdayOrder = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

func toScheduleResponse(sched schedule.WorkSchedule) schedule.ScheduleResponse {
	resp := schedule.ScheduleResponse{ID: sched.ID}
	for _, weekday := range weekdayOrder {
		day := sched.DayFor(weekday)
		if day == nil {
			continue
		}
		resp.Days = append(resp.Days, schedule.DaySettingResponse{
			Weekday:                strings.ToLower(weekday.String()),
			IsWorkDay:              day.IsWorkDay,
			StartTime:              day.StartTime,
			EndTime:                day.EndTime,
			BreakDurationMinutes:   day.BreakDurationMinutes,
			OvertimeThresholdHours: day.OvertimeThresholdHours,
			OvertimeRateMultiplier: day.OvertimeRateMultiplier,
		})
	}
	return resp
}

// GetSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetSchedule(ctx context.Context) (schedule.ScheduleResponse, error) {
	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched, err := s.scheduleRepo.GetByCompany(ctx, companyID)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	return toScheduleResponse(sched), nil
}

// UpsertSchedule implements schedule.ScheduleService. The whole week is
// replaced in one write; partial weeks are rejected at validation.
func (s *ScheduleServiceImpl) UpsertSchedule(ctx context.Context, req schedule.UpsertScheduleRequest) (schedule.ScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleResponse{}, err
	}

	companyID, err := jwt.CompanyIDFromContext(ctx)
	if err != nil {
		return schedule.ScheduleResponse{}, err
	}

	sched := schedule.WorkSchedule{CompanyID: companyID}
	for _, day := range req.Days {
		weekday := schedule.WeekdayNames[strings.ToLower(day.Weekday)]
		sched.Days = append(sched.Days, schedule.DaySetting{
			Weekday:                weekday,
			IsWorkDay:              day.IsWorkDay,
			StartTime:              day.StartTime,
			EndTime:                day.EndTime,
			BreakDurationMinutes:   day.BreakDurationMinutes,
			OvertimeThresholdHours: day.OvertimeThresholdHours,
			OvertimeRateMultiplier: day.OvertimeRateMultiplier,
		})
	}

	stored, err := s.scheduleRepo.Upsert(ctx, sched)
	if err != nil {
		return schedule.ScheduleResponse{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	return toScheduleResponse(stored), nil
}
