package schedule

import (
	"strings"

	"github.com/tempohr/tempo-backend-go/internal/pkg/validator"
)

type DaySettingRequest struct {
	Weekday                string   `json:"weekday"`
	IsWorkDay              bool     `json:"is_work_day"`
	StartTime              *string  `json:"start_time,omitempty"`
	EndTime                *string  `json:"end_time,omitempty"`
	BreakDurationMinutes   *int     `json:"break_duration_minutes,omitempty"`
	OvertimeThresholdHours *float64 `json:"overtime_threshold_hours,omitempty"`
	OvertimeRateMultiplier *float64 `json:"overtime_rate_multiplier,omitempty"`
}

type UpsertScheduleRequest struct {
	Days []DaySettingRequest `json:"days"`
}

func (r *UpsertScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Days) != 7 {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "schedule must contain exactly one entry per weekday",
		})
		return errs
	}

	seen := map[string]bool{}
	for _, day := range r.Days {
		name := strings.ToLower(day.Weekday)
		if _, ok := WeekdayNames[name]; !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "weekday",
				Message: "unknown weekday: " + day.Weekday,
			})
			continue
		}
		if seen[name] {
			errs = append(errs, validator.ValidationError{
				Field:   "weekday",
				Message: "duplicate weekday: " + day.Weekday,
			})
		}
		seen[name] = true

		if day.StartTime != nil && !validator.IsValidClock(*day.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   name + ".start_time",
				Message: "start_time must be in HH:MM format",
			})
		}
		if day.EndTime != nil && !validator.IsValidClock(*day.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   name + ".end_time",
				Message: "end_time must be in HH:MM format",
			})
		}
		if day.BreakDurationMinutes != nil && *day.BreakDurationMinutes < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   name + ".break_duration_minutes",
				Message: "break_duration_minutes must not be negative",
			})
		}
		if day.OvertimeThresholdHours != nil && *day.OvertimeThresholdHours < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   name + ".overtime_threshold_hours",
				Message: "overtime_threshold_hours must not be negative",
			})
		}
		if day.OvertimeRateMultiplier != nil && *day.OvertimeRateMultiplier < 1 {
			errs = append(errs, validator.ValidationError{
				Field:   name + ".overtime_rate_multiplier",
				Message: "overtime_rate_multiplier must be at least 1",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DaySettingResponse struct {
	Weekday                string   `json:"weekday"`
	IsWorkDay              bool     `json:"is_work_day"`
	StartTime              *string  `json:"start_time,omitempty"`
	EndTime                *string  `json:"end_time,omitempty"`
	BreakDurationMinutes   *int     `json:"break_duration_minutes,omitempty"`
	OvertimeThresholdHours *float64 `json:"overtime_threshold_hours,omitempty"`
	OvertimeRateMultiplier *float64 `json:"overtime_rate_multiplier,omitempty"`
}

type ScheduleResponse struct {
	ID   string               `json:"id"`
	Days []DaySettingResponse `json:"days"`
}
