package schedule

import "time"

// DaySetting is the work policy for one weekday: whether it is a work day,
// the official start/end times, the unpaid break, and the overtime rule.
// On a non-work day the pointer fields are semantically unused.
type DaySetting struct {
	ID                     string
	WorkScheduleID         string
	Weekday                time.Weekday
	IsWorkDay              bool
	StartTime              *string // "HH:MM"
	EndTime                *string // "HH:MM"
	BreakDurationMinutes   *int
	OvertimeThresholdHours *float64
	OvertimeRateMultiplier *float64
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// MultiplierOrDefault returns the overtime rate multiplier, defaulting to 1
// when none is configured for the weekday.
func (d DaySetting) MultiplierOrDefault() float64 {
	if d.OvertimeRateMultiplier == nil {
		return 1
	}
	return *d.OvertimeRateMultiplier
}

// WorkSchedule is a company's weekly schedule: exactly one DaySetting per weekday.
type WorkSchedule struct {
	ID        string
	CompanyID string
	Days      []DaySetting
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayFor returns the setting for the given weekday, or nil if absent.
func (s *WorkSchedule) DayFor(weekday time.Weekday) *DaySetting {
	if s == nil {
		return nil
	}
	for i := range s.Days {
		if s.Days[i].Weekday == weekday {
			return &s.Days[i]
		}
	}
	return nil
}

var WeekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}
