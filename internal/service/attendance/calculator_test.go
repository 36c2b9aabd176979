package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
)

func strPtr(s string) *string       { return &s }
func intPtr(i int) *int             { return &i }
func floatPtr(f float64) *float64   { return &f }

func workDay() *schedule.DaySetting {
	return &schedule.DaySetting{
		IsWorkDay:              true,
		StartTime:              strPtr("08:00"),
		EndTime:                strPtr("17:00"),
		BreakDurationMinutes:   intPtr(60),
		OvertimeThresholdHours: floatPtr(8),
		OvertimeRateMultiplier: floatPtr(1.5),
	}
}

func TestComputeMetrics_TypicalDay(t *testing.T) {
	// 08:15 - 17:30 with a 60 minute break: 9h15m - 1h = 8.25 worked hours,
	// 15 minutes late, 0.25 hours over the 8 hour threshold.
	got := ComputeMetrics(workDay(), strPtr("08:15"), strPtr("17:30"), false)

	assert.Equal(t, 8.25, got.WorkedHours)
	assert.Equal(t, 15, got.LateMinutes)
	assert.Equal(t, 0.25, got.OvertimeHours)
}

func TestComputeMetrics_ApprovedLateArrivalZeroesLateness(t *testing.T) {
	// Policy pin: ANY approved late-arrival authorization wipes lateness for
	// the whole day; the authorization's requested time is never compared.
	got := ComputeMetrics(workDay(), strPtr("08:15"), strPtr("17:30"), true)

	assert.Equal(t, 0, got.LateMinutes)
	assert.Equal(t, 8.25, got.WorkedHours)
	assert.Equal(t, 0.25, got.OvertimeHours)
}

func TestComputeMetrics_CheckOutBeforeCheckIn(t *testing.T) {
	got := ComputeMetrics(workDay(), strPtr("17:00"), strPtr("08:00"), false)
	assert.Equal(t, Metrics{}, got)
}

func TestComputeMetrics_NonWorkDay(t *testing.T) {
	day := workDay()
	day.IsWorkDay = false

	got := ComputeMetrics(day, strPtr("08:00"), strPtr("17:00"), false)
	assert.Equal(t, Metrics{}, got)
}

func TestComputeMetrics_ZeroResultShortCircuits(t *testing.T) {
	cases := []struct {
		name     string
		day      *schedule.DaySetting
		checkIn  *string
		checkOut *string
	}{
		{"nil day setting", nil, strPtr("08:00"), strPtr("17:00")},
		{"missing check-in", workDay(), nil, strPtr("17:00")},
		{"missing check-out", workDay(), strPtr("08:00"), nil},
		{"malformed check-in", workDay(), strPtr("8am"), strPtr("17:00")},
		{"malformed check-out", workDay(), strPtr("08:00"), strPtr("25:99")},
		{
			"missing start time",
			&schedule.DaySetting{IsWorkDay: true, EndTime: strPtr("17:00"), BreakDurationMinutes: intPtr(60), OvertimeThresholdHours: floatPtr(8)},
			strPtr("08:00"), strPtr("17:00"),
		},
		{
			"missing end time",
			&schedule.DaySetting{IsWorkDay: true, StartTime: strPtr("08:00"), BreakDurationMinutes: intPtr(60), OvertimeThresholdHours: floatPtr(8)},
			strPtr("08:00"), strPtr("17:00"),
		},
		{
			"missing break duration",
			&schedule.DaySetting{IsWorkDay: true, StartTime: strPtr("08:00"), EndTime: strPtr("17:00"), OvertimeThresholdHours: floatPtr(8)},
			strPtr("08:00"), strPtr("17:00"),
		},
		{
			"missing overtime threshold",
			&schedule.DaySetting{IsWorkDay: true, StartTime: strPtr("08:00"), EndTime: strPtr("17:00"), BreakDurationMinutes: intPtr(60)},
			strPtr("08:00"), strPtr("17:00"),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ComputeMetrics(c.day, c.checkIn, c.checkOut, false)
			assert.Equal(t, Metrics{}, got)
		})
	}
}

func TestComputeMetrics_BreakLongerThanSpan(t *testing.T) {
	day := workDay()
	day.BreakDurationMinutes = intPtr(120)

	// 30 minute span minus 120 minute break floors at zero worked hours.
	got := ComputeMetrics(day, strPtr("08:00"), strPtr("08:30"), false)
	assert.Equal(t, 0.0, got.WorkedHours)
	assert.Equal(t, 0.0, got.OvertimeHours)
}

func TestComputeMetrics_EarlyArrivalIsNotNegativeLateness(t *testing.T) {
	got := ComputeMetrics(workDay(), strPtr("07:30"), strPtr("16:30"), false)
	assert.Equal(t, 0, got.LateMinutes)
	assert.Equal(t, 8.0, got.WorkedHours)
}

func TestComputeMetrics_ExactlyAtThreshold(t *testing.T) {
	// 08:00-17:00 minus break is exactly 8 hours: no overtime.
	got := ComputeMetrics(workDay(), strPtr("08:00"), strPtr("17:00"), false)
	assert.Equal(t, 8.0, got.WorkedHours)
	assert.Equal(t, 0.0, got.OvertimeHours)
}

func TestComputeMetrics_Rounding(t *testing.T) {
	// 08:00-16:50 minus 60 min break = 470 minutes = 7.8333... hours.
	got := ComputeMetrics(workDay(), strPtr("08:00"), strPtr("16:50"), false)
	assert.Equal(t, 7.83, got.WorkedHours)
}
