package attendance

import (
	"math"

	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
	"github.com/tempohr/tempo-backend-go/internal/pkg/validator"
)

// Metrics holds the derived attendance figures for one day.
type Metrics struct {
	WorkedHours   float64
	LateMinutes   int
	OvertimeHours float64
}

// ComputeMetrics derives worked hours, lateness and overtime for a single
// day from the check-in/out clock strings and the weekday's setting.
//
// It returns a zero Metrics, without error, whenever the inputs cannot
// produce a meaningful result: no day setting, a non-work day, incomplete
// schedule fields, a missing or malformed clock string, or a check-out
// strictly before check-in (same-day semantics only, never an overnight
// wrap).
//
// hasApprovedLateArrival forces LateMinutes to 0 outright. The requested
// time on the authorization is deliberately not consulted; any approved
// late-arrival waiver covers the whole day.
func ComputeMetrics(day *schedule.DaySetting, checkIn, checkOut *string, hasApprovedLateArrival bool) Metrics {
	if day == nil || !day.IsWorkDay {
		return Metrics{}
	}
	if day.StartTime == nil || day.EndTime == nil || day.BreakDurationMinutes == nil || day.OvertimeThresholdHours == nil {
		return Metrics{}
	}
	if checkIn == nil || checkOut == nil {
		return Metrics{}
	}

	inMinutes, err := validator.ParseClock(*checkIn)
	if err != nil {
		return Metrics{}
	}
	outMinutes, err := validator.ParseClock(*checkOut)
	if err != nil {
		return Metrics{}
	}
	startMinutes, err := validator.ParseClock(*day.StartTime)
	if err != nil {
		return Metrics{}
	}

	// Checkout before checkin is an invalid entry, not a night shift.
	if outMinutes < inMinutes {
		return Metrics{}
	}

	workedMinutes := outMinutes - inMinutes - *day.BreakDurationMinutes
	if workedMinutes < 0 {
		workedMinutes = 0
	}
	workedHours := round2(float64(workedMinutes) / 60)

	lateMinutes := inMinutes - startMinutes
	if lateMinutes < 0 {
		lateMinutes = 0
	}
	if hasApprovedLateArrival {
		lateMinutes = 0
	}

	overtimeHours := workedHours - *day.OvertimeThresholdHours
	if overtimeHours < 0 {
		overtimeHours = 0
	}

	return Metrics{
		WorkedHours:   workedHours,
		LateMinutes:   lateMinutes,
		OvertimeHours: round2(overtimeHours),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
