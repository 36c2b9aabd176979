package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/tempohr/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestNetPay(t *testing.T) {
	cases := []struct {
		name        string
		base        string
		overtime    string
		deductions  string
		want        string
	}{
		{"plain", "3000", "150.50", "200", "2950.50"},
		{"no overtime no deductions", "3000", "0", "0", "3000.00"},
		{"deductions exceed gross floors at zero", "1000", "0", "1500", "0.00"},
		{"exactly zero", "1000", "200", "1200", "0.00"},
		{"rounding", "1000.005", "0", "0", "1000.01"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := NetPay(dec(c.base), dec(c.overtime), dec(c.deductions))
			assert.True(t, dec(c.want).Equal(got), "NetPay = %s, want %s", got, c.want)
		})
	}
}

func floatPtr(f float64) *float64 { return &f }

func monthSchedule() *schedule.WorkSchedule {
	return &schedule.WorkSchedule{
		Days: []schedule.DaySetting{
			{Weekday: time.Monday, IsWorkDay: true, OvertimeRateMultiplier: floatPtr(1.5)},
			{Weekday: time.Tuesday, IsWorkDay: true, OvertimeRateMultiplier: floatPtr(2.0)},
			{Weekday: time.Wednesday, IsWorkDay: true}, // no multiplier: defaults to 1
		},
	}
}

func att(date string, overtimeHours float64) attendance.Attendance {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return attendance.Attendance{Date: d, OvertimeHours: overtimeHours}
}

func TestOvertimePayFor(t *testing.T) {
	// 2025-03-03 is a Monday, 2025-03-04 a Tuesday.
	records := []attendance.Attendance{
		att("2025-03-03", 1.0), // x1.5 = 1.5
		att("2025-03-04", 2.0), // x2.0 = 4.0
	}

	got := OvertimePayFor(records, monthSchedule())
	assert.True(t, dec("5.5").Equal(got), "OvertimePayFor = %s, want 5.5", got)
}

func TestOvertimePayFor_DefaultMultiplier(t *testing.T) {
	// Wednesday has no multiplier; Thursday has no day setting at all.
	records := []attendance.Attendance{
		att("2025-03-05", 2.0),
		att("2025-03-06", 3.0),
	}

	got := OvertimePayFor(records, monthSchedule())
	assert.True(t, dec("5").Equal(got), "OvertimePayFor = %s, want 5", got)
}

func TestOvertimePayFor_NoRecords(t *testing.T) {
	got := OvertimePayFor(nil, monthSchedule())
	assert.True(t, got.IsZero())
}

func TestOvertimePayFor_SkipsZeroOvertime(t *testing.T) {
	records := []attendance.Attendance{
		att("2025-03-03", 0),
		att("2025-03-04", 0),
	}

	got := OvertimePayFor(records, monthSchedule())
	assert.True(t, got.IsZero())
}
