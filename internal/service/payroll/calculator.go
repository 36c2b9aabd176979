package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/tempohr/tempo-backend-go/internal/domain/attendance"
	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
)

// NetPay is base salary plus overtime pay minus deductions, floored at zero
// and rounded to 2 decimals. Total function, no failure modes.
func NetPay(baseSalary, overtimePay, deductions decimal.Decimal) decimal.Decimal {
	net := baseSalary.Add(overtimePay).Sub(deductions)
	if net.IsNegative() {
		net = decimal.Zero
	}
	return net.Round(2)
}

// OvertimePayFor aggregates a month's attendance overtime hours, weighting
// each record by the rate multiplier of the weekday it fell on. A weekday
// with no setting (or no multiplier) weighs 1.
func OvertimePayFor(records []attendance.Attendance, sched *schedule.WorkSchedule) decimal.Decimal {
	total := decimal.Zero
	for _, rec := range records {
		if rec.OvertimeHours == 0 {
			continue
		}

		multiplier := 1.0
		if day := sched.DayFor(rec.Date.Weekday()); day != nil {
			multiplier = day.MultiplierOrDefault()
		}

		total = total.Add(
			decimal.NewFromFloat(rec.OvertimeHours).Mul(decimal.NewFromFloat(multiplier)),
		)
	}
	return total.Round(2)
}
