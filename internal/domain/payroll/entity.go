package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// PayrollRecord is the computed payroll for one employee and period.
// OvertimePay is the automated aggregation of the month's attendance
// overtime hours weighted by each weekday's rate multiplier.
type PayrollRecord struct {
	ID          string
	EmployeeID  string
	CompanyID   string
	PeriodMonth int
	PeriodYear  int
	BaseSalary  decimal.Decimal
	OvertimePay decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Joined fields
	EmployeeName *string
}
