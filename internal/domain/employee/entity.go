package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           string
	CompanyID    string
	FullName     string
	Email        string
	PasswordHash string
	Position     *string
	BaseSalary   decimal.Decimal
	HireDate     time.Time

	// Mutable balance state. AnnualLeaveBalance is adjusted only by the leave
	// reconciliation engine; OvertimeHoursBalance only by the compensation
	// ledger. BalanceVersion backs the optimistic check on both.
	AnnualLeaveBalance   int
	OvertimeHoursBalance float64
	BalanceVersion       int

	CreatedAt time.Time
	UpdatedAt time.Time
}
