package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/tempohr/tempo-backend-go/internal/pkg/validator"
)

type GeneratePayrollRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
	Deductions string `json:"deductions"`
}

func (r *GeneratePayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}
	if r.Deductions != "" {
		if d, err := decimal.NewFromString(r.Deductions); err != nil || d.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "deductions",
				Message: "deductions must be a non-negative number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PayrollResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName *string `json:"employee_name,omitempty"`
	PeriodMonth  int     `json:"period_month"`
	PeriodYear   int     `json:"period_year"`
	BaseSalary   string  `json:"base_salary"`
	OvertimePay  string  `json:"overtime_pay"`
	Deductions   string  `json:"deductions"`
	NetPay       string  `json:"net_pay"`
}

func ToResponse(rec PayrollRecord) PayrollResponse {
	return PayrollResponse{
		ID:           rec.ID,
		EmployeeID:   rec.EmployeeID,
		EmployeeName: rec.EmployeeName,
		PeriodMonth:  rec.PeriodMonth,
		PeriodYear:   rec.PeriodYear,
		BaseSalary:   rec.BaseSalary.StringFixed(2),
		OvertimePay:  rec.OvertimePay.StringFixed(2),
		Deductions:   rec.Deductions.StringFixed(2),
		NetPay:       rec.NetPay.StringFixed(2),
	}
}
