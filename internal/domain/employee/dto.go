package employee

import (
	"github.com/shopspring/decimal"
	"github.com/tempohr/tempo-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName           string  `json:"full_name"`
	Email              string  `json:"email"`
	Password           string  `json:"password"`
	Position           *string `json:"position,omitempty"`
	BaseSalary         string  `json:"base_salary"`
	HireDate           string  `json:"hire_date"`
	AnnualLeaveBalance int     `json:"annual_leave_balance"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is not valid",
		})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		})
	}
	if _, ok := validator.IsValidDate(r.HireDate); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "hire_date",
			Message: "hire_date must be in YYYY-MM-DD format",
		})
	}
	if salary, err := decimal.NewFromString(r.BaseSalary); err != nil || salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "base_salary",
			Message: "base_salary must be a non-negative number",
		})
	}
	if r.AnnualLeaveBalance < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "annual_leave_balance",
			Message: "annual_leave_balance must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID         string  `json:"id"`
	FullName   *string `json:"full_name,omitempty"`
	Position   *string `json:"position,omitempty"`
	BaseSalary *string `json:"base_salary,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.BaseSalary != nil {
		if salary, err := decimal.NewFromString(*r.BaseSalary); err != nil || salary.IsNegative() {
			errs = append(errs, validator.ValidationError{
				Field:   "base_salary",
				Message: "base_salary must be a non-negative number",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                   string  `json:"id"`
	FullName             string  `json:"full_name"`
	Email                string  `json:"email"`
	Position             *string `json:"position,omitempty"`
	BaseSalary           string  `json:"base_salary"`
	HireDate             string  `json:"hire_date"`
	AnnualLeaveBalance   int     `json:"annual_leave_balance"`
	OvertimeHoursBalance float64 `json:"overtime_hours_balance"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                   emp.ID,
		FullName:             emp.FullName,
		Email:                emp.Email,
		Position:             emp.Position,
		BaseSalary:           emp.BaseSalary.StringFixed(2),
		HireDate:             emp.HireDate.Format("2006-01-02"),
		AnnualLeaveBalance:   emp.AnnualLeaveBalance,
		OvertimeHoursBalance: emp.OvertimeHoursBalance,
	}
}
