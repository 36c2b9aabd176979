package overtime

import (
	"github.com/tempohr/tempo-backend-go/internal/pkg/validator"
)

type CreateCompensationRequest struct {
	EmployeeID       string  `json:"employee_id"`
	Date             string  `json:"date"`
	CompensatedHours float64 `json:"compensated_hours"`
	Reason           string  `json:"reason"`
}

func (r *CreateCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.CompensatedHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "compensated_hours",
			Message: "compensated_hours must be greater than zero",
		})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateCompensationRequest struct {
	ID               string   `json:"id"`
	Date             *string  `json:"date,omitempty"`
	CompensatedHours *float64 `json:"compensated_hours,omitempty"`
	Reason           *string  `json:"reason,omitempty"`
}

func (r *UpdateCompensationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.CompensatedHours != nil && *r.CompensatedHours <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "compensated_hours",
			Message: "compensated_hours must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompensationResponse struct {
	ID               string  `json:"id"`
	EmployeeID       string  `json:"employee_id"`
	EmployeeName     *string `json:"employee_name,omitempty"`
	Date             string  `json:"date"`
	CompensatedHours float64 `json:"compensated_hours"`
	Reason           string  `json:"reason"`
}

func ToResponse(comp Compensation) CompensationResponse {
	return CompensationResponse{
		ID:               comp.ID,
		EmployeeID:       comp.EmployeeID,
		EmployeeName:     comp.EmployeeName,
		Date:             comp.Date.Format("2006-01-02"),
		CompensatedHours: comp.CompensatedHours,
		Reason:           comp.Reason,
	}
}
