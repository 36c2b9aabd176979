package authorization

import (
	"github.com/tempohr/tempo-backend-go/internal/pkg/validator"
)

type CreateAuthorizationRequest struct {
	EmployeeID    string  `json:"employee_id"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	RequestedTime *string `json:"requested_time,omitempty"`
	Reason        string  `json:"reason"`
}

func (r *CreateAuthorizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !validator.IsInSlice(r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of late_arrival, early_departure, other",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.RequestedTime != nil && !validator.IsValidClock(*r.RequestedTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_time",
			Message: "requested_time must be in HH:MM format",
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

type UpdateAuthorizationRequest struct {
	ID            string  `json:"id"`
	Type          *string `json:"type,omitempty"`
	Date          *string `json:"date,omitempty"`
	RequestedTime *string `json:"requested_time,omitempty"`
	Reason        *string `json:"reason,omitempty"`
	Status        *string `json:"status,omitempty"`
}

func (r *UpdateAuthorizationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}
	if r.Type != nil && !validator.IsInSlice(*r.Type, TypeValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be one of late_arrival, early_departure, other",
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
	if r.RequestedTime != nil && !validator.IsValidClock(*r.RequestedTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "requested_time",
			Message: "requested_time must be in HH:MM format",
		})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, StatusValues) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of submitted, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AuthorizationResponse struct {
	ID            string  `json:"id"`
	EmployeeID    string  `json:"employee_id"`
	EmployeeName  *string `json:"employee_name,omitempty"`
	Type          string  `json:"type"`
	Date          string  `json:"date"`
	RequestedTime *string `json:"requested_time,omitempty"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
}

func ToResponse(auth Authorization) AuthorizationResponse {
	return AuthorizationResponse{
		ID:            auth.ID,
		EmployeeID:    auth.EmployeeID,
		EmployeeName:  auth.EmployeeName,
		Type:          string(auth.Type),
		Date:          auth.Date.Format("2006-01-02"),
		RequestedTime: auth.RequestedTime,
		Reason:        auth.Reason,
		Status:        string(auth.Status),
	}
}
