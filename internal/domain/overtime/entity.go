package overtime

import "time"

// Compensation is a consumption of accumulated overtime hours, typically
// exchanged for time off. Unlike leave there is no approval gate: every
// persisted record consumes balance immediately.
type Compensation struct {
	ID               string
	EmployeeID       string
	CompanyID        string
	Date             time.Time
	CompensatedHours float64
	Reason           string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined fields
	EmployeeName *string
}
