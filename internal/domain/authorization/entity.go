package authorization

import "time"

type Type string

const (
	TypeLateArrival    Type = "late_arrival"
	TypeEarlyDeparture Type = "early_departure"
	TypeOther          Type = "other"
)

var TypeValues = []string{
	string(TypeLateArrival),
	string(TypeEarlyDeparture),
	string(TypeOther),
}

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
)

var StatusValues = []string{
	string(StatusSubmitted),
	string(StatusApproved),
	string(StatusRejected),
}

// Authorization is a pre-approved exception for a single date. An approved
// late-arrival authorization zeroes the lateness of that day's attendance.
type Authorization struct {
	ID            string
	EmployeeID    string
	CompanyID     string
	Type          Type
	Date          time.Time
	RequestedTime *string // "HH:MM"
	Reason        string
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	EmployeeName *string
}
