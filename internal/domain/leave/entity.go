package leave

import "time"

type Type string

const (
	TypeAnnual    Type = "annual"
	TypeSick      Type = "sick"
	TypeUnpaid    Type = "unpaid"
	TypeMaternity Type = "maternity"
	TypePaternity Type = "paternity"
	TypeOther     Type = "other"
)

var TypeValues = []string{
	string(TypeAnnual),
	string(TypeSick),
	string(TypeUnpaid),
	string(TypeMaternity),
	string(TypePaternity),
	string(TypeOther),
}

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCancelled Status = "cancelled"
)

var StatusValues = []string{
	string(StatusSubmitted),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusCancelled),
}

// LeaveRequest is a span of calendar days requested off. DaysDeducted is the
// number of days currently charged against the employee's annual-leave
// balance for this request's persisted state; the reconciler uses it to
// reverse the prior effect on edit and delete.
type LeaveRequest struct {
	ID           string
	EmployeeID   string
	CompanyID    string
	Type         Type
	StartDate    time.Time
	EndDate      time.Time
	Reason       string
	Status       Status
	DaysDeducted int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined fields
	EmployeeName *string
}

// CalendarDays returns the request's span in calendar days, inclusive of
// both endpoints.
func (r LeaveRequest) CalendarDays() int {
	return CalendarDays(r.StartDate, r.EndDate)
}

// CalendarDays counts whole calendar days between start and end inclusive.
// Dates are expected at midnight; sub-day components are truncated first.
func CalendarDays(start, end time.Time) int {
	start = start.Truncate(24 * time.Hour)
	end = end.Truncate(24 * time.Hour)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
