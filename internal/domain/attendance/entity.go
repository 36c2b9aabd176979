package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLeave   Status = "leave"
	StatusHoliday Status = "holiday"
)

var StatusValues = []string{
	string(StatusPresent),
	string(StatusAbsent),
	string(StatusLeave),
	string(StatusHoliday),
}

// Attendance is one manual attendance entry. WorkedHours, LateMinutes and
// OvertimeHours are derived from the check-in/out times, the weekday's
// schedule and any approved late-arrival authorization; they are persisted
// as a cache and recomputed on every write.
type Attendance struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Date       time.Time
	CheckIn    *string // "HH:MM"
	CheckOut   *string // "HH:MM"
	Status     Status

	WorkedHours   float64
	LateMinutes   int
	OvertimeHours float64

	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
}
