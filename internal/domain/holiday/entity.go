package holiday

import "time"

// Holiday is one dated entry in a company's holiday calendar.
type Holiday struct {
	ID        string
	CompanyID string
	Date      time.Time
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
