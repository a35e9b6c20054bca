package holiday

import "time"

// Holiday is an organization-wide non-working day.
type Holiday struct {
	ID          string
	Name        string
	HolidayDate time.Time
	Description string
	CreatedAt   time.Time
}
