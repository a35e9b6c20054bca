package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
)

// ValidStatus reports whether the given string is a known attendance status.
func ValidStatus(status string) bool {
	switch Status(status) {
	case StatusPresent, StatusAbsent, StatusHalfDay:
		return true
	}
	return false
}

// Attendance is one employee's record for one work date. At most one record
// exists per (employee, date); it is created on check-in, closed once by
// check-out and never mutated afterwards.
type Attendance struct {
	ID         string
	EmployeeID string
	WorkDate   time.Time
	Status     Status
	CheckIn    time.Time
	CheckOut   *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
