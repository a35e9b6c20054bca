package leave

import "time"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ValidStatus reports whether the given string is a known request status.
func ValidStatus(status string) bool {
	switch Status(status) {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether a status has no outgoing transitions.
func Terminal(status Status) bool {
	return status == StatusApproved || status == StatusRejected
}

// LeaveRequest is one employee's request for the inclusive date range
// [StartDate, EndDate]. Requests start pending (admins may create them in
// any status directly) and are decided at most once; decided requests are
// never reopened or deleted.
type LeaveRequest struct {
	ID         string
	EmployeeID string
	Reason     string
	StartDate  time.Time
	EndDate    time.Time
	Status     Status
	CreatedAt  time.Time

	// DTO / join fields
	EmployeeName *string
}
