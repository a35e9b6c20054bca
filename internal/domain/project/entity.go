package project

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
	ProjectStatusCompleted ProjectStatus = "completed"
)

type Project struct {
	ID          string
	Code        string
	Name        string
	Description string
	Status      ProjectStatus
	StartDate   time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Membership is the (project, employee) allocation pair. The pair is unique;
// re-adding a member replaces the allocation instead of duplicating the row.
type Membership struct {
	ID                string
	ProjectID         string
	EmployeeID        string
	AllocationPercent int

	// DTO / join fields
	EmployeeName *string
}

// TimeLog is a single logged block of work. Multiple entries per employee,
// project and date are allowed.
type TimeLog struct {
	ID          string
	EmployeeID  string
	ProjectID   string
	WorkDate    time.Time
	Hours       float64
	Description string
	CreatedAt   time.Time

	// DTO / join fields
	ProjectName *string
	ProjectCode *string
}
