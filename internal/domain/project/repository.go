package project

import "context"

type ProjectRepository interface {
	Create(ctx context.Context, p Project) (Project, error)
	GetByID(ctx context.Context, id string) (Project, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	// ListAll returns every project ordered by name.
	ListAll(ctx context.Context) ([]Project, error)
	// ListByMember returns projects the employee belongs to, ordered by name.
	ListByMember(ctx context.Context, employeeID string) ([]Project, error)
}

type MembershipRepository interface {
	// Upsert inserts the (project, employee) pair or, when it already exists,
	// replaces the allocation percent.
	Upsert(ctx context.Context, m Membership) (Membership, error)
	// ListByProject returns a project's members joined with employee names.
	ListByProject(ctx context.Context, projectID string) ([]Membership, error)
}

type TimeLogRepository interface {
	Create(ctx context.Context, l TimeLog) (TimeLog, error)
	// ListByEmployee returns the employee's entries joined with project name
	// and code, newest work date first.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]TimeLog, error)
}
