package employee

import (
	"context"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

// EmployeeService owns the directory and the reporting hierarchy.
type EmployeeService interface {
	// List returns directory labels visible to any authenticated employee.
	List(ctx context.Context, caller auth.Caller) ([]Label, error)

	// Team returns the caller's team view: a manager sees their active
	// direct reports, an admin sees every active employee.
	Team(ctx context.Context, caller auth.Caller) ([]TeamMember, error)

	// Profile returns the caller's own record joined with the manager name.
	Profile(ctx context.Context, caller auth.Caller) (ProfileResponse, error)

	// Admin-only directory management.
	AdminList(ctx context.Context, caller auth.Caller) ([]AdminEmployeeResponse, error)
	AdminCreate(ctx context.Context, caller auth.Caller, req CreateEmployeeRequest) (AdminEmployeeResponse, error)
	AdminUpdate(ctx context.Context, caller auth.Caller, id string, req UpdateEmployeeRequest) (AdminEmployeeResponse, error)

	// InReportSubtree reports whether employeeID is a transitive report of
	// managerID, by walking manager links upward from the employee.
	InReportSubtree(ctx context.Context, managerID, employeeID string) (bool, error)
}
