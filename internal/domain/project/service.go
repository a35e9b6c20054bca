package project

import (
	"context"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

type ProjectService interface {
	// Create registers a project. Manager or admin.
	Create(ctx context.Context, caller auth.Caller, req CreateProjectRequest) (ProjectResponse, error)

	// AddMember assigns an employee to a project with an allocation percent
	// in [1,100]. Re-adding updates the allocation. Manager or admin.
	AddMember(ctx context.Context, caller auth.Caller, projectID string, req AddMemberRequest) (MemberResponse, error)

	// LogTime records hours against a project for the caller. Membership is
	// not required; only the hours range and project existence are checked.
	LogTime(ctx context.Context, caller auth.Caller, req LogTimeRequest) (TimeLogResponse, error)

	// List returns all projects with their member lists.
	List(ctx context.Context, caller auth.Caller) ([]ProjectResponse, error)

	// ListTimeLogs returns the caller's own entries, newest first.
	ListTimeLogs(ctx context.Context, caller auth.Caller) ([]TimeLogResponse, error)
}
