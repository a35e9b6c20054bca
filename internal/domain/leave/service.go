package leave

import (
	"context"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

// LeaveService is the leave request lifecycle: pending -> approved/rejected,
// one-shot, with review scoped to the reviewer's report subtree.
type LeaveService interface {
	// Apply creates a pending request for the caller.
	Apply(ctx context.Context, caller auth.Caller, req ApplyLeaveRequest) (LeaveResponse, error)

	// AdminCreate creates a request on behalf of any employee with an
	// explicit initial status. Admin only.
	AdminCreate(ctx context.Context, caller auth.Caller, req AdminCreateLeaveRequest) (LeaveResponse, error)

	// Review approves or rejects a pending request. Allowed for admins, and
	// for managers whose report subtree contains the request's owner.
	Review(ctx context.Context, caller auth.Caller, leaveID string, req ReviewLeaveRequest) (LeaveResponse, error)

	// ListOwn returns the caller's requests, newest first.
	ListOwn(ctx context.Context, caller auth.Caller) ([]LeaveResponse, error)

	// ListAll returns every request with owner names. Admin only.
	ListAll(ctx context.Context, caller auth.Caller) ([]LeaveResponse, error)

	// ListForReview returns the requests the caller may review: everything
	// for admins, the report subtree's requests for managers.
	ListForReview(ctx context.Context, caller auth.Caller) ([]LeaveResponse, error)
}
