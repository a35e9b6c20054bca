package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)

	// ListByEmployee returns one employee's requests, newest first.
	ListByEmployee(ctx context.Context, employeeID string) ([]LeaveRequest, error)
	// ListAll returns every request joined with the owner's name, most recent
	// start date first.
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	// ListByEmployees is ListAll scoped to the given owner ids.
	ListByEmployees(ctx context.Context, employeeIDs []string) ([]LeaveRequest, error)

	// DecideIfPending transitions the request out of pending. The update is
	// guarded on status = 'pending' so racing reviews settle at the database:
	// exactly one wins, the rest see ok=false.
	DecideIfPending(ctx context.Context, id string, status Status) (bool, error)
}
