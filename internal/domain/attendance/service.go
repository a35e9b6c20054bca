package attendance

import (
	"context"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

// AttendanceService is the per-employee daily check-in/check-out state
// machine: no record -> checked in -> checked out, per calendar date.
type AttendanceService interface {
	CheckIn(ctx context.Context, caller auth.Caller, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, caller auth.Caller) (AttendanceResponse, error)

	// History returns the caller's own records, newest first.
	History(ctx context.Context, caller auth.Caller) ([]AttendanceResponse, error)
}
