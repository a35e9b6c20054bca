package dashboard

import (
	"context"
	"time"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

type DashboardService interface {
	// Overview composes the caller's dashboard for the given day. The day is
	// a parameter so the window arithmetic is testable; the handler passes
	// the current date.
	Overview(ctx context.Context, caller auth.Caller, today time.Time) (OverviewResponse, error)
}
