package holiday

import (
	"context"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

type HolidayService interface {
	List(ctx context.Context, caller auth.Caller) ([]HolidayResponse, error)

	// Create adds a holiday. Manager or admin.
	Create(ctx context.Context, caller auth.Caller, req CreateHolidayRequest) (HolidayResponse, error)
}
