package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	// Create inserts a holiday. The holiday_date column is unique; ok=false
	// means a holiday already exists on that date.
	Create(ctx context.Context, h Holiday) (created Holiday, ok bool, err error)

	// ListAll returns every holiday, date ascending.
	ListAll(ctx context.Context) ([]Holiday, error)

	// ListBetween returns holidays with date in [from, to], date ascending.
	ListBetween(ctx context.Context, from, to time.Time) ([]Holiday, error)
}
