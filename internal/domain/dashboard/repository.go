package dashboard

import (
	"context"
	"time"
)

// DashboardRepository serves the overview's read queries. Each method is a
// single query; the aggregator owns no state of its own.
type DashboardRepository interface {
	GetEmployeeBlock(ctx context.Context, employeeID string) (EmployeeBlock, error)

	// ListLeavesCovering returns approved leaves whose [start, end] interval
	// contains day, excluding the given employee's own requests.
	ListLeavesCovering(ctx context.Context, day time.Time, excludeEmployeeID string) ([]LeaveItem, error)

	// ListLeavesStartingBetween returns approved leaves with start date in
	// (after, until], start date ascending, excluding the given employee.
	ListLeavesStartingBetween(ctx context.Context, after, until time.Time, excludeEmployeeID string) ([]LeaveItem, error)

	// ListHolidaysBetween returns holidays with date in [from, to], ascending.
	ListHolidaysBetween(ctx context.Context, from, to time.Time) ([]HolidayItem, error)

	// ListProjectsByMember returns projects the employee belongs to.
	ListProjectsByMember(ctx context.Context, employeeID string) ([]ProjectItem, error)
}
