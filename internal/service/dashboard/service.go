package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/dashboard"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository

	leaveLookaheadDays   int
	holidayLookaheadDays int
}

func NewDashboardService(repo dashboard.DashboardRepository, leaveLookaheadDays, holidayLookaheadDays int) dashboard.DashboardService {
	return &DashboardServiceImpl{
		DashboardRepository:  repo,
		leaveLookaheadDays:   leaveLookaheadDays,
		holidayLookaheadDays: holidayLookaheadDays,
	}
}

// Overview implements dashboard.DashboardService.
// The five blocks are independent reads, so they fan out concurrently and
// the first failure cancels the rest.
func (s *DashboardServiceImpl) Overview(ctx context.Context, caller auth.Caller, today time.Time) (dashboard.OverviewResponse, error) {
	if !auth.HasPermission(caller.Role, auth.PermissionDashboardView) {
		return dashboard.OverviewResponse{}, auth.ErrForbidden
	}

	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	leaveHorizon := day.AddDate(0, 0, s.leaveLookaheadDays)
	holidayHorizon := day.AddDate(0, 0, s.holidayLookaheadDays)

	var (
		employeeBlock    dashboard.EmployeeBlock
		todayLeaves      []dashboard.LeaveItem
		upcomingLeaves   []dashboard.LeaveItem
		upcomingHolidays []dashboard.HolidayItem
		myProjects       []dashboard.ProjectItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		employeeBlock, err = s.GetEmployeeBlock(gCtx, caller.EmployeeID)
		return err
	})

	// Colleagues out today. The caller's own leaves are excluded from both
	// leave blocks.
	g.Go(func() error {
		var err error
		todayLeaves, err = s.ListLeavesCovering(gCtx, day, caller.EmployeeID)
		return err
	})

	// Leaves starting strictly after today, within the leave horizon. A
	// leave starting today belongs to the block above, never both.
	g.Go(func() error {
		var err error
		upcomingLeaves, err = s.ListLeavesStartingBetween(gCtx, day, leaveHorizon, caller.EmployeeID)
		return err
	})

	g.Go(func() error {
		var err error
		upcomingHolidays, err = s.ListHolidaysBetween(gCtx, day, holidayHorizon)
		return err
	})

	g.Go(func() error {
		var err error
		myProjects, err = s.ListProjectsByMember(gCtx, caller.EmployeeID)
		return err
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, err
	}

	return dashboard.OverviewResponse{
		Employee:         employeeBlock,
		TodayLeaves:      emptyIfNil(todayLeaves),
		UpcomingLeaves:   emptyIfNil(upcomingLeaves),
		UpcomingHolidays: emptyIfNil(upcomingHolidays),
		MyProjects:       emptyIfNil(myProjects),
	}, nil
}

// emptyIfNil keeps the JSON payload's lists as [] rather than null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
