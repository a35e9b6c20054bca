package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/dashboard"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
)

// fakeDashboardRepo records the windows it was queried with so the horizon
// arithmetic can be asserted.
type fakeDashboardRepo struct {
	employeeBlock dashboard.EmployeeBlock

	coveringDay     time.Time
	coveringExclude string
	betweenAfter    time.Time
	betweenUntil    time.Time
	betweenExclude  string
	holidaysFrom    time.Time
	holidaysTo      time.Time

	todayLeaves    []dashboard.LeaveItem
	upcomingLeaves []dashboard.LeaveItem
	holidays       []dashboard.HolidayItem
	projects       []dashboard.ProjectItem
}

func (f *fakeDashboardRepo) GetEmployeeBlock(_ context.Context, employeeID string) (dashboard.EmployeeBlock, error) {
	if f.employeeBlock.ID != employeeID {
		return dashboard.EmployeeBlock{}, employee.ErrEmployeeNotFound
	}
	return f.employeeBlock, nil
}

func (f *fakeDashboardRepo) ListLeavesCovering(_ context.Context, day time.Time, excludeEmployeeID string) ([]dashboard.LeaveItem, error) {
	f.coveringDay = day
	f.coveringExclude = excludeEmployeeID
	return f.todayLeaves, nil
}

func (f *fakeDashboardRepo) ListLeavesStartingBetween(_ context.Context, after, until time.Time, excludeEmployeeID string) ([]dashboard.LeaveItem, error) {
	f.betweenAfter = after
	f.betweenUntil = until
	f.betweenExclude = excludeEmployeeID
	return f.upcomingLeaves, nil
}

func (f *fakeDashboardRepo) ListHolidaysBetween(_ context.Context, from, to time.Time) ([]dashboard.HolidayItem, error) {
	f.holidaysFrom = from
	f.holidaysTo = to
	return f.holidays, nil
}

func (f *fakeDashboardRepo) ListProjectsByMember(context.Context, string) ([]dashboard.ProjectItem, error) {
	return f.projects, nil
}

func TestOverview(t *testing.T) {
	caller := auth.Caller{EmployeeID: "emp-1", Role: auth.RoleEmployee}
	today := time.Date(2026, 3, 9, 14, 42, 7, 0, time.UTC)
	midnight := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)

	t.Run("queries the configured windows", func(t *testing.T) {
		repo := &fakeDashboardRepo{employeeBlock: dashboard.EmployeeBlock{ID: "emp-1", Name: "Dev"}}
		svc := NewDashboardService(repo, 14, 30)

		resp, err := svc.Overview(context.Background(), caller, today)
		require.NoError(t, err)

		assert.Equal(t, "Dev", resp.Employee.Name)

		// Windows are anchored at the calendar date, not the instant.
		assert.Equal(t, midnight, repo.coveringDay)
		assert.Equal(t, midnight, repo.betweenAfter)
		assert.Equal(t, midnight.AddDate(0, 0, 14), repo.betweenUntil)
		assert.Equal(t, midnight, repo.holidaysFrom)
		assert.Equal(t, midnight.AddDate(0, 0, 30), repo.holidaysTo)
	})

	t.Run("excludes the caller's own leaves", func(t *testing.T) {
		repo := &fakeDashboardRepo{employeeBlock: dashboard.EmployeeBlock{ID: "emp-1"}}
		svc := NewDashboardService(repo, 14, 30)

		_, err := svc.Overview(context.Background(), caller, today)
		require.NoError(t, err)

		assert.Equal(t, "emp-1", repo.coveringExclude)
		assert.Equal(t, "emp-1", repo.betweenExclude)
	})

	t.Run("empty blocks marshal as empty lists", func(t *testing.T) {
		repo := &fakeDashboardRepo{employeeBlock: dashboard.EmployeeBlock{ID: "emp-1"}}
		svc := NewDashboardService(repo, 14, 30)

		resp, err := svc.Overview(context.Background(), caller, today)
		require.NoError(t, err)

		assert.NotNil(t, resp.TodayLeaves)
		assert.NotNil(t, resp.UpcomingLeaves)
		assert.NotNil(t, resp.UpcomingHolidays)
		assert.NotNil(t, resp.MyProjects)
	})

	t.Run("unknown caller", func(t *testing.T) {
		repo := &fakeDashboardRepo{employeeBlock: dashboard.EmployeeBlock{ID: "someone-else"}}
		svc := NewDashboardService(repo, 14, 30)

		_, err := svc.Overview(context.Background(), caller, today)
		assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	})

	t.Run("zero horizons collapse the windows to today", func(t *testing.T) {
		repo := &fakeDashboardRepo{employeeBlock: dashboard.EmployeeBlock{ID: "emp-1"}}
		svc := NewDashboardService(repo, 0, 0)

		_, err := svc.Overview(context.Background(), caller, today)
		require.NoError(t, err)

		assert.Equal(t, midnight, repo.betweenUntil)
		assert.Equal(t, midnight, repo.holidaysTo)
	})
}
