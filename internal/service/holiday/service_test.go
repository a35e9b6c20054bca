package holiday

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/holiday"
)

type fakeHolidayRepo struct {
	byDate map[string]holiday.Holiday
	nextID int
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{byDate: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Create(_ context.Context, h holiday.Holiday) (holiday.Holiday, bool, error) {
	key := h.HolidayDate.Format("2006-01-02")
	if _, exists := f.byDate[key]; exists {
		return holiday.Holiday{}, false, nil
	}
	f.nextID++
	h.ID = fmt.Sprintf("hol-%d", f.nextID)
	f.byDate[key] = h
	return h, true, nil
}

func (f *fakeHolidayRepo) ListAll(context.Context) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.byDate {
		out = append(out, h)
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListBetween(_ context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.byDate {
		if !h.HolidayDate.Before(from) && !h.HolidayDate.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func TestCreate(t *testing.T) {
	manager := auth.Caller{EmployeeID: "mgr", Role: auth.RoleManager}

	req := holiday.CreateHolidayRequest{
		Name:        "Founders Day",
		HolidayDate: "2026-09-14",
		Description: "Annual celebration",
	}

	t.Run("manager creates a holiday", func(t *testing.T) {
		svc := NewHolidayService(newFakeHolidayRepo())

		resp, err := svc.Create(context.Background(), manager, req)
		require.NoError(t, err)
		assert.Equal(t, "2026-09-14", resp.HolidayDate)
	})

	t.Run("duplicate date is rejected", func(t *testing.T) {
		svc := NewHolidayService(newFakeHolidayRepo())

		_, err := svc.Create(context.Background(), manager, req)
		require.NoError(t, err)

		dup := req
		dup.Name = "Same Day Again"
		_, err = svc.Create(context.Background(), manager, dup)
		assert.ErrorIs(t, err, holiday.ErrHolidayExists)
	})

	t.Run("employees are forbidden", func(t *testing.T) {
		svc := NewHolidayService(newFakeHolidayRepo())

		_, err := svc.Create(context.Background(), auth.Caller{EmployeeID: "dev", Role: auth.RoleEmployee}, req)
		assert.ErrorIs(t, err, auth.ErrForbidden)
	})

	t.Run("bad date format", func(t *testing.T) {
		svc := NewHolidayService(newFakeHolidayRepo())

		bad := req
		bad.HolidayDate = "14/09/2026"
		_, err := svc.Create(context.Background(), manager, bad)
		assert.Error(t, err)
	})
}

func TestList(t *testing.T) {
	svc := NewHolidayService(newFakeHolidayRepo())
	manager := auth.Caller{EmployeeID: "mgr", Role: auth.RoleManager}

	_, err := svc.Create(context.Background(), manager, holiday.CreateHolidayRequest{Name: "A", HolidayDate: "2026-01-01"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), manager, holiday.CreateHolidayRequest{Name: "B", HolidayDate: "2026-05-01"})
	require.NoError(t, err)

	holidays, err := svc.List(context.Background(), auth.Caller{EmployeeID: "dev", Role: auth.RoleEmployee})
	require.NoError(t, err)
	assert.Len(t, holidays, 2)
}
