package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nimbushr/ems-backend-go/internal/domain/attendance"
	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

type fakeAttendanceRepo struct {
	records map[string]*attendance.Attendance // keyed by employeeID + date
	nextID  int
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*attendance.Attendance)}
}

func (f *fakeAttendanceRepo) key(employeeID string, date time.Time) string {
	return employeeID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) CreateIfAbsent(_ context.Context, att attendance.Attendance) (attendance.Attendance, bool, error) {
	k := f.key(att.EmployeeID, att.WorkDate)
	if _, exists := f.records[k]; exists {
		return attendance.Attendance{}, false, nil
	}
	f.nextID++
	att.ID = fmt.Sprintf("att-%d", f.nextID)
	f.records[k] = &att
	return att, true, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	if rec, ok := f.records[f.key(employeeID, date)]; ok {
		copied := *rec
		return &copied, nil
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) SetCheckOut(_ context.Context, id string, checkOut time.Time) (bool, error) {
	for _, rec := range f.records {
		if rec.ID == id {
			if rec.CheckOut != nil {
				return false, nil
			}
			rec.CheckOut = &checkOut
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, employeeID string, limit int) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			records = append(records, *rec)
		}
		if len(records) == limit {
			break
		}
	}
	return records, nil
}

func newTestService(repo attendance.AttendanceRepository, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		now:                  func() time.Time { return now },
	}
}

func TestCheckIn(t *testing.T) {
	caller := auth.Caller{EmployeeID: "emp-1", Role: auth.RoleEmployee}
	now := time.Date(2026, 3, 9, 9, 15, 0, 0, time.UTC)

	t.Run("creates the day's record with default status", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), now)

		resp, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		require.NoError(t, err)
		assert.Equal(t, "present", resp.Status)
		assert.Equal(t, "2026-03-09", resp.WorkDate)
		assert.Nil(t, resp.CheckOut)
	})

	t.Run("accepts an explicit status", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), now)

		resp, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{Status: "half-day"})
		require.NoError(t, err)
		assert.Equal(t, "half-day", resp.Status)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), now)

		_, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{Status: "remote"})
		assert.Error(t, err)
	})

	t.Run("second check-in on the same date fails", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), now)

		_, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		require.NoError(t, err)

		_, err = svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
	})

	t.Run("a new date opens a new record", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, now)

		_, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		require.NoError(t, err)

		nextDay := newTestService(repo, now.AddDate(0, 0, 1))
		_, err = nextDay.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		assert.NoError(t, err)
	})
}

func TestCheckOut(t *testing.T) {
	caller := auth.Caller{EmployeeID: "emp-1", Role: auth.RoleEmployee}
	now := time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC)

	t.Run("closes the open record", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, now)

		_, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		require.NoError(t, err)

		resp, err := svc.CheckOut(context.Background(), caller)
		require.NoError(t, err)
		require.NotNil(t, resp.CheckOut)
	})

	t.Run("fails without a check-in", func(t *testing.T) {
		svc := newTestService(newFakeAttendanceRepo(), now)

		_, err := svc.CheckOut(context.Background(), caller)
		assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
	})

	t.Run("second check-out fails", func(t *testing.T) {
		repo := newFakeAttendanceRepo()
		svc := newTestService(repo, now)

		_, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		require.NoError(t, err)
		_, err = svc.CheckOut(context.Background(), caller)
		require.NoError(t, err)

		_, err = svc.CheckOut(context.Background(), caller)
		assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
	})
}

// lostRaceRepo simulates a concurrent check-out landing between the read and
// the guarded update.
type lostRaceRepo struct {
	*fakeAttendanceRepo
}

func (r *lostRaceRepo) SetCheckOut(context.Context, string, time.Time) (bool, error) {
	return false, nil
}

func TestCheckOutLosesRace(t *testing.T) {
	caller := auth.Caller{EmployeeID: "emp-1", Role: auth.RoleEmployee}
	now := time.Date(2026, 3, 9, 17, 30, 0, 0, time.UTC)

	inner := newFakeAttendanceRepo()
	svc := newTestService(inner, now)
	_, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
	require.NoError(t, err)

	racing := newTestService(&lostRaceRepo{inner}, now)
	_, err = racing.CheckOut(context.Background(), caller)
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestHistory(t *testing.T) {
	caller := auth.Caller{EmployeeID: "emp-1", Role: auth.RoleEmployee}
	repo := newFakeAttendanceRepo()

	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		svc := newTestService(repo, day.AddDate(0, 0, i))
		_, err := svc.CheckIn(context.Background(), caller, attendance.CheckInRequest{})
		require.NoError(t, err)
	}

	svc := newTestService(repo, day)
	history, err := svc.History(context.Background(), caller)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}
