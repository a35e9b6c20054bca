package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// CreateIfAbsent inserts the day's record. The attendances table has a
	// unique (employee_id, work_date) index; when a concurrent check-in got
	// there first the insert affects zero rows and created is false, so
	// exactly one record ever exists per employee per date.
	CreateIfAbsent(ctx context.Context, att Attendance) (created Attendance, ok bool, err error)

	// GetByEmployeeAndDate returns the record for the given date, or nil when
	// the employee has not checked in that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)

	// SetCheckOut closes the day's record. Guarded on check_out IS NULL; zero
	// rows affected means the record was already closed.
	SetCheckOut(ctx context.Context, id string, checkOut time.Time) (bool, error)

	// ListByEmployee returns the employee's records, newest work date first.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]Attendance, error)
}
