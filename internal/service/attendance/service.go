package attendance

import (
	"context"
	"time"

	"github.com/nimbushr/ems-backend-go/internal/domain/attendance"
	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
)

// historyLimit caps the attendance history screen at roughly a month of
// working days.
const historyLimit = 30

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository

	// now is swapped out in tests.
	now func() time.Time
}

func NewAttendanceService(attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		now:                  time.Now,
	}
}

// workDate truncates the current instant to its UTC calendar date.
func workDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CheckIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, caller auth.Caller, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	status := attendance.StatusPresent
	if req.Status != "" {
		status = attendance.Status(req.Status)
	}

	now := s.now().UTC()
	record, ok, err := s.AttendanceRepository.CreateIfAbsent(ctx, attendance.Attendance{
		EmployeeID: caller.EmployeeID,
		WorkDate:   workDate(now),
		Status:     status,
		CheckIn:    now,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !ok {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	return attendance.ToResponse(record), nil
}

// CheckOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, caller auth.Caller) (attendance.AttendanceResponse, error) {
	now := s.now().UTC()

	record, err := s.AttendanceRepository.GetByEmployeeAndDate(ctx, caller.EmployeeID, workDate(now))
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	// The guarded update settles concurrent check-outs: only one of them
	// closes the record.
	ok, err := s.AttendanceRepository.SetCheckOut(ctx, record.ID, now)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if !ok {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOut = &now
	return attendance.ToResponse(*record), nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, caller auth.Caller) ([]attendance.AttendanceResponse, error) {
	records, err := s.AttendanceRepository.ListByEmployee(ctx, caller.EmployeeID, historyLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, attendance.ToResponse(record))
	}
	return responses, nil
}
