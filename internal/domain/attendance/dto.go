package attendance

import (
	"github.com/nimbushr/ems-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	Status string `json:"status"`
}

func (r CheckInRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Status != "" && !ValidStatus(r.Status) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be present, absent or half-day"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	WorkDate   string  `json:"work_date"`
	Status     string  `json:"status"`
	CheckIn    string  `json:"check_in"`
	CheckOut   *string `json:"check_out"`
}

func ToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID,
		EmployeeID: a.EmployeeID,
		WorkDate:   a.WorkDate.Format("2006-01-02"),
		Status:     string(a.Status),
		CheckIn:    a.CheckIn.Format("2006-01-02 15:04:05"),
	}
	if a.CheckOut != nil {
		out := a.CheckOut.Format("2006-01-02 15:04:05")
		resp.CheckOut = &out
	}
	return resp
}
