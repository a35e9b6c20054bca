package project

import (
	"time"

	"github.com/nimbushr/ems-backend-go/internal/pkg/validator"
)

type CreateProjectRequest struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	StartDate   string  `json:"start_date"`
	EndDate     *string `json:"end_date"`
}

func (r CreateProjectRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "code is required"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start date must be YYYY-MM-DD"})
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end date must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddMemberRequest struct {
	EmployeeID        string `json:"employee_id"`
	AllocationPercent int    `json:"allocation_percent"`
}

type LogTimeRequest struct {
	ProjectID   string  `json:"project_id"`
	WorkDate    string  `json:"work_date"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
}

func (r LogTimeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "project id is required"})
	}
	if _, ok := validator.IsValidDate(r.WorkDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "work_date", Message: "work date must be YYYY-MM-DD"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MemberResponse struct {
	EmployeeID        string  `json:"employee_id"`
	EmployeeName      *string `json:"employee_name"`
	AllocationPercent int     `json:"allocation_percent"`
}

type ProjectResponse struct {
	ID          string           `json:"id"`
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	StartDate   string           `json:"start_date"`
	EndDate     *string          `json:"end_date"`
	Members     []MemberResponse `json:"members"`
}

type TimeLogResponse struct {
	ID          string  `json:"id"`
	Project     *string `json:"project"`
	ProjectCode *string `json:"project_code"`
	WorkDate    string  `json:"work_date"`
	Hours       float64 `json:"hours"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
}

func ToProjectResponse(p Project, members []Membership) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		Status:      string(p.Status),
		StartDate:   p.StartDate.Format("2006-01-02"),
		Members:     make([]MemberResponse, 0, len(members)),
	}
	if p.EndDate != nil {
		end := p.EndDate.Format("2006-01-02")
		resp.EndDate = &end
	}
	for _, m := range members {
		resp.Members = append(resp.Members, MemberResponse{
			EmployeeID:        m.EmployeeID,
			EmployeeName:      m.EmployeeName,
			AllocationPercent: m.AllocationPercent,
		})
	}
	return resp
}

func ToTimeLogResponse(l TimeLog) TimeLogResponse {
	return TimeLogResponse{
		ID:          l.ID,
		Project:     l.ProjectName,
		ProjectCode: l.ProjectCode,
		WorkDate:    l.WorkDate.Format("2006-01-02"),
		Hours:       l.Hours,
		Description: l.Description,
		CreatedAt:   l.CreatedAt.Format(time.RFC3339),
	}
}
