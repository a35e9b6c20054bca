package employee

import (
	"encoding/json"
	"time"

	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/pkg/validator"
)

// Label is the directory-visible slice of an employee record.
type Label struct {
	ID         string `json:"id"`
	FullName   string `json:"full_name"`
	Title      string `json:"title"`
	Department string `json:"department"`
}

// TeamMember is a directory label plus the member's manager name.
type TeamMember struct {
	Label
	Manager *string `json:"manager"`
}

type ProfileResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Title      string  `json:"title"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	JoinedOn   string  `json:"joined_on"`
	Manager    *string `json:"manager"`
}

// AdminEmployeeResponse is the full record admins see and manage.
type AdminEmployeeResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	FullName   string  `json:"full_name"`
	Title      string  `json:"title"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	ManagerID  *string `json:"manager_id"`
	JoinedOn   string  `json:"joined_on"`
	IsActive   bool    `json:"is_active"`
}

type CreateEmployeeRequest struct {
	Email      string  `json:"email"`
	Password   string  `json:"password"`
	FullName   string  `json:"full_name"`
	Title      string  `json:"title"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	ManagerID  *string `json:"manager_id"`
	JoinedOn   string  `json:"joined_on"`
	IsActive   *bool   `json:"is_active"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name is required"})
	}
	if r.Role != "" && !auth.ValidRole(r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, manager or admin"})
	}
	if r.JoinedOn != "" {
		if _, ok := validator.IsValidDate(r.JoinedOn); !ok {
			errs = append(errs, validator.ValidationError{Field: "joined_on", Message: "joined on must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// OptionalString distinguishes an explicit JSON null from an absent key.
// UnmarshalJSON only runs when the key is present, which is what Set records.
type OptionalString struct {
	Set   bool
	Value *string
}

func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if string(data) == "null" {
		o.Value = nil
		return nil
	}
	return json.Unmarshal(data, &o.Value)
}

// UpdateEmployeeRequest carries partial updates; unset fields are left as is.
// ManagerID uses OptionalString so "clear the manager" (explicit null) can be
// told apart from "not provided".
type UpdateEmployeeRequest struct {
	FullName   *string        `json:"full_name"`
	Title      *string        `json:"title"`
	Department *string        `json:"department"`
	Role       *string        `json:"role"`
	ManagerID  OptionalString `json:"manager_id"`
	IsActive   *bool          `json:"is_active"`
	Password   *string        `json:"password"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "full name cannot be empty"})
	}
	if r.Role != nil && !auth.ValidRole(*r.Role) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, manager or admin"})
	}
	if r.Password != nil && len(*r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "password must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func toDateString(t time.Time) string {
	return t.Format("2006-01-02")
}

func ToAdminResponse(e Employee) AdminEmployeeResponse {
	return AdminEmployeeResponse{
		ID:         e.ID,
		Email:      e.Email,
		FullName:   e.FullName,
		Title:      e.Title,
		Department: e.Department,
		Role:       string(e.Role),
		ManagerID:  e.ManagerID,
		JoinedOn:   toDateString(e.JoinedOn),
		IsActive:   e.IsActive,
	}
}

func ToLabel(e Employee) Label {
	return Label{
		ID:         e.ID,
		FullName:   e.FullName,
		Title:      e.Title,
		Department: e.Department,
	}
}
