package response

import (
	"errors"
	"net/http"

	"github.com/nimbushr/ems-backend-go/internal/domain/attendance"
	"github.com/nimbushr/ems-backend-go/internal/domain/auth"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
	"github.com/nimbushr/ems-backend-go/internal/domain/holiday"
	"github.com/nimbushr/ems-backend-go/internal/domain/leave"
	"github.com/nimbushr/ems-backend-go/internal/domain/project"
	"github.com/nimbushr/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAccountInactive):
		Forbidden(w, "Account is deactivated")
	case errors.Is(err, auth.ErrForbidden):
		Forbidden(w, "You are not allowed to perform this action")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerNotFound):
		NotFound(w, "Manager not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrInvalidRole):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrOwnManager):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, employee.ErrInvalidHierarchy):
		BadRequest(w, err.Error(), nil)

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrInvalidDateRange):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrLeaveAlreadyProcessed):
		Conflict(w, err.Error())

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, err.Error())

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrProjectCodeExists):
		Conflict(w, err.Error())
	case errors.Is(err, project.ErrInvalidAllocation):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, project.ErrInvalidHours):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
