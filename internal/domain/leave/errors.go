package leave

import "errors"

var (
	ErrLeaveNotFound        = errors.New("leave request not found")
	ErrInvalidDateRange     = errors.New("end date cannot be before start date")
	ErrInvalidStatus        = errors.New("status must be pending, approved or rejected")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
)
