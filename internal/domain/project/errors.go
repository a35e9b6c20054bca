package project

import "errors"

var (
	ErrProjectNotFound   = errors.New("project not found")
	ErrProjectCodeExists = errors.New("project code already exists")
	ErrInvalidAllocation = errors.New("allocation percent must be between 1 and 100")
	ErrInvalidHours      = errors.New("hours must be greater than 0 and at most 24")
)
