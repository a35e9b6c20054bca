package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrManagerNotFound  = errors.New("manager not found")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidRole      = errors.New("role must be employee, manager or admin")

	// Hierarchy errors. The manager link is a weak reference; every write
	// that touches it must keep the reporting graph acyclic.
	ErrOwnManager       = errors.New("employee cannot be their own manager")
	ErrInvalidHierarchy = errors.New("manager assignment would create a reporting cycle")
)
