package auth

type Role string

const (
	RoleAdmin    Role = "admin"    // Full access, manages employees and leaves
	RoleManager  Role = "manager"  // Reviews leave for their report subtree
	RoleEmployee Role = "employee" // Regular employee
)

// ValidRole reports whether the given string is one of the three roles.
func ValidRole(role string) bool {
	switch Role(role) {
	case RoleAdmin, RoleManager, RoleEmployee:
		return true
	}
	return false
}

// Caller is the authenticated identity the transport layer resolves from the
// access token and passes into every service operation. Services never read
// identity from ambient state.
type Caller struct {
	EmployeeID string
	Role       Role
}

// IsAdmin checks if the caller has the admin role
func (c Caller) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// IsManager checks if the caller is a manager or admin
func (c Caller) IsManager() bool {
	return c.Role == RoleManager || c.Role == RoleAdmin
}
