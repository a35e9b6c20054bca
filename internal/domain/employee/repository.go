package employee

import "context"

type EmployeeRepository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest, passwordHash *string) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByID(ctx context.Context, id string) (bool, error)

	// ListAll returns every employee ordered by full name.
	ListAll(ctx context.Context) ([]Employee, error)
	// ListActive returns active employees ordered by full name, each joined
	// with its manager's name.
	ListActive(ctx context.Context) ([]Employee, error)
	// ListActiveByManager returns a manager's active direct reports.
	ListActiveByManager(ctx context.Context, managerID string) ([]Employee, error)

	// GetManagerChain walks manager links upward from the given employee and
	// returns the manager ids in order (direct manager first). The walk is
	// cycle-safe: a node is visited at most once.
	GetManagerChain(ctx context.Context, employeeID string) ([]string, error)
}
