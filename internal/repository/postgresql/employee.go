package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
	"github.com/nimbushr/ems-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, email, password_hash, full_name, title, department, role,
	manager_id, joined_on, is_active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.Email, &e.PasswordHash, &e.FullName, &e.Title, &e.Department, &e.Role,
		&e.ManagerID, &e.JoinedOn, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by id: %w", err)
	}
	return e, nil
}

// GetByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`

	e, err := scanEmployee(q.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by email: %w", err)
	}
	return e, nil
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepository) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO employees (
			email, password_hash, full_name, title, department, role,
			manager_id, joined_on, is_active
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newEmployee.Email,
		newEmployee.PasswordHash,
		newEmployee.FullName,
		newEmployee.Title,
		newEmployee.Department,
		newEmployee.Role,
		newEmployee.ManagerID,
		newEmployee.JoinedOn,
		newEmployee.IsActive,
	).Scan(&newEmployee.ID, &newEmployee.CreatedAt, &newEmployee.UpdatedAt)

	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return newEmployee, nil
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepository) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest, passwordHash *string) error {
	q := GetQuerier(ctx, r.db)

	sets := []string{}
	args := []interface{}{}
	arg := 1

	addSet := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, arg))
		args = append(args, value)
		arg++
	}

	if req.FullName != nil {
		addSet("full_name", *req.FullName)
	}
	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.Department != nil {
		addSet("department", *req.Department)
	}
	if req.Role != nil {
		addSet("role", *req.Role)
	}
	if req.ManagerID.Set {
		addSet("manager_id", req.ManagerID.Value)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}
	if passwordHash != nil {
		addSet("password_hash", *passwordHash)
	}

	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = NOW()")

	query := fmt.Sprintf("UPDATE employees SET %s WHERE id = $%d", strings.Join(sets, ", "), arg)
	args = append(args, id)

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// ExistsByEmail implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE email = $1)`, email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

// ExistsByID implements employee.EmployeeRepository.
func (r *employeeRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check employee existence: %w", err)
	}
	return exists, nil
}

// ListAll implements employee.EmployeeRepository.
func (r *employeeRepository) ListAll(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

// ListActive implements employee.EmployeeRepository.
func (r *employeeRepository) ListActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.email, e.password_hash, e.full_name, e.title, e.department, e.role,
		       e.manager_id, e.joined_on, e.is_active, e.created_at, e.updated_at,
		       m.full_name
		FROM employees e
		LEFT JOIN employees m ON m.id = e.manager_id
		WHERE e.is_active = TRUE
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	return collectEmployeesWithManager(rows)
}

// ListActiveByManager implements employee.EmployeeRepository.
func (r *employeeRepository) ListActiveByManager(ctx context.Context, managerID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.email, e.password_hash, e.full_name, e.title, e.department, e.role,
		       e.manager_id, e.joined_on, e.is_active, e.created_at, e.updated_at,
		       m.full_name
		FROM employees e
		LEFT JOIN employees m ON m.id = e.manager_id
		WHERE e.is_active = TRUE
		  AND e.manager_id = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	return collectEmployeesWithManager(rows)
}

// GetManagerChain implements employee.EmployeeRepository.
// The recursive walk carries the visited path so a corrupted hierarchy can
// never loop the query.
func (r *employeeRepository) GetManagerChain(ctx context.Context, employeeID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH RECURSIVE chain AS (
			SELECT e.manager_id, ARRAY[e.id] AS path
			FROM employees e
			WHERE e.id = $1
			UNION ALL
			SELECT e.manager_id, c.path || e.id
			FROM employees e
			JOIN chain c ON e.id = c.manager_id
			WHERE NOT e.id = ANY(c.path)
		)
		SELECT manager_id FROM chain WHERE manager_id IS NOT NULL
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get manager chain: %w", err)
	}
	defer rows.Close()

	var chain []string
	for rows.Next() {
		var managerID string
		if err := rows.Scan(&managerID); err != nil {
			return nil, fmt.Errorf("failed to scan manager chain: %w", err)
		}
		chain = append(chain, managerID)
	}
	return chain, rows.Err()
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func collectEmployeesWithManager(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		err := rows.Scan(
			&e.ID, &e.Email, &e.PasswordHash, &e.FullName, &e.Title, &e.Department, &e.Role,
			&e.ManagerID, &e.JoinedOn, &e.IsActive, &e.CreatedAt, &e.UpdatedAt,
			&e.ManagerName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}
