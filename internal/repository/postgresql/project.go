package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/ems-backend-go/internal/domain/project"
	"github.com/nimbushr/ems-backend-go/internal/pkg/database"
)

type projectRepository struct {
	db *database.DB
}

func NewProjectRepository(db *database.DB) project.ProjectRepository {
	return &projectRepository{db: db}
}

// Create implements project.ProjectRepository.
func (r *projectRepository) Create(ctx context.Context, p project.Project) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO projects (code, name, description, status, start_date, end_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.Code, p.Name, p.Description, p.Status, p.StartDate, p.EndDate,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		return project.Project{}, fmt.Errorf("failed to create project: %w", err)
	}

	return p, nil
}

// GetByID implements project.ProjectRepository.
func (r *projectRepository) GetByID(ctx context.Context, id string) (project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, description, status, start_date, end_date, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	var p project.Project
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Code, &p.Name, &p.Description, &p.Status,
		&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return project.Project{}, project.ErrProjectNotFound
		}
		return project.Project{}, fmt.Errorf("failed to get project by id: %w", err)
	}

	return p, nil
}

// ExistsByCode implements project.ProjectRepository.
func (r *projectRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project code existence: %w", err)
	}
	return exists, nil
}

// ExistsByID implements project.ProjectRepository.
func (r *projectRepository) ExistsByID(ctx context.Context, id string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM projects WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project existence: %w", err)
	}
	return exists, nil
}

// ListAll implements project.ProjectRepository.
func (r *projectRepository) ListAll(ctx context.Context) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, code, name, description, status, start_date, end_date, created_at, updated_at
		FROM projects
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

// ListByMember implements project.ProjectRepository.
func (r *projectRepository) ListByMember(ctx context.Context, employeeID string) ([]project.Project, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.code, p.name, p.description, p.status, p.start_date, p.end_date, p.created_at, p.updated_at
		FROM projects p
		JOIN project_members pm ON pm.project_id = p.id
		WHERE pm.employee_id = $1
		ORDER BY p.name ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects by member: %w", err)
	}
	defer rows.Close()

	return collectProjects(rows)
}

func collectProjects(rows pgx.Rows) ([]project.Project, error) {
	var projects []project.Project
	for rows.Next() {
		var p project.Project
		err := rows.Scan(
			&p.ID, &p.Code, &p.Name, &p.Description, &p.Status,
			&p.StartDate, &p.EndDate, &p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

type membershipRepository struct {
	db *database.DB
}

func NewMembershipRepository(db *database.DB) project.MembershipRepository {
	return &membershipRepository{db: db}
}

// Upsert implements project.MembershipRepository.
// Re-adding the same (project, employee) pair replaces the allocation rather
// than duplicating the row.
func (r *membershipRepository) Upsert(ctx context.Context, m project.Membership) (project.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO project_members (project_id, employee_id, allocation_percent)
		VALUES ($1, $2, $3)
		ON CONFLICT (project_id, employee_id)
		DO UPDATE SET allocation_percent = EXCLUDED.allocation_percent
		RETURNING id
	`

	err := q.QueryRow(ctx, query, m.ProjectID, m.EmployeeID, m.AllocationPercent).Scan(&m.ID)
	if err != nil {
		return project.Membership{}, fmt.Errorf("failed to upsert project member: %w", err)
	}

	return m, nil
}

// ListByProject implements project.MembershipRepository.
func (r *membershipRepository) ListByProject(ctx context.Context, projectID string) ([]project.Membership, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pm.id, pm.project_id, pm.employee_id, pm.allocation_percent, e.full_name
		FROM project_members pm
		JOIN employees e ON e.id = pm.employee_id
		WHERE pm.project_id = $1
		ORDER BY e.full_name ASC
	`

	rows, err := q.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list project members: %w", err)
	}
	defer rows.Close()

	var members []project.Membership
	for rows.Next() {
		var m project.Membership
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.EmployeeID, &m.AllocationPercent, &m.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan project member: %w", err)
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
