package postgresql

import (
	"context"
	"fmt"

	"github.com/nimbushr/ems-backend-go/internal/domain/project"
	"github.com/nimbushr/ems-backend-go/internal/pkg/database"
)

type timeLogRepository struct {
	db *database.DB
}

func NewTimeLogRepository(db *database.DB) project.TimeLogRepository {
	return &timeLogRepository{db: db}
}

// Create implements project.TimeLogRepository.
func (r *timeLogRepository) Create(ctx context.Context, l project.TimeLog) (project.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO time_logs (employee_id, project_id, work_date, hours, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		l.EmployeeID, l.ProjectID, l.WorkDate, l.Hours, l.Description,
	).Scan(&l.ID, &l.CreatedAt)

	if err != nil {
		return project.TimeLog{}, fmt.Errorf("failed to create time log: %w", err)
	}

	return l, nil
}

// ListByEmployee implements project.TimeLogRepository.
func (r *timeLogRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]project.TimeLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id, t.employee_id, t.project_id, t.work_date, t.hours, t.description, t.created_at,
		       p.name, p.code
		FROM time_logs t
		JOIN projects p ON p.id = t.project_id
		WHERE t.employee_id = $1
		ORDER BY t.work_date DESC, t.created_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list time logs: %w", err)
	}
	defer rows.Close()

	var logs []project.TimeLog
	for rows.Next() {
		var l project.TimeLog
		err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.ProjectID, &l.WorkDate, &l.Hours, &l.Description, &l.CreatedAt,
			&l.ProjectName, &l.ProjectCode,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan time log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
