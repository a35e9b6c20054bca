package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/ems-backend-go/internal/domain/dashboard"
	"github.com/nimbushr/ems-backend-go/internal/domain/employee"
	"github.com/nimbushr/ems-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// GetEmployeeBlock implements dashboard.DashboardRepository.
func (r *dashboardRepository) GetEmployeeBlock(ctx context.Context, employeeID string) (dashboard.EmployeeBlock, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, title, department, role
		FROM employees
		WHERE id = $1
	`

	var block dashboard.EmployeeBlock
	err := q.QueryRow(ctx, query, employeeID).Scan(
		&block.ID, &block.Name, &block.Title, &block.Department, &block.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dashboard.EmployeeBlock{}, employee.ErrEmployeeNotFound
		}
		return dashboard.EmployeeBlock{}, fmt.Errorf("failed to get employee block: %w", err)
	}

	return block, nil
}

// ListLeavesCovering implements dashboard.DashboardRepository.
func (r *dashboardRepository) ListLeavesCovering(ctx context.Context, day time.Time, excludeEmployeeID string) ([]dashboard.LeaveItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, e.full_name, l.reason, l.start_date, l.end_date
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'approved'
		  AND l.start_date <= $1
		  AND l.end_date >= $1
		  AND l.employee_id <> $2
	`

	rows, err := q.Query(ctx, query, day, excludeEmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leaves covering date: %w", err)
	}
	defer rows.Close()

	return collectLeaveItems(rows)
}

// ListLeavesStartingBetween implements dashboard.DashboardRepository.
func (r *dashboardRepository) ListLeavesStartingBetween(ctx context.Context, after, until time.Time, excludeEmployeeID string) ([]dashboard.LeaveItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, e.full_name, l.reason, l.start_date, l.end_date
		FROM leave_requests l
		JOIN employees e ON e.id = l.employee_id
		WHERE l.status = 'approved'
		  AND l.start_date > $1
		  AND l.start_date <= $2
		  AND l.employee_id <> $3
		ORDER BY l.start_date ASC
	`

	rows, err := q.Query(ctx, query, after, until, excludeEmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming leaves: %w", err)
	}
	defer rows.Close()

	return collectLeaveItems(rows)
}

// ListHolidaysBetween implements dashboard.DashboardRepository.
func (r *dashboardRepository) ListHolidaysBetween(ctx context.Context, from, to time.Time) ([]dashboard.HolidayItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, holiday_date, description
		FROM company_holidays
		WHERE holiday_date >= $1
		  AND holiday_date <= $2
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming holidays: %w", err)
	}
	defer rows.Close()

	var items []dashboard.HolidayItem
	for rows.Next() {
		var item dashboard.HolidayItem
		var date time.Time
		if err := rows.Scan(&item.ID, &item.Name, &date, &item.Description); err != nil {
			return nil, fmt.Errorf("failed to scan holiday item: %w", err)
		}
		item.HolidayDate = date.Format("2006-01-02")
		items = append(items, item)
	}
	return items, rows.Err()
}

// ListProjectsByMember implements dashboard.DashboardRepository.
func (r *dashboardRepository) ListProjectsByMember(ctx context.Context, employeeID string) ([]dashboard.ProjectItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.id, p.code, p.name, p.status
		FROM projects p
		JOIN project_members pm ON pm.project_id = p.id
		WHERE pm.employee_id = $1
		ORDER BY p.name ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member projects: %w", err)
	}
	defer rows.Close()

	var items []dashboard.ProjectItem
	for rows.Next() {
		var item dashboard.ProjectItem
		if err := rows.Scan(&item.ID, &item.Code, &item.Name, &item.Status); err != nil {
			return nil, fmt.Errorf("failed to scan project item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func collectLeaveItems(rows pgx.Rows) ([]dashboard.LeaveItem, error) {
	var items []dashboard.LeaveItem
	for rows.Next() {
		var item dashboard.LeaveItem
		var start, end time.Time
		if err := rows.Scan(&item.LeaveID, &item.Employee, &item.Reason, &start, &end); err != nil {
			return nil, fmt.Errorf("failed to scan leave item: %w", err)
		}
		item.StartDate = start.Format("2006-01-02")
		item.EndDate = end.Format("2006-01-02")
		items = append(items, item)
	}
	return items, rows.Err()
}
