package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/nimbushr/ems-backend-go/internal/domain/holiday"
	"github.com/nimbushr/ems-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_holidays (name, holiday_date, description)
		VALUES ($1, $2, $3)
		ON CONFLICT (holiday_date) DO NOTHING
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, h.Name, h.HolidayDate, h.Description).Scan(&h.ID, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, false, nil
		}
		return holiday.Holiday{}, false, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, true, nil
}

// ListAll implements holiday.HolidayRepository.
func (r *holidayRepository) ListAll(ctx context.Context) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, holiday_date, description, created_at
		FROM company_holidays
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

// ListBetween implements holiday.HolidayRepository.
func (r *holidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, holiday_date, description, created_at
		FROM company_holidays
		WHERE holiday_date >= $1
		  AND holiday_date <= $2
		ORDER BY holiday_date ASC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays between dates: %w", err)
	}
	defer rows.Close()

	return collectHolidays(rows)
}

func collectHolidays(rows pgx.Rows) ([]holiday.Holiday, error) {
	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Name, &h.HolidayDate, &h.Description, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	return holidays, rows.Err()
}
