package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-server/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type holidayRepository struct {
	db *database.DB
}

const holidayColumns = `
	id, to_char(date, 'YYYY-MM-DD'), description, created_by, created_by_name,
	created_at, updated_at
`

func scanHoliday(row rowScanner) (holiday.Holiday, error) {
	var h holiday.Holiday
	err := row.Scan(
		&h.ID, &h.Date, &h.Description, &h.CreatedBy, &h.CreatedByName,
		&h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// Create implements holiday.HolidayRepository.
func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO company_holidays (id, date, description, created_by, created_by_name)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		h.ID,
		h.Date,
		h.Description,
		h.CreatedBy,
		h.CreatedByName,
	).Scan(&h.CreatedAt, &h.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return holiday.Holiday{}, holiday.ErrHolidayAlreadyExists
		}
		return holiday.Holiday{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return h, nil
}

// List implements holiday.HolidayRepository.
func (r *holidayRepository) List(ctx context.Context, filter holiday.ListFilter) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM company_holidays
		%s
		ORDER BY date ASC
	`, holidayColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		h, err := scanHoliday(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}

// Delete implements holiday.HolidayRepository.
func (r *holidayRepository) Delete(ctx context.Context, id string) (holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM company_holidays WHERE id = $1 RETURNING ` + holidayColumns

	h, err := scanHoliday(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, fmt.Errorf("failed to delete holiday: %w", err)
	}

	return h, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}
