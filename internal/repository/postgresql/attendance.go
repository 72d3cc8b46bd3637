package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type attendanceRepository struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.user_id, to_char(a.date, 'YYYY-MM-DD'),
	a.check_in, a.check_out, a.location, a.breaks,
	a.total_worked_seconds, a.low_time_flag, a.extra_time_flag, a.notes,
	a.created_at, a.updated_at,
	u.name, u.department
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row rowScanner) (attendance.AttendanceRecord, error) {
	var att attendance.AttendanceRecord
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date,
		&att.CheckIn, &att.CheckOut, &att.Location, &att.Breaks,
		&att.TotalWorkedSeconds, &att.LowTimeFlag, &att.ExtraTimeFlag, &att.Notes,
		&att.CreatedAt, &att.UpdatedAt,
		&att.UserName, &att.UserDepartment,
	)
	return att, err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			id, user_id, date, check_in, check_out, location, breaks,
			total_worked_seconds, low_time_flag, extra_time_flag, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.UserID,
		record.Date,
		record.CheckIn,
		record.CheckOut,
		record.Location,
		record.Breaks,
		record.TotalWorkedSeconds,
		record.LowTimeFlag,
		record.ExtraTimeFlag,
		record.Notes,
	).Scan(&record.CreatedAt, &record.UpdatedAt)

	if err != nil {
		// Lost a race with a concurrent clock-in for the same day
		if isUniqueViolation(err) {
			return attendance.AttendanceRecord{}, attendance.ErrAlreadyClockedIn
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return record, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByUserAndDate(ctx context.Context, userID, date string) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
		  AND a.date = $2
		LIMIT 1
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No attendance yet
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances SET
			check_in = $2,
			check_out = $3,
			location = $4,
			breaks = $5,
			total_worked_seconds = $6,
			low_time_flag = $7,
			extra_time_flag = $8,
			notes = $9,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.CheckIn,
		record.CheckOut,
		record.Location,
		record.Breaks,
		record.TotalWorkedSeconds,
		record.LowTimeFlag,
		record.ExtraTimeFlag,
		record.Notes,
	).Scan(&record.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return record, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.RecordFilter) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query, args := buildListQuery(filter)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendance: %w", err)
	}

	return records, nil
}

func buildListQuery(filter attendance.RecordFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Department != nil {
		conditions = append(conditions, fmt.Sprintf("u.department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Unflagged {
		conditions = append(conditions,
			"a.check_in IS NOT NULL AND a.check_out IS NOT NULL AND (a.low_time_flag IS NULL OR a.extra_time_flag IS NULL)")
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	orderBy := "a.date DESC, a.check_in DESC"
	if filter.SortByCheckIn {
		orderBy = "a.check_in ASC"
	}

	limit := ""
	if filter.Limit > 0 {
		limit = fmt.Sprintf("LIMIT $%d", argIdx)
		args = append(args, filter.Limit)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		LEFT JOIN users u ON u.id = a.user_id
		%s
		ORDER BY %s
		%s
	`, attendanceColumns, where, orderBy, limit)

	return query, args
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
