package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hrms-server/hrms-backend-go/internal/domain/leave"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

const leaveRequestColumns = `
	lr.id, lr.user_id, lr.user_name,
	to_char(lr.start_date, 'YYYY-MM-DD'), to_char(lr.end_date, 'YYYY-MM-DD'),
	lr.start_time, lr.end_time, lr.category, lr.reason, lr.attachment_url,
	lr.status, lr.hr_comment, lr.created_at, lr.updated_at,
	u.department
`

func scanLeaveRequest(row rowScanner) (leave.LeaveRequest, error) {
	var lr leave.LeaveRequest
	err := row.Scan(
		&lr.ID, &lr.UserID, &lr.UserName,
		&lr.StartDate, &lr.EndDate,
		&lr.StartTime, &lr.EndTime, &lr.Category, &lr.Reason, &lr.AttachmentURL,
		&lr.Status, &lr.HRComment, &lr.CreatedAt, &lr.UpdatedAt,
		&lr.UserDepartment,
	)
	return lr, err
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO leave_requests (
			id, user_id, user_name, start_date, end_date, start_time, end_time,
			category, reason, attachment_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.ID,
		request.UserID,
		request.UserName,
		request.StartDate,
		request.EndDate,
		request.StartTime,
		request.EndTime,
		request.Category,
		request.Reason,
		request.AttachmentURL,
		request.Status,
	).Scan(&request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return request, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveRequestColumns + `
		FROM leave_requests lr
		LEFT JOIN users u ON u.id = lr.user_id
		WHERE lr.id = $1
	`

	lr, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	return lr, nil
}

// List implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) List(ctx context.Context, filter leave.LeaveRequestFilter) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	var conditions []string
	var args []interface{}
	argIdx := 1

	if filter.UserID != nil {
		conditions = append(conditions, fmt.Sprintf("lr.user_id = $%d", argIdx))
		args = append(args, *filter.UserID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("lr.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leave_requests lr
		LEFT JOIN users u ON u.id = lr.user_id
		%s
		ORDER BY lr.created_at DESC
	`, leaveRequestColumns, where)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		lr, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, lr)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return requests, nil
}

// UpdateStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status, hrComment *string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests
		SET status = $2,
			hr_comment = COALESCE($3, hr_comment),
			updated_at = NOW()
		WHERE id = $1
		  AND status = $4
	`

	tag, err := q.Exec(ctx, query, id, status, hrComment, leave.StatusPending)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	if tag.RowsAffected() == 0 {
		// Either missing or no longer pending
		if _, err := r.GetByID(ctx, id); err != nil {
			return leave.LeaveRequest{}, err
		}
		return leave.LeaveRequest{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	return r.GetByID(ctx, id)
}

// ExistsApprovedStartingOn implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ExistsApprovedStartingOn(ctx context.Context, userID, date string, categories []leave.Category) (bool, error) {
	q := GetQuerier(ctx, r.db)

	values := make([]string, 0, len(categories))
	for _, c := range categories {
		values = append(values, string(c))
	}

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leave_requests
			WHERE user_id = $1
			  AND start_date = $2
			  AND status = $3
			  AND category = ANY($4)
		)
	`

	var exists bool
	err := q.QueryRow(ctx, query, userID, date, leave.StatusApproved, values).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check approved leave: %w", err)
	}

	return exists, nil
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}
