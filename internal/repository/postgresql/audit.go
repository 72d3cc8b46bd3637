package postgresql

import (
	"context"
	"fmt"

	"github.com/hrms-server/hrms-backend-go/internal/domain/audit"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

// Create implements audit.AuditRepository.
func (r *auditRepository) Create(ctx context.Context, entry audit.Entry) (audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO audit_logs (
			id, actor_id, actor_name, action, target_type, target_id,
			details, before_data, after_data
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.ActorID,
		entry.ActorName,
		entry.Action,
		entry.TargetType,
		entry.TargetID,
		entry.Details,
		entry.BeforeData,
		entry.AfterData,
	).Scan(&entry.CreatedAt)
	if err != nil {
		return audit.Entry{}, fmt.Errorf("failed to create audit log: %w", err)
	}

	return entry, nil
}

// List implements audit.AuditRepository.
func (r *auditRepository) List(ctx context.Context, limit int) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, actor_id, actor_name, action, target_type, target_id,
			   details, before_data, after_data, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var entries []audit.Entry
	for rows.Next() {
		var e audit.Entry
		if err := rows.Scan(
			&e.ID, &e.ActorID, &e.ActorName, &e.Action, &e.TargetType, &e.TargetID,
			&e.Details, &e.BeforeData, &e.AfterData, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate audit logs: %w", err)
	}

	return entries, nil
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}
