package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/tenantdb/internal/models"
)

const (
	// defaultEntity is recorded when an append names no entity; the column
	// is never null.
	defaultEntity = "org"

	auditDefaultLimit = 100
	auditMaxLimit     = 500
)

// AppendAuditParams describes one audit append. Only OrgID and Action are
// required.
type AppendAuditParams struct {
	OrgID       uuid.UUID
	Action      string
	ActorUserID *uuid.UUID
	Entity      string
	EntityID    *uuid.UUID
	Metadata    *string
}

// AppendAudit writes one append-only audit entry. This is an administrative
// operation: the application principal has no insert privilege on the audit
// table at all.
func (tx *AdminTx) AppendAudit(ctx context.Context, p AppendAuditParams) (*models.AuditEntry, error) {
	if err := requireID(p.OrgID, "org id"); err != nil {
		return nil, err
	}
	if err := requireNonEmpty(p.Action, "action"); err != nil {
		return nil, err
	}

	entity := p.Entity
	if entity == "" {
		entity = defaultEntity
	}

	var e models.AuditEntry
	err := tx.tx.QueryRow(ctx, `
		INSERT INTO audit_log (id, org_id, actor_user_id, action, entity, entity_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, org_id, actor_user_id, action, entity, entity_id, metadata, created_at
	`, uuid.Must(uuid.NewV7()), p.OrgID, p.ActorUserID, p.Action, entity, p.EntityID, p.Metadata).Scan(
		&e.ID, &e.OrgID, &e.ActorUserID, &e.Action, &e.Entity, &e.EntityID, &e.Metadata, &e.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to append audit entry: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("audit_id", e.ID.String()).
		Str("org_id", e.OrgID.String()).
		Str("action", e.Action).
		Msg("Appended audit entry")

	return &e, nil
}

// ListAudit returns the newest audit entries visible under the stamped
// context. limit is clamped into [1, 500]; zero means the default of 100.
func (tx *TenantTx) ListAudit(ctx context.Context, limit int32) ([]*models.AuditEntry, error) {
	limit = clampLimit(limit, auditDefaultLimit, auditMaxLimit)

	rows, err := tx.tx.Query(ctx, `
		SELECT id, org_id, actor_user_id, action, entity, entity_id, metadata, created_at
		FROM audit_log
		ORDER BY created_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", mapPostgresError(err))
	}
	defer rows.Close()

	var entries []*models.AuditEntry
	for rows.Next() {
		var e models.AuditEntry
		err := rows.Scan(&e.ID, &e.OrgID, &e.ActorUserID, &e.Action, &e.Entity, &e.EntityID, &e.Metadata, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", mapPostgresError(err))
	}

	return entries, nil
}

// clampLimit clamps limit into [1, max], substituting def when unspecified.
// Out-of-range values are clamped, not rejected.
func clampLimit(limit, def, max int32) int32 {
	if limit == 0 {
		limit = def
	}
	if limit < 1 {
		return 1
	}
	if limit > max {
		return max
	}
	return limit
}
