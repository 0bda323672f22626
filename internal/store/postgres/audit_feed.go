package postgres

import (
	"context"
	"fmt"

	"github.com/wolfeidau/tenantdb/internal/models"
)

const (
	feedDefaultLimit = 50
	feedMaxLimit     = 200
)

// ListAuditFeedParams selects one page of the administrative audit feed.
// Cursor, when set, is the position returned with the previous page.
type ListAuditFeedParams struct {
	Limit  int32
	Cursor *Cursor
}

// AuditFeedPage is one page of feed entries in (created_at desc, id desc)
// order. NextCursor is nil on the last page.
type AuditFeedPage struct {
	Entries    []*models.AuditFeedEntry
	NextCursor *Cursor
}

// ListAuditFeed reads the unfiltered, cross-tenant audit feed. The next page
// selects rows strictly less than the cursor pair under the same total
// order, so pages never duplicate or skip a row even when entries share a
// timestamp: the id breaks all ties deterministically.
//
// Limit is clamped into [1, 200]; zero means the default of 50.
func (tx *AdminTx) ListAuditFeed(ctx context.Context, p ListAuditFeedParams) (*AuditFeedPage, error) {
	limit := clampLimit(p.Limit, feedDefaultLimit, feedMaxLimit)

	query := `
		SELECT id, org_id, actor_user_id, actor_name, actor_email,
		       action, entity, entity_id, metadata, created_at
		FROM audit_feed
	`
	var args []any
	if p.Cursor != nil {
		query += ` WHERE (created_at, id) < ($1, $2)`
		args = append(args, p.Cursor.CreatedAt, p.Cursor.ID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT %d`, limit+1)

	rows, err := tx.tx.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit feed: %w", mapPostgresError(err))
	}
	defer rows.Close()

	var entries []*models.AuditFeedEntry
	for rows.Next() {
		var e models.AuditFeedEntry
		err := rows.Scan(
			&e.ID, &e.OrgID, &e.ActorUserID, &e.ActorName, &e.ActorEmail,
			&e.Action, &e.Entity, &e.EntityID, &e.Metadata, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan audit feed entry: %w", err)
		}
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit feed: %w", mapPostgresError(err))
	}

	page := &AuditFeedPage{Entries: entries}
	if len(entries) > int(limit) {
		// One extra row was fetched to detect a further page.
		page.Entries = entries[:limit]
		last := page.Entries[len(page.Entries)-1]
		page.NextCursor = &Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	return page, nil
}
