package models

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntry is an append-only fact about something that happened in an
// organization. Entries are written only by the administrative principal and
// are never updated or deleted by the application layer.
//
// The total order for all audit reads is (created_at desc, id desc) so that
// pagination stays deterministic even when timestamps tie.
type AuditEntry struct {
	ID          uuid.UUID // UUIDv7
	OrgID       uuid.UUID
	ActorUserID *uuid.UUID
	Action      string
	Entity      string // Never empty; defaults to "org"
	EntityID    *uuid.UUID
	Metadata    *string
	CreatedAt   time.Time
}

// AuditFeedEntry is an audit entry enriched with actor details, as returned
// by the cross-tenant administrative feed.
type AuditFeedEntry struct {
	AuditEntry
	ActorName  *string
	ActorEmail *string
}
