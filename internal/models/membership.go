package models

import (
	"time"

	"github.com/google/uuid"
)

// Membership roles. The set is closed; the database enforces it with a CHECK
// constraint and AddMember rejects anything else before issuing a statement.
const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleMember = "member"
)

// ValidRole reports whether role is one of the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleMember:
		return true
	}
	return false
}

// Membership joins exactly one user to one organization. It is the sole
// authorization edge the row-level policies consult; at most one membership
// exists per (org, user) pair.
type Membership struct {
	ID        uuid.UUID // UUIDv7
	OrgID     uuid.UUID
	UserID    uuid.UUID
	Role      string // "owner", "admin", "member"
	CreatedAt time.Time
}
