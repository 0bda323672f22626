package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an identity in the system. Users are provisioned by an
// external identity provider and are never hard-deleted once referenced by a
// membership or an audit entry.
type User struct {
	ID        uuid.UUID // UUIDv7
	Email     string    // Globally unique
	Name      *string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
