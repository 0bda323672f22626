package models

import (
	"time"

	"github.com/google/uuid"
)

// Organization represents a tenant, the unit of data isolation.
// An organization never exists without at least one owner membership.
type Organization struct {
	ID        uuid.UUID // UUIDv7
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
