package models

import (
	"time"

	"github.com/google/uuid"
)

// Site is a resource owned by exactly one organization. Sites are created and
// read only under an application-principal context whose stamped org matches
// the site's org.
type Site struct {
	ID        uuid.UUID // UUIDv7
	OrgID     uuid.UUID
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
