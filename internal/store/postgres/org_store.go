package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/tenantdb/internal/models"
	"github.com/wolfeidau/tenantdb/internal/store"
)

// CreateOrgWithOwner creates an organization together with its owner
// membership in the enclosing transaction. If either insert fails the whole
// transaction rolls back: an org is never observable without an owner.
func (tx *AdminTx) CreateOrgWithOwner(ctx context.Context, name string, ownerUserID uuid.UUID) (*models.Organization, error) {
	if err := requireNonEmpty(name, "org name"); err != nil {
		return nil, err
	}
	if err := requireID(ownerUserID, "owner user id"); err != nil {
		return nil, err
	}

	orgID := uuid.Must(uuid.NewV7())

	var org models.Organization
	err := tx.tx.QueryRow(ctx, `
		INSERT INTO orgs (id, name)
		VALUES ($1, $2)
		RETURNING id, name, created_at, updated_at
	`, orgID, name).Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create org: %w", mapPostgresError(err))
	}

	_, err = tx.tx.Exec(ctx, `
		INSERT INTO memberships (id, org_id, user_id, role)
		VALUES ($1, $2, $3, $4)
	`, uuid.Must(uuid.NewV7()), orgID, ownerUserID, models.RoleOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("org_id", org.ID.String()).
		Str("owner_user_id", ownerUserID.String()).
		Msg("Created organization with owner")

	return &org, nil
}

// AddMember grants userID a membership in orgID with the given role. A
// duplicate (org, user) pair or a role outside the closed set fails with
// store.ErrConstraintViolation.
func (tx *AdminTx) AddMember(ctx context.Context, orgID, userID uuid.UUID, role string) (*models.Membership, error) {
	if err := requireID(orgID, "org id"); err != nil {
		return nil, err
	}
	if err := requireID(userID, "user id"); err != nil {
		return nil, err
	}
	if !models.ValidRole(role) {
		return nil, fmt.Errorf("%w: invalid role %q", store.ErrConstraintViolation, role)
	}

	var m models.Membership
	err := tx.tx.QueryRow(ctx, `
		INSERT INTO memberships (id, org_id, user_id, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id, org_id, user_id, role, created_at
	`, uuid.Must(uuid.NewV7()), orgID, userID, role).Scan(&m.ID, &m.OrgID, &m.UserID, &m.Role, &m.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add member: %w", mapPostgresError(err))
	}

	log.Debug().
		Str("org_id", orgID.String()).
		Str("user_id", userID.String()).
		Str("role", role).
		Msg("Added membership")

	return &m, nil
}

// CurrentOrg returns the unique org visible under the stamped context, or
// nil when policy filtering leaves no rows. Zero visible rows is success,
// not an error.
func (tx *TenantTx) CurrentOrg(ctx context.Context) (*models.Organization, error) {
	var org models.Organization
	err := tx.tx.QueryRow(ctx, `
		SELECT id, name, created_at, updated_at
		FROM orgs
		ORDER BY name
		LIMIT 1
	`).Scan(&org.ID, &org.Name, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get current org: %w", mapPostgresError(err))
	}

	return &org, nil
}
