package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wolfeidau/tenantdb/internal/models"
)

// CreateSite creates a site within the stamped org. The orgID parameter only
// shapes the insert; authorization is the policy engine comparing the row's
// org to the stamped context org. A mismatch is rejected with
// store.ErrPolicyDenied, never silently reassigned.
func (tx *TenantTx) CreateSite(ctx context.Context, orgID uuid.UUID, name string) (*models.Site, error) {
	if err := requireNonEmpty(name, "site name"); err != nil {
		return nil, err
	}
	if err := requireID(orgID, "org id"); err != nil {
		return nil, err
	}

	var site models.Site
	err := tx.tx.QueryRow(ctx, `
		INSERT INTO sites (id, org_id, name)
		VALUES ($1, $2, $3)
		RETURNING id, org_id, name, created_at, updated_at
	`, uuid.Must(uuid.NewV7()), orgID, name).Scan(&site.ID, &site.OrgID, &site.Name, &site.CreatedAt, &site.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create site: %w", mapPostgresError(err))
	}

	return &site, nil
}

// ListSites returns the sites visible under the stamped context, ordered by
// name. Zero rows means policy filtered everything out, which is success.
func (tx *TenantTx) ListSites(ctx context.Context) ([]*models.Site, error) {
	rows, err := tx.tx.Query(ctx, `
		SELECT id, org_id, name, created_at, updated_at
		FROM sites
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", mapPostgresError(err))
	}
	defer rows.Close()

	var sites []*models.Site
	for rows.Next() {
		var site models.Site
		if err := rows.Scan(&site.ID, &site.OrgID, &site.Name, &site.CreatedAt, &site.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan site: %w", err)
		}
		sites = append(sites, &site)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sites: %w", mapPostgresError(err))
	}

	return sites, nil
}
