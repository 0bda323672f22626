package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/tenantdb/internal/models"
	"github.com/wolfeidau/tenantdb/internal/store/postgres"
)

type SeedDemoCmd struct {
	DatabaseFlags
	OrgName string `help:"name of the demo organization" default:"Demo Org"`
}

// Run seeds a demo tenant end to end: two users, an org with its owner, a
// second membership, a site created under the tenant context, and an audit
// entry for the org creation.
func (c *SeedDemoCmd) Run(ctx context.Context, globals *Globals) error {
	setupLogging(globals)

	st, err := postgres.Open(ctx, &postgres.Config{
		AdminURL: c.AdminURL,
		AppURL:   c.AppURL,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	var (
		owner  *models.User
		member *models.User
		org    *models.Organization
	)

	err = st.WithAdmin(ctx, func(ctx context.Context, tx *postgres.AdminTx) error {
		ownerName := "Demo Owner"
		owner, err = tx.CreateUser(ctx, fmt.Sprintf("owner+%s@example.com", uuid.Must(uuid.NewV7())), &ownerName)
		if err != nil {
			return err
		}

		memberName := "Demo Member"
		member, err = tx.CreateUser(ctx, fmt.Sprintf("member+%s@example.com", uuid.Must(uuid.NewV7())), &memberName)
		if err != nil {
			return err
		}

		org, err = tx.CreateOrgWithOwner(ctx, c.OrgName, owner.ID)
		if err != nil {
			return err
		}

		if _, err := tx.AddMember(ctx, org.ID, member.ID, models.RoleMember); err != nil {
			return err
		}

		_, err = tx.AppendAudit(ctx, postgres.AppendAuditParams{
			OrgID:       org.ID,
			Action:      "org.created",
			ActorUserID: &owner.ID,
			EntityID:    &org.ID,
		})
		return err
	})
	if err != nil {
		return err
	}

	err = st.WithTenantContext(ctx, member.ID, org.ID, func(ctx context.Context, tx *postgres.TenantTx) error {
		site, err := tx.CreateSite(ctx, org.ID, "Demo Site")
		if err != nil {
			return err
		}
		log.Info().Str("site_id", site.ID.String()).Msg("Created demo site")
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().
		Str("org_id", org.ID.String()).
		Str("owner_id", owner.ID.String()).
		Str("member_id", member.ID.String()).
		Msg("Demo data seeded")

	return nil
}
