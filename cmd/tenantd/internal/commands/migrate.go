package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/tenantdb/internal/store/postgres"
)

type MigrateCmd struct {
	DatabaseFlags
}

func (c *MigrateCmd) Run(ctx context.Context, globals *Globals) error {
	setupLogging(globals)

	log.Info().Str("version", globals.Version).Msg("Running migrations")

	st, err := postgres.Open(ctx, &postgres.Config{
		AdminURL:    c.AdminURL,
		AppURL:      c.AppURL,
		AutoMigrate: true,
	})
	if err != nil {
		return err
	}
	defer st.Close()

	log.Info().Msg("Migrations complete")
	return nil
}
