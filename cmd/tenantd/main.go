package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/wolfeidau/tenantdb/cmd/tenantd/internal/commands"
)

var (
	version = "dev"
	cli     struct {
		Debug     bool `help:"Enable debug mode."`
		Version   kong.VersionFlag
		Migrate   commands.MigrateCmd   `cmd:"" help:"Run database migrations."`
		SeedDemo  commands.SeedDemoCmd  `cmd:"" name:"seed-demo" help:"Seed a demo org, users and site."`
		AuditFeed commands.AuditFeedCmd `cmd:"" name:"audit-feed" help:"Page through the administrative audit feed."`
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))
	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
