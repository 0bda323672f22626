package commands

import (
	"github.com/rs/zerolog/log"
	"github.com/wolfeidau/tenantdb/internal/logger"
)

type Globals struct {
	Debug   bool
	Version string
}

// DatabaseFlags carries the two principal endpoints. Both are required;
// kong fails startup when either env var is absent.
type DatabaseFlags struct {
	AdminURL string `help:"administrative (unrestricted role) connection string" env:"DATABASE_URL_ADMIN" required:""`
	AppURL   string `help:"application (restricted role) connection string" env:"DATABASE_URL_APP" required:""`
}

func setupLogging(globals *Globals) {
	log.Logger = logger.Setup(globals.Debug)
}
