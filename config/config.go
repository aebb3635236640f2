package config

import (
	"github.com/go-pg/pg/v10"
)

// Backends for the content store.
const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Store struct {
		// Backend selects "memory" (seeded, default) or "postgres".
		Backend string
	}
	Events struct {
		// URL of the NATS server. Empty disables event publishing.
		URL string
	}
}
