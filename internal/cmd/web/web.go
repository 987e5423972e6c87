// Package web parses web command flags and starts the site runtime.
package web

import (
	"context"
	"flag"

	entrypoint "github.com/cscmnu/lmfdb/internal/platform/cmd"
	server "github.com/cscmnu/lmfdb/internal/services/web/app"
)

// Config holds web command configuration.
type Config struct {
	HTTPAddr   string `env:"LMFDB_WEB_ADDR"    envDefault:":37777"`
	HealthAddr string `env:"LMFDB_HEALTH_ADDR" envDefault:":37778"`
	DBPath     string `env:"LMFDB_DB_PATH"     envDefault:"data/lmfdb.db"`
	Beta       bool   `env:"LMFDB_BETA"        envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address (empty disables)")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.Beta, "beta", cfg.Beta, "Include beta areas in /random")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web site until the context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		return server.Run(ctx, server.Config{
			HTTPAddr:   cfg.HTTPAddr,
			HealthAddr: cfg.HealthAddr,
			DBPath:     cfg.DBPath,
			Beta:       cfg.Beta,
		})
	})
}
