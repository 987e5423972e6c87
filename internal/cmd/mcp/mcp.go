// Package mcp parses MCP command flags and serves the catalog tools on stdio.
package mcp

import (
	"context"
	"flag"

	entrypoint "github.com/cscmnu/lmfdb/internal/platform/cmd"
	"github.com/cscmnu/lmfdb/internal/services/mcp/service"
)

// Config holds MCP command configuration.
type Config struct {
	DBPath string `env:"LMFDB_DB_PATH" envDefault:"data/lmfdb.db"`
	Beta   bool   `env:"LMFDB_BETA"    envDefault:"false"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.BoolVar(&cfg.Beta, "beta", cfg.Beta, "Include beta areas in random_path")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceMCP, func(ctx context.Context) error {
		return service.Run(ctx, service.Config{DBPath: cfg.DBPath, Beta: cfg.Beta})
	})
}
