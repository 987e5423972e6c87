// Package seed parses seed command flags and loads fixtures into storage.
package seed

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	entrypoint "github.com/cscmnu/lmfdb/internal/platform/cmd"
	smfsqlite "github.com/cscmnu/lmfdb/internal/services/smf/storage/sqlite"
	"github.com/cscmnu/lmfdb/internal/tools/seed"
)

// Config holds seed command configuration.
type Config struct {
	DBPath  string `env:"LMFDB_DB_PATH"   envDefault:"data/lmfdb.db"`
	File    string `env:"LMFDB_SEED_FILE" envDefault:"data/seed/smf.yaml"`
	Verbose bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	fs.StringVar(&cfg.File, "file", cfg.File, "YAML fixture of families and samples")
	fs.BoolVar(&cfg.Verbose, "v", false, "verbose output")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run loads the fixture and upserts it into the store.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
		manifest, err := seed.LoadManifest(cfg.File)
		if err != nil {
			return err
		}
		dbPath := strings.TrimSpace(cfg.DBPath)
		if dbPath == "" {
			return errors.New("db path is required")
		}
		if dir := filepath.Dir(dbPath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := smfsqlite.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open smf sqlite store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close smf store: %v", err)
			}
		}()

		summary, err := seed.NewRunner(store, out, cfg.Verbose).RunManifest(ctx, manifest)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "seeded %d families and %d samples into %s\n", summary.Families, summary.Samples, dbPath)
		return nil
	})
}
