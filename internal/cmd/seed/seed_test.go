package seed

import (
	"bytes"
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	smfsqlite "github.com/cscmnu/lmfdb/internal/services/smf/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.DBPath != "data/lmfdb.db" {
		t.Fatalf("expected default db path, got %q", cfg.DBPath)
	}
	if cfg.File != "data/seed/smf.yaml" {
		t.Fatalf("expected default seed file, got %q", cfg.File)
	}
	if cfg.Verbose {
		t.Fatal("expected verbose off")
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("LMFDB_SEED_FILE", "env.yaml")

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-file", "flag.yaml", "-db-path", "x.db", "-v"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.File != "flag.yaml" || cfg.DBPath != "x.db" || !cfg.Verbose {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestRunSeedsStore(t *testing.T) {
	dir := t.TempDir()
	fixture := filepath.Join(dir, "smf.yaml")
	data := []byte(`families:
  - name: Sp4Z
    degree: 2
    order: 1
samples:
  - name: Sp4Z_E4
    collection: Sp4Z
    weight: 4
    degree: 2
    field: Q
`)
	if err := os.WriteFile(fixture, data, 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	dbPath := filepath.Join(dir, "nested", "lmfdb.db")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{DBPath: dbPath, File: fixture}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "seeded 1 families and 1 samples") {
		t.Fatalf("output = %q", out.String())
	}

	store, err := smfsqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()
	record, err := store.FindFamily(context.Background(), "Sp4Z")
	if err != nil {
		t.Fatalf("find family: %v", err)
	}
	if record.Degree == nil || *record.Degree != 2 {
		t.Fatalf("record = %+v", record)
	}
}

func TestRunMissingFixture(t *testing.T) {
	dir := t.TempDir()
	err := Run(context.Background(), Config{DBPath: filepath.Join(dir, "lmfdb.db"), File: filepath.Join(dir, "none.yaml")}, nil)
	if err == nil {
		t.Fatal("expected missing fixture error")
	}
}
