package seed

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
)

const fixtureYAML = `
families:
  - name: Sp4Z
    latex_name: 'M_k(\mathrm{Sp}(4,\mathbb{Z}))'
    degree: 2
    dim_args_default: ["20-30"]
    order: 1
  - name: Kp
samples:
  - name: Sp4Z_chi10
    collection: Sp4Z
    weight: 10
    degree: 2
    field: Q
    is_eigenform: true
`

type recordingStore struct {
	families []storage.FamilyRecord
	samples  []storage.Sample
	err      error
}

func (s *recordingStore) PutFamily(_ context.Context, record storage.FamilyRecord) error {
	if s.err != nil {
		return s.err
	}
	s.families = append(s.families, record)
	return nil
}

func (s *recordingStore) PutSample(_ context.Context, sample storage.Sample) error {
	if s.err != nil {
		return s.err
	}
	s.samples = append(s.samples, sample)
	return nil
}

func TestParseManifest(t *testing.T) {
	t.Parallel()

	manifest, err := ParseManifest([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	if len(manifest.Families) != 2 || len(manifest.Samples) != 1 {
		t.Fatalf("manifest = %+v", manifest)
	}
	sp4z := manifest.Families[0]
	if sp4z.Degree == nil || *sp4z.Degree != 2 || sp4z.Order == nil || *sp4z.Order != 1 {
		t.Fatalf("Sp4Z = %+v", sp4z)
	}
	if sp4z.LatexName != `M_k(\mathrm{Sp}(4,\mathbb{Z}))` {
		t.Fatalf("latex name = %q", sp4z.LatexName)
	}
	if kp := manifest.Families[1]; kp.Degree != nil || kp.Order != nil || kp.DimArgsDefault != nil {
		t.Fatalf("Kp optional fields should be nil: %+v", kp)
	}
}

func TestParseManifestRejectsUnknownKeys(t *testing.T) {
	t.Parallel()

	if _, err := ParseManifest([]byte("families:\n  - name: A\n    colour: red\n")); err == nil {
		t.Fatal("expected unknown key error")
	}
}

func TestLoadManifestFromFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.yaml")
	if err := os.WriteFile(path, []byte(fixtureYAML), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	manifest, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("load manifest: %v", err)
	}
	if len(manifest.Families) != 2 {
		t.Fatalf("families = %d", len(manifest.Families))
	}
	if _, err := LoadManifest(""); err == nil {
		t.Fatal("expected error for empty path")
	}
	if _, err := LoadManifest(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateManifest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		manifest Manifest
		wantErr  string
	}{
		{name: "blank family", manifest: Manifest{Families: []ManifestFamily{{Name: " "}}}, wantErr: "name is required"},
		{name: "duplicate family", manifest: Manifest{Families: []ManifestFamily{{Name: "A"}, {Name: "A"}}}, wantErr: "duplicate family"},
		{name: "unknown collection", manifest: Manifest{Families: []ManifestFamily{{Name: "A"}}, Samples: []ManifestSample{{Name: "s", Collection: "B"}}}, wantErr: "unknown collection"},
		{name: "duplicate sample", manifest: Manifest{Families: []ManifestFamily{{Name: "A"}}, Samples: []ManifestSample{{Name: "s", Collection: "A"}, {Name: "s", Collection: "A"}}}, wantErr: "duplicate sample"},
		{name: "negative weight", manifest: Manifest{Families: []ManifestFamily{{Name: "A"}}, Samples: []ManifestSample{{Name: "s", Collection: "A", Weight: -1}}}, wantErr: "non-negative"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateManifest(tc.manifest)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("error = %v, want %q", err, tc.wantErr)
			}
		})
	}
}

func TestRunManifestWritesRecords(t *testing.T) {
	t.Parallel()

	manifest, err := ParseManifest([]byte(fixtureYAML))
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	store := &recordingStore{}
	var out bytes.Buffer
	summary, err := NewRunner(store, &out, true).RunManifest(context.Background(), manifest)
	if err != nil {
		t.Fatalf("run manifest: %v", err)
	}
	if summary != (Summary{Families: 2, Samples: 1}) {
		t.Fatalf("summary = %+v", summary)
	}
	if store.families[0].Name != "Sp4Z" || store.samples[0].Collection != "Sp4Z" {
		t.Fatalf("stored = %+v %+v", store.families, store.samples)
	}
	if !strings.Contains(out.String(), "sample Sp4Z_chi10") {
		t.Fatalf("verbose output = %q", out.String())
	}
}

func TestRunManifestPropagatesStoreError(t *testing.T) {
	t.Parallel()

	want := errors.New("readonly database")
	_, err := NewRunner(&recordingStore{err: want}, nil, false).RunManifest(context.Background(), Manifest{Families: []ManifestFamily{{Name: "A"}}})
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

func TestRunManifestRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewRunner(nil, nil, false).RunManifest(context.Background(), Manifest{}); err == nil {
		t.Fatal("expected store error")
	}
}

func TestRunManifestFillsSampleDefaults(t *testing.T) {
	t.Parallel()

	manifest, err := ParseManifest([]byte(`
families:
  - name: Sp6Z
    degree: 3
  - name: Kp
samples:
  - name: Miyawaki12
    collection: Sp6Z
    weight: 12
  - name: K277
    collection: Kp
    weight: 2
    field: 'Q(sqrt(5))'
  - name: E4
    collection: Sp6Z
    weight: 4
  - name: E4
    collection: Kp
    weight: 4
`))
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	store := &recordingStore{}
	if _, err := NewRunner(store, nil, false).RunManifest(context.Background(), manifest); err != nil {
		t.Fatalf("run manifest: %v", err)
	}
	want := []storage.Sample{
		{Name: "Miyawaki12", Collection: "Sp6Z", Weight: 12, Degree: 3, Field: "Q"},
		{Name: "K277", Collection: "Kp", Weight: 2, Degree: 2, Field: "Q(sqrt(5))"},
		{Name: "E4", Collection: "Sp6Z", Weight: 4, Degree: 3, Field: "Q"},
		{Name: "E4", Collection: "Kp", Weight: 4, Degree: 2, Field: "Q"},
	}
	if len(store.samples) != len(want) {
		t.Fatalf("samples = %+v", store.samples)
	}
	for i := range want {
		if store.samples[i] != want[i] {
			t.Fatalf("samples[%d] = %+v, want %+v", i, store.samples[i], want[i])
		}
	}
}
