package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
)

// Store is the write surface needed to apply a manifest.
type Store interface {
	PutFamily(ctx context.Context, record storage.FamilyRecord) error
	PutSample(ctx context.Context, sample storage.Sample) error
}

// Defaults for sample attributes a manifest leaves out.
const (
	defaultDegree = 2
	defaultField  = "Q"
)

// Summary counts the records written by one run.
type Summary struct {
	Families int
	Samples  int
}

// Runner applies manifests to a store. Writes are upserts, so reruns are
// idempotent.
type Runner struct {
	store   Store
	out     io.Writer
	verbose bool
}

// NewRunner returns a runner writing progress to out when verbose.
func NewRunner(store Store, out io.Writer, verbose bool) *Runner {
	if out == nil {
		out = io.Discard
	}
	return &Runner{store: store, out: out, verbose: verbose}
}

// RunManifest validates and applies one manifest.
func (r *Runner) RunManifest(ctx context.Context, manifest Manifest) (Summary, error) {
	if r == nil || r.store == nil {
		return Summary{}, errors.New("seed store is required")
	}
	if err := ValidateManifest(manifest); err != nil {
		return Summary{}, err
	}

	var summary Summary
	familyDegrees := make(map[string]int, len(manifest.Families))
	for _, fam := range manifest.Families {
		record := storage.FamilyRecord{
			Name:           strings.TrimSpace(fam.Name),
			LatexName:      fam.LatexName,
			Degree:         fam.Degree,
			DimArgsDefault: fam.DimArgsDefault,
			Order:          fam.Order,
		}
		if fam.Degree != nil {
			familyDegrees[record.Name] = *fam.Degree
		}
		if err := r.store.PutFamily(ctx, record); err != nil {
			return summary, fmt.Errorf("put family %q: %w", record.Name, err)
		}
		summary.Families++
		r.logf("family %s", record.Name)
	}
	for _, sample := range manifest.Samples {
		collection := strings.TrimSpace(sample.Collection)
		record := storage.Sample{
			Name:            strings.TrimSpace(sample.Name),
			Collection:      collection,
			Weight:          sample.Weight,
			Degree:          sampleDegree(sample.Degree, familyDegrees[collection]),
			Field:           sampleField(sample.Field),
			IsEigenform:     sample.IsEigenform,
			ExplicitFormula: sample.ExplicitFormula,
		}
		if err := r.store.PutSample(ctx, record); err != nil {
			return summary, fmt.Errorf("put sample %q: %w", record.Name, err)
		}
		summary.Samples++
		r.logf("sample %s (%s, weight %d)", record.Name, record.Collection, record.Weight)
	}
	return summary, nil
}

// sampleDegree falls back to the family degree, then to genus 2.
func sampleDegree(declared, familyDegree int) int {
	if declared > 0 {
		return declared
	}
	if familyDegree > 0 {
		return familyDegree
	}
	return defaultDegree
}

func sampleField(declared string) string {
	if field := strings.TrimSpace(declared); field != "" {
		return field
	}
	return defaultField
}

func (r *Runner) logf(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.out, format+"\n", args...)
}
