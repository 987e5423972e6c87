// Package family provides the Siegel modular form family entity and the
// family listing.
package family

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/cscmnu/lmfdb/internal/platform/errors"
	"github.com/cscmnu/lmfdb/internal/platform/timeouts"
	"github.com/cscmnu/lmfdb/internal/services/smf/dimension"
	"github.com/cscmnu/lmfdb/internal/services/smf/samples"
	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/cscmnu/lmfdb/internal/services/smf/family")

// ErrNotFound matches any error reporting a missing family.
var ErrNotFound = apperrors.New(apperrors.CodeFamilyNotFound, "family not found")

// DimensionDesc names a family's dimension function and its parameters.
type DimensionDesc struct {
	Name string
	Args []string
}

// Family is a read-only view of one stored family record.
type Family struct {
	Name           string
	LatexName      string
	Degree         *int
	DimArgsDefault []string
	Order          *float64

	dimension    dimension.Func
	hasDimension bool

	sampleStore storage.SampleStore
	samplesOnce sync.Once
	samples     *samples.Handle
}

// ComputesDimension reports whether a dimension function is registered for
// the family.
func (f *Family) ComputesDimension() bool {
	return f.hasDimension
}

// Dimension evaluates the family's dimension function. It returns nil, nil
// when the family has none.
func (f *Family) Dimension(args ...string) (*dimension.Table, error) {
	if !f.hasDimension {
		return nil, nil
	}
	return f.dimension.Eval(args...)
}

// DimensionDesc describes the dimension function, or returns nil.
func (f *Family) DimensionDesc() *DimensionDesc {
	if !f.hasDimension {
		return nil
	}
	return &DimensionDesc{
		Name: f.dimension.Name,
		Args: append([]string(nil), f.dimension.Params...),
	}
}

// DimensionGlossary returns the documentation of the dimension function.
func (f *Family) DimensionGlossary() string {
	if !f.hasDimension {
		return ""
	}
	return f.dimension.Doc
}

// Samples returns the family's samples handle, created on first use.
func (f *Family) Samples() *samples.Handle {
	f.samplesOnce.Do(func() {
		f.samples = samples.New(f.sampleStore, samples.Scope{Collection: f.Name})
	})
	return f.samples
}

// Catalog constructs families from storage.
type Catalog struct {
	families storage.FamilyStore
	samples  storage.SampleStore
	registry *dimension.Registry
}

// NewCatalog builds a catalog. A nil registry falls back to
// dimension.Default().
func NewCatalog(families storage.FamilyStore, sampleStore storage.SampleStore, registry *dimension.Registry) *Catalog {
	if registry == nil {
		registry = dimension.Default()
	}
	return &Catalog{families: families, samples: sampleStore, registry: registry}
}

// Family loads the family called name.
func (c *Catalog) Family(ctx context.Context, name string) (*Family, error) {
	ctx, span := tracer.Start(ctx, "family.Family")
	defer span.End()
	span.SetAttributes(attribute.String("smf.family", name))

	if c == nil || c.families == nil {
		return nil, errors.New("family store is not configured")
	}
	if strings.TrimSpace(name) == "" {
		return nil, notFound(name)
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.StoreQuery)
	defer cancel()
	record, err := c.families.FindFamily(ctx, name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, notFound(name)
		}
		span.RecordError(err)
		return nil, fmt.Errorf("find family %q: %w", name, err)
	}
	return c.build(record), nil
}

// FamilyOrNil loads the family called name, returning nil when it does not
// exist.
func (c *Catalog) FamilyOrNil(ctx context.Context, name string) (*Family, error) {
	fam, err := c.Family(ctx, name)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return fam, nil
}

// Families returns every stored family sorted by ascending order. Families
// without an order come first; ties keep store order.
func (c *Catalog) Families(ctx context.Context) ([]*Family, error) {
	ctx, span := tracer.Start(ctx, "family.Families")
	defer span.End()

	if c == nil || c.families == nil {
		return nil, errors.New("family store is not configured")
	}
	listCtx, cancel := context.WithTimeout(ctx, timeouts.StoreQuery)
	names, err := c.families.ListFamilyNames(listCtx)
	cancel()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("list family names: %w", err)
	}

	families := make([]*Family, 0, len(names))
	for _, name := range names {
		fam, err := c.Family(ctx, name)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		families = append(families, fam)
	}
	sort.SliceStable(families, func(i, j int) bool {
		return orderLess(families[i].Order, families[j].Order)
	})
	span.SetAttributes(attribute.Int("smf.family_count", len(families)))
	return families, nil
}

func (c *Catalog) build(record storage.FamilyRecord) *Family {
	fam := &Family{
		Name:           record.Name,
		LatexName:      record.LatexName,
		Degree:         record.Degree,
		DimArgsDefault: record.DimArgsDefault,
		Order:          record.Order,
		sampleStore:    c.samples,
	}
	if strings.TrimSpace(fam.LatexName) == "" {
		fam.LatexName = Texttt(record.Name)
	}
	fam.dimension, fam.hasDimension = c.registry.Lookup(dimension.Key(record.Name))
	return fam
}

func orderLess(a, b *float64) bool {
	switch {
	case a == nil:
		return b != nil
	case b == nil:
		return false
	default:
		return *a < *b
	}
}

func notFound(name string) error {
	return apperrors.WithMetadata(
		apperrors.CodeFamilyNotFound,
		fmt.Sprintf("family %q not found", name),
		map[string]string{"name": name},
	)
}
