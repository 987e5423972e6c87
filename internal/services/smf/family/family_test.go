package family

import (
	"context"
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/cscmnu/lmfdb/internal/platform/errors"
	"github.com/cscmnu/lmfdb/internal/services/smf/dimension"
	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
)

type fakeFamilyStore struct {
	records   map[string]storage.FamilyRecord
	names     []string
	findCalls int
	findErr   error
	listErr   error
}

func newFakeFamilyStore(records ...storage.FamilyRecord) *fakeFamilyStore {
	store := &fakeFamilyStore{records: make(map[string]storage.FamilyRecord)}
	for _, record := range records {
		store.records[record.Name] = record
		store.names = append(store.names, record.Name)
	}
	return store
}

func (f *fakeFamilyStore) FindFamily(_ context.Context, name string) (storage.FamilyRecord, error) {
	f.findCalls++
	if f.findErr != nil {
		return storage.FamilyRecord{}, f.findErr
	}
	record, ok := f.records[name]
	if !ok {
		return storage.FamilyRecord{}, storage.ErrNotFound
	}
	return record, nil
}

func (f *fakeFamilyStore) ListFamilyNames(context.Context) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]string(nil), f.names...), nil
}

func (f *fakeFamilyStore) PutFamily(context.Context, storage.FamilyRecord) error { return nil }

type countingSampleStore struct {
	calls int
}

func (s *countingSampleStore) ListSamples(context.Context, string, storage.Condition) ([]storage.Sample, error) {
	s.calls++
	return nil, nil
}

func (s *countingSampleStore) PutSample(context.Context, storage.Sample) error { return nil }

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func testRegistry(t *testing.T) *dimension.Registry {
	t.Helper()
	registry, err := dimension.NewRegistry(dimension.Func{
		Name:   "dimension_Fam",
		Params: []string{"wt_range"},
		Doc:    "Dimensions of the test family.",
		Eval: func(args ...string) (*dimension.Table, error) {
			if len(args) != 1 {
				return nil, errors.New("want one argument")
			}
			return &dimension.Table{Headers: []string{"Total"}, Rows: []dimension.Row{{Key: args[0], Values: []int64{1}}}}, nil
		},
	})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	return registry
}

func TestFamilyConstructsFromRecord(t *testing.T) {
	t.Parallel()

	store := newFakeFamilyStore(storage.FamilyRecord{
		Name:           "Fam",
		LatexName:      `M_k(\Gamma)`,
		Degree:         intPtr(2),
		DimArgsDefault: []string{"10-20"},
		Order:          floatPtr(3),
	})
	sampleStore := &countingSampleStore{}
	catalog := NewCatalog(store, sampleStore, testRegistry(t))

	fam, err := catalog.Family(context.Background(), "Fam")
	if err != nil {
		t.Fatalf("family: %v", err)
	}
	if fam.Name != "Fam" || fam.LatexName != `M_k(\Gamma)` {
		t.Fatalf("family = %+v", fam)
	}
	if fam.Degree == nil || *fam.Degree != 2 {
		t.Fatalf("degree = %v", fam.Degree)
	}
	if !reflect.DeepEqual(fam.DimArgsDefault, []string{"10-20"}) {
		t.Fatalf("dim args default = %v", fam.DimArgsDefault)
	}
	if !fam.ComputesDimension() {
		t.Fatal("expected dimension function")
	}
	if desc := fam.DimensionDesc(); desc == nil || desc.Name != "dimension_Fam" || !reflect.DeepEqual(desc.Args, []string{"wt_range"}) {
		t.Fatalf("dimension desc = %+v", desc)
	}
	if got := fam.DimensionGlossary(); got != "Dimensions of the test family." {
		t.Fatalf("glossary = %q", got)
	}
	if store.findCalls != 1 {
		t.Fatalf("find calls = %d, want 1", store.findCalls)
	}
	if sampleStore.calls != 0 {
		t.Fatalf("samples queried during construction")
	}
}

func TestFamilyWithoutDimensionFunction(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(newFakeFamilyStore(storage.FamilyRecord{Name: "Plain"}), nil, testRegistry(t))
	fam, err := catalog.Family(context.Background(), "Plain")
	if err != nil {
		t.Fatalf("family: %v", err)
	}
	if fam.ComputesDimension() {
		t.Fatal("expected no dimension function")
	}
	if fam.DimensionDesc() != nil {
		t.Fatal("expected nil dimension desc")
	}
	if fam.DimensionGlossary() != "" {
		t.Fatal("expected empty glossary")
	}
	table, err := fam.Dimension("10")
	if table != nil || err != nil {
		t.Fatalf("Dimension = %v, %v; want nil, nil", table, err)
	}
	if fam.Degree != nil || fam.Order != nil || fam.DimArgsDefault != nil {
		t.Fatalf("absent attributes should be nil: %+v", fam)
	}
	if fam.LatexName != `\texttt{Plain}` {
		t.Fatalf("latex name = %q", fam.LatexName)
	}
}

func TestFamilyDimensionDelegates(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(newFakeFamilyStore(storage.FamilyRecord{Name: "Fam"}), nil, testRegistry(t))
	fam, err := catalog.Family(context.Background(), "Fam")
	if err != nil {
		t.Fatalf("family: %v", err)
	}
	table, err := fam.Dimension("12")
	if err != nil {
		t.Fatalf("dimension: %v", err)
	}
	if len(table.Rows) != 1 || table.Rows[0].Key != "12" {
		t.Fatalf("table = %+v", table)
	}
	if _, err := fam.Dimension(); err == nil {
		t.Fatal("expected formula error to propagate")
	}
}

func TestFamilyNotFound(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(newFakeFamilyStore(), nil, testRegistry(t))
	for _, name := range []string{"Missing", "", "   "} {
		_, err := catalog.Family(context.Background(), name)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("Family(%q) error = %v, want ErrNotFound", name, err)
		}
		if apperrors.HTTPStatus(err) != 404 {
			t.Fatalf("Family(%q) status = %d", name, apperrors.HTTPStatus(err))
		}
	}
	_, err := catalog.Family(context.Background(), "Missing")
	domainErr, ok := apperrors.As(err)
	if !ok || domainErr.Metadata["name"] != "Missing" {
		t.Fatalf("expected name metadata, got %v", err)
	}
}

func TestFamilyStoreErrorPropagates(t *testing.T) {
	t.Parallel()

	want := errors.New("connection refused")
	store := newFakeFamilyStore()
	store.findErr = want
	catalog := NewCatalog(store, nil, testRegistry(t))

	_, err := catalog.Family(context.Background(), "Fam")
	if !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatal("store failure must not look like not found")
	}
	if _, err := catalog.FamilyOrNil(context.Background(), "Fam"); !errors.Is(err, want) {
		t.Fatalf("FamilyOrNil error = %v, want %v", err, want)
	}
}

func TestFamilyOrNil(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(newFakeFamilyStore(storage.FamilyRecord{Name: "Fam"}), nil, testRegistry(t))

	fam, err := catalog.FamilyOrNil(context.Background(), "Fam")
	if err != nil || fam == nil || fam.Name != "Fam" {
		t.Fatalf("FamilyOrNil(Fam) = %v, %v", fam, err)
	}
	fam, err = catalog.FamilyOrNil(context.Background(), "Missing")
	if err != nil || fam != nil {
		t.Fatalf("FamilyOrNil(Missing) = %v, %v; want nil, nil", fam, err)
	}
}

func TestFamilySamplesMemoized(t *testing.T) {
	t.Parallel()

	sampleStore := &countingSampleStore{}
	catalog := NewCatalog(newFakeFamilyStore(storage.FamilyRecord{Name: "Fam"}), sampleStore, testRegistry(t))
	fam, err := catalog.Family(context.Background(), "Fam")
	if err != nil {
		t.Fatalf("family: %v", err)
	}
	first := fam.Samples()
	second := fam.Samples()
	if first != second {
		t.Fatal("Samples should return the same handle")
	}
	if first.Collection() != "Fam" {
		t.Fatalf("collection = %q", first.Collection())
	}
	if sampleStore.calls != 0 {
		t.Fatal("creating the handle should not query storage")
	}

	other, err := catalog.Family(context.Background(), "Fam")
	if err != nil {
		t.Fatalf("family: %v", err)
	}
	if other.Samples() == first {
		t.Fatal("distinct families must not share a samples handle")
	}
}

func TestFamiliesSortedByOrder(t *testing.T) {
	t.Parallel()

	store := newFakeFamilyStore(
		storage.FamilyRecord{Name: "A", Order: floatPtr(3)},
		storage.FamilyRecord{Name: "B", Order: floatPtr(1)},
		storage.FamilyRecord{Name: "C", Order: floatPtr(2)},
	)
	families, err := NewCatalog(store, nil, testRegistry(t)).Families(context.Background())
	if err != nil {
		t.Fatalf("families: %v", err)
	}
	if got := familyNames(families); !reflect.DeepEqual(got, []string{"B", "C", "A"}) {
		t.Fatalf("order = %v", got)
	}
}

func TestFamiliesNilOrderFirstAndStable(t *testing.T) {
	t.Parallel()

	store := newFakeFamilyStore(
		storage.FamilyRecord{Name: "Late", Order: floatPtr(5)},
		storage.FamilyRecord{Name: "Unordered"},
		storage.FamilyRecord{Name: "TieOne", Order: floatPtr(1)},
		storage.FamilyRecord{Name: "TieTwo", Order: floatPtr(1)},
		storage.FamilyRecord{Name: "AlsoUnordered"},
	)
	families, err := NewCatalog(store, nil, testRegistry(t)).Families(context.Background())
	if err != nil {
		t.Fatalf("families: %v", err)
	}
	want := []string{"Unordered", "AlsoUnordered", "TieOne", "TieTwo", "Late"}
	if got := familyNames(families); !reflect.DeepEqual(got, want) {
		t.Fatalf("order = %v, want %v", got, want)
	}
}

func TestFamiliesEmptyAndErrors(t *testing.T) {
	t.Parallel()

	families, err := NewCatalog(newFakeFamilyStore(), nil, testRegistry(t)).Families(context.Background())
	if err != nil || len(families) != 0 {
		t.Fatalf("Families on empty store = %v, %v", families, err)
	}

	want := errors.New("listing failed")
	store := newFakeFamilyStore()
	store.listErr = want
	if _, err := NewCatalog(store, nil, testRegistry(t)).Families(context.Background()); !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

func TestNewCatalogDefaultsRegistry(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog(newFakeFamilyStore(storage.FamilyRecord{Name: "Sp4Z"}), nil, nil)
	fam, err := catalog.Family(context.Background(), "Sp4Z")
	if err != nil {
		t.Fatalf("family: %v", err)
	}
	if !fam.ComputesDimension() {
		t.Fatal("Sp4Z should use the default registry formula")
	}
}

func TestTexttt(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Sp4Z":      `\texttt{Sp4Z}`,
		"Sp4Z_j":    `\texttt{Sp4Z\_j}`,
		"a&b%c":     `\texttt{a\&b\%c}`,
		`x\y`:       `\texttt{x\textbackslash{}y}`,
		"{weird}$#": `\texttt{\{weird\}\$\#}`,
	}
	for in, want := range tests {
		if got := Texttt(in); got != want {
			t.Fatalf("Texttt(%q) = %q, want %q", in, got, want)
		}
	}
}

func familyNames(families []*Family) []string {
	names := make([]string, 0, len(families))
	for _, fam := range families {
		names = append(names, fam.Name)
	}
	return names
}
