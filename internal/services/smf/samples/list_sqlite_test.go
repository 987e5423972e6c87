package samples

import (
	"context"
	"path/filepath"
	"slices"
	"testing"

	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
	smfsqlite "github.com/cscmnu/lmfdb/internal/services/smf/storage/sqlite"
)

func TestHandleListFiltersEachFieldInStore(t *testing.T) {
	t.Parallel()

	store, err := smfsqlite.Open(filepath.Join(t.TempDir(), "lmfdb.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	ctx := context.Background()
	for _, sample := range []storage.Sample{
		{Name: "E4", Collection: "Sp4Z", Weight: 4, Degree: 2, Field: "Q", IsEigenform: true},
		{Name: "E4E6", Collection: "Sp4Z", Weight: 10, Degree: 2, Field: "Q"},
		{Name: "Chi10", Collection: "Sp4Z", Weight: 10, Degree: 2, Field: "Q", IsEigenform: true},
		{Name: "Upsilon20", Collection: "Sp4Z", Weight: 20, Degree: 3, Field: "Q(sqrt(51349))", IsEigenform: true},
		{Name: "E4", Collection: "Sp6Z", Weight: 4, Degree: 3, Field: "Q", IsEigenform: true},
	} {
		if err := store.PutSample(ctx, sample); err != nil {
			t.Fatalf("put %s/%s: %v", sample.Collection, sample.Name, err)
		}
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{filter: ``, want: []string{"E4", "Chi10", "E4E6", "Upsilon20"}},
		{filter: `name = "Chi10"`, want: []string{"Chi10"}},
		{filter: `weight >= 10`, want: []string{"Chi10", "E4E6", "Upsilon20"}},
		{filter: `degree = 3`, want: []string{"Upsilon20"}},
		{filter: `field != "Q"`, want: []string{"Upsilon20"}},
		{filter: `is_eigenform = true`, want: []string{"E4", "Chi10", "Upsilon20"}},
		{filter: `is_eigenform = false`, want: []string{"E4E6"}},
		{filter: `is_eigenform`, want: []string{"E4", "Chi10", "Upsilon20"}},
		{filter: `NOT is_eigenform`, want: []string{"E4E6"}},
		{filter: `is_eigenform AND weight = 10`, want: []string{"Chi10"}},
	}
	handle := New(store, Scope{Collection: "Sp4Z"})
	for _, tc := range tests {
		t.Run(tc.filter, func(t *testing.T) {
			got, err := handle.List(ctx, tc.filter)
			if err != nil {
				t.Fatalf("list %q: %v", tc.filter, err)
			}
			var names []string
			for _, sample := range got {
				names = append(names, sample.Name)
			}
			if !slices.Equal(names, tc.want) {
				t.Fatalf("names = %v, want %v", names, tc.want)
			}
		})
	}
}
