// Package samples lists the sample forms attached to one family collection.
package samples

import (
	"context"
	"strings"

	apperrors "github.com/cscmnu/lmfdb/internal/platform/errors"
	"github.com/cscmnu/lmfdb/internal/services/smf/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var tracer = otel.Tracer("github.com/cscmnu/lmfdb/internal/services/smf/samples")

// Scope selects the samples a handle can see.
type Scope struct {
	Collection string
}

// Handle reads the samples of one collection. Construction does no I/O.
type Handle struct {
	store storage.SampleStore
	scope Scope
}

// New returns a handle over store scoped to scope.
func New(store storage.SampleStore, scope Scope) *Handle {
	return &Handle{store: store, scope: scope}
}

// Collection returns the family collection this handle is scoped to.
func (h *Handle) Collection() string {
	return h.scope.Collection
}

// List returns the collection's samples matching an AIP-160 filter over
// name, weight, degree, field and is_eigenform.
func (h *Handle) List(ctx context.Context, filter string) ([]storage.Sample, error) {
	ctx, span := tracer.Start(ctx, "samples.List")
	defer span.End()
	span.SetAttributes(
		attribute.String("smf.collection", h.scope.Collection),
		attribute.String("smf.filter", filter),
	)

	cond, err := ParseFilter(filter)
	if err != nil {
		span.RecordError(err)
		return nil, apperrors.WrapWithMetadata(
			apperrors.CodeSampleFilterInvalid,
			"invalid sample filter: "+err.Error(),
			map[string]string{"reason": strings.TrimPrefix(err.Error(), "parse filter: ")},
			err,
		)
	}
	if h.store == nil {
		return nil, nil
	}
	samples, err := h.store.ListSamples(ctx, h.scope.Collection, cond)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	span.SetAttributes(attribute.Int("smf.sample_count", len(samples)))
	return samples, nil
}
