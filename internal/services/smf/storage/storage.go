// Package storage defines persistence contracts for Siegel modular form
// families and their samples.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// FamilyRecord is one stored family document. Optional attributes are nil
// when absent from storage.
type FamilyRecord struct {
	Name           string
	LatexName      string
	Degree         *int
	DimArgsDefault []string
	Order          *float64
}

// Sample is one stored sample form scoped to a family collection. Samples
// are keyed by collection and name.
type Sample struct {
	Name            string
	Collection      string
	Weight          int
	Degree          int
	Field           string
	IsEigenform     bool
	ExplicitFormula string
}

// Condition is a SQL WHERE fragment with positional parameters.
type Condition struct {
	Clause string
	Params []any
}

// FamilyStore reads and writes family records.
type FamilyStore interface {
	// FindFamily returns the record keyed by name or ErrNotFound.
	FindFamily(ctx context.Context, name string) (FamilyRecord, error)
	// ListFamilyNames returns every family name in natural store order.
	ListFamilyNames(ctx context.Context) ([]string, error)
	// PutFamily inserts or replaces a record.
	PutFamily(ctx context.Context, record FamilyRecord) error
}

// SampleStore reads and writes sample records.
type SampleStore interface {
	// ListSamples returns the samples of collection matching cond, ordered
	// by weight then name. A zero Condition matches everything.
	ListSamples(ctx context.Context, collection string, cond Condition) ([]Sample, error)
	// PutSample inserts or replaces the sample with the same collection and
	// name. Field, a positive degree and a non-negative weight are required.
	PutSample(ctx context.Context, sample Sample) error
}
