// Package dimension holds the named dimension formulas for Siegel modular
// form families.
//
// Formulas are registered in an explicit table keyed by "dimension_" plus the
// family name. The default table is built once at package initialization and
// never mutated, so lookups are safe from any goroutine.
package dimension

import (
	"fmt"
	"sort"
	"strings"
)

// KeyPrefix prefixes every registry key.
const KeyPrefix = "dimension_"

// Key returns the registry key for a family name.
func Key(family string) string {
	return KeyPrefix + family
}

// Formula evaluates a dimension formula. Argument parsing and arity are owned
// by the formula; errors are returned to the caller untouched.
type Formula func(args ...string) (*Table, error)

// Func is one registered formula together with its introspection data.
type Func struct {
	// Name is the registry key, e.g. "dimension_Sp4Z".
	Name string
	// Params lists the formula's parameter names in call order.
	Params []string
	// Doc is the glossary text shown next to dimension tables.
	Doc  string
	Eval Formula
}

// Table is the result of a formula: one row per evaluated argument.
type Table struct {
	Headers []string
	Rows    []Row
}

// Row is one table line keyed by the argument that produced it.
type Row struct {
	Key    string
	Values []int64
}

// Registry maps keys to formulas. The zero value is an empty registry.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry builds an immutable registry from funcs.
func NewRegistry(funcs ...Func) (*Registry, error) {
	table := make(map[string]Func, len(funcs))
	for _, fn := range funcs {
		name := strings.TrimSpace(fn.Name)
		if name == "" {
			return nil, fmt.Errorf("dimension function name is required")
		}
		if fn.Eval == nil {
			return nil, fmt.Errorf("dimension function %q has no formula", name)
		}
		if _, exists := table[name]; exists {
			return nil, fmt.Errorf("dimension function %q registered twice", name)
		}
		fn.Name = name
		fn.Params = append([]string(nil), fn.Params...)
		table[name] = fn
	}
	return &Registry{funcs: table}, nil
}

// MustRegistry is NewRegistry that panics on error. It is meant for
// package-level tables.
func MustRegistry(funcs ...Func) *Registry {
	r, err := NewRegistry(funcs...)
	if err != nil {
		panic(err)
	}
	return r
}

// Lookup returns the formula registered under key.
func (r *Registry) Lookup(key string) (Func, bool) {
	if r == nil {
		return Func{}, false
	}
	fn, ok := r.funcs[key]
	if !ok {
		return Func{}, false
	}
	fn.Params = append([]string(nil), fn.Params...)
	return fn, true
}

// Names returns the registered keys in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = MustRegistry(
	Func{
		Name:   Key("Sp4Z"),
		Params: []string{"wt_range"},
		Doc:    sp4zDoc,
		Eval:   Sp4Z,
	},
)

// Default returns the process-wide formula table.
func Default() *Registry {
	return defaultRegistry
}
