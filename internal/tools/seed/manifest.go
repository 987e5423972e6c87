// Package seed loads family and sample fixtures into the catalog store.
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is one seed fixture file.
type Manifest struct {
	Families []ManifestFamily `yaml:"families"`
	Samples  []ManifestSample `yaml:"samples"`
}

// ManifestFamily declares one family record.
type ManifestFamily struct {
	Name           string   `yaml:"name"`
	LatexName      string   `yaml:"latex_name,omitempty"`
	Degree         *int     `yaml:"degree,omitempty"`
	DimArgsDefault []string `yaml:"dim_args_default,omitempty"`
	Order          *float64 `yaml:"order,omitempty"`
}

// ManifestSample declares one sample form of a family. Degree defaults to
// the family degree and Field to "Q".
type ManifestSample struct {
	Name            string `yaml:"name"`
	Collection      string `yaml:"collection"`
	Weight          int    `yaml:"weight"`
	Degree          int    `yaml:"degree,omitempty"`
	Field           string `yaml:"field,omitempty"`
	IsEigenform     bool   `yaml:"is_eigenform,omitempty"`
	ExplicitFormula string `yaml:"explicit_formula,omitempty"`
}

// LoadManifest reads and decodes a YAML fixture.
func LoadManifest(path string) (Manifest, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Manifest{}, errors.New("manifest path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes a YAML fixture, rejecting unknown keys.
func ParseManifest(data []byte) (Manifest, error) {
	var manifest Manifest
	decoder := yaml.NewDecoder(strings.NewReader(string(data)))
	decoder.KnownFields(true)
	if err := decoder.Decode(&manifest); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	return manifest, nil
}

// ValidateManifest checks names, uniqueness and sample collections. Sample
// names are unique within their collection.
func ValidateManifest(manifest Manifest) error {
	families := make(map[string]struct{}, len(manifest.Families))
	for i, fam := range manifest.Families {
		name := strings.TrimSpace(fam.Name)
		if name == "" {
			return fmt.Errorf("families[%d]: name is required", i)
		}
		if _, ok := families[name]; ok {
			return fmt.Errorf("families[%d]: duplicate family %q", i, name)
		}
		families[name] = struct{}{}
	}

	type sampleKey struct{ collection, name string }
	samples := make(map[sampleKey]struct{}, len(manifest.Samples))
	for i, sample := range manifest.Samples {
		name := strings.TrimSpace(sample.Name)
		if name == "" {
			return fmt.Errorf("samples[%d]: name is required", i)
		}
		key := sampleKey{collection: strings.TrimSpace(sample.Collection), name: name}
		if _, ok := samples[key]; ok {
			return fmt.Errorf("samples[%d]: duplicate sample %q in %q", i, name, key.collection)
		}
		samples[key] = struct{}{}
		if _, ok := families[key.collection]; !ok {
			return fmt.Errorf("samples[%d]: unknown collection %q", i, sample.Collection)
		}
		if sample.Weight < 0 {
			return fmt.Errorf("samples[%d]: weight must be non-negative", i)
		}
		if sample.Degree < 0 {
			return fmt.Errorf("samples[%d]: degree must be non-negative", i)
		}
	}
	return nil
}
