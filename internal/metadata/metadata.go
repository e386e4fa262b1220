// Package metadata serves the static descriptive records behind
// GET /api/metadata/{calculator}. The registry is parsed once at startup
// from an embedded YAML file.
package metadata

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed calculators.yaml
var calculatorsYAML []byte

type Meta struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Category    string `yaml:"category" json:"category"`
}

type Registry struct {
	entries map[string]Meta
}

// Load parses the embedded registry. Called once from main; a parse failure
// means the binary shipped with a broken file.
func Load() (*Registry, error) {
	var entries map[string]Meta
	if err := yaml.Unmarshal(calculatorsYAML, &entries); err != nil {
		return nil, fmt.Errorf("parse calculator metadata: %w", err)
	}
	return &Registry{entries: entries}, nil
}

func (r *Registry) Get(name string) (Meta, bool) {
	m, ok := r.entries[name]
	return m, ok
}

// Names lists registered calculators in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for n := range r.entries {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
