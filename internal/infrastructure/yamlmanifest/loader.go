package yamlmanifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest selects and orders the built-in rules. It cannot change rule
// semantics or the aggregation policy, only which rules run and in what
// order.
type Manifest struct {
	Version     string   `yaml:"version"`
	Description string   `yaml:"description"`
	Rules       []string `yaml:"rules"`
}

// Load reads a rule manifest from disk.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read rule manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to unmarshal rule manifest: %w", err)
	}
	if len(m.Rules) == 0 {
		return Manifest{}, fmt.Errorf("rule manifest %s names no rules", path)
	}
	return m, nil
}
