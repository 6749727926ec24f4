// Package manifest reads stowage plans from YAML and carries them out
// against the harbor services.
package manifest

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the manifest at path
func Load(path string) (Plan, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(path, b)
}

// Parse validates a manifest held in memory. source names it in errors.
func Parse(source string, b []byte) (Plan, error) {
	var dto YAMLManifest
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return Plan{}, fmt.Errorf("%w: %s: %v", ErrInvalidManifest, source, err)
	}
	return Map(source, dto)
}
