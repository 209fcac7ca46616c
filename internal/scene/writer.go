package scene

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Write serializes a scene document to a YAML file.
func Write(s *Scene, path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Read loads and validates a scene document from a YAML file. An invalid
// document is rejected whole; no partially loaded scene is returned.
func Read(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var s Scene
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return &s, nil
}
