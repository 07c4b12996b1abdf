package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFilename is the config file looked up in the working directory.
const DefaultConfigFilename = "machinegen.yaml"

// LoadFile reads path on top of the defaults. Keys missing from the file keep
// their default value.
func LoadFile(path string) (*Params, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return parseParams(data)
}

// Load reads the config file at path. When path is empty the default file
// is used if present, and the built-in defaults otherwise.
func Load(path string) (*Params, error) {
	if path != "" {
		return LoadFile(path)
	}

	p, err := LoadFile(DefaultConfigFilename)
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return p, err
}

func parseParams(data []byte) (*Params, error) {
	p := Defaults()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return p, nil
}

// Save writes p to path.
func Save(p *Params, path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
