package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file name looked up in the search directories.
const FileName = "world.yaml"

// Load loads the world configuration and reports where it came from.
// Search order: customPath -> ~/.leap/configs/world.yaml -> ./configs/world.yaml -> embedded default.
// A custom path that cannot be read or parsed is an error; the implicit
// locations are skipped when missing or broken.
func Load(customPath string) (WorldConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := LoadFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if cfg, err := LoadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultWorldYAML)
	if err != nil {
		return DefaultWorldConfig(), "builtin", nil // Fallback to hardcoded if embed fails
	}
	return cfg, "embedded", nil
}

// LoadFile reads, parses and validates a single config file.
func LoadFile(path string) (WorldConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return WorldConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultWorldConfig, so omitted fields keep
// their defaults, then validates the result. A platforms list in the
// document replaces the default list entirely.
func Parse(data []byte) (WorldConfig, error) {
	cfg := DefaultWorldConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal renders the config back to YAML.
func Marshal(cfg WorldConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return buf.Bytes(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".leap", "configs", filename)
}
