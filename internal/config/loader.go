package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a configuration was loaded from.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

// LoadRunner loads Beer Runner configuration.
// Search order: customPath -> ~/.beerarcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, Source, error) {
	return load("runner", customPath, defaultRunnerYAML, DefaultRunnerConfig)
}

// LoadPour loads Beer Pour configuration.
// Search order: customPath -> ~/.beerarcade/configs/pour.yaml -> ./configs/pour.yaml -> embedded default
func LoadPour(customPath string) (PourConfig, Source, error) {
	return load("pour", customPath, defaultPourYAML, DefaultPourConfig)
}

// load decodes YAML on top of the built-in defaults so a file only needs
// the keys it overrides. Lists such as tiers and glasses replace the
// defaults wholesale.
func load[T any](gameID, customPath string, embedded []byte, builtin func() T) (T, Source, error) {
	filename := gameID + ".yaml"

	// Custom path errors are fatal: the user asked for that file.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return builtin(), SourceCustom, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, builtin)
		if err != nil {
			return builtin(), SourceCustom, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, SourceCustom, nil
	}

	if path := userConfigPath(filename); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if cfg, err := decode(data, builtin); err == nil {
				return cfg, SourceUser, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(data, builtin); err == nil {
			return cfg, SourceLocal, nil
		}
	}

	if cfg, err := decode(embedded, builtin); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return builtin(), SourceBuiltin, nil
}

func decode[T any](data []byte, builtin func() T) (T, error) {
	cfg := builtin()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return builtin(), err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg any) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".beerarcade", "configs", filename)
}
