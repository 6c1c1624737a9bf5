package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML configuration file at path and returns a validated [Config].
// It is a convenience wrapper around [LoadFromReader].
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r, fills defaults for unset
// fields, and validates the result. Useful in tests where configs are
// constructed from string literals.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that cfg contains a coherent set of values.
// It returns a joined error listing all validation failures found.
func Validate(cfg *Config) error {
	var errs []error

	// Server
	if !cfg.Server.LogLevel.IsValid() {
		errs = append(errs, fmt.Errorf("server.log_level %q is invalid; valid values: debug, info, warn, error", cfg.Server.LogLevel))
	}
	if cfg.Server.ListenAddr == "" {
		errs = append(errs, errors.New("server.listen_addr is required"))
	}

	// Correction
	corr := cfg.Correction
	if corr.Sensitivity <= 0 || corr.Sensitivity > 1 {
		errs = append(errs, fmt.Errorf("correction.sensitivity %.2f is out of range (0, 1]", corr.Sensitivity))
	} else if corr.Sensitivity < 0.3 {
		slog.Warn("correction.sensitivity is very low; expect aggressive rewriting of unfamiliar words",
			"sensitivity", corr.Sensitivity,
		)
	}
	if corr.TimeoutMs <= 0 {
		errs = append(errs, fmt.Errorf("correction.timeout_ms %d must be positive", corr.TimeoutMs))
	}
	if corr.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("correction.cache_size %d must be positive", corr.CacheSize))
	}
	if corr.MaxCorrectionsPerText < 0 {
		errs = append(errs, fmt.Errorf("correction.max_corrections_per_text %d must not be negative", corr.MaxCorrectionsPerText))
	}
	if corr.BruteForceLimit < 0 {
		errs = append(errs, fmt.Errorf("correction.brute_force_limit %d must not be negative", corr.BruteForceLimit))
	}

	// Dictionary
	if cfg.Dictionary.Path == "" {
		errs = append(errs, errors.New("dictionary.path is required"))
	}

	return errors.Join(errs...)
}

// LoadDictionary reads the dictionary file at path and returns its entries in
// file order, whitespace-trimmed. Blank lines and '#' comment lines are
// skipped. Order matters downstream: ties between equally confident matches
// resolve to the earlier entry.
func LoadDictionary(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read dictionary %q: %w", path, err)
	}
	return ParseDictionary(data), nil
}

// ParseDictionary extracts dictionary entries from raw file contents.
func ParseDictionary(data []byte) []string {
	var entries []string
	for _, raw := range strings.Split(string(data), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	return entries
}
