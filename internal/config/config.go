// Package config provides the configuration schema, loader, and file watcher
// for the hearsay correction service.
package config

import "time"

// LogLevel controls log verbosity for the hearsay server.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is a recognised log level.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// Config is the root configuration structure for hearsay.
// It is typically loaded from a YAML file using [Load] or [LoadFromReader].
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Correction CorrectionConfig `yaml:"correction"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
}

// ServerConfig holds network and logging settings for the hearsay server.
type ServerConfig struct {
	// ListenAddr is the TCP address the server listens on (e.g., ":8080").
	ListenAddr string `yaml:"listen_addr"`

	// LogLevel controls verbosity.
	LogLevel LogLevel `yaml:"log_level"`
}

// CorrectionConfig holds the tuning knobs of the correction pipeline. All
// fields have working defaults; an empty block yields the stock behaviour.
type CorrectionConfig struct {
	// Sensitivity is the minimum confidence required of a fuzzy match,
	// in (0, 1]. Higher values correct less.
	Sensitivity float64 `yaml:"sensitivity"`

	// MaxCorrectionsPerText caps the number of substitutions applied to a
	// single text. Remaining tokens pass through once the cap is reached.
	MaxCorrectionsPerText int `yaml:"max_corrections_per_text"`

	// PreserveOriginalCase reapplies the transcribed token's casing pattern
	// onto corrections (ALL-CAPS, Title-Case).
	PreserveOriginalCase *bool `yaml:"preserve_original_case"`

	// TimeoutMs bounds wall-clock time per correction call, in milliseconds.
	TimeoutMs int `yaml:"timeout_ms"`

	// CacheSize is the fuzzy matcher's memo capacity.
	CacheSize int `yaml:"cache_size"`

	// BruteForceLimit is the dictionary size at or below which the fuzzy
	// matcher scans all entries instead of consulting the candidate index.
	BruteForceLimit int `yaml:"brute_force_limit"`

	// EnableVariations toggles the universal-mishearing variation layer.
	EnableVariations *bool `yaml:"enable_variations"`

	// EnableNoiseNormalization toggles the character-level noise transform
	// run before tokenization. Off by default: it rewrites characters outside
	// dictionary words.
	EnableNoiseNormalization bool `yaml:"enable_noise_normalization"`
}

// Timeout returns TimeoutMs as a [time.Duration].
func (c CorrectionConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// DictionaryConfig points at the user's vocabulary snapshot.
type DictionaryConfig struct {
	// Path is the dictionary file, one entry per line, order preserved.
	// Blank lines and lines starting with '#' are ignored.
	Path string `yaml:"path"`
}

// Default returns a fully populated configuration with stock values, the same
// ones applyDefaults fills in for fields a loaded file leaves unset.
func Default() *Config {
	t := true
	return &Config{
		Server: ServerConfig{
			ListenAddr: ":8080",
			LogLevel:   LogInfo,
		},
		Correction: CorrectionConfig{
			Sensitivity:           0.6,
			MaxCorrectionsPerText: 10,
			PreserveOriginalCase:  &t,
			TimeoutMs:             200,
			CacheSize:             100,
			BruteForceLimit:       20,
			EnableVariations:      &t,
		},
		Dictionary: DictionaryConfig{
			Path: "dictionary.txt",
		},
	}
}

// applyDefaults fills unset fields of cfg with the values from [Default].
// Pointer fields distinguish "absent" from an explicit false.
func applyDefaults(cfg *Config) {
	def := Default()
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = def.Server.ListenAddr
	}
	if cfg.Server.LogLevel == "" {
		cfg.Server.LogLevel = def.Server.LogLevel
	}
	if cfg.Correction.Sensitivity == 0 {
		cfg.Correction.Sensitivity = def.Correction.Sensitivity
	}
	if cfg.Correction.MaxCorrectionsPerText == 0 {
		cfg.Correction.MaxCorrectionsPerText = def.Correction.MaxCorrectionsPerText
	}
	if cfg.Correction.PreserveOriginalCase == nil {
		cfg.Correction.PreserveOriginalCase = def.Correction.PreserveOriginalCase
	}
	if cfg.Correction.TimeoutMs == 0 {
		cfg.Correction.TimeoutMs = def.Correction.TimeoutMs
	}
	if cfg.Correction.CacheSize == 0 {
		cfg.Correction.CacheSize = def.Correction.CacheSize
	}
	if cfg.Correction.BruteForceLimit == 0 {
		cfg.Correction.BruteForceLimit = def.Correction.BruteForceLimit
	}
	if cfg.Correction.EnableVariations == nil {
		cfg.Correction.EnableVariations = def.Correction.EnableVariations
	}
	if cfg.Dictionary.Path == "" {
		cfg.Dictionary.Path = def.Dictionary.Path
	}
}
