package config

// ConfigDiff describes what changed between two configs.
// Only fields that can be safely hot-reloaded are tracked.
type ConfigDiff struct {
	LogLevelChanged bool
	NewLogLevel     LogLevel

	// CorrectionChanged is true if any correction tuning field changed. The
	// server rebuilds its corrector when set.
	CorrectionChanged bool

	// DictionaryPathChanged is true if dictionary.path moved. The server
	// re-reads the snapshot when set.
	DictionaryPathChanged bool
}

// Empty reports whether the diff carries no reloadable change.
func (d ConfigDiff) Empty() bool {
	return !d.LogLevelChanged && !d.CorrectionChanged && !d.DictionaryPathChanged
}

// Diff compares old and new configs and returns what changed.
// Only tracks changes that are safe to apply without restart; listen_addr
// changes are deliberately ignored.
func Diff(old, new *Config) ConfigDiff {
	d := ConfigDiff{}

	if old.Server.LogLevel != new.Server.LogLevel {
		d.LogLevelChanged = true
		d.NewLogLevel = new.Server.LogLevel
	}

	d.CorrectionChanged = correctionChanged(old.Correction, new.Correction)

	if old.Dictionary.Path != new.Dictionary.Path {
		d.DictionaryPathChanged = true
	}

	return d
}

func correctionChanged(old, new CorrectionConfig) bool {
	return old.Sensitivity != new.Sensitivity ||
		old.MaxCorrectionsPerText != new.MaxCorrectionsPerText ||
		boolValue(old.PreserveOriginalCase) != boolValue(new.PreserveOriginalCase) ||
		old.TimeoutMs != new.TimeoutMs ||
		old.CacheSize != new.CacheSize ||
		old.BruteForceLimit != new.BruteForceLimit ||
		boolValue(old.EnableVariations) != boolValue(new.EnableVariations) ||
		old.EnableNoiseNormalization != new.EnableNoiseNormalization
}

func boolValue(b *bool) bool {
	return b != nil && *b
}
