package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hearsay-tools/hearsay/internal/config"
)

func TestLoadFromReader_FullConfig(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  listen_addr: ":9090"
  log_level: debug
correction:
  sensitivity: 0.8
  max_corrections_per_text: 5
  preserve_original_case: false
  timeout_ms: 500
  cache_size: 50
  brute_force_limit: 10
  enable_variations: false
  enable_noise_normalization: true
dictionary:
  path: /etc/hearsay/dictionary.txt
`
	cfg, err := config.LoadFromReader(strings.NewReader(yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %q, want %q", cfg.Server.ListenAddr, ":9090")
	}
	if cfg.Server.LogLevel != config.LogDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.Server.LogLevel)
	}
	if cfg.Correction.Sensitivity != 0.8 {
		t.Errorf("Sensitivity = %v, want 0.8", cfg.Correction.Sensitivity)
	}
	if got := *cfg.Correction.PreserveOriginalCase; got {
		t.Error("PreserveOriginalCase = true, want explicit false kept")
	}
	if got := *cfg.Correction.EnableVariations; got {
		t.Error("EnableVariations = true, want explicit false kept")
	}
	if !cfg.Correction.EnableNoiseNormalization {
		t.Error("EnableNoiseNormalization = false, want true")
	}
	if cfg.Dictionary.Path != "/etc/hearsay/dictionary.txt" {
		t.Errorf("Dictionary.Path = %q", cfg.Dictionary.Path)
	}
}

func TestLoadFromReader_DefaultsApplied(t *testing.T) {
	t.Parallel()
	cfg, err := config.LoadFromReader(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	def := config.Default()
	if cfg.Server.ListenAddr != def.Server.ListenAddr {
		t.Errorf("ListenAddr = %q, want default %q", cfg.Server.ListenAddr, def.Server.ListenAddr)
	}
	if cfg.Correction.Sensitivity != def.Correction.Sensitivity {
		t.Errorf("Sensitivity = %v, want default %v", cfg.Correction.Sensitivity, def.Correction.Sensitivity)
	}
	if !*cfg.Correction.PreserveOriginalCase {
		t.Error("PreserveOriginalCase default should be true")
	}
	if !*cfg.Correction.EnableVariations {
		t.Error("EnableVariations default should be true")
	}
	if cfg.Correction.EnableNoiseNormalization {
		t.Error("EnableNoiseNormalization default should be false")
	}
	if cfg.Correction.Timeout().Milliseconds() != 200 {
		t.Errorf("Timeout = %v, want 200ms", cfg.Correction.Timeout())
	}
}

func TestLoadFromReader_InvalidLogLevel(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  log_level: bananas
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for invalid log level, got nil")
	}
	if !strings.Contains(err.Error(), "log_level") {
		t.Errorf("error should mention log_level, got: %v", err)
	}
}

func TestLoadFromReader_JoinsAllFailures(t *testing.T) {
	t.Parallel()
	yaml := `
server:
  log_level: loud
correction:
  sensitivity: 1.5
  timeout_ms: -1
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected joined validation errors, got nil")
	}
	for _, want := range []string{"log_level", "sensitivity", "timeout_ms"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error should mention %s, got: %v", want, err)
		}
	}
}

func TestLoadFromReader_RejectsUnknownFields(t *testing.T) {
	t.Parallel()
	yaml := `
correction:
  sensitvity: 0.8
`
	_, err := config.LoadFromReader(strings.NewReader(yaml))
	if err == nil {
		t.Fatal("expected error for misspelled field, got nil")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadDictionary(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "dictionary.txt")
	content := "Catalkaya\n\n# surnames above, products below\n  Supabase  \nVindstød\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	entries, err := config.LoadDictionary(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"Catalkaya", "Supabase", "Vindstød"}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries %v, want %v", len(entries), entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}
