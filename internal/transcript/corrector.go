package transcript

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hearsay-tools/hearsay/internal/observe"
	"github.com/hearsay-tools/hearsay/internal/transcript/commonwords"
	"github.com/hearsay-tools/hearsay/internal/transcript/exact"
	"github.com/hearsay-tools/hearsay/internal/transcript/fuzzy"
	"github.com/hearsay-tools/hearsay/internal/transcript/variations"
)

const (
	// maxInputWords is the whitespace-token ceiling above which input passes
	// through untouched. A memory and latency guard, not an error.
	maxInputWords = 1000

	// maxTokenRunes caps the length of a single token submitted to the
	// distance computation. The timeout is only checked between tokens, so a
	// pathologically long token must be rejected up front.
	maxTokenRunes = 64
)

// Config carries the per-call correction settings.
type Config struct {
	// Sensitivity is the minimum confidence required of a fuzzy match,
	// in (0, 1]. The per-length thresholds still apply; the effective bar is
	// the higher of the two.
	Sensitivity float64

	// MaxCorrections caps the number of substitutions per text. Once
	// reached, remaining tokens pass through.
	MaxCorrections int

	// PreserveOriginalCase reapplies the transcribed token's casing pattern
	// onto corrections when the pattern is unambiguous (ALL-CAPS, or
	// Title-Case above three runes).
	PreserveOriginalCase bool

	// Timeout bounds wall-clock time per Correct call, checked between
	// tokens. On expiry the text corrected so far is returned.
	Timeout time.Duration
}

// DefaultConfig returns the settings used when the caller supplies none.
func DefaultConfig() Config {
	return Config{
		Sensitivity:          fuzzy.DefaultSensitivity,
		MaxCorrections:       10,
		PreserveOriginalCase: true,
		Timeout:              200 * time.Millisecond,
	}
}

// CorrectorOption is a functional option for configuring a [Corrector].
type CorrectorOption func(*Corrector)

// WithConfig sets the default [Config] used by [Corrector.Correct].
func WithConfig(cfg Config) CorrectorOption {
	return func(c *Corrector) {
		c.config = cfg
	}
}

// WithCacheSize sets the fuzzy matcher's memo capacity. Zero disables
// memoization. Default: [fuzzy.DefaultCacheSize].
func WithCacheSize(size int) CorrectorOption {
	return func(c *Corrector) {
		c.cacheSize = size
	}
}

// WithBruteForceLimit sets the dictionary size at or below which the fuzzy
// matcher scans all entries instead of consulting the candidate index.
// Default: [fuzzy.DefaultBruteForceLimit].
func WithBruteForceLimit(limit int) CorrectorOption {
	return func(c *Corrector) {
		c.bruteForceLimit = limit
	}
}

// WithVariations enables or disables the universal-mishearing variation
// layer. Enabled by default.
func WithVariations(enabled bool) CorrectorOption {
	return func(c *Corrector) {
		c.variations = enabled
	}
}

// WithNoiseNormalization enables the character-level noise transform
// ([exact.NormalizeNoise]) as a preprocessing pass. Disabled by default: it
// rewrites characters outside dictionary words and therefore weakens the
// guarantee that unmatched text passes through verbatim. When enabled,
// [Result.Corrected] and [Correction.Offset] are relative to the normalized
// text, not the raw input; [Result.Original] still carries the raw input.
func WithNoiseNormalization(enabled bool) CorrectorOption {
	return func(c *Corrector) {
		c.normalizeNoise = enabled
	}
}

// WithMetrics sets the metrics sink. Default: [observe.DefaultMetrics].
func WithMetrics(m *observe.Metrics) CorrectorOption {
	return func(c *Corrector) {
		c.metrics = m
	}
}

// Corrector is the three-layer [Pipeline] implementation. It owns the fuzzy
// matcher and its caches; construct one per dictionary-owning scope and
// reuse it across calls. Safe for concurrent use.
type Corrector struct {
	config          Config
	cacheSize       int
	bruteForceLimit int
	variations      bool
	normalizeNoise  bool
	metrics         *observe.Metrics

	matcher *fuzzy.Matcher
}

var _ Pipeline = (*Corrector)(nil)

// NewCorrector constructs a [Corrector] with the supplied options.
func NewCorrector(opts ...CorrectorOption) *Corrector {
	c := &Corrector{
		config:          DefaultConfig(),
		cacheSize:       fuzzy.DefaultCacheSize,
		bruteForceLimit: fuzzy.DefaultBruteForceLimit,
		variations:      true,
	}
	for _, o := range opts {
		o(c)
	}
	if c.metrics == nil {
		c.metrics = observe.DefaultMetrics()
	}
	c.matcher = fuzzy.New(
		fuzzy.WithCacheSize(c.cacheSize),
		fuzzy.WithBruteForceLimit(c.bruteForceLimit),
		fuzzy.WithObserver(c.metrics),
	)
	return c
}

// Correct implements [Pipeline] using the Corrector's configured [Config].
func (c *Corrector) Correct(ctx context.Context, text string, dictionary []string) (*Result, error) {
	return c.CorrectWithConfig(ctx, text, dictionary, c.config)
}

// CorrectWithConfig is [Correct] with a per-call [Config] override. Zero
// values in cfg fall back to [DefaultConfig] (PreserveOriginalCase excepted:
// false is a meaningful setting).
func (c *Corrector) CorrectWithConfig(ctx context.Context, text string, dictionary []string, cfg Config) (*Result, error) {
	defaults := DefaultConfig()
	if cfg.Sensitivity <= 0 {
		cfg.Sensitivity = defaults.Sensitivity
	}
	if cfg.MaxCorrections <= 0 {
		cfg.MaxCorrections = defaults.MaxCorrections
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaults.Timeout
	}

	start := time.Now()
	defer func() {
		c.metrics.RecordCorrectionDuration(ctx, time.Since(start).Seconds())
	}()

	result := &Result{
		Original:    text,
		Corrected:   text,
		Corrections: []Correction{},
	}
	if strings.TrimSpace(text) == "" || emptyDictionary(dictionary) {
		return result, nil
	}
	if len(strings.Fields(text)) > maxInputWords {
		return result, nil
	}

	working := text
	if c.normalizeNoise {
		working = exact.NormalizeNoise(text)
	}

	ex := exact.New(dictionary)
	tokens := tokenize(working)

	var out strings.Builder
	out.Grow(len(working))
	last := 0

	for i, tok := range tokens {
		if ctx.Err() != nil || time.Since(start) > cfg.Timeout {
			break
		}
		if len(result.Corrections) >= cfg.MaxCorrections {
			break
		}

		prev, next := "", ""
		if i > 0 {
			prev = tokens[i-1].word
		}
		if i+1 < len(tokens) {
			next = tokens[i+1].word
		}

		replacement, method, confidence, ok := c.correctToken(ctx, ex, dictionary, cfg, tok.word, prev, next)
		if !ok || replacement == tok.word {
			continue
		}

		out.WriteString(working[last:tok.start])
		out.WriteString(replacement)
		last = tok.end

		result.Corrections = append(result.Corrections, Correction{
			Original:   tok.word,
			Corrected:  replacement,
			Confidence: confidence,
			Method:     method,
			Offset:     tok.start,
		})
		c.metrics.RecordCorrection(ctx, method)
	}

	out.WriteString(working[last:])
	result.Corrected = out.String()
	return result, nil
}

// correctToken runs the three layers over a single token and returns the
// replacement (cased per cfg), the method that produced it, and its
// confidence. ok is false when the token is skipped or no layer matched.
func (c *Corrector) correctToken(ctx context.Context, ex *exact.Corrector, dictionary []string, cfg Config, word, prev, next string) (string, string, float64, bool) {
	if commonwords.IsProtected(word) {
		c.metrics.RecordTokenSkipped(ctx, "protected")
		return "", "", 0, false
	}
	if len([]rune(word)) > maxTokenRunes {
		c.metrics.RecordTokenSkipped(ctx, "too_long")
		return "", "", 0, false
	}

	// Layer 1: exact lookup. A hit ends the search even when the token is
	// already in its final form.
	if entry, ok := ex.Lookup(word); ok {
		return c.cased(entry, word, cfg), MethodExact, 1.0, true
	}
	if entry, ok := ex.Conservative(word); ok {
		return c.cased(entry, word, cfg), MethodExact, 1.0, true
	}

	// Layer 2: universal mishearings.
	if c.variations && variations.ShouldCheck(word, false) {
		if corrected, ok := variations.LookupInContext(word, prev, next); ok {
			return corrected, MethodVariation, 1.0, true
		}
	}

	// Layer 3: fuzzy matching.
	if match := c.matcher.Match(word, dictionary, cfg.Sensitivity); match != nil {
		method := MethodFuzzy
		if match.Fallback {
			method = MethodFallback
		}
		return c.cased(match.Corrected, word, cfg), method, match.Confidence, true
	}

	return "", "", 0, false
}

// cased applies the transcribed token's casing pattern onto entry when the
// configuration and the pattern call for it, and the dictionary casing
// otherwise.
func (c *Corrector) cased(entry, transcribed string, cfg Config) string {
	if cfg.PreserveOriginalCase && preserveTranscriptionCase(transcribed) {
		return applyCasePattern(entry, transcribed)
	}
	return entry
}

func emptyDictionary(dictionary []string) bool {
	for _, entry := range dictionary {
		if strings.TrimSpace(entry) != "" {
			return false
		}
	}
	return true
}

// defaultCorrector backs the package-level convenience functions.
var defaultCorrector = sync.OnceValue(func() *Corrector {
	return NewCorrector()
})

// CorrectText corrects text against dictionary with [DefaultConfig] settings
// and returns the corrected string. Degenerate inputs come back unchanged.
func CorrectText(text string, dictionary []string) string {
	result, _ := defaultCorrector().Correct(context.Background(), text, dictionary)
	return result.Corrected
}

// CorrectTextConfig is [CorrectText] with an explicit [Config].
func CorrectTextConfig(text string, dictionary []string, cfg Config) string {
	result, _ := defaultCorrector().CorrectWithConfig(context.Background(), text, dictionary, cfg)
	return result.Corrected
}
