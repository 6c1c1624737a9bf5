// Package transcript corrects mistranscribed proper nouns in speech-to-text
// output against a user-supplied dictionary.
//
// Speech recognizers handle everyday vocabulary well but reliably mangle the
// words users care most about: surnames, product names, technical terms. The
// [Pipeline] repairs them in three layers, cheapest first:
//
//  1. Exact layer: case-insensitive dictionary lookup plus a handful of
//     ultra-conservative rewrite patterns that must land exactly on a
//     dictionary entry.
//
//  2. Variation layer: a static table of universal recognizer mishearings
//     for technical terms ("javascrypt", "superbase") with one context-gated
//     rule.
//
//  3. Fuzzy layer: weighted edit distance over confusable characters, with an
//     aggressive last-resort stage for heavily distorted names. See the
//     fuzzy package for the full matching model.
//
// Every [Correction] records the layer that produced it and its confidence,
// so callers can audit or selectively display changes.
//
// The pipeline never fails: blank input, an empty dictionary, oversized
// input, timeouts, and exhausted correction budgets all degrade to returning
// the text unchanged or partially corrected. Implementations must be safe
// for concurrent use.
package transcript

import "context"

// Correction method names, used in [Correction.Method] and as metric
// attribute values.
const (
	MethodExact     = "exact"
	MethodVariation = "variation"
	MethodFuzzy     = "fuzzy"
	MethodFallback  = "fallback"
)

// Correction captures a single token-level substitution made by the pipeline.
type Correction struct {
	// Original is the token as produced by the speech-to-text provider.
	Original string `json:"original"`

	// Corrected is the replacement spliced into the output, after any
	// case-pattern reapplication.
	Corrected string `json:"corrected"`

	// Confidence is the pipeline's confidence in this substitution (0.0–1.0).
	// Exact and variation corrections always carry 1.0; fuzzy and fallback
	// corrections carry the matcher's score.
	Confidence float64 `json:"confidence"`

	// Method is the correction layer that produced this substitution: one of
	// [MethodExact], [MethodVariation], [MethodFuzzy], [MethodFallback].
	Method string `json:"method"`

	// Offset is the byte offset of the original token in the text the
	// tokenizer saw. With noise normalization off (the default) that is the
	// input text itself; with it on, offsets index into the normalized form
	// of the input, which can differ in length from the original.
	Offset int `json:"offset"`
}

// Result is the output of a [Pipeline.Correct] call.
type Result struct {
	// Original is the input text, verbatim.
	Original string `json:"original"`

	// Corrected is the full text with all substitutions applied. Punctuation,
	// whitespace, and uncorrected tokens are preserved byte for byte, unless
	// noise normalization is enabled: the substitutions are then applied to
	// the normalized input, so uncorrected characters can already differ
	// from Original.
	Corrected string `json:"corrected"`

	// Corrections is the ordered list of substitutions applied to produce
	// Corrected. An empty (non-nil) slice means no corrections were needed.
	Corrections []Correction `json:"corrections"`
}

// Pipeline corrects mistranscribed dictionary words in a transcript.
//
// Implementations must be safe for concurrent use.
type Pipeline interface {
	// Correct processes text against the dictionary snapshot and returns a
	// [Result] with the corrected text and an itemised record of every
	// substitution made.
	//
	// dictionary is the user's ordered vocabulary, casing as authored. It is
	// read-only to the pipeline and must not be mutated during the call.
	//
	// Correct never returns an error for any text or dictionary content;
	// degenerate inputs pass through unchanged. Context cancellation is
	// observed between tokens and behaves like the correction timeout: work
	// done so far is kept and returned.
	Correct(ctx context.Context, text string, dictionary []string) (*Result, error)
}
