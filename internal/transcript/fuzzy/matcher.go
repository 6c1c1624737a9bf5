// Package fuzzy implements dictionary-driven fuzzy matching for single words
// from a speech-to-text transcript.
//
// The matcher answers one question: is this token a mistranscription of one
// of the user's dictionary entries, and if so, which one? It proceeds in
// stages, each bounded so that a negative answer is cheap:
//
//  1. Candidate retrieval: dictionary entries are indexed by the length and
//     first rune of their normalized form; lookups widen the length window
//     by a fixed tolerance and include buckets whose first rune is
//     confusable with the query's. Dictionaries at or below a small-size
//     threshold are scanned brute force instead.
//
//  2. Weighted scoring: a Levenshtein dynamic program where confusable-rune
//     substitutions cost half a normal edit, gated by length-dependent
//     distance and confidence thresholds.
//
//  3. Aggressive fallback: when the primary stage finds nothing for a token
//     of six or more runes, a blend of subsequence similarity and trigram
//     overlap over aggressively cluster-folded forms catches heavily
//     distorted names, behind a fixed acceptance floor.
//
// Match decisions are memoized in a bounded LRU keyed by lowercase token.
// A [Matcher] is safe for concurrent use; the index and the LRU are each
// guarded by their own mutex, held only around cache bookkeeping and never
// across the dynamic program.
package fuzzy

import (
	"slices"
	"strings"
	"sync"
)

// Default tuning constants. Both are empirically chosen, not semantically
// meaningful; callers may override them via [WithCacheSize] and
// [WithBruteForceLimit].
const (
	DefaultCacheSize       = 100
	DefaultBruteForceLimit = 20
)

// DefaultSensitivity is the minimum confidence a caller requires of a match
// when no explicit sensitivity is configured.
const DefaultSensitivity = 0.6

// Match records a single accepted fuzzy match.
type Match struct {
	// Original is the transcribed token as it appeared in the text.
	Original string

	// Corrected is the matched dictionary entry, in its dictionary casing.
	Corrected string

	// Confidence is the match score in [0, 1].
	Confidence float64

	// EditDistance is the weighted edit distance the match was scored at.
	// For fallback matches this is the distance between the aggressively
	// normalized forms.
	EditDistance float64

	// Fallback reports that the match came from the aggressive fallback
	// stage rather than the primary scan.
	Fallback bool
}

// Observer receives cache and index lifecycle events from a [Matcher].
// Implementations must be safe for concurrent use and must be cheap: the
// hooks are called with the matcher's internal locks held.
type Observer interface {
	// CacheLookup is called on every memo consultation.
	CacheLookup(hit bool)

	// IndexRebuild is called whenever the candidate index is rebuilt for a
	// new dictionary snapshot, with the snapshot size.
	IndexRebuild(size int)
}

// Option is a functional option for configuring a [Matcher].
type Option func(*Matcher)

// WithCacheSize sets the LRU capacity of the match memo. A size of 0
// disables memoization entirely; disabling it never changes match results,
// only latency. Default: [DefaultCacheSize].
func WithCacheSize(size int) Option {
	return func(m *Matcher) {
		m.cacheSize = size
	}
}

// WithBruteForceLimit sets the dictionary size at or below which candidate
// indexing is bypassed in favour of a full scan. Default:
// [DefaultBruteForceLimit].
func WithBruteForceLimit(limit int) Option {
	return func(m *Matcher) {
		m.bruteForceLimit = limit
	}
}

// WithObserver attaches an [Observer] for cache and index events.
// When nil (the default), events are discarded.
func WithObserver(o Observer) Option {
	return func(m *Matcher) {
		m.observer = o
	}
}

// Matcher finds the best dictionary match for transcribed tokens. It owns
// two process-lifetime caches: the candidate index (invalidated whenever the
// dictionary snapshot changes) and the LRU match memo (reset alongside the
// index, bounded by eviction otherwise).
type Matcher struct {
	cacheSize       int
	bruteForceLimit int
	observer        Observer

	// mu guards the index cache and its snapshot identity.
	mu          sync.Mutex
	idx         *index
	snapshot    []string
	sensitivity float64
	generation  uint64

	// memoMu guards the LRU and memoGen. Separate from mu so a long
	// candidate scan on one goroutine never blocks memo hits on another.
	// memoGen mirrors generation: a memo access whose caller holds a stale
	// generation must not see entries computed for a different dictionary.
	memoMu  sync.Mutex
	memo    *lruCache
	memoGen uint64
}

// New returns a [Matcher] with the supplied options applied.
func New(opts ...Option) *Matcher {
	m := &Matcher{
		cacheSize:       DefaultCacheSize,
		bruteForceLimit: DefaultBruteForceLimit,
	}
	for _, o := range opts {
		o(m)
	}
	if m.cacheSize > 0 {
		m.memo = newLRUCache(m.cacheSize)
	}
	return m
}

// Match returns the best dictionary match for word at the given sensitivity,
// or nil when no candidate clears the thresholds. It never fails: an empty
// dictionary, an empty word, or a hopeless token all yield nil.
//
// For a fixed dictionary and sensitivity, Match is deterministic: among
// equally confident candidates the first in dictionary order wins, and the
// memo never changes results, only latency.
func (m *Matcher) Match(word string, dictionary []string, sensitivity float64) *Match {
	if word == "" || len(dictionary) == 0 {
		return nil
	}

	wordLower := strings.ToLower(word)
	wordNorm := Normalize(wordLower)
	queryLen := len([]rune(word))

	gen, idx := m.ensureCaches(dictionary, sensitivity)

	if cached, ok := m.memoGet(wordLower, gen); ok {
		return cached
	}

	var candidates []string
	if idx == nil {
		candidates = dictionary
	} else {
		candidates = idx.candidates(wordNorm)
	}

	best := matchPrimary(word, wordNorm, queryLen, candidates, sensitivity)
	if best == nil && queryLen >= fallbackMinLength {
		best = matchFallback(word, wordNorm, queryLen, candidates)
	}

	m.memoPut(wordLower, best, gen)
	return best
}

// matchPrimary runs the weighted-distance stage over candidates and returns
// the highest-confidence accepted match, or nil.
func matchPrimary(word, wordNorm string, queryLen int, candidates []string, sensitivity float64) *Match {
	maxDistance, minConfidence := thresholds(queryLen)
	required := max(minConfidence, sensitivity)

	var best *Match
	for _, cand := range candidates {
		candNorm := Normalize(cand)
		distance := WeightedDistance(wordNorm, candNorm)
		if distance > maxDistance {
			continue
		}
		confidence := Confidence(wordNorm, candNorm, distance)
		if confidence < required {
			continue
		}
		if best == nil || confidence > best.Confidence {
			best = &Match{
				Original:     word,
				Corrected:    cand,
				Confidence:   confidence,
				EditDistance: distance,
			}
		}
	}
	return best
}

// matchFallback runs the aggressive stage: subsequence similarity on the
// normalized forms and weighted distance on the cluster-folded forms, each
// candidate scored by whichever signal is stronger. Accepted only above the
// fixed [fallbackFloor].
func matchFallback(word, wordNorm string, queryLen int, candidates []string) *Match {
	wordAggressive := NormalizeAggressive(wordNorm)

	var best *Match
	for _, cand := range candidates {
		candNorm := Normalize(cand)
		candAggressive := NormalizeAggressive(candNorm)

		var confidence float64
		if ss := substringSimilarity(wordNorm, candNorm); ss > substringAcceptMin {
			confidence = ss * substringScoreWeight
		}

		phoneticDistance := WeightedDistance(wordAggressive, candAggressive)
		if phoneticDistance <= phoneticDistanceFactor*float64(queryLen) {
			pc := Confidence(wordAggressive, candAggressive, phoneticDistance) * phoneticScoreWeight
			if pc > confidence {
				confidence = pc
			}
		}

		if confidence <= fallbackFloor {
			continue
		}
		if best == nil || confidence > best.Confidence {
			best = &Match{
				Original:     word,
				Corrected:    cand,
				Confidence:   confidence,
				EditDistance: phoneticDistance,
				Fallback:     true,
			}
		}
	}
	return best
}

// ensureCaches rebuilds the index and resets the memo when the dictionary
// snapshot or sensitivity differs from the one the caches were built for.
// It returns the cache generation and the index built for this snapshot
// (nil on the brute-force path). The caller must use the returned index, not
// m.idx: a concurrent Match with a different dictionary may replace m.idx at
// any point after this returns, and its candidates would come from the wrong
// dictionary.
func (m *Matcher) ensureCaches(dictionary []string, sensitivity float64) (uint64, *index) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.snapshot != nil && m.sensitivity == sensitivity && slices.Equal(m.snapshot, dictionary) {
		return m.generation, m.idx
	}

	m.snapshot = slices.Clone(dictionary)
	m.sensitivity = sensitivity
	m.generation++
	m.idx = nil
	if len(dictionary) > m.bruteForceLimit {
		m.idx = buildIndex(dictionary)
		if m.observer != nil {
			m.observer.IndexRebuild(len(dictionary))
		}
	}

	m.memoMu.Lock()
	if m.memo != nil {
		m.memo.reset()
	}
	m.memoGen = m.generation
	m.memoMu.Unlock()

	return m.generation, m.idx
}

// memoGet consults the memo for the caller's cache generation. A hit is only
// reported when the memo still belongs to that generation; entries written
// for another caller's dictionary snapshot are never served, the lookup is a
// miss instead. The generation comparison happens under memoMu together with
// the read, so a concurrent rebuild cannot slip a foreign entry in between.
func (m *Matcher) memoGet(wordLower string, gen uint64) (*Match, bool) {
	if m.memo == nil {
		return nil, false
	}
	m.memoMu.Lock()
	var (
		match *Match
		ok    bool
	)
	if m.memoGen == gen {
		match, ok = m.memo.get(wordLower)
	}
	m.memoMu.Unlock()
	if m.observer != nil {
		m.observer.CacheLookup(ok)
	}
	return match, ok
}

// memoPut stores a computed result unless the caches were rebuilt while the
// computation ran, in which case the result may belong to a superseded
// dictionary and is dropped.
func (m *Matcher) memoPut(wordLower string, match *Match, gen uint64) {
	if m.memo == nil {
		return
	}
	m.memoMu.Lock()
	if m.memoGen == gen {
		m.memo.put(wordLower, match)
	}
	m.memoMu.Unlock()
}
