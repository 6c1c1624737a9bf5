package fuzzy

// lruCache memoizes the match/no-match decision per lowercase token. A nil
// stored value is a remembered "no match": repeated unknown words are by far
// the most common lookup in dictated text, and skipping the candidate scan
// for them is where the cache earns its keep.
//
// Eviction removes the entry with the smallest access counter. The cache is
// an optimization layer only; correctness never depends on its contents.
type lruCache struct {
	entries map[string]*cacheEntry
	counter uint64
	maxSize int
}

type cacheEntry struct {
	match    *Match
	lastUsed uint64
}

func newLRUCache(maxSize int) *lruCache {
	return &lruCache{
		entries: make(map[string]*cacheEntry, maxSize),
		maxSize: maxSize,
	}
}

// get returns (result, true) on a hit and bumps the entry's access counter.
// The stored result itself may be nil, meaning "known to have no match".
func (c *lruCache) get(word string) (*Match, bool) {
	e, ok := c.entries[word]
	if !ok {
		return nil, false
	}
	c.counter++
	e.lastUsed = c.counter
	return e.match, true
}

// put stores a result for word, evicting the least-recently-used entry first
// when the cache is full and word is a new key.
func (c *lruCache) put(word string, match *Match) {
	c.counter++
	if _, exists := c.entries[word]; !exists && len(c.entries) >= c.maxSize {
		c.evict()
	}
	c.entries[word] = &cacheEntry{match: match, lastUsed: c.counter}
}

// evict removes the entry with the globally smallest access counter.
func (c *lruCache) evict() {
	var (
		oldestKey string
		oldest    uint64
		found     bool
	)
	for k, e := range c.entries {
		if !found || e.lastUsed < oldest {
			oldestKey, oldest, found = k, e.lastUsed, true
		}
	}
	if found {
		delete(c.entries, oldestKey)
	}
}

// reset drops all entries. Called when the dictionary snapshot or
// sensitivity changes, since cached decisions are only valid against the
// inputs they were computed with.
func (c *lruCache) reset() {
	clear(c.entries)
	c.counter = 0
}

// len reports the current number of entries.
func (c *lruCache) len() int { return len(c.entries) }
