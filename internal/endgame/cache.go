package endgame

import "github.com/rsarvar1a/lits-engine/internal/tetromino"

type cacheEntry struct {
	key     uint64
	valid   bool
	outcome Outcome
	score   float64
	best    tetromino.Tetromino
}

// cache is a fixed-size, power-of-two-masked direct-mapped table: a
// new entry simply overwrites whatever previously lived at its slot,
// trading precision for a branch-free, allocation-free lookup.
type cache struct {
	entries []cacheEntry
	mask    uint64
}

func newCache(size int) *cache {
	n := 1
	for n < size {
		n <<= 1
	}
	if n == 0 {
		n = 1
	}
	return &cache{
		entries: make([]cacheEntry, n),
		mask:    uint64(n - 1),
	}
}

func (c *cache) slot(key uint64) uint64 {
	return key & c.mask
}

func (c *cache) get(key uint64) (cacheEntry, bool) {
	e := c.entries[c.slot(key)]
	if e.valid && e.key == key {
		return e, true
	}
	return cacheEntry{}, false
}

func (c *cache) set(key uint64, outcome Outcome, score float64, best tetromino.Tetromino) {
	c.entries[c.slot(key)] = cacheEntry{
		key:     key,
		valid:   true,
		outcome: outcome,
		score:   score,
		best:    best,
	}
}
