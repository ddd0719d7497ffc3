package finder

import (
	"sync"

	"github.com/kk-code-lab/fpick/internal/score"
)

type cacheKey struct {
	query string
	limit int
	gen   int
	opts  score.Options
}

type resultCache struct {
	mu       sync.RWMutex
	entries  map[cacheKey][]Result
	capacity int
}

func newResultCache() *resultCache {
	return &resultCache{
		entries:  make(map[cacheKey][]Result),
		capacity: 32,
	}
}

func (c *resultCache) get(key cacheKey) ([]Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	results, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	out := make([]Result, len(results))
	copy(out, results)
	return out, true
}

func (c *resultCache) put(key cacheKey, results []Result) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) >= c.capacity {
		c.entries = make(map[cacheKey][]Result)
	}
	copyBuf := make([]Result, len(results))
	copy(copyBuf, results)
	c.entries[key] = copyBuf
}

func (c *resultCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey][]Result)
}
