// Package finder maintains a list of candidate paths under a root
// directory and ranks them against user queries with the scoring engine
// in internal/score. Per-candidate feasibility signatures are cached
// across queries so repeated keystrokes against the same candidate set
// skip full scoring for clearly infeasible paths.
package finder

import (
	"context"
	"runtime"
	"sync"

	"github.com/kk-code-lab/fpick/internal/score"
)

// Finder ranks candidate paths under a root directory.
type Finder struct {
	rootPath   string
	opts       score.Options
	hideHidden bool
	maxFiles   int
	workers    int

	mu    sync.RWMutex
	paths []string
	masks []uint32
	gen   int

	// rankMu serializes ranking passes: the per-candidate signature
	// slice is written during scoring and must not be shared between
	// overlapping passes.
	rankMu sync.Mutex

	cache *resultCache

	cancelMu sync.Mutex
	cancel   context.CancelFunc
	token    int
}

// NewFinder creates a finder rooted at rootPath. hideHidden filters
// hidden filesystem entries out of the candidate list during Scan,
// independently of the scorer's dot-file rules.
func NewFinder(rootPath string, opts score.Options, hideHidden bool) *Finder {
	workers := parseEnvInt(envWorkers, runtime.NumCPU())
	if workers < 1 {
		workers = 1
	}
	maxFiles := parseEnvInt(envMaxFiles, defaultMaxFiles)
	if maxFiles < 1 {
		maxFiles = defaultMaxFiles
	}

	return &Finder{
		rootPath:   rootPath,
		opts:       opts,
		hideHidden: hideHidden,
		maxFiles:   maxFiles,
		workers:    workers,
		cache:      newResultCache(),
	}
}

// RootPath returns the directory where the finder was initialized.
func (f *Finder) RootPath() string {
	return f.rootPath
}

// Options returns the scoring options the finder ranks with.
func (f *Finder) Options() score.Options {
	return f.opts
}

// SetPaths replaces the candidate list directly, bypassing the
// filesystem walk. Used when candidates arrive from stdin or tests.
func (f *Finder) SetPaths(paths []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.paths = paths
	f.masks = make([]uint32, len(paths))
	f.gen++
	f.cache.clear()
}

// PathCount reports the current number of candidates.
func (f *Finder) PathCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.paths)
}

// Rank scores every candidate against query and returns at most limit
// results ordered best-first.
func (f *Finder) Rank(query string, limit int) []Result {
	results, _ := f.rank(context.Background(), query, limit)
	return results
}

func (f *Finder) rank(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = maxDisplayResults
	}

	f.rankMu.Lock()
	defer f.rankMu.Unlock()

	f.mu.RLock()
	paths := f.paths
	masks := f.masks
	gen := f.gen
	f.mu.RUnlock()

	key := cacheKey{query: query, limit: limit, gen: gen, opts: f.opts}
	if cached, ok := f.cache.get(key); ok {
		return cached, nil
	}

	needleMask := score.NeedleMask(query)

	workers := f.workers
	if len(paths) < workers*minShardSize {
		workers = 1
	}

	collectors := make([]*topCollector, workers)
	var wg sync.WaitGroup
	shard := (len(paths) + workers - 1) / workers

	for w := 0; w < workers; w++ {
		lo := w * shard
		hi := lo + shard
		if lo >= len(paths) {
			collectors[w] = newTopCollector(limit)
			continue
		}
		if hi > len(paths) {
			hi = len(paths)
		}

		wg.Add(1)
		collectors[w] = newTopCollector(limit)
		go func(collector *topCollector, lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				if i%cancelCheckStride == 0 && ctx.Err() != nil {
					return
				}
				s, matched := score.Match(paths[i], query, f.opts, needleMask, &masks[i])
				if !matched {
					continue
				}
				collector.Consider(Result{Path: paths[i], Score: s, InputOrder: i})
			}
		}(collectors[w], lo, hi)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	final := newTopCollector(limit)
	for _, c := range collectors {
		for _, res := range c.Results() {
			final.Consider(res)
		}
	}
	results := final.Results()

	f.cache.put(key, results)
	return results, nil
}
