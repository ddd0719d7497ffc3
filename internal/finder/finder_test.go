package finder

import (
	"testing"

	"github.com/kk-code-lab/fpick/internal/score"
)

func newTestFinder(opts score.Options, paths ...string) *Finder {
	f := NewFinder(".", opts, false)
	f.SetPaths(paths)
	return f
}

func TestRank_OrdersByScore(t *testing.T) {
	f := newTestFinder(score.Options{},
		"gone/other_file.rb",
		"git/file.rb",
		"docs/readme.md",
	)

	results := f.Rank("gf", 10)
	if len(results) != 2 {
		t.Fatalf("expected 2 matches, got %d: %+v", len(results), results)
	}
	if results[0].Path != "git/file.rb" {
		t.Errorf("boundary match should rank first, got %q", results[0].Path)
	}
	if results[1].Path != "gone/other_file.rb" {
		t.Errorf("scattered match should rank second, got %q", results[1].Path)
	}
}

func TestRank_EmptyQueryListsVisibleCandidates(t *testing.T) {
	f := newTestFinder(score.Options{},
		"src/main.go",
		".git/config",
		"README.md",
	)

	results := f.Rank("", 10)
	if len(results) != 2 {
		t.Fatalf("expected hidden candidate filtered, got %+v", results)
	}
	for _, r := range results {
		if r.Path == ".git/config" {
			t.Errorf("dot-file should not surface on empty query")
		}
		if r.Score != 0 {
			t.Errorf("empty query results carry score 0, got %f", r.Score)
		}
	}
}

func TestRank_EmptyQueryShowsDotFilesWhenAllowed(t *testing.T) {
	f := newTestFinder(score.Options{AlwaysShowDotFiles: true},
		".gitignore",
		"main.go",
	)
	if results := f.Rank("", 10); len(results) != 2 {
		t.Fatalf("expected both candidates, got %+v", results)
	}
}

func TestRank_LimitKeepsBest(t *testing.T) {
	f := newTestFinder(score.Options{},
		"a/b/c/deep/scattered/m_a_i_n.go",
		"main.go",
		"src/main.go",
	)

	results := f.Rank("main", 2)
	if len(results) != 2 {
		t.Fatalf("expected limit to cap results, got %d", len(results))
	}
	if results[0].Path != "main.go" {
		t.Errorf("best match should survive the cut, got %q", results[0].Path)
	}
}

func TestRank_SignatureCacheReusedAcrossQueries(t *testing.T) {
	f := newTestFinder(score.Options{}, "alpha/beta.go", "gamma/delta.go")

	// First query populates the per-candidate signatures.
	f.Rank("al", 10)

	f.mu.RLock()
	masks := append([]uint32(nil), f.masks...)
	f.mu.RUnlock()
	for i, m := range masks {
		if m == score.MaskUnset {
			t.Fatalf("mask %d still unset after ranking", i)
		}
	}

	// A second query must not recompute them.
	f.Rank("zz", 10)
	f.mu.RLock()
	defer f.mu.RUnlock()
	for i, m := range f.masks {
		if m != masks[i] {
			t.Errorf("mask %d changed between queries: %026b -> %026b", i, masks[i], m)
		}
	}
}

func TestRank_SetPathsResetsSignatures(t *testing.T) {
	f := newTestFinder(score.Options{}, "one.go")
	f.Rank("o", 10)

	f.SetPaths([]string{"two.go"})
	f.mu.RLock()
	defer f.mu.RUnlock()
	if len(f.masks) != 1 || f.masks[0] != score.MaskUnset {
		t.Errorf("SetPaths should reset signatures, got %v", f.masks)
	}
}

func TestRank_ResultCacheHit(t *testing.T) {
	f := newTestFinder(score.Options{}, "main.go", "other.go")

	first := f.Rank("main", 10)
	key := cacheKey{query: "main", limit: 10, gen: f.gen, opts: f.opts}
	if _, ok := f.cache.get(key); !ok {
		t.Fatal("ranking should populate the result cache")
	}

	second := f.Rank("main", 10)
	if len(first) != len(second) {
		t.Fatalf("cached results differ: %+v vs %+v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("cached result %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestRank_ManyCandidatesParallel(t *testing.T) {
	paths := make([]string, 0, 4096)
	for i := 0; i < 4096; i++ {
		paths = append(paths, pathForIndex(i))
	}
	f := newTestFinder(score.Options{}, paths...)

	results := f.Rank("target", 50)
	if len(results) == 0 {
		t.Fatal("expected matches across shards")
	}
	for i := 1; i < len(results); i++ {
		if compareResults(results[i-1], results[i]) > 0 {
			t.Fatalf("results out of order at %d: %+v before %+v", i, results[i-1], results[i])
		}
	}
}

func pathForIndex(i int) string {
	if i%17 == 0 {
		return "src/target_file.go"
	}
	return "src/unrelated/path_component.txt"
}
