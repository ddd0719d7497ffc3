package finder

import (
	"container/heap"
	"math"
	"sort"
)

const resultScoreEpsilon = 1e-9

// Result is one ranked candidate.
type Result struct {
	Path       string
	Score      float64
	InputOrder int
}

// compareResults orders results best-first: higher score, then shorter
// path, then lexicographic, then input order. Returns <0 when a ranks
// ahead of b.
func compareResults(a, b Result) int {
	if math.Abs(a.Score-b.Score) > resultScoreEpsilon {
		if a.Score > b.Score {
			return -1
		}
		return 1
	}
	if len(a.Path) != len(b.Path) {
		if len(a.Path) < len(b.Path) {
			return -1
		}
		return 1
	}
	if a.Path != b.Path {
		if a.Path < b.Path {
			return -1
		}
		return 1
	}
	switch {
	case a.InputOrder < b.InputOrder:
		return -1
	case a.InputOrder > b.InputOrder:
		return 1
	default:
		return 0
	}
}

type resultMinHeap []Result

func (h resultMinHeap) Len() int           { return len(h) }
func (h resultMinHeap) Less(i, j int) bool { return compareResults(h[i], h[j]) > 0 }
func (h resultMinHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *resultMinHeap) Push(x any) {
	*h = append(*h, x.(Result))
}

func (h *resultMinHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}

// topCollector keeps the best max results seen so far. The heap root is
// the worst retained result, so a full collector can reject candidates
// in O(1) and replace in O(log max).
type topCollector struct {
	max  int
	minH resultMinHeap
}

func newTopCollector(max int) *topCollector {
	if max <= 0 {
		max = maxDisplayResults
	}
	tc := &topCollector{
		max:  max,
		minH: make(resultMinHeap, 0, max),
	}
	heap.Init(&tc.minH)
	return tc
}

func (tc *topCollector) Consider(res Result) {
	if tc.minH.Len() < tc.max {
		heap.Push(&tc.minH, res)
		return
	}
	if compareResults(res, tc.minH[0]) >= 0 {
		return
	}
	heap.Pop(&tc.minH)
	heap.Push(&tc.minH, res)
}

func (tc *topCollector) Results() []Result {
	results := make([]Result, tc.minH.Len())
	copy(results, tc.minH)

	sort.Slice(results, func(i, j int) bool {
		return compareResults(results[i], results[j]) < 0
	})

	return results
}
