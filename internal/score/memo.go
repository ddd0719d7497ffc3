package score

import "sync"

// Memo cells carry a tagged state instead of sentinel score values, so
// "not yet computed" and "no match possible from here" can never collide
// with a legitimate score.
const (
	cellUnset uint8 = iota
	cellNoMatch
	cellScored
)

type memoCell struct {
	score float64
	gen   uint32
	state uint8
}

// memoTable is a dense write-once table over (needle index, haystack
// index) restricted to the feasible trapezoid: row j covers haystack
// indices [j, limit), because a cell with haystackIdx < needleIdx can
// never hold a match. Cells are generation-stamped so pooled buffers
// need no clearing between calls.
type memoTable struct {
	cells  []memoCell
	rowOff []int
	limit  int
	gen    uint32
}

func (t *memoTable) cell(needleIdx, haystackIdx int) *memoCell {
	return &t.cells[t.rowOff[needleIdx]+(haystackIdx-needleIdx)]
}

func (t *memoTable) lookup(needleIdx, haystackIdx int) (float64, uint8) {
	c := t.cell(needleIdx, haystackIdx)
	if c.gen != t.gen {
		return 0, cellUnset
	}
	return c.score, c.state
}

func (t *memoTable) store(needleIdx, haystackIdx int, score float64, state uint8) {
	c := t.cell(needleIdx, haystackIdx)
	c.score = score
	c.state = state
	c.gen = t.gen
}

// matchScratch holds the per-call memo storage so repeated calls can
// reuse buffers via a pool. Every scoring call owns its scratch
// exclusively for the duration of the call; nothing is shared between
// concurrent calls.
type matchScratch struct {
	memo memoTable
}

var matchScratchPool = sync.Pool{
	New: func() any {
		return &matchScratch{}
	},
}

// acquireMatchScratch prepares a scratch for a needle of length n and a
// memo trapezoid bounded by limit (one past the rightmost feasible
// haystack index). Requires n <= limit.
func acquireMatchScratch(n, limit int) *matchScratch {
	s := matchScratchPool.Get().(*matchScratch)
	if cap(s.memo.rowOff) < n {
		s.memo.rowOff = make([]int, n)
	}
	s.memo.rowOff = s.memo.rowOff[:n]
	size := 0
	for j := 0; j < n; j++ {
		s.memo.rowOff[j] = size
		size += limit - j
	}
	if cap(s.memo.cells) < size {
		s.memo.cells = make([]memoCell, size)
	}
	s.memo.cells = s.memo.cells[:size]
	s.memo.limit = limit

	s.memo.gen++
	if s.memo.gen == 0 {
		full := s.memo.cells[:cap(s.memo.cells)]
		for i := range full {
			full[i].gen = 0
		}
		s.memo.gen = 1
	}
	return s
}

func releaseMatchScratch(s *matchScratch) {
	if s == nil {
		return
	}
	matchScratchPool.Put(s)
}
