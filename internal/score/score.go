// Package score ranks how well a short query (the needle) matches a
// candidate path (the haystack). Matching is subsequence matching: every
// needle character must appear in the haystack in order, not necessarily
// contiguously. The best alignment is found by a pruned, memoized
// recursive search with positional heuristics that reward matches at
// word and path boundaries and penalize scattered matches.
package score

// Options control one scoring call.
type Options struct {
	// CaseSensitive disables ASCII case folding during matching.
	CaseSensitive bool
	// AlwaysShowDotFiles lets dot-initial path segments match even when
	// the needle character is not itself a dot.
	AlwaysShowDotFiles bool
	// NeverShowDotFiles makes any dot-initial path segment a hard wall:
	// nothing at or beyond it can participate in a match.
	NeverShowDotFiles bool
	// Exhaustive scans every candidate position for each needle
	// character to guarantee the globally maximal score. When false the
	// search stops at the first improving position, trading exact
	// ranking fidelity for speed on very large candidate sets.
	Exhaustive bool
}

// MaxNeedleLen caps accepted needle lengths. Recursion depth equals
// needle length (each recursive step consumes one needle position), so
// this bound is also the stack bound. Longer needles score 0.
const MaxNeedleLen = 1024

type matchState struct {
	haystack        string
	needle          string
	rightmost       []int
	maxScorePerChar float64
	opts            Options
	memo            *memoTable
}

// ScoreMatch scores needle against haystack and returns a value in
// [0, 1]; 0 means no match (or an empty needle, which matches everything
// but contributes no score). needleMask is the needle's letter signature
// (see NeedleMask). haystackMask is an in/out caller-owned signature:
// pass a pointer holding MaskUnset on the first call for a haystack and
// keep the written-back value for subsequent calls with other needles.
// A nil haystackMask skips the prefilter entirely.
func ScoreMatch(haystack, needle string, opts Options, needleMask uint32, haystackMask *uint32) float64 {
	s, _ := Match(haystack, needle, opts, needleMask, haystackMask)
	return s
}

// Match is ScoreMatch plus an explicit matched flag, which callers need
// to distinguish "empty needle matched for free" (score 0, matched) from
// "no possible alignment" (score 0, not matched).
func Match(haystack, needle string, opts Options, needleMask uint32, haystackMask *uint32) (float64, bool) {
	haystackLen := len(haystack)
	needleLen := len(needle)

	if needleLen == 0 {
		// An empty needle matches everything with score 0, except
		// haystacks hidden by the dot-file rule.
		if !opts.AlwaysShowDotFiles && hasDotSegment(haystack) {
			return 0, false
		}
		return 0, true
	}
	if haystackLen == 0 || needleLen > haystackLen || needleLen > MaxNeedleLen {
		return 0, false
	}

	// Cheap prefilter: a needle letter absent from the haystack makes a
	// match impossible. Folded masks are a coarse test only; the full
	// scorer below restores case exactness.
	if haystackMask != nil && *haystackMask != MaskUnset {
		if !maskSubset(needleMask, *haystackMask) {
			return 0, false
		}
	}

	rightmost, limit, ok := buildRightmost(haystack, needle, opts.CaseSensitive, haystackMask)
	if !ok {
		return 0, false
	}
	defer releaseRightmost(rightmost)

	scratch := acquireMatchScratch(needleLen, limit)
	defer releaseMatchScratch(scratch)

	m := &matchState{
		haystack:        haystack,
		needle:          needle,
		rightmost:       rightmost.idx,
		maxScorePerChar: (1.0/float64(haystackLen) + 1.0/float64(needleLen)) / 2,
		opts:            opts,
		memo:            &scratch.memo,
	}

	best, matched := m.match(0, 0)
	if !matched {
		return 0, false
	}
	if scoreDebugEnabled() {
		scoreLogf("haystack=%q needle=%q score=%.6f exhaustive=%v caseSensitive=%v",
			haystack, needle, best, opts.Exhaustive, opts.CaseSensitive)
	}
	return best, true
}

// match returns the best score achievable by matching needle[needleIdx:]
// somewhere in haystack[haystackIdx:], or matched=false when no
// alignment exists from here.
func (m *matchState) match(haystackIdx, needleIdx int) (float64, bool) {
	needleLen := len(m.needle)
	if needleIdx == needleLen {
		// Whole needle consumed in earlier frames.
		return 0, true
	}
	if needleIdx > haystackIdx ||
		haystackIdx+(needleLen-needleIdx) > m.rightmost[needleLen-1]+1 {
		// Not enough haystack left for the remaining needle.
		return 0, false
	}

	if score, state := m.memo.lookup(needleIdx, haystackIdx); state != cellUnset {
		return score, state == cellScored
	}

	c := m.needle[needleIdx]
	if !m.opts.CaseSensitive {
		c = foldByte(c)
	}

	best := 0.0
	matched := false

	for i := haystackIdx; i <= m.rightmost[needleIdx]; i++ {
		d := m.haystack[i]
		if d == '.' && (i == 0 || m.haystack[i-1] == '/') {
			// Dot-initial path segment. Under restrictive visibility this
			// is a wall: nothing at or past it is reachable, so the whole
			// cell is a non-match, not just this position.
			dotSearch := c == '.'
			if m.opts.NeverShowDotFiles || (!dotSearch && !m.opts.AlwaysShowDotFiles) {
				m.memo.store(needleIdx, haystackIdx, 0, cellNoMatch)
				return 0, false
			}
		} else if !m.opts.CaseSensitive {
			d = foldByte(d)
		}

		if c != d {
			continue
		}

		scoreForChar := m.maxScorePerChar
		if distance := i - haystackIdx; distance > 1 {
			scoreForChar *= gapFactor(m.haystack, i, distance)
		}

		sub, ok := m.match(i+1, needleIdx+1)
		if !ok {
			continue
		}
		if newScore := scoreForChar + sub; !matched || newScore > best {
			best = newScore
			matched = true
			if !m.opts.Exhaustive {
				break
			}
		}
	}

	if matched {
		m.memo.store(needleIdx, haystackIdx, best, cellScored)
		return best, true
	}
	m.memo.store(needleIdx, haystackIdx, 0, cellNoMatch)
	return 0, false
}

// gapFactor scales a character's contribution by what immediately
// precedes it. Boundary characters keep most of the value; an anonymous
// gap decays with its size. Case matters for the camelCase test, so raw
// bytes are inspected here regardless of the folding mode.
func gapFactor(haystack string, i, distance int) float64 {
	last := haystack[i-1]
	curr := haystack[i]
	switch {
	case last == '/':
		return 0.9
	case last == '-' || last == '_' || last == ' ' || (last >= '0' && last <= '9'):
		return 0.8
	case last >= 'a' && last <= 'z' && curr >= 'A' && curr <= 'Z':
		return 0.8
	case last == '.':
		return 0.7
	default:
		return (1.0 / float64(distance)) * 0.75
	}
}

// hasDotSegment reports whether any path segment of haystack starts with
// a dot (a dot-file basename anywhere along the path).
func hasDotSegment(haystack string) bool {
	for i := 0; i < len(haystack); i++ {
		if haystack[i] == '.' && (i == 0 || haystack[i-1] == '/') {
			return true
		}
	}
	return false
}
