package score

import "sync"

// rightmostBuf carries the rightmost-match table for one scoring call:
// for each needle position, the latest haystack index at which that
// character could still participate in a valid full match. Entries are
// monotonically non-decreasing with needle position. The table doubles
// as a subsequence proof (the scan fails fast when the needle cannot be
// matched at all) and as the pruning bound for the recursive scorer.
type rightmostBuf struct {
	idx []int
}

var rightmostPool = sync.Pool{
	New: func() any {
		return &rightmostBuf{}
	},
}

// buildRightmost performs a single backward pass over the haystack,
// greedily matching needle characters from last to first. When the
// caller's haystack signature is unset it is computed during the same
// pass and written back through haystackMask. Returns the table, the
// memo bound (one past the rightmost index of the last needle
// character), and whether the needle is a subsequence of the haystack
// at all.
func buildRightmost(haystack, needle string, caseSensitive bool, haystackMask *uint32) (*rightmostBuf, int, bool) {
	n := len(needle)
	buf := rightmostPool.Get().(*rightmostBuf)
	if cap(buf.idx) < n {
		buf.idx = make([]int, n)
	}
	buf.idx = buf.idx[:n]

	computeMask := haystackMask != nil && *haystackMask == MaskUnset
	var mask uint32
	needleIdx := n - 1

	for i := len(haystack) - 1; i >= 0; i-- {
		c := haystack[i]
		lower := foldByte(c)
		if !caseSensitive {
			c = lower
		}
		if computeMask {
			if lower >= 'a' && lower <= 'z' {
				mask |= 1 << (lower - 'a')
			}
		} else if needleIdx < 0 {
			break
		}

		if needleIdx >= 0 {
			d := needle[needleIdx]
			if !caseSensitive {
				d = foldByte(d)
			}
			if c == d {
				buf.idx[needleIdx] = i
				needleIdx--
			}
		}
	}

	if computeMask {
		*haystackMask = mask
	}
	if needleIdx != -1 {
		releaseRightmost(buf)
		return nil, 0, false
	}
	return buf, buf.idx[n-1] + 1, true
}

func releaseRightmost(buf *rightmostBuf) {
	if buf == nil {
		return
	}
	rightmostPool.Put(buf)
}
