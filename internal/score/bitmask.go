package score

// Feasibility signatures are 26-bit masks, one bit per lowercase letter,
// recording which letters occur anywhere in a string. They let callers
// reject a haystack in O(1) before paying for a full scoring pass. Masks
// are always case-folded, even when matching itself is case-sensitive;
// the full scorer restores exactness.

// MaskUnset is the sentinel a caller passes for a haystack whose
// signature has not been computed yet. ScoreMatch writes the computed
// signature back through the pointer so the caller can reuse it on
// subsequent queries against the same haystack.
const MaskUnset uint32 = 0

// NeedleMask derives the 26-bit letter signature of a needle.
// Non-letter bytes contribute no bits.
func NeedleMask(needle string) uint32 {
	var mask uint32
	for i := 0; i < len(needle); i++ {
		mask |= letterBit(needle[i])
	}
	return mask
}

func letterBit(b byte) uint32 {
	b = foldByte(b)
	if b >= 'a' && b <= 'z' {
		return 1 << (b - 'a')
	}
	return 0
}

// foldByte downcases ASCII A-Z and leaves every other byte alone.
func foldByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// maskSubset reports whether every letter in needleMask is present in
// haystackMask.
func maskSubset(needleMask, haystackMask uint32) bool {
	return needleMask&haystackMask == needleMask
}
