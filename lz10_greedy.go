// SPDX-License-Identifier: MIT

package nnpack

// encodeLZ10Linear implements the LZ10 linear-scan encoder: Lz10Greedy
// always takes the longest match found by search(); Lz10Lazy adds a
// one-byte lookahead that discards the current match for a literal when
// the match one byte later, plus that literal, covers at least as much as
// the current match and the match after it.
func encodeLZ10Linear(raw []byte, lazy bool, opts EncodeOptions) []byte {
	minDist := opts.minDistance()
	end := len(raw)

	w := newFlagWriter(false)
	out := writeHeader(nil, magicLZ10, end)
	w.out = out

	r := 0
	for r < end {
		length, distance := search(raw, r, minDist, min(lz10MaxMatch, end-r))

		if lazy && length > 2 && r+length < end {
			lNext, _ := search(raw, r+length, minDist, min(lz10MaxMatch, end-r-length))
			lPost, _ := search(raw, r+1, minDist, min(lz10MaxMatch, end-r-1))
			if length+clampShort(lNext) <= 1+clampShort(lPost) {
				length = 1
			}
		}

		if length > 2 {
			w.beginMatch()
			w.emit(tokenByte(((length-3)<<4)|((distance-1)>>8)), tokenByte((distance-1)&0xff))
			r += length
		} else {
			w.literal(raw[r])
			r++
		}
	}

	return w.out
}

// clampShort treats a match length of 2 or fewer as 1, per the lazy rule's
// clamped lookahead lengths.
func clampShort(length int) int {
	if length <= 2 {
		return 1
	}
	return length
}
