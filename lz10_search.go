// SPDX-License-Identifier: MIT

package nnpack

// search finds the longest back-reference for raw[at:] against raw[:at],
// the linear-scan routine shared by the three calls the LZ10 lazy decision
// needs. Candidate distances are tried from the nearest (smallest distance)
// to the farthest, and a strict length improvement is required to replace
// the current best — so among equal-length matches the smallest distance
// wins, matching the reference tie-break.
//
// minDist is the smallest allowed distance (2 under VRAM-safety, else 1).
// maxLen bounds the match length (remaining input, and the codec's longest
// match).
func search(raw []byte, at, minDist, maxLen int) (length, distance int) {
	windowStart := at - lz10Window
	if windowStart < 0 {
		windowStart = 0
	}
	maxDist := at - windowStart
	for d := minDist; d <= maxDist; d++ {
		src := at - d
		l := matchLen(raw, src, at, maxLen)
		if l > length {
			length = l
			distance = d
		}
	}
	return length, distance
}

// matchLen returns how many leading bytes of raw[cur:] equal raw[src:],
// reading past cur as the match self-extends (src may fall inside the
// region already covered by the match being measured), capped at max.
func matchLen(raw []byte, src, cur, max int) int {
	n := 0
	for n < max && cur+n < len(raw) {
		if raw[src+n] != raw[cur+n] {
			break
		}
		n++
	}
	return n
}
