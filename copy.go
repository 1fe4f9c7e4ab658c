// SPDX-License-Identifier: MIT

package nnpack

// copyBackRef copies length bytes from dst[outputPos-dist:outputPos-dist+length]
// to dst[outputPos:outputPos+length]. If dist < length, match semantics
// require "forward" self-extension: newly written bytes become valid source
// for the remainder of the match. We implement this with repeated doubling:
// seed with one original distance chunk, then copy from the already-expanded
// output.
//
// Callers must ensure outputPos-dist >= 0 and outputPos+length <= len(dst);
// the decoders clamp length against the raw end before calling this.
func copyBackRef(dst []byte, outputPos, dist, length int) {
	mPos := outputPos - dist

	if dist >= length {
		copy(dst[outputPos:outputPos+length], dst[mPos:mPos+length])
		return
	}

	copy(dst[outputPos:outputPos+dist], dst[mPos:outputPos])
	copied := dist

	for copied < length {
		n := copy(dst[outputPos+copied:outputPos+length], dst[outputPos:outputPos+copied])
		copied += n
	}
}
