// SPDX-License-Identifier: MIT

package nnpack

// encodeLZX is the shared LZ11/LZ40 encoder: a linear-scan search identical
// in shape to the LZ10 linear encoder's search(), but with a longer maximum
// match (up to a variant's largeMax) and an unconditional lazy lookahead
// whose clamping rule differs from LZ10's.
func encodeLZX(raw []byte, v lzxVariant, opts EncodeOptions) []byte {
	minDist := opts.minDistance()
	end := len(raw)

	w := newFlagWriter(v.complement)
	w.out = writeHeader(nil, v.magic, end)

	r := 0
	for r < end {
		length, distance := search(raw, r, minDist, min(v.largeMax, end-r))

		if length >= v.threshold && r+length < end {
			lNext, _ := search(raw, r+length, minDist, min(v.largeMax, end-r-length))
			lPost, _ := search(raw, r+1, minDist, min(v.largeMax, end-r-1))
			if length+lNext <= 1+lPost {
				length = 1
			}
		}

		if length >= v.threshold {
			w.beginMatch()
			v.emit(w, length, distance)
			r += length
		} else {
			w.literal(raw[r])
			r++
		}
	}

	if v.magic == magicLZ40 {
		writeLZXTerminator(w)
	}

	return w.out
}

// writeLZXTerminator appends LZ40's trailing marker: the next slot's flag
// bit is set as if a back-reference (a fresh flag byte is allocated only
// when the current one is full), followed by two zero bytes. LZ11 streams
// carry no such padding.
func writeLZXTerminator(w *flagWriter) {
	w.beginMatch()
	w.emit(0, 0)
}
