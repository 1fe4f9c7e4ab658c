// SPDX-License-Identifier: MIT

package nnpack

// encodeLZ10BST is the BST-window LZ10 encoder: the fastest of the three
// LZ10 strategies, trading the linear encoders' exhaustive scan for a
// 4096-node binary search tree that finds (and inserts) the longest match
// in one pass.
func encodeLZ10BST(raw []byte, opts EncodeOptions) []byte {
	w := acquireBSTWindow(opts.VRAMSafe)
	defer releaseBSTWindow(w)

	rawLen := len(raw)
	fw := newFlagWriter(false)
	fw.out = writeHeader(nil, magicLZ10, rawLen)

	windowLen := min(rawLen, lz10MaxMatch)
	r := bstRingSize - windowLen
	for i := 0; i < r; i++ {
		w.ring[i] = 0
	}

	rawPos := 0
	for i := 0; i < windowLen; i++ {
		w.ring[r+i] = raw[rawPos]
		rawPos++
	}
	w.insertNode(r)

	s := 0
	remaining := windowLen

	for remaining > 0 {
		length := w.matchLen
		pos := w.matchPos
		if length > remaining {
			length = remaining
		}

		if length > 2 {
			dist := (r - pos) & (bstRingSize - 1)
			fw.beginMatch()
			fw.emit(tokenByte(((length-3)<<4)|((dist-1)>>8)), tokenByte((dist-1)&0xff))
		} else {
			length = 1
			fw.literal(w.ring[r])
		}

		lenTmp := length
		i := 0
		for ; i < lenTmp; i++ {
			if rawPos == rawLen {
				break
			}
			w.deleteNode(s)
			w.ring[s] = raw[rawPos]
			rawPos++
			if s < lz10MaxMatch-1 {
				w.ring[s+bstRingSize] = w.ring[s]
			}
			s = (s + 1) & (bstRingSize - 1)
			r = (r + 1) & (bstRingSize - 1)
			w.insertNode(r)
		}
		for ; i < lenTmp; i++ {
			w.deleteNode(s)
			s = (s + 1) & (bstRingSize - 1)
			r = (r + 1) & (bstRingSize - 1)
			remaining--
			if remaining > 0 {
				w.insertNode(r)
			}
		}
	}

	return fw.out
}
