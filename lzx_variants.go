// SPDX-License-Identifier: MIT

package nnpack

// lzxVariant parameterises the shared LZ11/LZ40 encoder and decoder: the two
// codecs share one control-flow shape and differ only in flag-byte
// complementing, the lazy-match threshold, the length-class boundaries, and
// how a token's length/distance bytes are laid out on the wire.
type lzxVariant struct {
	magic      byte
	complement bool
	threshold  int

	smallMax  int
	mediumMax int
	largeMax  int

	emit func(w *flagWriter, length, dist int)
}

var lz11Variant = lzxVariant{
	magic:      magicLZ11,
	complement: false,
	threshold:  lz11SmallMin,
	smallMax:   lz11SmallMax,
	mediumMax:  lz11MediumMax,
	largeMax:   lz11LargeMax,
	emit:       emitLZ11,
}

var lz40Variant = lzxVariant{
	magic:      magicLZ40,
	complement: true,
	threshold:  lz40SmallMin,
	smallMax:   lz40SmallMax,
	mediumMax:  lz40MediumMax,
	largeMax:   lz40LargeMax,
	emit:       emitLZ40,
}

// emitLZ11 writes a back-reference in LZ11's big-endian-length layout.
// Distance is stored as d−1, like LZ10.
func emitLZ11(w *flagWriter, length, dist int) {
	d := dist - 1
	switch {
	case length <= lz11SmallMax:
		w.emit(tokenByte(((length-1)<<4)|(d>>8)), tokenByte(d&0xff))
	case length <= lz11MediumMax:
		m := length - 17
		w.emit(tokenByte(m>>4), tokenByte(((m&0xf)<<4)|(d>>8)), tokenByte(d&0xff))
	default:
		m := length - 273
		w.emit(tokenByte(0x10|(m>>12)), tokenByte((m>>4)&0xff), tokenByte(((m&0xf)<<4)|(d>>8)), tokenByte(d&0xff))
	}
}

// emitLZ40 writes a back-reference in LZ40's low-endian-length layout.
// Distance is stored as its exact value, not d−1.
func emitLZ40(w *flagWriter, length, dist int) {
	d := dist
	switch {
	case length <= lz40SmallMax:
		w.emit(tokenByte(((d&0xf)<<4)|length), tokenByte(d>>4))
	case length <= lz40MediumMax:
		w.emit(tokenByte((d&0xf)<<4), tokenByte(d>>4), tokenByte(length-16))
	default:
		m := length - 272
		w.emit(tokenByte(((d&0xf)<<4)|1), tokenByte(d>>4), tokenByte(m&0xff), tokenByte(m>>8))
	}
}
