// SPDX-License-Identifier: MIT

package nnpack

// DecodeLZX reconstructs raw bytes from an LZ11 or LZ40 packed buffer,
// auto-detecting the variant from the header magic. Like DecodeLZ10, it
// never returns a Go error.
func DecodeLZX(packed []byte) (raw []byte, diags []string) {
	magic, rawLen, ok := readHeader(packed)
	if !ok {
		return nil, []string{"nnpack: packed buffer shorter than the 4-byte header"}
	}

	var v lzxVariant
	switch magic {
	case magicLZ11:
		v = lz11Variant
	case magicLZ40:
		v = lz40Variant
	default:
		return nil, []string{"nnpack: bad magic, expected LZ11 (0x11) or LZ40 (0x40)"}
	}

	raw = make([]byte, 0, rawLen)
	r := newFlagReader(packed[4:], v.complement)

	for len(raw) < rawLen {
		if !r.nextSlot() {
			diags = append(diags, "nnpack: truncated LZX stream, returning partial output")
			break
		}

		if !r.isMatch() {
			b, ok := r.byte()
			if !ok {
				diags = append(diags, "nnpack: truncated LZX stream, returning partial output")
				break
			}
			raw = append(raw, b)
			continue
		}

		length, dist, ok := decodeLZXToken(r, v)
		if !ok {
			diags = append(diags, "nnpack: truncated LZX back-reference, returning partial output")
			break
		}

		if len(raw)+length > rawLen {
			diags = append(diags, "nnpack: back-reference overruns raw length, clamping")
			length = rawLen - len(raw)
		}
		if dist > len(raw) {
			diags = append(diags, "nnpack: back-reference distance exceeds decoded output, clamping")
			dist = len(raw)
		}
		if dist == 0 || length <= 0 {
			continue
		}

		raw = append(raw, make([]byte, length)...)
		copyBackRef(raw, len(raw)-length, dist, length)
	}

	if len(raw) < rawLen {
		diags = append(diags, "nnpack: stream ended before the header's raw length was reached")
	}

	return raw, diags
}

// decodeLZXToken reads one back-reference's length/distance bytes per the
// variant's three-way length-class layout.
func decodeLZXToken(r *flagReader, v lzxVariant) (length, dist int, ok bool) {
	if v.magic == magicLZ11 {
		return decodeLZ11Token(r)
	}
	return decodeLZ40Token(r)
}

func decodeLZ11Token(r *flagReader) (length, dist int, ok bool) {
	p0, ok1 := r.byte()
	p1, ok2 := r.byte()
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	pos := int(p0)<<8 | int(p1)
	tag := pos >> 12

	switch {
	case tag >= 2:
		return tag + 1, (pos & 0xfff) + 1, true
	case tag == 0:
		b, ok := r.byte()
		if !ok {
			return 0, 0, false
		}
		np := (pos&0xfff)<<8 | int(b)
		return (np >> 12) + 17, (np & 0xfff) + 1, true
	default: // tag == 1
		b, ok1 := r.byte()
		c, ok2 := r.byte()
		if !ok1 || !ok2 {
			return 0, 0, false
		}
		np := ((pos&0xfff)<<8|int(b))<<8 | int(c)
		return (np >> 12) + 273, (np & 0xfff) + 1, true
	}
}

func decodeLZ40Token(r *flagReader) (length, dist int, ok bool) {
	p0, ok1 := r.byte()
	p1, ok2 := r.byte()
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	pos := int(p0) | int(p1)<<8
	tag := pos & 0xf

	switch {
	case tag >= 2:
		return tag, pos >> 4, true
	case tag == 0:
		b, ok := r.byte()
		if !ok {
			return 0, 0, false
		}
		return int(b) + 16, pos >> 4, true
	default: // tag == 1
		lo, ok1 := r.byte()
		hi, ok2 := r.byte()
		if !ok1 || !ok2 {
			return 0, 0, false
		}
		m := int(lo) | int(hi)<<8
		return m + 272, pos >> 4, true
	}
}
