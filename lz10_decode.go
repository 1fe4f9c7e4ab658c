// SPDX-License-Identifier: MIT

package nnpack

// decodeLZ10 reconstructs raw bytes from an LZ10 packed buffer. It never
// returns a Go error: truncated input, a length overrun, or a bad magic all
// produce a textual diagnostic alongside whatever was decoded.
func decodeLZ10(packed []byte) (raw []byte, diags []string) {
	magic, rawLen, ok := readHeader(packed)
	if !ok {
		return nil, []string{"nnpack: packed buffer shorter than the 4-byte header"}
	}
	if magic != magicLZ10 {
		return nil, []string{"nnpack: bad magic, expected LZ10 (0x10)"}
	}

	raw = make([]byte, 0, rawLen)
	r := newFlagReader(packed[4:], false)

	for len(raw) < rawLen {
		if !r.nextSlot() {
			diags = append(diags, "nnpack: truncated LZ10 stream, returning partial output")
			break
		}

		if !r.isMatch() {
			b, ok := r.byte()
			if !ok {
				diags = append(diags, "nnpack: truncated LZ10 stream, returning partial output")
				break
			}
			raw = append(raw, b)
			continue
		}

		hi, ok1 := r.byte()
		lo, ok2 := r.byte()
		if !ok1 || !ok2 {
			diags = append(diags, "nnpack: truncated LZ10 back-reference, returning partial output")
			break
		}

		length := int(hi>>4) + 3
		dist := (int(hi&0xf)<<8 | int(lo)) + 1

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
