// SPDX-License-Identifier: MIT

package nnpack

// DecodeLZ10 reconstructs raw bytes from an LZ10 packed buffer. It is
// lenient: malformed input never produces a Go error, only diagnostics
// alongside whatever could be decoded.
func DecodeLZ10(packed []byte) (raw []byte, diags []string) {
	return decodeLZ10(packed)
}

// EncodeLZ10 packs raw into LZ10 wire format using the requested search
// strategy. The only failure modes are a raw buffer that exceeds the
// 3-byte length field (ErrRawTooLarge) and an internal invariant violation
// (ErrEncodeInternal); the encoder otherwise always succeeds, even when the
// packed result is larger than raw.
func EncodeLZ10(raw []byte, mode Lz10Mode, opts EncodeOptions) ([]byte, error) {
	if len(raw) > rawMaxLen {
		return nil, ErrRawTooLarge
	}

	switch mode {
	case Lz10Fast:
		return encodeLZ10BST(raw, opts), nil
	case Lz10Lazy:
		return encodeLZ10Linear(raw, true, opts), nil
	default:
		return encodeLZ10Linear(raw, false, opts), nil
	}
}
