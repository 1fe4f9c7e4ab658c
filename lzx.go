// SPDX-License-Identifier: MIT

package nnpack

// EncodeLZ11 packs raw into LZ11 wire format (big-endian length classes).
func EncodeLZ11(raw []byte, opts EncodeOptions) ([]byte, error) {
	if len(raw) > rawMaxLen {
		return nil, ErrRawTooLarge
	}
	return encodeLZX(raw, lz11Variant, opts), nil
}

// EncodeLZ40 packs raw into LZ40 wire format (low-endian length classes,
// complemented flag bytes, trailing terminator).
func EncodeLZ40(raw []byte, opts EncodeOptions) ([]byte, error) {
	if len(raw) > rawMaxLen {
		return nil, ErrRawTooLarge
	}
	return encodeLZX(raw, lz40Variant, opts), nil
}
