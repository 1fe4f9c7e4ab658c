// SPDX-License-Identifier: MIT

package nnpack

// Mode selects a codec dispatcher operation: one decoder shared by all
// three wire formats (auto-detected by magic), or one of the five encoder
// strategies.
type Mode int

const (
	ModeDecode Mode = iota
	ModeEncodeLZ10Greedy
	ModeEncodeLZ10Fast
	ModeEncodeLZ10Lazy
	ModeEncodeLZ11
	ModeEncodeLZ40
)

// Dispatch selects a decoder or encoder strategy from mode, forwarding opts
// to whichever encoder is chosen. Decode diagnostics are discarded here;
// callers that need them should call DecodeLZ10/DecodeLZX directly.
func Dispatch(mode Mode, raw []byte, opts EncodeOptions) ([]byte, error) {
	switch mode {
	case ModeDecode:
		out, _ := decodeAny(raw)
		return out, nil
	case ModeEncodeLZ10Greedy:
		return EncodeLZ10(raw, Lz10Greedy, opts)
	case ModeEncodeLZ10Fast:
		return EncodeLZ10(raw, Lz10Fast, opts)
	case ModeEncodeLZ10Lazy:
		return EncodeLZ10(raw, Lz10Lazy, opts)
	case ModeEncodeLZ11:
		return EncodeLZ11(raw, opts)
	case ModeEncodeLZ40:
		return EncodeLZ40(raw, opts)
	default:
		return nil, ErrUnknownMode
	}
}

// decodeAny picks DecodeLZ10 or DecodeLZX by inspecting the header magic.
func decodeAny(packed []byte) (raw []byte, diags []string) {
	magic, _, ok := readHeader(packed)
	if !ok {
		return nil, []string{"nnpack: packed buffer shorter than the 4-byte header"}
	}
	if magic == magicLZ10 {
		return DecodeLZ10(packed)
	}
	return DecodeLZX(packed)
}
