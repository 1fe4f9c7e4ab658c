// SPDX-License-Identifier: MIT

/*
Package nnpack implements the LZ10, LZ11 and LZ40 codecs used by Nintendo
GBA/DS firmware and content pipelines: byte-oriented LZ77 variants with a
fixed 4-byte header, group flag bytes, and back-reference tokens whose
length/distance ranges and byte order differ per codec.

LZ10 uses a single match-length range, packed as a two-byte token with the
length in the high nibble. LZ11 and LZ40 share a three-way length-class
wire format (small, medium, large) and differ mainly in byte order: LZ11
packs length bits big-endian and stores distance as d-1, LZ40 packs them
low-endian, stores the exact distance, and stores the flag byte
complemented plus a trailing terminator.

# Decode

Decoding is parameter-free and auto-detects the codec from the header magic.
It never fails outright: truncated or malformed input yields whatever prefix
could be recovered, plus diagnostics describing what went wrong.

	raw, diags := nnpack.DecodeLZ10(packed)
	raw, diags := nnpack.DecodeLZX(packed) // LZ11 or LZ40, by magic byte

# Encode

Encoding picks one of several match-search strategies that trade
compression ratio for time, and may ask for VRAM-safe output (no
single-byte-overlap back-references, for targets whose DMA engine cannot
self-overlap at distance 1):

	packed, err := nnpack.EncodeLZ10(raw, nnpack.Lz10Lazy, nnpack.EncodeOptions{VRAMSafe: true})
	packed, err := nnpack.EncodeLZ11(raw, nnpack.EncodeOptions{VRAMSafe: false})
	packed, err := nnpack.EncodeLZ40(raw, nnpack.EncodeOptions{VRAMSafe: true})

Or through the single dispatcher that mirrors the original command-line
tools' mode selection:

	packed, err := nnpack.Dispatch(nnpack.ModeEncodeLZ10Fast, raw, nnpack.EncodeOptions{})
*/
package nnpack
