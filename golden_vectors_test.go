// SPDX-License-Identifier: MIT

// Golden-vector tests check small, hand-traceable inputs for the token
// choices they must produce (back-reference distances, the stored distance
// field) and for agreement across encoders, so a future refactor of the
// search or emission logic is caught beyond plain round-trip equivalence.
package nnpack

import (
	"bytes"
	"testing"
)

func TestGoldenLZ10TwoByteRun(t *testing.T) {
	// raw = "AB" * 10: after the first two literals, the remaining 18 bytes
	// are covered by one distance-2 back-reference of length 18 (the LZ10
	// max).
	raw := bytes.Repeat([]byte("AB"), 10)

	packed, err := EncodeLZ10(raw, Lz10Greedy, EncodeOptions{})
	if err != nil {
		t.Fatalf("EncodeLZ10 failed: %v", err)
	}

	out, diags := DecodeLZ10(packed)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !bytes.Equal(out, raw) {
		t.Fatalf("round-trip mismatch: got %v want %v", out, raw)
	}

	dists := lz10BackRefDistances(t, packed)
	for _, d := range dists {
		if d != 2 {
			t.Fatalf("got distance %d, want 2 for an alternating 2-byte pattern", d)
		}
	}
}

func TestGoldenLZ10CrossEncoderEquivalence(t *testing.T) {
	inputs := [][]byte{
		bytes.Repeat([]byte("mississippi"), 40),
		bytes.Repeat([]byte{0x00, 0x01}, 500),
		[]byte("the quick brown fox jumps over the lazy dog, repeatedly, the quick brown fox jumps over the lazy dog"),
	}

	for _, raw := range inputs {
		greedy, err := EncodeLZ10(raw, Lz10Greedy, EncodeOptions{})
		if err != nil {
			t.Fatalf("greedy encode failed: %v", err)
		}
		fast, err := EncodeLZ10(raw, Lz10Fast, EncodeOptions{})
		if err != nil {
			t.Fatalf("fast encode failed: %v", err)
		}
		lazy, err := EncodeLZ10(raw, Lz10Lazy, EncodeOptions{})
		if err != nil {
			t.Fatalf("lazy encode failed: %v", err)
		}

		for name, packed := range map[string][]byte{"greedy": greedy, "fast": fast, "lazy": lazy} {
			out, diags := DecodeLZ10(packed)
			if len(diags) != 0 {
				t.Fatalf("%s: unexpected diagnostics: %v", name, diags)
			}
			if !bytes.Equal(out, raw) {
				t.Fatalf("%s: decoded output does not match original", name)
			}
		}
	}
}

func TestGoldenLZ40ExactVsLZ10Biased(t *testing.T) {
	// LZ40 stores distance as its exact value; LZ10/LZ11 store d-1. A
	// VRAM-safe constant run encodes as two literals and one distance-2
	// back-reference, so the stored distance field shows which of the two
	// encodings was used; the stream must still round-trip.
	raw := bytes.Repeat([]byte{0x42}, 40)

	packed, err := EncodeLZ40(raw, EncodeOptions{VRAMSafe: true})
	if err != nil {
		t.Fatalf("EncodeLZ40 failed: %v", err)
	}
	// Header (4), flag byte, two literals: the back-reference starts at
	// packed[7], whose high nibble holds the distance's low 4 bits.
	if got := packed[7] >> 4; got != 2 {
		t.Fatalf("LZ40 distance nibble = %d, want 2 (exact distance, not d-1) in % x", got, packed)
	}
	out, diags := DecodeLZX(packed)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if !bytes.Equal(out, raw) {
		t.Fatalf("round-trip mismatch for constant run")
	}
}
