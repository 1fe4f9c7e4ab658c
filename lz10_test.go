// SPDX-License-Identifier: MIT

package nnpack

import (
	"bytes"
	"fmt"
	"testing"
)

func lz10InputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "incompressible", data: []byte{0x00, 0x01, 0x02, 0x03}},
		{name: "all-zero-32", data: make([]byte, 32)},
		{name: "short-text", data: []byte("hello world, nnpack test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "self-extending-run", data: append(append([]byte{}, 0xAA, 0xBB), bytes.Repeat([]byte{0xAA, 0xBB}, 10)...)},
	}
}

func TestLZ10RoundTripAcrossModes(t *testing.T) {
	modes := []Lz10Mode{Lz10Greedy, Lz10Fast, Lz10Lazy}
	modeNames := map[Lz10Mode]string{Lz10Greedy: "greedy", Lz10Fast: "fast", Lz10Lazy: "lazy"}

	for _, in := range lz10InputSet() {
		for _, mode := range modes {
			for _, vram := range []bool{false, true} {
				name := fmt.Sprintf("%s/%s/vram=%v", in.name, modeNames[mode], vram)
				t.Run(name, func(t *testing.T) {
					packed, err := EncodeLZ10(in.data, mode, EncodeOptions{VRAMSafe: vram})
					if err != nil {
						t.Fatalf("EncodeLZ10 failed: %v", err)
					}

					raw, diags := DecodeLZ10(packed)
					if len(diags) != 0 {
						t.Fatalf("unexpected diagnostics: %v", diags)
					}
					if !bytes.Equal(raw, in.data) && !(len(raw) == 0 && len(in.data) == 0) {
						t.Fatalf("round-trip mismatch: got %v want %v", raw, in.data)
					}
				})
			}
		}
	}
}

func TestLZ10EmptyInput(t *testing.T) {
	packed, err := EncodeLZ10(nil, Lz10Greedy, EncodeOptions{})
	if err != nil {
		t.Fatalf("EncodeLZ10 failed: %v", err)
	}
	want := []byte{0x10, 0x00, 0x00, 0x00}
	if !bytes.Equal(packed, want) {
		t.Fatalf("got % x, want % x", packed, want)
	}

	raw, diags := DecodeLZ10(packed)
	if len(raw) != 0 || len(diags) != 0 {
		t.Fatalf("got raw=%v diags=%v, want empty/no diagnostics", raw, diags)
	}
}

func TestLZ10Incompressible(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x02, 0x03}
	packed, err := EncodeLZ10(raw, Lz10Greedy, EncodeOptions{})
	if err != nil {
		t.Fatalf("EncodeLZ10 failed: %v", err)
	}
	if len(packed) != 9 {
		t.Fatalf("got %d packed bytes, want 9: % x", len(packed), packed)
	}
	if packed[4] != 0x00 {
		t.Fatalf("flag byte = %#x, want 0x00 (all literals)", packed[4])
	}
}

func TestLZ10VRAMSafetyForbidsDistanceOne(t *testing.T) {
	for _, mode := range []Lz10Mode{Lz10Greedy, Lz10Fast, Lz10Lazy} {
		raw := bytes.Repeat([]byte{0x00}, 64)
		packed, err := EncodeLZ10(raw, mode, EncodeOptions{VRAMSafe: true})
		if err != nil {
			t.Fatalf("EncodeLZ10 failed: %v", err)
		}
		for _, dist := range lz10BackRefDistances(t, packed) {
			if dist < 2 {
				t.Fatalf("mode %v emitted distance %d < 2 under VRAM safety", mode, dist)
			}
		}
	}
}

// lz10BackRefDistances walks a packed LZ10 buffer and returns every
// back-reference distance it contains, for VRAM-safety assertions.
func lz10BackRefDistances(t *testing.T, packed []byte) []int {
	t.Helper()
	_, rawLen, ok := readHeader(packed)
	if !ok {
		t.Fatalf("packed buffer too short")
	}

	var dists []int
	r := newFlagReader(packed[4:], false)
	produced := 0
	for produced < rawLen {
		if !r.nextSlot() {
			break
		}
		if !r.isMatch() {
			if _, ok := r.byte(); !ok {
				break
			}
			produced++
			continue
		}
		hi, ok1 := r.byte()
		lo, ok2 := r.byte()
		if !ok1 || !ok2 {
			break
		}
		length := int(hi>>4) + 3
		dist := (int(hi&0xf)<<8 | int(lo)) + 1
		dists = append(dists, dist)
		produced += length
	}
	return dists
}

func TestLZ10LazyNeverExceedsGreedySize(t *testing.T) {
	for _, in := range lz10InputSet() {
		greedy, err := EncodeLZ10(in.data, Lz10Greedy, EncodeOptions{})
		if err != nil {
			t.Fatalf("EncodeLZ10 greedy failed: %v", err)
		}
		lazy, err := EncodeLZ10(in.data, Lz10Lazy, EncodeOptions{})
		if err != nil {
			t.Fatalf("EncodeLZ10 lazy failed: %v", err)
		}
		if len(lazy) > len(greedy) {
			t.Fatalf("%s: lazy (%d bytes) larger than greedy (%d bytes)", in.name, len(lazy), len(greedy))
		}
	}
}

func TestLZ10RawTooLarge(t *testing.T) {
	huge := make([]byte, rawMaxLen+1)
	if _, err := EncodeLZ10(huge, Lz10Greedy, EncodeOptions{}); err != ErrRawTooLarge {
		t.Fatalf("got err=%v, want ErrRawTooLarge", err)
	}
}
