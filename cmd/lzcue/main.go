// SPDX-License-Identifier: MIT

// Command lzcue encodes and decodes LZ10 files, mirroring the flag layout
// of the original LZSS command-line tool: -d to decode, or one of
// -evn/-ewn/-evf/-ewf/-evo/-ewo to encode (v/w = VRAM/WRAM safety, n/f/o =
// greedy/fast-BST/lazy-optimal). Multiple "input output" pairs may follow.
package main

import (
	"fmt"
	"os"

	"github.com/Fralacticus/wf-nnpack"
	"github.com/Fralacticus/wf-nnpack/internal/nnpackio"
)

const (
	rawMin = 0
	rawMax = 0x00FFFFFF

	packedMin = 4
	packedMax = 0x01400000
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 3 || len(args)%2 != 1 {
		return fmt.Errorf("usage: lzcue <-d|-evn|-ewn|-evf|-ewf|-evo|-ewo> (input output)...")
	}

	decode, opts, mode, err := parseCommand(args[0])
	if err != nil {
		return err
	}

	for i := 1; i < len(args); i += 2 {
		in, out := args[i], args[i+1]
		if decode {
			if err := runDecode(in, out); err != nil {
				return err
			}
			continue
		}
		if err := runEncode(in, out, mode, opts); err != nil {
			return err
		}
	}
	return nil
}

func parseCommand(cmd string) (decode bool, opts nnpack.EncodeOptions, mode nnpack.Lz10Mode, err error) {
	switch cmd {
	case "-d":
		return true, opts, mode, nil
	case "-evn":
		return false, nnpack.EncodeOptions{VRAMSafe: true}, nnpack.Lz10Greedy, nil
	case "-ewn":
		return false, nnpack.EncodeOptions{VRAMSafe: false}, nnpack.Lz10Greedy, nil
	case "-evf":
		return false, nnpack.EncodeOptions{VRAMSafe: true}, nnpack.Lz10Fast, nil
	case "-ewf":
		return false, nnpack.EncodeOptions{VRAMSafe: false}, nnpack.Lz10Fast, nil
	case "-evo":
		return false, nnpack.EncodeOptions{VRAMSafe: true}, nnpack.Lz10Lazy, nil
	case "-ewo":
		return false, nnpack.EncodeOptions{VRAMSafe: false}, nnpack.Lz10Lazy, nil
	default:
		return false, opts, mode, fmt.Errorf("unknown command %q", cmd)
	}
}

func runDecode(in, out string) error {
	packed, err := nnpackio.Load(in, packedMin, packedMax)
	if err != nil {
		return err
	}
	raw, diags := nnpack.DecodeLZ10(packed)
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
	return nnpackio.Save(out, raw)
}

func runEncode(in, out string, mode nnpack.Lz10Mode, opts nnpack.EncodeOptions) error {
	raw, err := nnpackio.Load(in, rawMin, rawMax)
	if err != nil {
		return err
	}
	packed, err := nnpack.EncodeLZ10(raw, mode, opts)
	if err != nil {
		return err
	}
	return nnpackio.Save(out, packed)
}
