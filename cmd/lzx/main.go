// SPDX-License-Identifier: MIT

// Command lzx encodes and decodes LZ11/LZ40 files, mirroring the original
// LZX command-line tool's flags: -d to decode (auto-detects LZ11 vs LZ40),
// or one of -evb/-ewb/-evl/-ewl to encode (v/w = VRAM/WRAM safety, b/l =
// LZ11 big-endian-length / LZ40 low-endian-length).
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

type command struct {
	decode  bool
	lz40    bool
	options nnpack.EncodeOptions
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 3 || len(args)%2 != 1 {
		return fmt.Errorf("usage: lzx <-d|-evb|-ewb|-evl|-ewl> (input output)...")
	}

	cmd, err := parseCommand(args[0])
	if err != nil {
		return err
	}

	for i := 1; i < len(args); i += 2 {
		in, out := args[i], args[i+1]
		if cmd.decode {
			if err := runDecode(in, out); err != nil {
				return err
			}
			continue
		}
		if err := runEncode(in, out, cmd); err != nil {
			return err
		}
	}
	return nil
}

func parseCommand(c string) (command, error) {
	switch c {
	case "-d":
		return command{decode: true}, nil
	case "-evb":
		return command{options: nnpack.EncodeOptions{VRAMSafe: true}}, nil
	case "-ewb":
		return command{options: nnpack.EncodeOptions{VRAMSafe: false}}, nil
	case "-evl":
		return command{lz40: true, options: nnpack.EncodeOptions{VRAMSafe: true}}, nil
	case "-ewl":
		return command{lz40: true, options: nnpack.EncodeOptions{VRAMSafe: false}}, nil
	default:
		return command{}, fmt.Errorf("unknown command %q", c)
	}
}

func runDecode(in, out string) error {
	packed, err := nnpackio.Load(in, packedMin, packedMax)
	if err != nil {
		return err
	}
	raw, diags := nnpack.DecodeLZX(packed)
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
	return nnpackio.Save(out, raw)
}

func runEncode(in, out string, cmd command) error {
	raw, err := nnpackio.Load(in, rawMin, rawMax)
	if err != nil {
		return err
	}
	var packed []byte
	var err2 error
	if cmd.lz40 {
		packed, err2 = nnpack.EncodeLZ40(raw, cmd.options)
	} else {
		packed, err2 = nnpack.EncodeLZ11(raw, cmd.options)
	}
	if err2 != nil {
		return err2
	}
	return nnpackio.Save(out, packed)
}
