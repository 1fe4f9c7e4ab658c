// SPDX-License-Identifier: MIT

// Package nnpackio provides bounded file loading and saving for the LZ10/
// LZ11/LZ40 command-line tools: the "Byte-buffer I/O façade" external
// collaborator named in the system overview. It has no codec knowledge of
// its own — it only enforces the size bounds the CLI commands need before
// handing a buffer to the codec package.
//
// Grounded on the original tools' Load/Save: read the whole file, reject it
// outside [min, max], write the whole buffer back out.
package nnpackio

import (
	"fmt"
	"io"
	"os"
)

// Load reads filename in full and rejects it if its size falls outside
// [min, max] bytes.
func Load(filename string, min, max int64) ([]byte, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("nnpackio: open %q: %w", filename, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("nnpackio: stat %q: %w", filename, err)
	}
	size := info.Size()
	if size < min || size > max {
		return nil, fmt.Errorf("nnpackio: %q is %d bytes, want [%d, %d]", filename, size, min, max)
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("nnpackio: read %q: %w", filename, err)
	}
	return data, nil
}

// Save writes buffer to filename in full, truncating any existing file.
func Save(filename string, buffer []byte) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("nnpackio: create %q: %w", filename, err)
	}
	defer f.Close()

	if _, err := f.Write(buffer); err != nil {
		return fmt.Errorf("nnpackio: write %q: %w", filename, err)
	}
	return f.Close()
}
