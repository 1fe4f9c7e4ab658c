// SPDX-License-Identifier: MIT

package nnpack

import "errors"

// Sentinel errors returned by the encoders. Decoders never return an error:
// truncated or malformed input is reported through diagnostics instead (see
// DecodeLZ10 and DecodeLZX).
var (
	// ErrRawTooLarge is returned when the raw input exceeds the 3-byte length
	// field (16 MiB - 1 bytes).
	ErrRawTooLarge = errors.New("nnpack: raw input exceeds 16MiB-1")

	// ErrEncodeInternal is returned when an encoder hits an internal invariant
	// violation (e.g. a flag byte slot was never allocated before a token was
	// emitted). Callers can use errors.Is(err, nnpack.ErrEncodeInternal).
	ErrEncodeInternal = errors.New("nnpack: internal encoder invariant violated")

	// ErrUnknownMode is returned by Dispatch for a Mode value it does not
	// recognize.
	ErrUnknownMode = errors.New("nnpack: unknown dispatch mode")
)
