// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// ByteBuffer is an owned sequence of octets: the unit of exchange for
// "encoded" text. There is no null-termination requirement.
type ByteBuffer = []byte

// Utf16Buffer is an owned sequence of 16-bit code units: the canonical
// decoded form. It may contain lone low-surrogates in the range
// U+DC00..U+DCFF — the hex-fallback envelope (see [BinToText]) — and
// may contain well-formed surrogate pairs for supplementary-plane
// characters.
type Utf16Buffer = []uint16

// CompleteFlag accompanies every transcode operation. It is true if
// and only if the transcode was lossless: no unmappable bytes on
// decode, no unmappable code points on encode, and no malformed input.
type CompleteFlag = bool

// EolStyle names a line-terminator convention. Each codec renders a
// style to its own byte representation via [Codec.EOL].
type EolStyle int

const (
	EolNone EolStyle = iota
	EolCRLF
	EolLF
	EolCR
	EolNEL
	EolLS
	EolPS

	eolStyleCount
)
