// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// Codec is the uniform contract every encoding implements: decode
// bytes to UTF-16, encode UTF-16 to bytes, and report the encoding's
// byte-order mark and line-terminator representations. Every method
// is synchronous and pure over its inputs — there is no shared mutable
// state and no possibility of blocking.
type Codec interface {
	// Decode converts an encoded byte slice to UTF-16. The returned
	// CompleteFlag is true iff every byte was mapped to a code point
	// (no malformed sequences, no table misses).
	Decode(data ByteBuffer) (Utf16Buffer, CompleteFlag)

	// Encode converts UTF-16 to this codec's byte encoding. The
	// returned CompleteFlag is true iff every code point had a
	// representation in the target encoding.
	Encode(text Utf16Buffer) (ByteBuffer, CompleteFlag)

	// BOM returns the bit-exact byte-order-mark sequence that
	// identifies this encoding at the head of a file, or nil if this
	// encoding has none.
	BOM() ByteBuffer

	// EOL returns the byte representation of the given line-
	// terminator style in this encoding.
	EOL(style EolStyle) ByteBuffer
}
