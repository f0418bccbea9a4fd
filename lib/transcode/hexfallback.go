// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// hexFallbackBase is the first code unit of the reserved low-surrogate
// envelope range. Code units hexFallbackBase..hexFallbackBase+0xFF are
// never legitimate decoded text on their own — they are semantically
// passthrough bytes, not characters — except when they happen to pair
// with a preceding high surrogate to form a genuine supplementary-
// plane character, which none of this package's fallback encoding
// ever produces (it always emits lone low surrogates).
const hexFallbackBase = 0xDC00

// BinToText stashes each byte of data into the low-surrogate envelope,
// appending one code unit per byte to dst and returning the extended
// slice. This is the mechanism that makes lossless round-tripping of
// malformed or unmappable byte sequences possible: a decoder that hits
// bytes it cannot map calls BinToText instead of dropping them, and an
// encoder that later sees one of these code units calls [TextToBin] to
// recover the original byte verbatim.
//
// Ported from CUtf7::_Utf7SetDToUni_block's call to BinToText in
// original_source/sakura_core/charset/CUtf7.cpp; every codec in this
// package reaches for the same primitive when it meets a byte it
// cannot otherwise decode.
func BinToText(dst Utf16Buffer, data []byte) Utf16Buffer {
	for _, b := range data {
		dst = append(dst, hexFallbackBase|uint16(b))
	}
	return dst
}

// TextToBin reports whether unit is a hex-fallback envelope code unit
// and, if so, returns the byte it carries.
func TextToBin(unit uint16) (b byte, ok bool) {
	if unit >= hexFallbackBase && unit <= hexFallbackBase+0xFF {
		return byte(unit), true
	}
	return 0, false
}
