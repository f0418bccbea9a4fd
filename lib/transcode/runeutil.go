// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

const (
	surrogateHighStart = 0xd800
	surrogateHighEnd   = 0xdbff
	surrogateLowStart  = 0xdc00
	surrogateLowEnd    = 0xdfff
	supplementaryBase  = 0x10000
)

// isHighSurrogate and isLowSurrogate classify a UTF-16 code unit as one
// half of a surrogate pair encoding a supplementary-plane character.
// Callers that use the hex-fallback envelope (also carved out of the
// low-surrogate range) must check [TextToBin] first.
func isHighSurrogate(u uint16) bool { return surrogateHighStart <= u && u <= surrogateHighEnd }
func isLowSurrogate(u uint16) bool  { return surrogateLowStart <= u && u <= surrogateLowEnd }

// appendRune appends r to a Utf16Buffer, splitting it into a surrogate
// pair if it lies beyond the Basic Multilingual Plane.
func appendRune(dst Utf16Buffer, r rune) Utf16Buffer {
	if r < supplementaryBase {
		return append(dst, uint16(r))
	}
	r -= supplementaryBase
	hi := uint16(surrogateHighStart + (r >> 10))
	lo := uint16(surrogateLowStart + (r & 0x3ff))
	return append(dst, hi, lo)
}

// combineSurrogates reassembles a supplementary-plane rune from a high
// and low surrogate.
func combineSurrogates(hi, lo uint16) rune {
	return supplementaryBase + (rune(hi)-surrogateHighStart)<<10 + (rune(lo) - surrogateLowStart)
}

// utf16ToRunes decodes a Utf16Buffer to runes, combining surrogate
// pairs. It is a test and diagnostic helper, not part of the
// lossless-transcode path (which works in UTF-16 code units
// throughout so that lone surrogates and hex-fallback units survive
// untouched).
func utf16ToRunes(src Utf16Buffer) []rune {
	out := make([]rune, 0, len(src))
	for i := 0; i < len(src); i++ {
		u := src[i]
		if isHighSurrogate(u) && i+1 < len(src) && isLowSurrogate(src[i+1]) {
			out = append(out, combineSurrogates(u, src[i+1]))
			i++
			continue
		}
		out = append(out, rune(u))
	}
	return out
}

// runesToUtf16 is the inverse of utf16ToRunes.
func runesToUtf16(src []rune) Utf16Buffer {
	dst := make(Utf16Buffer, 0, len(src))
	for _, r := range src {
		dst = appendRune(dst, r)
	}
	return dst
}

func equalUtf16(a, b Utf16Buffer) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
