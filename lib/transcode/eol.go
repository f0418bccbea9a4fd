// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// eolCodeUnits returns the UTF-16 code unit sequence for a line-
// terminator style. Every codec's EOL method encodes this sequence
// through its own Encode, rather than keeping a per-encoding table by
// hand: a style's byte representation in a given encoding is, by
// definition, just that encoding's rendering of these code points, and
// driving it through Encode keeps the two in lock-step automatically.
//
// This is verifiably the right approach for UTF-7: encoding U+0085
// (NEL), U+2028 (LS), and U+2029 (PS) through the base64 Set B path
// in utf7.go produces exactly "+AIU-", "+ICg-", and "+ICk-" without UTF-7
// needing any EOL-specific code at all.
func eolCodeUnits(style EolStyle) Utf16Buffer {
	switch style {
	case EolCRLF:
		return Utf16Buffer{0x000d, 0x000a}
	case EolLF:
		return Utf16Buffer{0x000a}
	case EolCR:
		return Utf16Buffer{0x000d}
	case EolNEL:
		return Utf16Buffer{0x0085}
	case EolLS:
		return Utf16Buffer{0x2028}
	case EolPS:
		return Utf16Buffer{0x2029}
	default:
		return nil
	}
}
