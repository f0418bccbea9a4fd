// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// base64Alphabet is the standard RFC 4648 alphabet. UTF-7 and MIME
// encoded-words both embed base64 in contexts that may contain foreign
// bytes (line wrapping, stray whitespace, a terminator character that
// isn't itself base64), so decodeBase64 below is deliberately
// permissive rather than using encoding/base64's strict decoder: it
// skips anything outside the alphabet instead of failing the whole
// call. See other_examples/mjl--mox__utf7.go for the same "wrap
// encoding/base64 with a restricted alphabet" idiom applied to IMAP's
// modified UTF-7 (which uses "," in place of "/"); this encoding uses
// the standard alphabet, and the decode/encode pair matches that
// shape, with its own decode table so that out-of-alphabet bytes can
// be skipped.
const base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

var base64DecodeTable [256]int8

func init() {
	for i := range base64DecodeTable {
		base64DecodeTable[i] = -1
	}
	for i := 0; i < len(base64Alphabet); i++ {
		base64DecodeTable[base64Alphabet[i]] = int8(i)
	}
}

// isBase64Alphabet reports whether b is one of the 64 standard base64
// alphabet characters (padding, whitespace, and any other byte are
// not part of the alphabet).
func isBase64Alphabet(b byte) bool {
	return base64DecodeTable[b] >= 0
}

// decodeBase64 decodes src permissively: bytes outside the base64
// alphabet (including "=" padding, whitespace, and line separators)
// are silently skipped rather than rejected. Every four accepted
// characters produce three output bytes; a trailing group of two
// produces one byte, of three produces two, and a trailing group of
// one is discarded (it cannot encode a whole byte). No error is ever
// raised — the caller learns how much was decoded from the returned
// length. Ported from CUtf7::_DecodeBase64's behavior as used by
// CUtf7::_Utf7SetBToUni_block in
// original_source/sakura_core/charset/CUtf7.cpp.
func decodeBase64(src []byte) []byte {
	dst := make([]byte, 0, len(src)*3/4+3)

	var group [4]byte
	n := 0
	for _, b := range src {
		v := base64DecodeTable[b]
		if v < 0 {
			continue
		}
		group[n] = byte(v)
		n++
		if n == 4 {
			dst = append(dst,
				group[0]<<2|group[1]>>4,
				group[1]<<4|group[2]>>2,
				group[2]<<6|group[3],
			)
			n = 0
		}
	}

	switch n {
	case 2:
		dst = append(dst, group[0]<<2|group[1]>>4)
	case 3:
		dst = append(dst,
			group[0]<<2|group[1]>>4,
			group[1]<<4|group[2]>>2,
		)
	}

	return dst
}

// encodeBase64 produces standard, unpadded base64 output with no
// embedded whitespace. Bytes are grouped big-endian within each 24-bit
// frame.
func encodeBase64(src []byte) []byte {
	dst := make([]byte, 0, (len(src)+2)/3*4)

	i := 0
	for ; i+3 <= len(src); i += 3 {
		b0, b1, b2 := src[i], src[i+1], src[i+2]
		dst = append(dst,
			base64Alphabet[b0>>2],
			base64Alphabet[(b0&0x03)<<4|b1>>4],
			base64Alphabet[(b1&0x0f)<<2|b2>>6],
			base64Alphabet[b2&0x3f],
		)
	}

	switch len(src) - i {
	case 1:
		b0 := src[i]
		dst = append(dst,
			base64Alphabet[b0>>2],
			base64Alphabet[(b0&0x03)<<4],
		)
	case 2:
		b0, b1 := src[i], src[i+1]
		dst = append(dst,
			base64Alphabet[b0>>2],
			base64Alphabet[(b0&0x03)<<4|b1>>4],
			base64Alphabet[(b1&0x0f)<<2],
		)
	}

	return dst
}
