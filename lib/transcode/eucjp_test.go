// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "testing"

func TestEUCJPRoundTripKanaKanji(t *testing.T) {
	// "ｶﾅかなカナ漢字" — half-width kana via SS2, hiragana, katakana,
	// and kanji, matching test-ccodebase.cpp's codeEucJp vector.
	src := ByteBuffer{
		0x8e, 0xb6, 0x8e, 0xc5, // ｶ ﾅ
		0xa4, 0xab, 0xa4, 0xca, // か な
		0xa5, 0xab, 0xa5, 0xca, // カ ナ
		0xb4, 0xc1, 0xbb, 0xfa, // 漢 字
	}
	dst, complete := eucjpCodec{}.Decode(src)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	want := "ｶﾅかなカナ漢字"
	if got := string(utf16ToRunes(dst)); got != want {
		t.Fatalf("decode = %q, want %q", got, want)
	}

	enc, complete := eucjpCodec{}.Encode(dst)
	if !complete {
		t.Fatal("encode complete = false, want true")
	}
	if string(enc) != string(src) {
		t.Errorf("encode = % x, want % x", enc, src)
	}
}

func TestEUCJPUnmappableCharacterFallsBack(t *testing.T) {
	// "森鷗外" — 鷗 has no reverse mapping; encoder must emit '?' and
	// report an incomplete transcode.
	text := runesToUtf16([]rune{'森', '鷗', '外'})
	enc, complete := eucjpCodec{}.Encode(text)
	if complete {
		t.Fatal("complete = true, want false")
	}
	want := ByteBuffer{0xbf, 0xb9, '?', 0xb3, 0xb0}
	if string(enc) != string(want) {
		t.Errorf("encode = % x, want % x", enc, want)
	}
}

func TestEUCJPSS3Unsupported(t *testing.T) {
	// JIS X 0212 (SS3) is out of scope; the leading byte must fall
	// back through the hex-fallback envelope rather than panic or
	// silently swallow bytes.
	dst, complete := eucjpCodec{}.Decode(ByteBuffer{eucSS3, 0xa1})
	if complete {
		t.Error("complete = true, want false")
	}
	b, ok := TextToBin(dst[0])
	if !ok || b != eucSS3 {
		t.Errorf("dst[0] = %#x, want hex-fallback of SS3", dst[0])
	}
}

func TestEUCJPASCIIRoundTrip(t *testing.T) {
	src := ByteBuffer("The quick brown fox.")
	dst, complete := eucjpCodec{}.Decode(src)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	enc, complete := eucjpCodec{}.Encode(dst)
	if !complete {
		t.Fatal("encode complete = false, want true")
	}
	if string(enc) != string(src) {
		t.Errorf("round trip = %q, want %q", enc, src)
	}
}
