// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "testing"

func TestUTF7BOM(t *testing.T) {
	if got := string(utf7Codec{}.BOM()); got != "+/v8-" {
		t.Errorf("BOM() = %q, want %q", got, "+/v8-")
	}
}

func TestUTF7EOLTable(t *testing.T) {
	tests := []struct {
		style EolStyle
		want  string
	}{
		{EolCRLF, "\r\n"},
		{EolLF, "\n"},
		{EolCR, "\r"},
		{EolNEL, "+AIU-"},
		{EolLS, "+ICg-"},
		{EolPS, "+ICk-"},
	}
	for _, test := range tests {
		if got := string(utf7Codec{}.EOL(test.style)); got != test.want {
			t.Errorf("EOL(%v) = %q, want %q", test.style, got, test.want)
		}
	}
}

func TestUTF7LiteralPlusEscape(t *testing.T) {
	dst, complete := utf7Codec{}.Decode(ByteBuffer("1 +- 2 = 3"))
	if !complete {
		t.Fatal("complete = false, want true")
	}
	if string(utf16ToRunes(dst)) != "1 + 2 = 3" {
		t.Errorf("decode = %q", string(utf16ToRunes(dst)))
	}
	enc, complete := utf7Codec{}.Encode(dst)
	if !complete {
		t.Fatal("encode complete = false, want true")
	}
	if string(enc) != "1 +- 2 = 3" {
		t.Errorf("encode = %q, want %q", enc, "1 +- 2 = 3")
	}
}

func TestUTF7RoundTripJapanese(t *testing.T) {
	text := runesToUtf16([]rune("日本語"))
	enc, complete := utf7Codec{}.Encode(text)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	dst, complete := utf7Codec{}.Decode(enc)
	if !complete {
		t.Fatal("decode complete = false, want true")
	}
	if !equalUtf16(dst, text) {
		t.Errorf("round trip = % x, want % x", dst, text)
	}
}

func TestUTF7DecodeWithoutExplicitTerminator(t *testing.T) {
	// "+ICk" (no trailing '-') followed directly by a non-base64 byte:
	// the shifted run ends at the first byte outside the base64
	// alphabet, whether or not a '-' terminator is present.
	dst, complete := utf7Codec{}.Decode(ByteBuffer("+ICk!"))
	if !complete {
		t.Fatal("complete = false, want true")
	}
	want := Utf16Buffer{0x2029, '!'}
	if !equalUtf16(dst, want) {
		t.Errorf("decode = % x, want % x", dst, want)
	}
}
