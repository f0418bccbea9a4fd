// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "testing"

func TestUTF16LERoundTrip(t *testing.T) {
	text := runesToUtf16([]rune("Hi 日本"))
	codec := utf16Codec{bigEndian: false}
	enc, complete := codec.Encode(text)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	dst, complete := codec.Decode(enc)
	if !complete {
		t.Fatal("decode complete = false, want true")
	}
	if !equalUtf16(dst, text) {
		t.Errorf("round trip = % x, want % x", dst, text)
	}
}

func TestUTF16BEByteOrder(t *testing.T) {
	text := Utf16Buffer{0x3042} // あ
	le, _ := (utf16Codec{bigEndian: false}).Encode(text)
	be, _ := (utf16Codec{bigEndian: true}).Encode(text)
	if string(le) != "\x42\x30" {
		t.Errorf("LE = % x", le)
	}
	if string(be) != "\x30\x42" {
		t.Errorf("BE = % x", be)
	}
}

func TestUTF16OddTrailingByteRoundTrips(t *testing.T) {
	src := ByteBuffer{0x41, 0x00, 0xff}
	codec := utf16Codec{bigEndian: false}
	dst, complete := codec.Decode(src)
	if complete {
		t.Fatal("complete = true, want false")
	}
	enc, complete := codec.Encode(dst)
	if complete {
		t.Fatal("encode complete = true, want false")
	}
	if string(enc) != string(src) {
		t.Errorf("encode(decode(B)) = % x, want % x", enc, src)
	}
}

func TestUTF16BOM(t *testing.T) {
	if got := (utf16Codec{bigEndian: false}).BOM(); string(got) != "\xff\xfe" {
		t.Errorf("LE BOM = % x", got)
	}
	if got := (utf16Codec{bigEndian: true}).BOM(); string(got) != "\xfe\xff" {
		t.Errorf("BE BOM = % x", got)
	}
}
