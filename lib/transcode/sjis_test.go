// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "testing"

func TestSJISDecodeASCII(t *testing.T) {
	dst, complete := sjisCodec{}.Decode(ByteBuffer("Hello, World!"))
	if !complete {
		t.Fatal("complete = false, want true")
	}
	if string(utf16ToRunes(dst)) != "Hello, World!" {
		t.Errorf("decode = %q", string(utf16ToRunes(dst)))
	}
}

func TestSJISRoundTripKanji(t *testing.T) {
	// 森外 — both entries present in the table, so the round trip must
	// reproduce the exact byte pairs test-ccodebase.cpp asserts.
	src := ByteBuffer{0x90, 0x58, 0x8a, 0x4f}
	dst, complete := sjisCodec{}.Decode(src)
	if !complete {
		t.Fatal("decode complete = false, want true")
	}
	want := string([]rune{'森', '外'})
	if got := string(utf16ToRunes(dst)); got != want {
		t.Fatalf("decode = %q, want %q", got, want)
	}

	enc, complete := sjisCodec{}.Encode(dst)
	if !complete {
		t.Fatal("encode complete = false, want true")
	}
	if string(enc) != string(src) {
		t.Errorf("encode = % x, want % x", enc, src)
	}
}

func TestSJISEncodeNECSelectedIBMExtensionFallsBack(t *testing.T) {
	// 鷗 has no reverse mapping in jisdata (this table carries no entry
	// for it at all): Shift_JIS's encoder must fall back to '?' and
	// report an incomplete encode. That is the same path an NEC-selected
	// IBM extension character such as 纊 takes, since ReverseLookup
	// omits those even though Lookup decodes them.
	src := []rune{'森', '鷗', '外'}
	enc, complete := sjisCodec{}.Encode(runesToUtf16(src))
	if complete {
		t.Fatal("complete = true, want false")
	}
	want := ByteBuffer{0x90, 0x58, '?', 0x8a, 0x4f}
	if string(enc) != string(want) {
		t.Errorf("encode = % x, want % x", enc, want)
	}
}

func TestSJISDecodeMalformedFallsBackByteAtATime(t *testing.T) {
	tests := []struct {
		name string
		src  ByteBuffer
		want Utf16Buffer
	}{
		{
			name: "bad lead byte followed by ASCII",
			src:  ByteBuffer{0x80, 0x40, 0xfd, 0x40, 0xfe, 0x40, 0xff, 0x40},
			want: Utf16Buffer{0xdc80, '@', 0xdcfd, '@', 0xdcfe, '@', 0xdcff, '@'},
		},
		{
			name: "valid lead, invalid trail recovers at next byte",
			src:  ByteBuffer{0x81, 0x0a, 0x81, 0x7f, 0x81, 0xfd, 0x81, 0xfe, 0x81, 0xff},
			want: Utf16Buffer{0xdc81, '\n', 0xdc81, 0x7f, 0xdc81, 0xdcfd, 0xdc81, 0xdcfe, 0xdc81, 0xdcff},
		},
		{
			name: "valid structure, unmapped table cell",
			src:  ByteBuffer{0xed, 0x40},
			want: Utf16Buffer{0xdced, 0xdc40},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			dst, complete := sjisCodec{}.Decode(test.src)
			if complete {
				t.Error("complete = true, want false")
			}
			if !equalUtf16(dst, test.want) {
				t.Errorf("decode = % x, want % x", dst, test.want)
			}
		})
	}
}

func TestSJISHalfWidthKana(t *testing.T) {
	src := ByteBuffer{0xb1, 0xb2, 0xb3}
	dst, complete := sjisCodec{}.Decode(src)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	enc, complete := sjisCodec{}.Encode(dst)
	if !complete {
		t.Fatal("encode complete = false, want true")
	}
	if string(enc) != string(src) {
		t.Errorf("round trip = % x, want % x", enc, src)
	}
}

func TestSJISEOLMatchesUnicodeLineTerminators(t *testing.T) {
	if got := string(sjisCodec{}.EOL(EolCRLF)); got != "\r\n" {
		t.Errorf("EOL(CRLF) = %q", got)
	}
	if got := string(sjisCodec{}.EOL(EolLF)); got != "\n" {
		t.Errorf("EOL(LF) = %q", got)
	}
}

func TestSJISBOMIsEmpty(t *testing.T) {
	if bom := (sjisCodec{}).BOM(); bom != nil {
		t.Errorf("BOM() = % x, want nil", bom)
	}
}
