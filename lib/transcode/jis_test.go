// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "testing"

func TestJISRoundTripKanji(t *testing.T) {
	text := runesToUtf16([]rune{'漢', '字'})
	enc, complete := jisCodec{}.Encode(text)
	if !complete {
		t.Fatal("encode complete = false, want true")
	}
	want := append(append([]byte{}, esc1983...), 0x34, 0x41, 0x3b, 0x7a)
	want = append(want, escASCII...)
	if string(enc) != string(want) {
		t.Fatalf("encode = % x, want % x", enc, want)
	}

	dst, complete := jisCodec{}.Decode(enc)
	if !complete {
		t.Fatal("decode complete = false, want true")
	}
	if !equalUtf16(dst, text) {
		t.Errorf("decode = % x, want % x", dst, text)
	}
}

func TestJISMixedASCIIAndKanjiSwitchesState(t *testing.T) {
	text := runesToUtf16([]rune("A漢B"))
	enc, _ := jisCodec{}.Encode(text)
	dst, complete := jisCodec{}.Decode(enc)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	if string(utf16ToRunes(dst)) != "A漢B" {
		t.Errorf("round trip = %q, want %q", string(utf16ToRunes(dst)), "A漢B")
	}
}

func TestJISHalfWidthKana(t *testing.T) {
	text := Utf16Buffer{0xff76, 0xff85} // ｶ ﾅ
	enc, complete := jisCodec{}.Encode(text)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	dst, complete := jisCodec{}.Decode(enc)
	if !complete {
		t.Fatal("decode complete = false, want true")
	}
	if !equalUtf16(dst, text) {
		t.Errorf("round trip = % x, want % x", dst, text)
	}
}

func TestJISUnrecognizedEscapeFallsBack(t *testing.T) {
	dst, complete := jisCodec{}.Decode(ByteBuffer{0x1b, 'Z', 'Z'})
	if complete {
		t.Error("complete = true, want false")
	}
	if len(dst) == 0 {
		t.Fatal("expected at least one code unit")
	}
	if b, ok := TextToBin(dst[0]); !ok || b != 0x1b {
		t.Errorf("dst[0] = %#x, want hex-fallback of ESC", dst[0])
	}
}
