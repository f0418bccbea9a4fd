// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "testing"

func TestLatin1RoundTripAllBytes(t *testing.T) {
	src := make(ByteBuffer, 256)
	for i := range src {
		src[i] = byte(i)
	}
	dst, complete := latin1Codec{}.Decode(src)
	if !complete {
		t.Fatal("complete = false, want true")
	}
	enc, complete := latin1Codec{}.Encode(dst)
	if !complete {
		t.Fatal("encode complete = false, want true")
	}
	if string(enc) != string(src) {
		t.Error("round trip mismatch")
	}
}

func TestLatin1EncodeOutOfRangeFallsBack(t *testing.T) {
	text := Utf16Buffer{'A', 0x3042, 'B'} // A あ B
	enc, complete := latin1Codec{}.Encode(text)
	if complete {
		t.Fatal("complete = true, want false")
	}
	if string(enc) != "A?B" {
		t.Errorf("encode = %q, want %q", enc, "A?B")
	}
}

func TestLatin1EOLUsesSingleByteNEL(t *testing.T) {
	if got := (latin1Codec{}).EOL(EolNEL); string(got) != "\x85" {
		t.Errorf("EOL(NEL) = % x, want 85", got)
	}
}
