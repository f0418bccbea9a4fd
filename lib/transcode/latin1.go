// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// latin1Codec implements Latin-1: a direct byte<->code point map over
// U+0000..U+00FF, and nothing else. It is also the factory's default
// codec for an unrecognized EncodingTag, since every byte value has a
// well-defined meaning under it and it never fails to decode.
type latin1Codec struct{}

func (latin1Codec) Decode(data ByteBuffer) (Utf16Buffer, CompleteFlag) {
	dst := make(Utf16Buffer, len(data))
	for i, b := range data {
		dst[i] = uint16(b)
	}
	return dst, true
}

func (latin1Codec) Encode(text Utf16Buffer) (ByteBuffer, CompleteFlag) {
	dst := make(ByteBuffer, 0, len(text))
	complete := true

	for _, u := range text {
		if b, ok := TextToBin(u); ok {
			dst = append(dst, b)
			continue
		}
		if u <= 0xff {
			dst = append(dst, byte(u))
		} else {
			dst = append(dst, '?')
			complete = false
		}
	}

	return dst, complete
}

func (latin1Codec) BOM() ByteBuffer { return nil }

func (latin1Codec) EOL(style EolStyle) ByteBuffer {
	bytes, _ := latin1Codec{}.Encode(eolCodeUnits(style))
	return bytes
}
