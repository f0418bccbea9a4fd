// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// utf16Codec implements UTF-16LE and UTF-16BE: byte reordering plus
// surrogate validation, since the in-memory Utf16Buffer already is the
// code-unit sequence this wire format carries. Decoding fails in two
// ways: an odd trailing byte cannot form a full code unit, and a
// surrogate that is not half of a well-formed pair could be mistaken
// for (or paired with) a hex-fallback unit on encode. Both are
// hex-enveloped byte by byte and the flag is cleared.
type utf16Codec struct{ bigEndian bool }

func (c utf16Codec) unit(b0, b1 byte) uint16 {
	if c.bigEndian {
		return uint16(b0)<<8 | uint16(b1)
	}
	return uint16(b1)<<8 | uint16(b0)
}

func (c utf16Codec) bytes(u uint16) (b0, b1 byte) {
	if c.bigEndian {
		return byte(u >> 8), byte(u)
	}
	return byte(u), byte(u >> 8)
}

func (c utf16Codec) Decode(data ByteBuffer) (Utf16Buffer, CompleteFlag) {
	dst := make(Utf16Buffer, 0, len(data)/2)
	complete := true

	i := 0
	for ; i+1 < len(data); i += 2 {
		u := c.unit(data[i], data[i+1])
		if isHighSurrogate(u) && i+3 < len(data) && isLowSurrogate(c.unit(data[i+2], data[i+3])) {
			dst = append(dst, u, c.unit(data[i+2], data[i+3]))
			i += 2
			continue
		}
		if isHighSurrogate(u) || isLowSurrogate(u) {
			dst = BinToText(dst, data[i:i+2])
			complete = false
			continue
		}
		dst = append(dst, u)
	}
	if i < len(data) {
		dst = BinToText(dst, data[i:i+1])
		complete = false
	}

	return dst, complete
}

func (c utf16Codec) Encode(text Utf16Buffer) (ByteBuffer, CompleteFlag) {
	dst := make(ByteBuffer, 0, len(text)*2)
	complete := true

	for i := 0; i < len(text); i++ {
		u := text[i]

		if isHighSurrogate(u) && i+1 < len(text) && isLowSurrogate(text[i+1]) {
			// A genuine surrogate pair passes straight through as its
			// two code units; checking this before TextToBin keeps a
			// real low surrogate from being mistaken for an envelope
			// byte just because its value falls in that range.
			b0, b1 := c.bytes(u)
			dst = append(dst, b0, b1)
			b0, b1 = c.bytes(text[i+1])
			dst = append(dst, b0, b1)
			i++
			continue
		}

		if b, ok := TextToBin(u); ok {
			// Reproduce the exact original byte rather than widening
			// it into a code unit, so encode(decode(B)) == B even for
			// B's leftover odd trailing byte.
			dst = append(dst, b)
			complete = false
			continue
		}
		b0, b1 := c.bytes(u)
		dst = append(dst, b0, b1)
	}

	return dst, complete
}

func (c utf16Codec) BOM() ByteBuffer {
	if c.bigEndian {
		return ByteBuffer{0xfe, 0xff}
	}
	return ByteBuffer{0xff, 0xfe}
}

func (c utf16Codec) EOL(style EolStyle) ByteBuffer {
	bytes, _ := c.Encode(eolCodeUnits(style))
	return bytes
}
