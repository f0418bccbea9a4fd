// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "github.com/sakuraedit/transcode/lib/transcode/jisdata"

// sjisCodec implements Shift_JIS, dispatching its double-byte
// characters through the shared jisdata ku/ten table.
//
// The byte<->(ku,ten) arithmetic below follows the same lead/trail
// partition as golang.org/x/text/encoding/japanese (see
// other_examples/golang-text__shiftjis.go's shiftJISDecoder/
// shiftJISEncoder), generalized to accept lead bytes through 0xFC
// rather than 0xEF so that the NEC special-character and IBM-
// extension rows are reachable — the golang-text codec only
// implements plain JIS X 0208 and stops at 0xEF.
type sjisCodec struct{}

func sjisBytesToKuTen(b0, b1 byte) (ku, ten int, ok bool) {
	c0 := int(b0)
	if b0 <= 0x9f {
		c0 -= 0x70
	} else {
		c0 -= 0xb0
	}
	c0 = 2*c0 - 0x21

	c1 := int(b1)
	switch {
	case c1 < 0x40:
		return 0, 0, false
	case c1 < 0x7f:
		c0--
		c1 -= 0x40
	case c1 == 0x7f:
		return 0, 0, false
	case c1 < 0x9f:
		c0--
		c1 -= 0x41
	case c1 < 0xfd:
		c1 -= 0x9f
	default:
		return 0, 0, false
	}
	return c0 + 1, c1 + 1, true
}

func kuTenToSJISBytes(ku, ten int) (b0, b1 byte) {
	j1 := ku - 1
	j2 := ten - 1
	if j1 <= 61 {
		b0 = byte(129 + j1/2)
	} else {
		b0 = byte(193 + j1/2)
	}
	if j1&1 == 0 {
		b1 = byte(j2 + j2/63 + 64)
	} else {
		b1 = byte(j2 + 159)
	}
	return b0, b1
}

const halfKanaOffset = 0xff61 - 0xa1

func (sjisCodec) Decode(data ByteBuffer) (Utf16Buffer, CompleteFlag) {
	dst := make(Utf16Buffer, 0, len(data))
	complete := true

	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b < 0x80:
			dst = append(dst, uint16(b))
			i++

		case isSJISHalfKana(b):
			dst = append(dst, uint16(b)+halfKanaOffset)
			i++

		case isSJISLeadByte(b):
			if i+1 < len(data) && isSJISTrailByte(data[i+1]) {
				ku, ten, _ := sjisBytesToKuTen(b, data[i+1])
				if r, ok := jisdata.Lookup(ku, ten); ok {
					dst = append(dst, uint16(r))
				} else {
					dst = BinToText(dst, data[i:i+2])
					complete = false
				}
				i += 2
			} else {
				dst = BinToText(dst, data[i:i+1])
				complete = false
				i++
			}

		default:
			dst = BinToText(dst, data[i:i+1])
			complete = false
			i++
		}
	}

	return dst, complete
}

func (sjisCodec) Encode(text Utf16Buffer) (ByteBuffer, CompleteFlag) {
	dst := make(ByteBuffer, 0, len(text)*2)
	complete := true

	for i := 0; i < len(text); i++ {
		u := text[i]
		if b, ok := TextToBin(u); ok {
			dst = append(dst, b)
			continue
		}

		r := rune(u)
		switch {
		case r < 0x80:
			dst = append(dst, byte(r))

		case 0xff61 <= r && r <= 0xff9f:
			dst = append(dst, byte(r-halfKanaOffset))

		default:
			if ku, ten, ok := jisdata.ReverseLookup(r); ok {
				b0, b1 := kuTenToSJISBytes(ku, ten)
				dst = append(dst, b0, b1)
			} else {
				dst = append(dst, '?')
				complete = false
			}
		}
	}

	return dst, complete
}

func (sjisCodec) BOM() ByteBuffer { return nil }

func (sjisCodec) EOL(style EolStyle) ByteBuffer {
	bytes, _ := sjisCodec{}.Encode(eolCodeUnits(style))
	return bytes
}
