// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "github.com/sakuraedit/transcode/lib/transcode/jisdata"

// eucjpCodec implements EUC-JP. Its double-byte layout maps onto the
// shared jisdata ku/ten coordinate with a flat offset — no lead/trail
// shift arithmetic is needed, since EUC-JP's high bit convention
// already puts both bytes in 0xA1..0xFE in row order.
//
// JIS X 0212 (introduced by the SS3 byte 0x8F) is not supported: real
// EUC-JP text almost never exercises it, and the original
// implementation this is derived from does not either. An SS3-led
// sequence is treated as an unmapped byte run and falls through the
// hex-fallback envelope, same as any other byte this codec cannot
// place.
type eucjpCodec struct{}

func eucBytesToKuTen(b0, b1 byte) (ku, ten int) {
	return int(b0) - 0xa0, int(b1) - 0xa0
}

func kuTenToEUCBytes(ku, ten int) (b0, b1 byte) {
	return byte(ku + 0xa0), byte(ten + 0xa0)
}

func (eucjpCodec) Decode(data ByteBuffer) (Utf16Buffer, CompleteFlag) {
	dst := make(Utf16Buffer, 0, len(data))
	complete := true

	for i := 0; i < len(data); {
		b := data[i]
		switch {
		case b < 0x80:
			dst = append(dst, uint16(b))
			i++

		case b == eucSS2:
			if i+1 < len(data) && isEUCKanaByte(data[i+1]) {
				dst = append(dst, uint16(data[i+1])+halfKanaOffset)
				i += 2
			} else {
				dst = BinToText(dst, data[i:i+1])
				complete = false
				i++
			}

		case b == eucSS3:
			// JIS X 0212: unsupported. The SS3 byte and up to two
			// following 0xA1..0xFE bytes fall back byte-at-a-time, like
			// any other unmapped byte run, rather than being read as a
			// JIS X 0208 pair.
			n := 1
			for n < 3 && i+n < len(data) && isEUCLeadByte(data[i+n]) {
				n++
			}
			dst = BinToText(dst, data[i:i+n])
			complete = false
			i += n

		case isEUCLeadByte(b):
			if i+1 < len(data) && isEUCLeadByte(data[i+1]) {
				ku, ten := eucBytesToKuTen(b, data[i+1])
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

func (eucjpCodec) Encode(text Utf16Buffer) (ByteBuffer, CompleteFlag) {
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
			dst = append(dst, eucSS2, byte(r-halfKanaOffset))

		default:
			if ku, ten, ok := jisdata.ReverseLookup(r); ok && ku <= 94 {
				b0, b1 := kuTenToEUCBytes(ku, ten)
				dst = append(dst, b0, b1)
			} else {
				dst = append(dst, '?')
				complete = false
			}
		}
	}

	return dst, complete
}

func (eucjpCodec) BOM() ByteBuffer { return nil }

func (eucjpCodec) EOL(style EolStyle) ByteBuffer {
	bytes, _ := eucjpCodec{}.Encode(eolCodeUnits(style))
	return bytes
}
