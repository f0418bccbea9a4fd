// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "github.com/sakuraedit/transcode/lib/transcode/jisdata"

// jisCodec implements ISO-2022-JP: a 7-bit-clean encoding that
// switches character sets with escape sequences rather
// than a high bit, sharing the same jisdata ku/ten table as Shift_JIS
// and EUC-JP. A JIS X 0208 cell (ku, ten) occupies the 7-bit range
// 0x21..0x7E at byte value ku+0x20, ten+0x20 — the same row/cell
// arithmetic EUC-JP uses with the high bit cleared, which is exactly
// the relationship ISO-2022-JP and EUC-JP have in the wild.
type jisCodec struct{}

type jisCharset int

const (
	jisASCII jisCharset = iota
	jisRoman
	jisX0208
	jisKana
)

var (
	escASCII = []byte{0x1b, '(', 'B'}
	escRoman = []byte{0x1b, '(', 'J'}
	esc1978  = []byte{0x1b, '$', '@'}
	esc1983  = []byte{0x1b, '$', 'B'}
	escKana  = []byte{0x1b, '(', 'I'}
)

func (jisCodec) Decode(data ByteBuffer) (Utf16Buffer, CompleteFlag) {
	dst := make(Utf16Buffer, 0, len(data))
	complete := true
	state := jisASCII

	for i := 0; i < len(data); {
		b := data[i]

		if b == 0x1b {
			switch {
			case matchesEscape(data[i:], escASCII):
				state = jisASCII
				i += 3
				continue
			case matchesEscape(data[i:], escRoman):
				state = jisRoman
				i += 3
				continue
			case matchesEscape(data[i:], esc1978), matchesEscape(data[i:], esc1983):
				state = jisX0208
				i += 3
				continue
			case matchesEscape(data[i:], escKana):
				state = jisKana
				i += 3
				continue
			default:
				dst = BinToText(dst, data[i:i+1])
				complete = false
				i++
				continue
			}
		}

		switch state {
		case jisASCII:
			dst = append(dst, uint16(b))
			i++

		case jisRoman:
			dst = append(dst, jisRomanToRune(b))
			i++

		case jisKana:
			if b < 0x21 || b > 0x5f {
				dst = BinToText(dst, data[i:i+1])
				complete = false
			} else {
				dst = append(dst, uint16(b)+(0xff61-0x21))
			}
			i++

		case jisX0208:
			if i+1 < len(data) {
				b1 := data[i+1]
				ku, ten := int(b)-0x20, int(b1)-0x20
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
		}
	}

	return dst, complete
}

func matchesEscape(data, seq []byte) bool {
	if len(data) < len(seq) {
		return false
	}
	for i, b := range seq {
		if data[i] != b {
			return false
		}
	}
	return true
}

func jisRomanToRune(b byte) uint16 {
	switch b {
	case 0x5c:
		return 0x00a5 // yen sign
	case 0x7e:
		return 0x203e // overline
	default:
		return uint16(b)
	}
}

func (jisCodec) Encode(text Utf16Buffer) (ByteBuffer, CompleteFlag) {
	dst := make(ByteBuffer, 0, len(text)*2)
	complete := true
	state := jisASCII

	switchTo := func(target jisCharset) {
		if state == target {
			return
		}
		switch target {
		case jisASCII:
			dst = append(dst, escASCII...)
		case jisX0208:
			dst = append(dst, esc1983...)
		case jisKana:
			dst = append(dst, escKana...)
		}
		state = target
	}

	for i := 0; i < len(text); i++ {
		u := text[i]
		if b, ok := TextToBin(u); ok {
			switchTo(jisASCII)
			dst = append(dst, b)
			continue
		}

		r := rune(u)
		switch {
		case r < 0x80:
			switchTo(jisASCII)
			dst = append(dst, byte(r))

		case 0xff61 <= r && r <= 0xff9f:
			switchTo(jisKana)
			dst = append(dst, byte(r-(0xff61-0x21)))

		default:
			if ku, ten, ok := jisdata.ReverseLookup(r); ok && ku <= 94 {
				switchTo(jisX0208)
				dst = append(dst, byte(ku+0x20), byte(ten+0x20))
			} else {
				switchTo(jisASCII)
				dst = append(dst, '?')
				complete = false
			}
		}
	}

	switchTo(jisASCII)
	return dst, complete
}

func (jisCodec) BOM() ByteBuffer { return nil }

func (jisCodec) EOL(style EolStyle) ByteBuffer {
	bytes, _ := jisCodec{}.Encode(eolCodeUnits(style))
	return bytes
}
