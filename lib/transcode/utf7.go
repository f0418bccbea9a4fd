// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// utf7Codec implements UTF-7 (RFC 2152), alternating between a direct
// "Set D" run (plain ASCII bytes) and a shifted
// "Set B" run (base64 of big-endian UTF-16, introduced by '+' and
// conventionally closed by '-'). The algorithm is ported from
// CUtf7::_UniToUtf7/_Utf7ToUni in
// original_source/sakura_core/charset/CUtf7.cpp: scan a block of one
// kind, flush it, and repeat.
//
// Every code unit is representable — unlike the Japanese codecs or
// Latin-1, UTF-7 never reports an incomplete encode: anything that
// cannot go out as a direct byte is shifted into Set B instead.
type utf7Codec struct{}

// scanUTF7DPart returns the end of the direct-byte run starting at i:
// every byte up to, but not including, the next '+' or the first byte
// outside ASCII. The caller handles the boundary byte itself.
func scanUTF7DPart(data []byte, i int) (end int) {
	for end = i; end < len(data) && data[end] != '+' && data[end] < 0x80; end++ {
	}
	return end
}

// scanUTF7BPart scans a shifted run starting right after its leading
// '+' at index i. It returns the end of the base64-alphabet content
// and the position to resume direct-mode scanning from — one past an
// explicit '-' terminator, if present, otherwise right after the
// content, since set B's extent is already unambiguous once the
// alphabet run stops.
func scanUTF7BPart(data []byte, i int) (contentEnd, next int) {
	contentEnd = i
	for contentEnd < len(data) && isBase64Alphabet(data[contentEnd]) {
		contentEnd++
	}
	next = contentEnd
	if next < len(data) && data[next] == '-' {
		next++
	}
	return contentEnd, next
}

func (utf7Codec) Decode(data ByteBuffer) (Utf16Buffer, CompleteFlag) {
	dst := make(Utf16Buffer, 0, len(data))
	complete := true

	for i := 0; i < len(data); {
		b := data[i]

		if b == '+' {
			if i+1 < len(data) && data[i+1] == '-' {
				dst = append(dst, '+')
				i += 2
				continue
			}

			contentEnd, next := scanUTF7BPart(data, i+1)
			if contentEnd == i+1 {
				// An empty shifted run not closed by '-' carries no code
				// unit; keep the '+' itself rather than dropping it.
				dst = BinToText(dst, data[i:i+1])
				complete = false
				i++
				continue
			}
			raw := decodeBase64(data[i+1 : contentEnd])

			k := 0
			for ; k+1 < len(raw); k += 2 {
				dst = append(dst, uint16(raw[k])<<8|uint16(raw[k+1]))
			}
			if k < len(raw) {
				dst = BinToText(dst, raw[k:])
				complete = false
			}

			i = next
			continue
		}

		if b < 0x80 {
			end := scanUTF7DPart(data, i)
			for _, direct := range data[i:end] {
				if isUTF7SetD(rune(direct)) {
					dst = append(dst, uint16(direct))
				} else {
					dst = BinToText(dst, []byte{direct})
					complete = false
				}
			}
			i = end
		} else {
			dst = BinToText(dst, data[i:i+1])
			complete = false
			i++
		}
	}

	return dst, complete
}

func (utf7Codec) Encode(text Utf16Buffer) (ByteBuffer, CompleteFlag) {
	dst := make(ByteBuffer, 0, len(text)*3)
	var pending []byte

	flush := func() {
		if len(pending) == 0 {
			return
		}
		dst = append(dst, '+')
		dst = append(dst, encodeBase64(pending)...)
		dst = append(dst, '-')
		pending = pending[:0]
	}

	for i := 0; i < len(text); i++ {
		u := text[i]

		if b, ok := TextToBin(u); ok {
			flush()
			dst = append(dst, b)
			continue
		}

		r := rune(u)
		switch {
		case r == '+':
			flush()
			dst = append(dst, '+', '-')

		case r < 0x80 && isUTF7SetD(r):
			flush()
			dst = append(dst, byte(r))

		default:
			pending = append(pending, byte(u>>8), byte(u))
		}
	}
	flush()

	return dst, true
}

// utf7BOM is "+/v8-": Set B's base64 of the big-endian bytes of
// U+FEFF, FE FF, with the conventional "-" terminator.
var utf7BOM = ByteBuffer("+/v8-")

func (utf7Codec) BOM() ByteBuffer { return append(ByteBuffer{}, utf7BOM...) }

func (utf7Codec) EOL(style EolStyle) ByteBuffer {
	bytes, _ := utf7Codec{}.Encode(eolCodeUnits(style))
	return bytes
}
