// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

// NewCodec returns the Codec for tag. An unrecognized tag (including
// Unknown) yields a Latin-1 codec rather than failing, so that
// constructing a codec from an arbitrary numeric tag always produces a
// usable object.
func NewCodec(tag EncodingTag) Codec {
	switch tag {
	case SJIS:
		return sjisCodec{}
	case JIS:
		return jisCodec{}
	case EUCJP:
		return eucjpCodec{}
	case UTF8:
		return utf8Codec{}
	case CESU8:
		return utf8Codec{cesu8: true}
	case UTF16LE:
		return utf16Codec{bigEndian: false}
	case UTF16BE:
		return utf16Codec{bigEndian: true}
	case UTF32LE:
		return utf32Codec{bigEndian: false}
	case UTF32BE:
		return utf32Codec{bigEndian: true}
	case UTF7:
		return utf7Codec{}
	case Latin1:
		return latin1Codec{}
	default:
		return latin1Codec{}
	}
}
