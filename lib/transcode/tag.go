// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "strconv"

// EncodingTag identifies one of the supported byte-oriented character
// encodings. It is a closed enumeration: the zero value is Unknown,
// and [NewCodec] maps any tag it does not recognize — including
// Unknown and arbitrary out-of-range values — to a Latin-1-behaved
// default codec rather than failing. That fallback is deliberate: a
// caller that constructs a codec from an encoding tag read off disk
// (or typed by a user) should always get something usable back.
type EncodingTag int

const (
	// Unknown is the zero value. NewCodec treats it like any other
	// unrecognized tag: it returns the default (Latin-1) codec.
	Unknown EncodingTag = iota
	SJIS
	JIS
	EUCJP
	UTF8
	CESU8
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
	UTF7
	Latin1
)

// String returns a short human-readable name, used in log output and
// test failure messages. Unrecognized tags print their numeric value
// rather than panicking.
func (tag EncodingTag) String() string {
	switch tag {
	case Unknown:
		return "Unknown"
	case SJIS:
		return "SJIS"
	case JIS:
		return "JIS"
	case EUCJP:
		return "EUC-JP"
	case UTF8:
		return "UTF-8"
	case CESU8:
		return "CESU-8"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	case UTF7:
		return "UTF-7"
	case Latin1:
		return "Latin-1"
	default:
		return "EncodingTag(" + strconv.Itoa(int(tag)) + ")"
	}
}
