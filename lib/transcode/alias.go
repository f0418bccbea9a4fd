// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package transcode

import "strings"

// charsetAliases maps the lowercase MIME charset names a header might
// name to the EncodingTag they denote, for [DecodeMIMEHeader]'s
// charset-match gate.
var charsetAliases = map[string]EncodingTag{
	"shift_jis":   SJIS,
	"shift-jis":   SJIS,
	"sjis":        SJIS,
	"cp932":       SJIS,
	"ms932":       SJIS,
	"euc-jp":      EUCJP,
	"eucjp":       EUCJP,
	"euc_jp":      EUCJP,
	"iso-2022-jp": JIS,
	"iso2022jp":   JIS,
	"utf-8":       UTF8,
	"utf8":        UTF8,
	"cesu-8":      CESU8,
	"cesu8":       CESU8,
	"utf-7":       UTF7,
	"utf7":        UTF7,
	"utf-16le":    UTF16LE,
	"utf-16be":    UTF16BE,
	"utf-32le":    UTF32LE,
	"utf-32be":    UTF32BE,
	"iso-8859-1":  Latin1,
	"latin1":      Latin1,
	"us-ascii":    Latin1,
	"ascii":       Latin1,
}

// resolveCharset looks up a MIME charset token, case-insensitively.
func resolveCharset(name string) (EncodingTag, bool) {
	tag, ok := charsetAliases[strings.ToLower(name)]
	return tag, ok
}

// ParseEncodingTag resolves a command-line or config-file encoding
// name (e.g. "shift_jis", "utf-16le") to its EncodingTag, using the
// same alias table [DecodeMIMEHeader] matches charsets against.
func ParseEncodingTag(name string) (EncodingTag, bool) {
	return resolveCharset(name)
}

// RegisterAlias adds or overrides a charset alias at runtime, case-
// insensitively. It is how the CLI's --alias-file config layer
// extends the built-in table with site-specific spellings.
func RegisterAlias(name string, tag EncodingTag) {
	charsetAliases[strings.ToLower(name)] = tag
}
