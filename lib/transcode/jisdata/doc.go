// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

// Package jisdata holds the JIS X 0208 row/cell ("ku/ten") table shared
// by the Shift_JIS, EUC-JP, and ISO-2022-JP codecs in lib/transcode.
// Each of those codecs has its own byte layout for a double-byte
// character, but all three convert that layout into the same
// (ku, ten) coordinate pair — ku and ten both 1-based, per JIS
// convention — and look the character up here. That keeps the three
// codecs in lock-step: a character in rows 1..94 that round-trips
// through Shift_JIS round-trips identically through EUC-JP and
// ISO-2022-JP. Rows past 94 (the IBM extension area) are reachable
// from Shift_JIS only.
//
// The hiragana (ku 4) and katakana (ku 5) rows are populated
// algorithmically, since JIS X 0208 lays both out as a single
// contiguous run directly aligned with the Unicode Hiragana and
// Katakana blocks. Kanji and symbol rows are populated from an
// explicit table, matching a practical-sized slice of JIS X 0208
// rather than its full ~6,879 entries.
//
// A small number of rows are marked "decode-only": [Lookup] resolves
// them normally, but [ReverseLookup] deliberately does not return
// their ku/ten, modeling Shift_JIS's "NEC-selected IBM extension"
// policy, where a handful of characters decode from legacy byte
// sequences but do not survive an encode round trip.
package jisdata
