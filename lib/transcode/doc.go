// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

// Package transcode converts between legacy byte-oriented character
// encodings and a canonical UTF-16 code unit form, for an editor that
// must losslessly round-trip arbitrary labelled byte sequences — even
// malformed ones — and report whether the round trip was lossless.
//
// # Supported encodings
//
// Shift_JIS, EUC-JP, ISO-2022-JP ("JIS"), UTF-7, UTF-8, CESU-8,
// UTF-16LE/BE, UTF-32LE/BE, and Latin-1. [EncodingTag] is the closed
// enum identifying each; [NewCodec] dispatches a tag to a [Codec].
//
// # The lossless guarantee
//
// Every codec accepts arbitrary, possibly malformed byte sequences.
// Bytes that cannot be mapped to a Unicode code point are stashed into
// the reserved low-surrogate range U+DC00..U+DCFF (see [BinToText] /
// [TextToBin]) rather than dropped or replaced, so that
//
//	encode(decode(b)) == b
//
// holds for every input in every encoding except the two stateful
// ones: UTF-7 and ISO-2022-JP re-emit shift and escape sequences in
// their own form (and ISO-2022-JP's encoder has no JIS-Roman state),
// so for them the round trip is not guaranteed byte for byte. On the
// encode side, Unicode code points with no representation in the
// target encoding become "?" (and the operation's [CompleteFlag] is
// false) rather than aborting — every call produces maximal output
// and never returns an error.
//
// # Shared tables
//
// Shift_JIS, EUC-JP, and ISO-2022-JP all translate their own byte
// layout into a common JIS row/cell ("ku/ten") coordinate and dispatch
// through the same table in [lib/transcode/jisdata], so a character
// that round-trips through one of the three encodings round-trips
// identically through the others. The one exception is rows past 94
// (the IBM extension area): they have a Shift_JIS byte form only, and
// the EUC-JP and ISO-2022-JP encoders treat them as unmappable.
package transcode
