// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

// transcode-cli converts a file between two of lib/transcode's
// supported encodings. It decodes the input with the --from codec,
// optionally logs a warning (via log/slog) if the decode was lossy,
// re-encodes with the --to codec, and writes the result.
//
// With --verify, it additionally decodes its own output back through
// the --to codec, re-encodes through --from, and compares a SHA-256
// digest (lib/binhash) against the original input — a direct exercise
// of the lossless round-trip invariant the core package guarantees.
//
// --alias-file points at a JSONC config (comments and trailing commas
// tolerated, via github.com/tidwall/jsonc) naming additional charset
// aliases to recognize, for sites whose headers or file-naming
// conventions use spellings lib/transcode's built-in alias table
// doesn't already carry.
//
// Exit codes:
//
//	0  transcode completed (round-trip verified if --verify was given)
//	1  --verify was given and the round-trip digest did not match
//	2  usage or I/O error
package main
