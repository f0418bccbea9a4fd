// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

// Package binhash provides SHA256 content hashing for byte buffers and
// files.
//
// The transcode CLI uses content hashes to let a caller assert that a
// decode-then-encode round trip reproduced a file's bytes exactly,
// without diffing the (potentially large) buffers directly: hash the
// source file once, transcode it, hash the re-encoded result, and
// compare the two digests alongside the codec's own CompleteFlag.
//
// The API surface is four functions:
//
//   - [HashFile] -- streams a file through SHA256, returning a [32]byte
//     digest with constant memory usage regardless of file size
//   - [HashBytes] -- hashes an in-memory buffer, for buffers already
//     held by the caller (e.g. a freshly re-encoded transcode result)
//   - [FormatDigest] -- converts a [32]byte digest to its canonical
//     hex-encoded string representation, used in CLI output and logs
//   - [ParseDigest] -- parses a hex-encoded digest string back to a
//     [32]byte array, validating length and encoding
//
// This package has no dependencies on other transcode packages.
package binhash
