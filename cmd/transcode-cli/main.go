// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/sakuraedit/transcode/lib/binhash"
	"github.com/sakuraedit/transcode/lib/transcode"
	"github.com/sakuraedit/transcode/lib/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Handle --version before flag parsing, matching other binaries in
	// this family.
	for _, argument := range os.Args[1:] {
		if argument == "--version" {
			fmt.Printf("transcode-cli %s\n", version.Info())
			return 0
		}
	}

	var fromName, toName, inPath, outPath, aliasFile string
	var verify bool

	flagSet := pflag.NewFlagSet("transcode-cli", pflag.ContinueOnError)
	flagSet.StringVar(&fromName, "from", "", "source encoding (e.g. shift_jis, utf-8, utf-16le)")
	flagSet.StringVar(&toName, "to", "", "destination encoding")
	flagSet.StringVar(&inPath, "in", "-", "input file path, or - for stdin")
	flagSet.StringVar(&outPath, "out", "-", "output file path, or - for stdout")
	flagSet.StringVar(&aliasFile, "alias-file", "", "JSONC file of additional charset aliases")
	flagSet.BoolVar(&verify, "verify", false, "round-trip the output back through --to/--from and compare digests")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			printUsage(flagSet)
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if help, _ := flagSet.GetBool("help"); help {
		printUsage(flagSet)
		return 0
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if aliasFile != "" {
		if err := loadAliasFile(aliasFile); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 2
		}
	}

	fromTag, ok := transcode.ParseEncodingTag(fromName)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown --from encoding %q\n", fromName)
		return 2
	}
	toTag, ok := transcode.ParseEncodingTag(toName)
	if !ok {
		fmt.Fprintf(os.Stderr, "error: unknown --to encoding %q\n", toName)
		return 2
	}

	input, err := readAll(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	fromCodec := transcode.NewCodec(fromTag)
	toCodec := transcode.NewCodec(toTag)

	decoded, decodeComplete := fromCodec.Decode(input)
	if !decodeComplete {
		logger.Warn("decode was lossy; unmappable bytes preserved via hex-fallback envelope",
			"from", fromName, "bytes", len(input))
	}

	output, encodeComplete := toCodec.Encode(decoded)
	if !encodeComplete {
		logger.Warn("encode was lossy; some code points have no representation in the destination encoding",
			"to", toName)
	}

	if err := writeAll(outPath, output); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	if verify {
		roundTripped, _ := toCodec.Decode(output)
		reencoded, _ := fromCodec.Encode(roundTripped)

		want := binhash.HashBytes(input)
		got := binhash.HashBytes(reencoded)
		if want != got {
			fmt.Fprintf(os.Stderr, "round-trip verification failed: %s != %s\n",
				binhash.FormatDigest(want), binhash.FormatDigest(got))
			return 1
		}
		logger.Info("round-trip verified", "digest", binhash.FormatDigest(want))
	}

	return 0
}

func readAll(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func writeAll(path string, data []byte) error {
	if path == "-" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func printUsage(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, "usage: transcode-cli --from ENCODING --to ENCODING [--in FILE] [--out FILE] [--verify]\n\n")
	flagSet.PrintDefaults()
}
