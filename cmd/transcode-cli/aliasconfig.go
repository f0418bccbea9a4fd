// Copyright 2026 The Transcode Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/sakuraedit/transcode/lib/transcode"
)

// aliasConfig is the shape of an --alias-file: a flat map of
// site-specific charset spellings to one of lib/transcode's built-in
// encoding names.
type aliasConfig struct {
	Aliases map[string]string `json:"aliases"`
}

// loadAliasFile reads a JSONC alias file (comments and trailing
// commas tolerated) and registers each entry with lib/transcode,
// following lib/pipelinedef's "jsonc.ToJSON then json.Unmarshal" idiom
// for config in this repo family.
func loadAliasFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	stripped := jsonc.ToJSON(data)

	var config aliasConfig
	if err := json.Unmarshal(stripped, &config); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	for alias, target := range config.Aliases {
		tag, ok := transcode.ParseEncodingTag(target)
		if !ok {
			return fmt.Errorf("%s: alias %q names unknown encoding %q", path, alias, target)
		}
		transcode.RegisterAlias(alias, tag)
	}

	return nil
}
