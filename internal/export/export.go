// Copyright LIMIT Lab, 2026. All rights reserved.

// Package export writes filtered publication lists for other tools: YAML in
// the content file's own shape, JSON, or CSL-YAML for reference managers.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/limitlab/labsite/pkg/types"
)

// Format names an output encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCSL  Format = "csl"
)

// Formats lists the supported encodings.
var Formats = []Format{FormatYAML, FormatJSON, FormatCSL}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatYAML, FormatJSON, FormatCSL:
		return f, nil
	}
	return "", fmt.Errorf("unknown export format %q: use yaml, json, or csl", s)
}

type document struct {
	Publications []types.Publication `json:"publications" yaml:"publications"`
}

// Write encodes pubs to w in format f.
func Write(w io.Writer, f Format, pubs []types.Publication) error {
	if pubs == nil {
		pubs = []types.Publication{}
	}
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Publications: pubs}); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(document{Publications: pubs}); err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		return nil
	case FormatCSL:
		return WriteCSL(w, pubs)
	}
	return fmt.Errorf("unknown export format %q", f)
}
