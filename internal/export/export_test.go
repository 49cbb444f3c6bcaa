// Copyright LIMIT Lab, 2026. All rights reserved.

package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/limitlab/labsite/pkg/types"
)

var samplePubs = []types.Publication{
	{ID: 4, Title: "Formula-driven Supervised Learning", Authors: "Alice Johnson, Bob Smith and Charlie Davis",
		Conference: "ECCV", Year: 2024, Field: "Computer Vision", ProjectPageURL: "https://example.com/fdsl",
		PDFFileURL: "https://example.com/fdsl.pdf"},
	{ID: 2, Title: "Interfaces", Authors: "Plato", Conference: "CHI", Year: 2024, Field: "HCI",
		PDFFileURL: "https://example.com/chi.pdf"},
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"yaml", "JSON", " csl "} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("bibtex")
	assert.Error(t, err)
}

func TestWriteYAMLReadsBackAsContent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatYAML, samplePubs))

	var doc struct {
		Publications []types.Publication `yaml:"publications"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, samplePubs, doc.Publications)
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatJSON, nil))

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "[]", string(doc["publications"]))
}

func TestWriteCSL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatCSL, samplePubs))

	var items []CSLItem
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &items))
	require.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "limitlab-4", first.ID)
	assert.Equal(t, "paper-conference", first.Type)
	assert.Equal(t, "ECCV", first.ContainerTitle)
	assert.Equal(t, [][]int{{2024}}, first.Issued.DateParts)
	assert.Equal(t, "https://example.com/fdsl", first.URL)
	assert.Equal(t, []CSLName{
		{Given: "Alice", Family: "Johnson"},
		{Given: "Bob", Family: "Smith"},
		{Given: "Charlie", Family: "Davis"},
	}, first.Author)

	assert.Equal(t, []CSLName{{Literal: "Plato"}}, items[1].Author)
	assert.Equal(t, "https://example.com/chi.pdf", items[1].URL)
	assert.True(t, strings.Contains(buf.String(), "container-title: ECCV"))
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"A. One", []string{"A. One"}},
		{"A. One, B. Two", []string{"A. One", "B. Two"}},
		{"A. One, B. Two, and C. Three", []string{"A. One", "B. Two", "C. Three"}},
		{"A. One and B. Two", []string{"A. One", "B. Two"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SplitAuthors(tt.in), tt.in)
	}
}
