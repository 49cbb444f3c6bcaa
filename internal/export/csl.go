// Copyright LIMIT Lab, 2026. All rights reserved.

package export

import (
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/limitlab/labsite/pkg/types"
)

// CSLItem is one bibliographic entry in CSL (Citation Style Language)
// format, consumable by Pandoc and reference managers.
type CSLItem struct {
	ID             string    `yaml:"id"`
	Type           string    `yaml:"type"`
	Title          string    `yaml:"title"`
	Author         []CSLName `yaml:"author,omitempty"`
	ContainerTitle string    `yaml:"container-title,omitempty"`
	Genre          string    `yaml:"genre,omitempty"`
	Issued         *CSLDate  `yaml:"issued,omitempty"`
	URL            string    `yaml:"URL,omitempty"`
}

// CSLName is a person's name in CSL format.
type CSLName struct {
	Family  string `yaml:"family,omitempty"`
	Given   string `yaml:"given,omitempty"`
	Literal string `yaml:"literal,omitempty"`
}

// CSLDate is a date in CSL date-parts form.
type CSLDate struct {
	DateParts [][]int `yaml:"date-parts"`
}

// WriteCSL writes pubs as a CSL-YAML list.
func WriteCSL(w io.Writer, pubs []types.Publication) error {
	items := make([]CSLItem, len(pubs))
	for i, p := range pubs {
		items[i] = toCSLItem(p)
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(items)
}

func toCSLItem(p types.Publication) CSLItem {
	item := CSLItem{
		ID:             "limitlab-" + strconv.Itoa(p.ID),
		Type:           "paper-conference",
		Title:          p.Title,
		ContainerTitle: p.Conference,
		Genre:          p.Field,
	}
	for _, a := range SplitAuthors(p.Authors) {
		item.Author = append(item.Author, parseAuthorName(a))
	}
	if p.Year > 0 {
		item.Issued = &CSLDate{DateParts: [][]int{{p.Year}}}
	}

	switch {
	case p.ProjectPageURL != "":
		item.URL = p.ProjectPageURL
	case p.PDFFileURL != "":
		item.URL = p.PDFFileURL
	}
	return item
}

// SplitAuthors splits an author line on commas and a final "and".
func SplitAuthors(s string) []string {
	s = strings.ReplaceAll(s, " and ", ", ")
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		part = strings.TrimPrefix(part, "and ")
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseAuthorName splits on the last space: everything before is given,
// the last token is family. Single-token names use the literal field.
func parseAuthorName(name string) CSLName {
	name = strings.TrimSpace(name)
	if name == "" {
		return CSLName{}
	}
	idx := strings.LastIndex(name, " ")
	if idx < 0 {
		return CSLName{Literal: name}
	}
	return CSLName{
		Given:  name[:idx],
		Family: name[idx+1:],
	}
}
