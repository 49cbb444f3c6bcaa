// Copyright LIMIT Lab, 2026. All rights reserved.

// Package types defines shared data structures for the labsite content model
// and its configuration.
//
// Content records carry both json and yaml tags: YAML is the authoring
// format under content/, JSON is what the publications API and the static
// export serve to the browser.
package types

// Publication is one entry in the lab's publication list. The reference
// URLs are optional; an empty value means no link is rendered.
type Publication struct {
	// ID is unique within a content set and doubles as the sort key
	// (larger IDs are newer entries).
	ID int `json:"id" yaml:"id"`

	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors is the display string for the author list (e.g. "Alice J., Bob S.").
	Authors string `json:"authors" yaml:"authors"`

	// Conference is the venue facet (e.g. "ECCV", "CVPR WS").
	Conference string `json:"conference" yaml:"conference"`

	// Year is the publication year facet.
	Year int `json:"year" yaml:"year"`

	// Field is the research area facet (e.g. "Machine Learning").
	Field string `json:"field" yaml:"field"`

	ImageURL       string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
	ProjectPageURL string `json:"project_page_url,omitempty" yaml:"project_page_url,omitempty"`
	PDFFileURL     string `json:"pdf_file_url,omitempty" yaml:"pdf_file_url,omitempty"`
	GitHubURL      string `json:"github_url,omitempty" yaml:"github_url,omitempty"`
}

// HasLinks reports whether any of the project, PDF, or GitHub links is set.
func (p Publication) HasLinks() bool {
	return p.ProjectPageURL != "" || p.PDFFileURL != "" || p.GitHubURL != ""
}
