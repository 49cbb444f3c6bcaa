// Copyright LIMIT Lab, 2026. All rights reserved.

package types

// Member is a person listed on the home page.
type Member struct {
	Name        string `json:"name" yaml:"name"`
	Affiliation string `json:"affiliation" yaml:"affiliation"`
	PhotoURL    string `json:"photo_url,omitempty" yaml:"photo_url,omitempty"`
	GitHubURL   string `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	XURL        string `json:"x_url,omitempty" yaml:"x_url,omitempty"`
	LinkedInURL string `json:"linkedin_url,omitempty" yaml:"linkedin_url,omitempty"`
}

// Initials returns up to two leading letters of the member's name, used
// as the avatar fallback when no photo is available.
func (m Member) Initials() string {
	var out []rune
	start := true
	for _, r := range m.Name {
		if r == ' ' {
			start = true
			continue
		}
		if start {
			out = append(out, r)
			start = false
			if len(out) == 2 {
				break
			}
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// NewsItem is one dated entry in the home page news list.
type NewsItem struct {
	// Date is the entry date in YYYY-MM-DD format.
	Date string `json:"date" yaml:"date"`

	// Description is Markdown rendered inline.
	Description string `json:"description" yaml:"description"`
}

// AssetPair holds the two pre-supplied variants of a decorative asset.
// The display mode picks one; see internal/theme.
type AssetPair struct {
	Light string `json:"light" yaml:"light"`
	Dark  string `json:"dark" yaml:"dark"`
}

// ContactChannel is one way to reach the lab, shown on the contact page.
type ContactChannel struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	LinkLabel   string `json:"link_label" yaml:"link_label"`
	URL         string `json:"url" yaml:"url"`
}

// SiteInfo holds the lab-wide text and assets used by the shared layout
// and the home and contact pages.
type SiteInfo struct {
	Name    string `json:"name" yaml:"name"`
	Tagline string `json:"tagline" yaml:"tagline"`

	// Description is Markdown shown under the tagline on the home page.
	Description string `json:"description" yaml:"description"`

	// Logo is the header logo; NavMark is the small mark shown next to
	// each navigation link.
	Logo    AssetPair `json:"logo" yaml:"logo"`
	NavMark AssetPair `json:"nav_mark" yaml:"nav_mark"`

	Copyright     string `json:"copyright" yaml:"copyright"`
	CopyrightYear int    `json:"copyright_year" yaml:"copyright_year"`
	DeveloperName string `json:"developer_name,omitempty" yaml:"developer_name,omitempty"`
	DeveloperURL  string `json:"developer_url,omitempty" yaml:"developer_url,omitempty"`

	ContactIntro    string           `json:"contact_intro" yaml:"contact_intro"`
	ContactHeading  string           `json:"contact_heading" yaml:"contact_heading"`
	ContactSubtitle string           `json:"contact_subtitle" yaml:"contact_subtitle"`
	Contacts        []ContactChannel `json:"contacts" yaml:"contacts"`
}
