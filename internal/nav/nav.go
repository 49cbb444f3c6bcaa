// Copyright LIMIT Lab, 2026. All rights reserved.

// Package nav defines the site's pages and resolves request paths to them.
package nav

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnknownPage is returned by Navigate for paths outside the site.
var ErrUnknownPage = errors.New("unknown page")

// Page identifies one of the site's pages.
type Page string

const (
	Top          Page = "top"
	Publications Page = "publications"
	Contact      Page = "contact"
)

// Item is one navigation entry.
type Item struct {
	Page  Page
	Label string
	Path  string
}

// Pages lists the navigation entries in header order.
var Pages = []Item{
	{Page: Top, Label: "Top", Path: "/"},
	{Page: Publications, Label: "Publications", Path: "/publications/"},
	{Page: Contact, Label: "Contact", Path: "/contact/"},
}

// Normalize cleans p and gives it the canonical trailing slash used by the
// static export. Query strings and fragments are dropped.
func Normalize(p string) string {
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "/"
	}
	p = path.Clean("/" + p)
	p = strings.TrimSuffix(p, "/index.html")
	if p == "" || p == "/" {
		return "/"
	}
	return p + "/"
}

// Navigate resolves p to a page.
func Navigate(p string) (Item, error) {
	n := Normalize(p)
	for _, it := range Pages {
		if it.Path == n {
			return it, nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s", ErrUnknownPage, p)
}

// Lookup returns the entry for page.
func Lookup(page Page) (Item, bool) {
	for _, it := range Pages {
		if it.Page == page {
			return it, true
		}
	}
	return Item{}, false
}

// Active reports whether it is the current page for path p.
func (it Item) Active(p string) bool {
	return it.Path == Normalize(p)
}

// Link is a rendered navigation entry.
type Link struct {
	Item
	Active bool
}

// Items returns the navigation entries with the current page marked.
func Items(current string) []Link {
	links := make([]Link, len(Pages))
	for i, it := range Pages {
		links[i] = Link{Item: it, Active: it.Active(current)}
	}
	return links
}
