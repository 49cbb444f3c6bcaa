// Copyright LIMIT Lab, 2026. All rights reserved.

// Package linkcheck verifies that a built site's internal links resolve to
// files. External URLs, fragments, and non-HTTP schemes are not checked.
package linkcheck

import (
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Broken is one dangling reference.
type Broken struct {
	Page   string `json:"page"`
	Attr   string `json:"attr"`
	Target string `json:"target"`
}

func (b Broken) String() string {
	return fmt.Sprintf("%s: %s=%q does not resolve", b.Page, b.Attr, b.Target)
}

// Report summarizes one check run.
type Report struct {
	Pages  int
	Links  int
	Broken []Broken
}

// OK reports whether every checked link resolved.
func (r Report) OK() bool { return len(r.Broken) == 0 }

var selectors = []struct {
	sel, attr string
}{
	{"a[href]", "href"},
	{"link[href]", "href"},
	{"script[src]", "src"},
	{"img[src]", "src"},
	{"img[data-light]", "data-light"},
	{"img[data-dark]", "data-dark"},
}

// Check walks every .html file under root.
func Check(root string) (Report, error) {
	var rep Report
	fsys := os.DirFS(root)

	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".html") {
			return nil
		}
		rep.Pages++

		f, err := fsys.Open(p)
		if err != nil {
			return fmt.Errorf("opening %s: %w", p, err)
		}
		doc, err := goquery.NewDocumentFromReader(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", p, err)
		}

		for _, s := range selectors {
			doc.Find(s.sel).Each(func(_ int, sel *goquery.Selection) {
				target := strings.TrimSpace(sel.AttrOr(s.attr, ""))
				rel, ok := internalPath(p, target)
				if !ok {
					return
				}
				rep.Links++
				if !exists(fsys, rel) {
					rep.Broken = append(rep.Broken, Broken{Page: p, Attr: s.attr, Target: target})
				}
			})
		}
		return nil
	})
	if err != nil {
		return rep, fmt.Errorf("checking %s: %w", root, err)
	}

	sort.SliceStable(rep.Broken, func(i, j int) bool {
		if rep.Broken[i].Page != rep.Broken[j].Page {
			return rep.Broken[i].Page < rep.Broken[j].Page
		}
		return rep.Broken[i].Target < rep.Broken[j].Target
	})
	return rep, nil
}

// internalPath resolves target, found on page, to a slash-separated path
// relative to the site root. It reports false for links that leave the
// site or point nowhere.
func internalPath(page, target string) (string, bool) {
	if target == "" || strings.HasPrefix(target, "#") || strings.HasPrefix(target, "//") {
		return "", false
	}
	u, err := url.Parse(target)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}
	p := u.Path
	if p == "" {
		return "", false
	}
	if !strings.HasPrefix(p, "/") {
		p = path.Join("/", path.Dir(page), p)
		if strings.HasSuffix(u.Path, "/") {
			p += "/"
		}
	}
	clean := strings.TrimPrefix(path.Clean(p), "/")
	if strings.HasSuffix(p, "/") || clean == "" {
		clean = path.Join(clean, "index.html")
	}
	return clean, true
}

func exists(fsys fs.FS, rel string) bool {
	info, err := fs.Stat(fsys, rel)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err := fs.Stat(fsys, path.Join(rel, "index.html"))
		return err == nil
	}
	return true
}

