// Copyright LIMIT Lab, 2026. All rights reserved.

// Package web renders the site's pages and serves them over HTTP.
//
// The same Renderer produces pages for the live server and for the static
// export; PageData.Static switches the publications filter between
// server-side form submission and in-page filtering.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/limitlab/labsite/internal/nav"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded assets rooted at the static directory.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

var pageTemplates = map[nav.Page]string{
	nav.Top:          "templates/top.html",
	nav.Publications: "templates/publications.html",
	nav.Contact:      "templates/contact.html",
}

// Renderer executes the page templates. It is safe for concurrent use.
type Renderer struct {
	pages map[nav.Page]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	r := &Renderer{pages: make(map[nav.Page]*template.Template, len(pageTemplates))}
	for page, file := range pageTemplates {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("cloning layout for %s: %w", page, err)
		}
		if _, err := t.ParseFS(templatesFS, file); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", file, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render writes the page to w. Output is buffered so a template error
// never leaves a partial page behind.
func (r *Renderer) Render(w io.Writer, data PageData) error {
	t, ok := r.pages[data.Page.Page]
	if !ok {
		return fmt.Errorf("%w: %s", nav.ErrUnknownPage, data.Page.Page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("rendering %s: %w", data.Page.Page, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

var funcs = template.FuncMap{
	"markdown": Markdown,
	"join":     strings.Join,
}

// Markdown renders trusted site content to HTML. Links open in a new tab.
func Markdown(src string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := mdhtml.NewRenderer(mdhtml.RendererOptions{
		Flags: mdhtml.CommonFlags | mdhtml.HrefTargetBlank,
	})
	out := markdown.ToHTML([]byte(src), p, r)
	return template.HTML(bytes.TrimSpace(out))
}
