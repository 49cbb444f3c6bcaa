// Copyright LIMIT Lab, 2026. All rights reserved.

// Package content loads the site's static content set: lab information,
// publications, members, and news.
//
// Content is authored as YAML under a content directory. Each file is
// optional; a file missing from the directory falls back to the built-in
// default of the same name, so an empty checkout still renders a site.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/pkg/types"
)

const (
	SiteFile         = "site.yaml"
	PublicationsFile = "publications.yaml"
	MembersFile      = "members.yaml"
	NewsFile         = "news.yaml"
)

// Files lists the content files in load order.
var Files = []string{SiteFile, PublicationsFile, MembersFile, NewsFile}

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Content is one loaded, immutable content set.
type Content struct {
	Site         types.SiteInfo
	Publications *publication.Store
	Members      []types.Member
	News         []types.NewsItem
}

type publicationsDoc struct {
	Publications []types.Publication `yaml:"publications"`
}

type membersDoc struct {
	Members []types.Member `yaml:"members"`
}

type newsDoc struct {
	News []types.NewsItem `yaml:"news"`
}

// Default returns the built-in content set.
func Default() (*Content, error) {
	return load(nil)
}

// Load reads the content set from dir. A missing directory yields the
// built-in defaults.
func Load(dir string) (*Content, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default()
		}
		return nil, fmt.Errorf("reading content directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content path %s is not a directory", dir)
	}
	return load(os.DirFS(dir))
}

// LoadFS reads the content set from fsys, falling back to the defaults for
// files it does not contain.
func LoadFS(fsys fs.FS) (*Content, error) {
	return load(fsys)
}

func load(fsys fs.FS) (*Content, error) {
	var c Content

	if err := readDoc(fsys, SiteFile, &c.Site); err != nil {
		return nil, err
	}

	var pubs publicationsDoc
	if err := readDoc(fsys, PublicationsFile, &pubs); err != nil {
		return nil, err
	}
	store, err := publication.NewStore(pubs.Publications)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", PublicationsFile, err)
	}
	c.Publications = store

	var members membersDoc
	if err := readDoc(fsys, MembersFile, &members); err != nil {
		return nil, err
	}
	c.Members = members.Members

	var news newsDoc
	if err := readDoc(fsys, NewsFile, &news); err != nil {
		return nil, err
	}
	c.News = news.News

	return &c, nil
}

// readDoc decodes name from fsys, or from the defaults when fsys is nil or
// does not contain it.
func readDoc(fsys fs.FS, name string, v any) error {
	var (
		data []byte
		err  error
	)
	if fsys != nil {
		data, err = fs.ReadFile(fsys, name)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading %s: %w", name, err)
		}
	}
	if fsys == nil || errors.Is(err, fs.ErrNotExist) {
		data, err = defaultsFS.ReadFile("defaults/" + name)
		if err != nil {
			return fmt.Errorf("reading built-in %s: %w", name, err)
		}
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parsing %s: %w", name, err)
	}
	return nil
}

// ReadPublications parses a publications.yaml file without building a
// Store, preserving source order and any duplicate IDs for the caller to
// report.
func ReadPublications(path string) ([]types.Publication, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var doc publicationsDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc.Publications, nil
}

// WithPublications returns a copy of c that serves store instead of the
// YAML-loaded publications.
func (c *Content) WithPublications(store *publication.Store) *Content {
	cp := *c
	cp.Publications = store
	return &cp
}

// WriteDefaults copies the built-in content files into dir, skipping files
// that already exist. It returns the paths written.
func WriteDefaults(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}
	var written []string
	for _, name := range Files {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			continue
		}
		data, err := defaultsFS.ReadFile("defaults/" + name)
		if err != nil {
			return written, fmt.Errorf("reading built-in %s: %w", name, err)
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return written, fmt.Errorf("writing %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}
