// Copyright LIMIT Lab, 2026. All rights reserved.

// Package catalog keeps publications in a SQLite database so the site can
// be served from an index rather than the YAML source. Imports are
// incremental: an unchanged source file (by modification time) is skipped.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/limitlab/labsite/internal/content"
	"github.com/limitlab/labsite/internal/publication"
	"github.com/limitlab/labsite/pkg/types"
)

// Catalog manages the publications SQLite database.
type Catalog struct {
	db *sql.DB
}

// Open opens or creates the database at path and ensures the schema.
func Open(path string) (*Catalog, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	c := &Catalog{db: db}
	if err := c.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return c, nil
}

// Close releases the database connection.
func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS publications (
			id INTEGER PRIMARY KEY,
			position INTEGER NOT NULL,
			title TEXT NOT NULL,
			authors TEXT,
			conference TEXT NOT NULL,
			year INTEGER NOT NULL,
			field TEXT NOT NULL,
			image_url TEXT,
			project_page_url TEXT,
			pdf_file_url TEXT,
			github_url TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_publications_position ON publications(position)`,
		`CREATE TABLE IF NOT EXISTS import_status (
			source TEXT PRIMARY KEY,
			file_mod_time TEXT
		)`,
	}

	for _, stmt := range statements {
		if _, err := c.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// ImportSummary holds counts from one import run.
type ImportSummary struct {
	Inserted  int
	Updated   int
	Unchanged int
	Removed   int
	Skipped   bool
}

// Total returns the number of publications in the imported source.
func (s ImportSummary) Total() int {
	return s.Inserted + s.Updated + s.Unchanged
}

// ImportFile loads a publications.yaml file into the catalog. The file is
// validated as a whole (duplicate ids reject the import) and then replaces
// the catalog contents in one transaction. Unless force is set, a source
// whose modification time matches the last import is skipped.
func (c *Catalog) ImportFile(ctx context.Context, path string, force bool, w io.Writer) (ImportSummary, error) {
	info, err := os.Stat(path)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("reading %s: %w", path, err)
	}
	modTime := info.ModTime().UTC().Format(time.RFC3339Nano)
	source, err := filepath.Abs(path)
	if err != nil {
		source = path
	}

	if !force {
		var stored string
		err := c.db.QueryRowContext(ctx,
			`SELECT file_mod_time FROM import_status WHERE source = ?`, source,
		).Scan(&stored)
		if err == nil && stored == modTime {
			fmt.Fprintf(w, "skipped %s (unchanged)\n", path)
			return ImportSummary{Skipped: true}, nil
		}
	}

	records, err := content.ReadPublications(path)
	if err != nil {
		return ImportSummary{}, err
	}
	store, err := publication.NewStore(records)
	if err != nil {
		return ImportSummary{}, fmt.Errorf("validating %s: %w", path, err)
	}

	summary, err := c.replace(ctx, store.All(), source, modTime, w)
	if err != nil {
		return summary, err
	}

	fmt.Fprintf(w, "\ninserted: %d, updated: %d, unchanged: %d, removed: %d\n",
		summary.Inserted, summary.Updated, summary.Unchanged, summary.Removed)
	return summary, nil
}

func (c *Catalog) replace(ctx context.Context, records []types.Publication, source, modTime string, w io.Writer) (ImportSummary, error) {
	var summary ImportSummary

	existing, err := c.Publications(ctx)
	if err != nil {
		return summary, err
	}
	byID := make(map[int]types.Publication, len(existing))
	for _, p := range existing {
		byID[p.ID] = p
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return summary, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM publications`); err != nil {
		return summary, fmt.Errorf("clearing publications: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO publications (id, position, title, authors, conference, year, field,
			image_url, project_page_url, pdf_file_url, github_url)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return summary, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, p := range records {
		_, err := stmt.ExecContext(ctx,
			p.ID, i, p.Title, p.Authors, p.Conference, p.Year, p.Field,
			p.ImageURL, p.ProjectPageURL, p.PDFFileURL, p.GitHubURL,
		)
		if err != nil {
			return summary, fmt.Errorf("inserting publication %d: %w", p.ID, err)
		}

		prev, ok := byID[p.ID]
		delete(byID, p.ID)
		switch {
		case !ok:
			fmt.Fprintf(w, "insert  %d %s\n", p.ID, p.Title)
			summary.Inserted++
		case prev != p:
			fmt.Fprintf(w, "update  %d %s\n", p.ID, p.Title)
			summary.Updated++
		default:
			summary.Unchanged++
		}
	}
	for id, p := range byID {
		fmt.Fprintf(w, "remove  %d %s\n", id, p.Title)
		summary.Removed++
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO import_status (source, file_mod_time) VALUES (?, ?)
		 ON CONFLICT(source) DO UPDATE SET file_mod_time=excluded.file_mod_time`,
		source, modTime,
	)
	if err != nil {
		return summary, fmt.Errorf("updating import status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return summary, fmt.Errorf("committing import: %w", err)
	}
	return summary, nil
}

// Publications returns every catalogued publication in source order.
func (c *Catalog) Publications(ctx context.Context) ([]types.Publication, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT id, title, authors, conference, year, field,
			image_url, project_page_url, pdf_file_url, github_url
		 FROM publications ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("querying publications: %w", err)
	}
	defer rows.Close()

	var out []types.Publication
	for rows.Next() {
		var (
			p                                  types.Publication
			authors, image, project, pdf, repo sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.Title, &authors, &p.Conference, &p.Year, &p.Field,
			&image, &project, &pdf, &repo); err != nil {
			return nil, fmt.Errorf("scanning publication: %w", err)
		}
		p.Authors = authors.String
		p.ImageURL = image.String
		p.ProjectPageURL = project.String
		p.PDFFileURL = pdf.String
		p.GitHubURL = repo.String
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating publications: %w", err)
	}
	return out, nil
}

// Store loads the catalogued publications into an in-memory Store.
func (c *Catalog) Store(ctx context.Context) (*publication.Store, error) {
	records, err := c.Publications(ctx)
	if err != nil {
		return nil, err
	}
	return publication.NewStore(records)
}

// Stats reports the catalogue size and the time of the last import.
type Stats struct {
	Publications int
	LastImport   string
}

// Stats returns catalogue statistics.
func (c *Catalog) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	if err := c.db.QueryRowContext(ctx, `SELECT count(*) FROM publications`).Scan(&s.Publications); err != nil {
		return s, fmt.Errorf("counting publications: %w", err)
	}
	var last sql.NullString
	if err := c.db.QueryRowContext(ctx, `SELECT max(file_mod_time) FROM import_status`).Scan(&last); err != nil {
		return s, fmt.Errorf("reading import status: %w", err)
	}
	s.LastImport = last.String
	return s, nil
}
