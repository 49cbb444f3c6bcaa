// Copyright LIMIT Lab, 2026. All rights reserved.

// Package assets plans CDN object keys for static files such as slides and
// posters. Each file is published twice: a versioned, content-addressed
// object cached forever, and a "latest" alias with a short TTL.
//
// Key layout:
//
//	{event}/{type}/{slug}_{version}_{hash12}{-lang}{-variant}{ext}
//	{event}/{type}/{slug}_latest{-lang}{-variant}{ext}
//
// Planning performs no network I/O.
package assets

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/limitlab/labsite/pkg/types"
)

var (
	ErrInvalidVersionTag  = errors.New("version tag must start with \"v\"")
	ErrMissingExtension   = errors.New("source file must have an extension")
	ErrMissingField       = errors.New("missing required field")
	ErrUnknownEnvironment = errors.New("unknown asset environment")
)

const (
	VersionedCacheControl = "public, max-age=31536000, immutable"
	LatestCacheControl    = "public, max-age=300"
	ServerSideEncryption  = "AES256"

	// HashLength is the number of hex digits of the content hash kept in
	// versioned file names.
	HashLength = 12
)

// DefaultEnvironments are used when configuration names none.
var DefaultEnvironments = map[string]types.AssetEnvironment{
	"prod": {Bucket: "prod-limitlab-webpage-cdn-cloudfront-origin", Domain: "cdn.limitlab.xyz"},
	"dev":  {Bucket: "dev-limitlab-webpage-cdn-cloudfront-origin", Domain: "cdn.dev.limitlab.xyz"},
}

// Request describes one file to publish.
type Request struct {
	File       string
	Event      string
	Type       string
	Slug       string
	VersionTag string
	Lang       string
	Variant    string
}

// Target is one object to write.
type Target struct {
	Key          string `json:"key" yaml:"key"`
	S3URI        string `json:"s3_uri" yaml:"s3_uri"`
	URL          string `json:"url" yaml:"url"`
	CacheControl string `json:"cache_control" yaml:"cache_control"`
}

// Headers are shared by both objects.
type Headers struct {
	ContentType          string `json:"content_type" yaml:"content_type"`
	ContentDisposition   string `json:"content_disposition,omitempty" yaml:"content_disposition,omitempty"`
	ServerSideEncryption string `json:"server_side_encryption" yaml:"server_side_encryption"`
	ChecksumSHA256       string `json:"checksum_sha256_b64" yaml:"checksum_sha256_b64"`
}

// Plan is the dry-run description of a publish.
type Plan struct {
	Environment string  `json:"env" yaml:"env"`
	Bucket      string  `json:"bucket" yaml:"bucket"`
	Domain      string  `json:"domain" yaml:"domain"`
	SourceFile  string  `json:"source_file" yaml:"source_file"`
	Event       string  `json:"event" yaml:"event"`
	Type        string  `json:"type" yaml:"type"`
	Slug        string  `json:"slug" yaml:"slug"`
	VersionTag  string  `json:"version_tag" yaml:"version_tag"`
	ContentHash string  `json:"content_hash" yaml:"content_hash"`
	Versioned   Target  `json:"versioned" yaml:"versioned"`
	Latest      Target  `json:"latest" yaml:"latest"`
	Headers     Headers `json:"headers" yaml:"headers"`
}

// NormSuffix returns s as a "-token" suffix, or "" when s is empty.
func NormSuffix(s string) string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") {
		return s
	}
	return "-" + s
}

// ShortHash returns the first HashLength hex digits of the SHA-256 of data.
func ShortHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:HashLength]
}

// Checksum returns the base64 SHA-256 of data.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

// BuildFilename assembles a versioned file name, or the latest alias when
// latest is set. Suffixes must already be normalized; ext includes the dot.
func BuildFilename(slug, versionTag, hash, langSuffix, variantSuffix, ext string, latest bool) string {
	base := slug + "_" + versionTag + "_" + hash
	if latest {
		base = slug + "_latest"
	}
	return base + langSuffix + variantSuffix + ext
}

// BuildKey joins the two directory levels and the file name. Surrounding
// slashes and spaces are trimmed from event and type.
func BuildKey(event, typeCode, filename string) string {
	return strings.Trim(event, "/ ") + "/" + strings.Trim(typeCode, "/ ") + "/" + filename
}

// ContentType guesses the MIME type from the file extension, without
// parameters. Unknown types are application/octet-stream.
func ContentType(filename string) string {
	t := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
	if t == "" {
		return "application/octet-stream"
	}
	if mt, _, err := mime.ParseMediaType(t); err == nil {
		return mt
	}
	return t
}

// ContentDisposition returns an inline disposition for PDFs so browsers
// render them, and "" for everything else.
func ContentDisposition(contentType, filename string) string {
	if contentType != "application/pdf" {
		return ""
	}
	return fmt.Sprintf("inline; filename=%q", filepath.Base(filename))
}

// Validate checks the request before any file is read.
func (r Request) Validate() error {
	for _, f := range []struct{ name, v string }{
		{"file", r.File}, {"event", r.Event}, {"type", r.Type}, {"slug", r.Slug},
	} {
		if strings.TrimSpace(f.v) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if filepath.Ext(r.File) == "" {
		return fmt.Errorf("%w: %s", ErrMissingExtension, r.File)
	}
	if !strings.HasPrefix(r.VersionTag, "v") {
		return fmt.Errorf("%w: %q", ErrInvalidVersionTag, r.VersionTag)
	}
	return nil
}

// Resolve looks up an environment by name.
func Resolve(envs map[string]types.AssetEnvironment, name string) (types.AssetEnvironment, error) {
	if len(envs) == 0 {
		envs = DefaultEnvironments
	}
	env, ok := envs[name]
	if !ok {
		names := make([]string, 0, len(envs))
		for n := range envs {
			names = append(names, n)
		}
		sort.Strings(names)
		return env, fmt.Errorf("%w: %q (known: %s)", ErrUnknownEnvironment, name, strings.Join(names, ", "))
	}
	return env, nil
}

// NewPlan reads the source file and computes both object targets.
func NewPlan(req Request, envName string, env types.AssetEnvironment) (Plan, error) {
	if err := req.Validate(); err != nil {
		return Plan{}, err
	}
	data, err := os.ReadFile(req.File)
	if err != nil {
		return Plan{}, fmt.Errorf("reading %s: %w", req.File, err)
	}
	return planFor(req, data, envName, env), nil
}

func planFor(req Request, data []byte, envName string, env types.AssetEnvironment) Plan {
	hash := ShortHash(data)
	ext := filepath.Ext(req.File)
	lang := NormSuffix(req.Lang)
	variant := NormSuffix(req.Variant)

	vKey := BuildKey(req.Event, req.Type, BuildFilename(req.Slug, req.VersionTag, hash, lang, variant, ext, false))
	lKey := BuildKey(req.Event, req.Type, BuildFilename(req.Slug, req.VersionTag, hash, lang, variant, ext, true))
	ctype := ContentType(req.File)

	target := func(key, cache string) Target {
		return Target{
			Key:          key,
			S3URI:        "s3://" + env.Bucket + "/" + key,
			URL:          "https://" + env.Domain + "/" + key,
			CacheControl: cache,
		}
	}

	return Plan{
		Environment: envName,
		Bucket:      env.Bucket,
		Domain:      env.Domain,
		SourceFile:  req.File,
		Event:       req.Event,
		Type:        req.Type,
		Slug:        req.Slug,
		VersionTag:  req.VersionTag,
		ContentHash: hash,
		Versioned:   target(vKey, VersionedCacheControl),
		Latest:      target(lKey, LatestCacheControl),
		Headers: Headers{
			ContentType:          ctype,
			ContentDisposition:   ContentDisposition(ctype, req.File),
			ServerSideEncryption: ServerSideEncryption,
			ChecksumSHA256:       Checksum(data),
		},
	}
}
