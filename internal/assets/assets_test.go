// Copyright LIMIT Lab, 2026. All rights reserved.

package assets

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limitlab/labsite/pkg/types"
)

// --- naming ---

func TestBuildFilename(t *testing.T) {
	assert.Equal(t, "talk_v1.0.0_abcdef123456-ja.pdf",
		BuildFilename("talk", "v1.0.0", "abcdef123456", "-ja", "", ".pdf", false))
	assert.Equal(t, "talk_latest.pdf",
		BuildFilename("talk", "v1.0.0", "abcdef123456", "", "", ".pdf", true))
	assert.Equal(t, "poster_latest-en-w1200.png",
		BuildFilename("poster", "v2", "x", "-en", "-w1200", ".png", true))
}

func TestBuildKey(t *testing.T) {
	assert.Equal(t, "iccv2025/s/file.pdf", BuildKey("iccv2025", "s", "file.pdf"))
	assert.Equal(t, "iccv2025/s/file.pdf", BuildKey("/iccv2025/ ", " s/", "file.pdf"))
}

func TestNormSuffix(t *testing.T) {
	tests := map[string]string{
		"":       "",
		"ja":     "-ja",
		"-ja":    "-ja",
		"w1200":  "-w1200",
		"-w1200": "-w1200",
	}
	for in, want := range tests {
		assert.Equal(t, want, NormSuffix(in), in)
	}
}

func TestHashes(t *testing.T) {
	// sha256("hello") = 2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824
	assert.Equal(t, "2cf24dba5fb0", ShortHash([]byte("hello")))
	assert.Equal(t, "LPJNul+wow4m6DsqxbninhsWHlwfp0JecwQzYpOLmCQ=", Checksum([]byte("hello")))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType("x.pdf"))
	assert.Equal(t, "image/png", ContentType("X.PNG"))
	assert.Equal(t, "application/octet-stream", ContentType("blob.unknownext"))

	assert.Equal(t, `inline; filename="doc.pdf"`, ContentDisposition("application/pdf", "slides/doc.pdf"))
	assert.Empty(t, ContentDisposition("image/png", "img.png"))
}

// --- validation ---

func TestValidate(t *testing.T) {
	base := Request{File: "a.pdf", Event: "iccv2025", Type: "s", Slug: "talk", VersionTag: "v1"}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Request)
		want   error
	}{
		{"bad version", func(r *Request) { r.VersionTag = "1.0.0" }, ErrInvalidVersionTag},
		{"empty version", func(r *Request) { r.VersionTag = "" }, ErrInvalidVersionTag},
		{"no extension", func(r *Request) { r.File = "README" }, ErrMissingExtension},
		{"no event", func(r *Request) { r.Event = " " }, ErrMissingField},
		{"no slug", func(r *Request) { r.Slug = "" }, ErrMissingField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := base
			tt.mutate(&r)
			err := r.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), err.Error())
		})
	}
}

func TestResolve(t *testing.T) {
	env, err := Resolve(nil, "prod")
	require.NoError(t, err)
	assert.Equal(t, "cdn.limitlab.xyz", env.Domain)

	custom := map[string]types.AssetEnvironment{"stage": {Bucket: "b", Domain: "d"}}
	_, err = Resolve(custom, "prod")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownEnvironment))
	assert.Contains(t, err.Error(), "stage")
}

// --- plan ---

func TestNewPlan(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "opening.pdf")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))

	env := DefaultEnvironments["dev"]
	p, err := NewPlan(Request{
		File: file, Event: "iccv2025", Type: "s", Slug: "opening",
		VersionTag: "v2025-10-19", Lang: "ja",
	}, "dev", env)
	require.NoError(t, err)

	assert.Equal(t, "2cf24dba5fb0", p.ContentHash)
	assert.Equal(t, "iccv2025/s/opening_v2025-10-19_2cf24dba5fb0-ja.pdf", p.Versioned.Key)
	assert.Equal(t, "iccv2025/s/opening_latest-ja.pdf", p.Latest.Key)
	assert.Equal(t, "https://cdn.dev.limitlab.xyz/iccv2025/s/opening_latest-ja.pdf", p.Latest.URL)
	assert.Equal(t, "s3://dev-limitlab-webpage-cdn-cloudfront-origin/"+p.Versioned.Key, p.Versioned.S3URI)
	assert.Equal(t, VersionedCacheControl, p.Versioned.CacheControl)
	assert.Equal(t, LatestCacheControl, p.Latest.CacheControl)
	assert.Equal(t, "application/pdf", p.Headers.ContentType)
	assert.Equal(t, `inline; filename="opening.pdf"`, p.Headers.ContentDisposition)
	assert.Equal(t, ServerSideEncryption, p.Headers.ServerSideEncryption)
}

func TestNewPlanMissingFile(t *testing.T) {
	_, err := NewPlan(Request{
		File: filepath.Join(t.TempDir(), "none.pdf"), Event: "e", Type: "s", Slug: "x", VersionTag: "v1",
	}, "dev", DefaultEnvironments["dev"])
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
