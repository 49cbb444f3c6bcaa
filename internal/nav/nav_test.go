// Copyright LIMIT Lab, 2026. All rights reserved.

package nav

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "/"},
		{"/", "/"},
		{"/index.html", "/"},
		{"/publications", "/publications/"},
		{"/publications/", "/publications/"},
		{"publications", "/publications/"},
		{"/publications/index.html", "/publications/"},
		{"/publications?year=2024", "/publications/"},
		{"/contact/#slack", "/contact/"},
		{"//contact//", "/contact/"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), tt.in)
	}
}

func TestNavigate(t *testing.T) {
	it, err := Navigate("/publications")
	require.NoError(t, err)
	assert.Equal(t, Publications, it.Page)

	it, err = Navigate("/")
	require.NoError(t, err)
	assert.Equal(t, Top, it.Page)

	_, err = Navigate("/people/")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPage))
}

func TestActive(t *testing.T) {
	tests := []struct {
		current string
		want    Page
	}{
		{"/", Top},
		{"/publications", Publications},
		{"/publications/", Publications},
		{"/contact/", Contact},
	}
	for _, tt := range tests {
		t.Run(tt.current, func(t *testing.T) {
			var active []Page
			for _, l := range Items(tt.current) {
				if l.Active {
					active = append(active, l.Page)
				}
			}
			assert.Equal(t, []Page{tt.want}, active)
		})
	}

	for _, l := range Items("/unknown/") {
		assert.False(t, l.Active, "no item is active on an unknown page")
	}
}

func TestLookup(t *testing.T) {
	it, ok := Lookup(Contact)
	require.True(t, ok)
	assert.Equal(t, "/contact/", it.Path)

	_, ok = Lookup(Page("nope"))
	assert.False(t, ok)
}
