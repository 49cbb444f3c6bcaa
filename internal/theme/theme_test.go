// Copyright LIMIT Lab, 2026. All rights reserved.

package theme

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/limitlab/labsite/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"light", Light, false},
		{"DARK", Dark, false},
		{" system ", System, false},
		{"", "", true},
		{"sepia", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownTheme))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		mode       Mode
		systemDark bool
		want       bool
	}{
		{Light, false, false},
		{Light, true, false},
		{Dark, false, true},
		{Dark, true, true},
		{System, false, false},
		{System, true, true},
		{Mode("bogus"), true, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.mode.Resolve(tt.systemDark), "%s/%v", tt.mode, tt.systemDark)
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, Light, System.Next())
	assert.Equal(t, Dark, Light.Next())
	assert.Equal(t, System, Dark.Next())
	assert.Equal(t, System, Mode("x").Next())
}

func TestPick(t *testing.T) {
	pair := types.AssetPair{Light: "l.svg", Dark: "d.svg"}
	assert.Equal(t, "l.svg", Pick(pair, false))
	assert.Equal(t, "d.svg", Pick(pair, true))
	assert.Equal(t, "l.svg", Pick(types.AssetPair{Light: "l.svg"}, true))
	assert.Equal(t, "d.svg", Pick(types.AssetPair{Dark: "d.svg"}, false))
	assert.Empty(t, Pick(types.AssetPair{}, true))
}

func TestRequestResolution(t *testing.T) {
	tests := []struct {
		name   string
		cookie string
		hint   string
		want   bool
	}{
		{"no preference no hint", "", "", false},
		{"system with dark hint", "", `"dark"`, true},
		{"explicit light beats hint", "light", "dark", false},
		{"explicit dark", "dark", "light", true},
		{"invalid cookie falls back to system", "neon", "dark", true},
		{"unknown hint is light", "system", "no-preference", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.cookie != "" {
				r.AddCookie(&http.Cookie{Name: CookieName, Value: tt.cookie})
			}
			if tt.hint != "" {
				r.Header.Set(HintHeader, tt.hint)
			}
			assert.Equal(t, tt.want, IsDark(r))
		})
	}
}

func TestSetCookie(t *testing.T) {
	rec := httptest.NewRecorder()
	SetCookie(rec, Dark)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.Equal(t, "dark", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}
