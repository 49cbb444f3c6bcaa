// Copyright LIMIT Lab, 2026. All rights reserved.

// Package theme resolves the light/dark display mode. Rendering code only
// ever sees the resolved boolean; the three-valued Mode is the user's
// preference.
package theme

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/limitlab/labsite/pkg/types"
)

// ErrUnknownTheme is returned when a theme name is not light, dark, or system.
var ErrUnknownTheme = errors.New("unknown theme")

// Mode is a display preference.
type Mode string

const (
	Light  Mode = "light"
	Dark   Mode = "dark"
	System Mode = "system"
)

// Modes lists the preferences in cycling order.
var Modes = []Mode{System, Light, Dark}

// CookieName holds the preference for HTTP clients.
const CookieName = "theme"

// HintHeader is the client hint that reports the browser's color scheme.
const HintHeader = "Sec-CH-Prefers-Color-Scheme"

// Parse validates a theme name. Matching is case-insensitive.
func Parse(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case Light, Dark, System:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Resolve reports whether m renders dark. System defers to systemDark.
func (m Mode) Resolve(systemDark bool) bool {
	switch m {
	case Dark:
		return true
	case System:
		return systemDark
	default:
		return false
	}
}

// Next returns the mode after m in Modes.
func (m Mode) Next() Mode {
	for i, v := range Modes {
		if v == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return System
}

// Pick selects the variant for the resolved mode. A missing variant falls
// back to the other one.
func Pick(pair types.AssetPair, dark bool) string {
	if dark && pair.Dark != "" {
		return pair.Dark
	}
	if pair.Light != "" {
		return pair.Light
	}
	return pair.Dark
}

// FromRequest reads the stored preference. A missing or invalid cookie
// yields System.
func FromRequest(r *http.Request) Mode {
	c, err := r.Cookie(CookieName)
	if err != nil {
		return System
	}
	m, err := Parse(c.Value)
	if err != nil {
		return System
	}
	return m
}

// SystemDark reports the client's color scheme hint. Absent or unknown
// hints resolve to light.
func SystemDark(r *http.Request) bool {
	v := strings.Trim(strings.TrimSpace(r.Header.Get(HintHeader)), `"`)
	return strings.EqualFold(v, "dark")
}

// IsDark resolves the display mode for a request.
func IsDark(r *http.Request) bool {
	return FromRequest(r).Resolve(SystemDark(r))
}

// SetCookie stores m as the client's preference.
func SetCookie(w http.ResponseWriter, m Mode) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    string(m),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}
