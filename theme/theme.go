/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package theme models named token overrides and reconciles them with
// the default token set and their dark-mode counterparts.
package theme

import (
	"regexp"
	"strings"

	"bennypowers.dev/prism/token"
)

const (
	// DefaultName is the name of the implicit base theme.
	DefaultName = "Default"

	// DefaultDarkName is the dark variant of the default theme.
	DefaultDarkName = "DefaultDark"
)

// Theme is a named set of tokens. For input themes these are the
// overridden tokens; for merged themes they are the tokens to generate.
type Theme struct {
	Name   string         `json:"name"`
	Tokens []*token.Token `json:"-"`
}

// Default returns the unnamed base theme with the given tokens.
func Default(tokens []*token.Token) Theme {
	return Theme{Name: DefaultName, Tokens: tokens}
}

// IsDefault reports whether t is the base theme. A theme with no name
// is treated as the base theme.
func (t Theme) IsDefault() bool {
	return t.Name == "" || t.Name == DefaultName
}

// IsDark reports whether t is a dark variant.
func (t Theme) IsDark() bool {
	return IsDarkName(t.Name)
}

// IsDarkName reports whether a theme name denotes a dark variant.
func IsDarkName(name string) bool {
	return strings.Contains(strings.ToLower(name), "dark")
}

var whitespace = regexp.MustCompile(`\s`)

// Compact returns a copy of t with all whitespace removed from its name,
// making the name usable in generated type and module names.
func (t Theme) Compact() Theme {
	t.Name = whitespace.ReplaceAllString(t.Name, "")
	return t
}

// Find returns the first theme with exactly the given name.
func Find(themes []Theme, name string) (Theme, bool) {
	for _, t := range themes {
		if t.Name == name {
			return t, true
		}
	}
	return Theme{}, false
}

// Split partitions themes into light and dark variants, preserving order.
func Split(themes []Theme) (light, dark []Theme) {
	for _, t := range themes {
		if t.IsDark() {
			dark = append(dark, t)
		} else {
			light = append(light, t)
		}
	}
	return light, dark
}

// Light returns the light themes with compacted names, preceded by the
// default theme unless noDefault is set.
func Light(themes []Theme, noDefault bool) []Theme {
	light, _ := Split(themes)
	out := make([]Theme, 0, len(light)+1)
	if !noDefault {
		out = append(out, Theme{Name: DefaultName})
	}
	for _, t := range light {
		out = append(out, t.Compact())
	}
	return out
}
