/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package theme

import (
	"errors"
	"fmt"
	"strings"

	"bennypowers.dev/prism/token"
)

// ErrMissingDefaultDark indicates the themes lack the required DefaultDark variant.
var ErrMissingDefaultDark = errors.New("missing " + DefaultDarkName + " theme")

// MergeDarkValues pairs every token with its dark-mode counterpart.
//
// The result starts with the default theme, whose tokens take their dark
// values from DefaultDark, followed by one theme per light input theme in
// input order. A light theme's tokens are its own overrides or, when
// includeInherited is set, the full default set with its overrides spliced
// in; they take dark values from the first dark theme whose name contains
// the light theme's name.
//
// Tokens are matched by variable name. A color keeps no dark value when
// both sides have the same hex. Inputs are never modified.
func MergeDarkValues(defaults []*token.Token, themes []Theme, includeInherited bool) ([]Theme, error) {
	light, dark := Split(themes)

	defaultDark, ok := Find(dark, DefaultDarkName)
	if !ok {
		return nil, fmt.Errorf("%w: got %d themes (%s)", ErrMissingDefaultDark, len(themes), themeNames(themes))
	}

	merged, err := pairAll(defaults, nil, indexByName(defaultDark.Tokens))
	if err != nil {
		return nil, fmt.Errorf("merging %s: %w", DefaultName, err)
	}

	out := make([]Theme, 0, len(light)+1)
	out = append(out, Theme{Name: DefaultName, Tokens: merged})

	for _, lt := range light {
		base := lt.Tokens
		var overrides map[string]*token.Token
		if includeInherited {
			base = defaults
			overrides = indexByName(lt.Tokens)
		}

		var darkTokens map[string]*token.Token
		if dt, ok := darkVariantOf(dark, lt.Name); ok {
			darkTokens = indexByName(dt.Tokens)
		}

		tokens, err := pairAll(base, overrides, darkTokens)
		if err != nil {
			return nil, fmt.Errorf("merging %s: %w", lt.Name, err)
		}
		out = append(out, Theme{Name: lt.Name, Tokens: tokens})
	}

	return out, nil
}

// pairAll replaces each token with its override, if any, then attaches
// the matching dark value.
func pairAll(tokens []*token.Token, overrides, dark map[string]*token.Token) ([]*token.Token, error) {
	out := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		name := tok.VariableName()
		result := tok
		if o, ok := overrides[name]; ok {
			result = o
		}
		paired, err := pairDark(result, dark[name])
		if err != nil {
			return nil, err
		}
		out = append(out, paired)
	}
	return out, nil
}

// pairDark returns a copy of tok with darkTok's value attached as its
// dark value. The result never aliases tok.
func pairDark(tok, darkTok *token.Token) (*token.Token, error) {
	if darkTok == nil {
		return tok.Clone(), nil
	}
	if tok.Value == nil || darkTok.Value == nil {
		return nil, fmt.Errorf("%w: %s", token.ErrMissingValue, tok.DotPath())
	}
	if tok.Value.Type() != darkTok.Value.Type() {
		return nil, fmt.Errorf("%w: %s is %s but its dark counterpart is %s",
			token.ErrShapeMismatch, tok.DotPath(), tok.Value.Type(), darkTok.Value.Type())
	}
	if light, ok := tok.Value.(token.ColorValue); ok {
		dark := darkTok.Value.(token.ColorValue)
		if light.Hex != "" && strings.EqualFold(light.Hex, dark.Hex) {
			return tok.Clone(), nil
		}
	}
	return tok.WithDarkValue(darkTok.Value), nil
}

// darkVariantOf returns the first dark theme whose name contains name.
func darkVariantOf(dark []Theme, name string) (Theme, bool) {
	for _, t := range dark {
		if strings.Contains(t.Name, name) {
			return t, true
		}
	}
	return Theme{}, false
}

// indexByName maps variable names to tokens. The first token wins.
func indexByName(tokens []*token.Token) map[string]*token.Token {
	idx := make(map[string]*token.Token, len(tokens))
	for _, tok := range tokens {
		name := tok.VariableName()
		if _, exists := idx[name]; !exists {
			idx[name] = tok
		}
	}
	return idx
}

func themeNames(themes []Theme) string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return strings.Join(names, ", ")
}
