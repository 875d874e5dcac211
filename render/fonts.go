/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package render

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/prism/token"
)

// FontCombination is one family and weight used by typography tokens.
type FontCombination struct {
	Family   string
	Weight   string
	EnumCase string
}

// PostScriptName returns the Family-Weight name fonts are registered under.
func (c FontCombination) PostScriptName() string {
	return c.Family + "-" + c.Weight
}

// FontFamily groups the weights of one family.
type FontFamily struct {
	Name    string
	Weights []FontCombination
}

// UniqueFontCombinations returns each family and weight pair used by
// typography tokens once, in first-use order. Whitespace is removed from
// family names; the enum case is the lower-cased weight.
func (Functions) UniqueFontCombinations(tokens []*token.Token) []FontCombination {
	var out []FontCombination
	seen := make(map[string]bool)
	for _, tok := range tokens {
		v, ok := tok.Value.(token.TypographyValue)
		if !ok {
			continue
		}
		c := FontCombination{
			Family:   stripSpace(v.Font.Family),
			Weight:   v.Font.Subfamily,
			EnumCase: cases.Lower(language.Und).String(stripSpace(v.Font.Subfamily)),
		}
		key := c.Family + "\x00" + c.Weight
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// FontFamilies groups UniqueFontCombinations by family, in first-use order.
func (f Functions) FontFamilies(tokens []*token.Token) []FontFamily {
	var out []FontFamily
	index := make(map[string]int)
	for _, c := range f.UniqueFontCombinations(tokens) {
		i, ok := index[c.Family]
		if !ok {
			i = len(out)
			index[c.Family] = i
			out = append(out, FontFamily{Name: c.Family})
		}
		out[i].Weights = append(out[i].Weights, c)
	}
	return out
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
