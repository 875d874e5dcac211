/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// VariableName derives the camelCase identifier for a canonical path.
// e.g., ["base", "color", "brand-accent", "primary"] → "baseColorBrandAccentPrimary"
func VariableName(path []string) string {
	var sb strings.Builder
	for i, entry := range path {
		if i == 0 {
			sb.WriteString(entry)
			continue
		}
		if strings.Contains(entry, "-") {
			parts := strings.Split(entry, "-")
			for j := 1; j < len(parts); j++ {
				parts[j] = upperFirst(parts[j])
			}
			entry = strings.Join(parts, "")
		}
		sb.WriteString(upperFirst(entry))
	}
	return sb.String()
}

// BackendKey derives the UPPER_SNAKE key for a canonical path.
// e.g., ["base", "color", "brand-accent", "primary"] → "BASE_COLOR_BRAND_ACCENT_PRIMARY"
func BackendKey(path []string) string {
	keys := make([]string, len(path))
	for i, entry := range path {
		if i > 0 {
			entry = strings.ReplaceAll(entry, "-", "_")
		}
		keys[i] = strings.ToUpper(entry)
	}
	return strings.Join(keys, "_")
}

// VariableName returns the camelCase identifier of the token.
func (t *Token) VariableName() string {
	return VariableName(t.Path())
}

// BackendKey returns the UPPER_SNAKE key of the token.
func (t *Token) BackendKey() string {
	return BackendKey(t.Path())
}

// UpperFirst upper-cases the first rune of s.
func UpperFirst(s string) string {
	return upperFirst(s)
}

// LowerFirst lower-cases the first rune of s.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}

func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
