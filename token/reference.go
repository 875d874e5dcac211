/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"regexp"
	"strings"
)

var (
	// curlyBracePattern matches a whole-value {token.path} reference.
	curlyBracePattern = regexp.MustCompile(`^\{([^{}]+)\}$`)

	// jsonPointerPattern matches JSON pointer format: #/path/to/token
	jsonPointerPattern = regexp.MustCompile(`^#/(.+)$`)
)

// ParseCurlyBraceRef extracts the token path from a curly brace reference.
// Returns the path and true if valid, empty string and false otherwise.
func ParseCurlyBraceRef(value string) (string, bool) {
	matches := curlyBracePattern.FindStringSubmatch(strings.TrimSpace(value))
	if len(matches) != 2 {
		return "", false
	}
	return strings.TrimSpace(matches[1]), true
}

// ParseJSONPointerRef extracts the token path from a JSON pointer reference.
// Returns the path and true if valid, empty string and false otherwise.
func ParseJSONPointerRef(ref string) (string, bool) {
	matches := jsonPointerPattern.FindStringSubmatch(ref)
	if len(matches) != 2 {
		return "", false
	}
	parts := strings.Split(matches[1], "/")
	// RFC 6901: ~1 must be replaced before ~0
	for i, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		parts[i] = part
	}
	return strings.Join(parts, "."), true
}

// ParseRef accepts either reference form and returns the dotted token path.
func ParseRef(value string) (string, bool) {
	if p, ok := ParseCurlyBraceRef(value); ok {
		return p, true
	}
	return ParseJSONPointerRef(value)
}
