/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package specifier classifies entries of a token file list and resolves
// npm package specifiers against node_modules.
package specifier

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	prismfs "bennypowers.dev/prism/fs"
)

// Kind indicates the type of specifier.
type Kind int

const (
	// KindLocal is a path or glob relative to the project root.
	KindLocal Kind = iota
	// KindNPM is an npm:<package>/<file> specifier.
	KindNPM
	// KindURL is an http(s) URL.
	KindURL
)

// Specifier is a parsed file list entry.
type Specifier struct {
	Kind Kind

	// Package is the npm package name, e.g. "@acme/tokens".
	Package string

	// File is the path within the package, or the local path.
	File string

	Raw string
}

// npm:@scope/pkg/path, npm:pkg/path
var npmPattern = regexp.MustCompile(`^npm:(@[^/]+/[^/]+|[^/@][^/]*)(/.*)?$`)

// Parse classifies spec. Malformed npm specifiers are treated as local paths
// and will fail when read.
func Parse(spec string) Specifier {
	if strings.HasPrefix(spec, "https://") || strings.HasPrefix(spec, "http://") {
		return Specifier{Kind: KindURL, Raw: spec}
	}
	if m := npmPattern.FindStringSubmatch(spec); m != nil {
		return Specifier{Kind: KindNPM, Package: m[1], File: strings.TrimPrefix(m[2], "/"), Raw: spec}
	}
	return Specifier{Kind: KindLocal, File: spec, Raw: spec}
}

// CDNURL returns the unpkg.com URL of an npm specifier's file.
func (s Specifier) CDNURL() (string, bool) {
	if s.Kind != KindNPM || s.File == "" {
		return "", false
	}
	return "https://unpkg.com/" + s.Package + "/" + s.File, true
}

// ResolveNPM finds the specifier's file in the nearest node_modules at or
// above rootDir.
func ResolveNPM(filesystem prismfs.FileSystem, rootDir string, s Specifier) (string, error) {
	if s.Kind != KindNPM {
		return "", fmt.Errorf("not an npm specifier: %s", s.Raw)
	}
	if s.File == "" {
		return "", fmt.Errorf("npm specifier %s names no file", s.Raw)
	}

	dir := rootDir
	if !filepath.IsAbs(dir) {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return "", fmt.Errorf("failed to resolve path %s: %w", dir, err)
		}
		dir = abs
	}
	start := dir

	for {
		candidate := filepath.Join(dir, "node_modules", s.Package, s.File)
		if filesystem.Exists(candidate) {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("package not found: %s (looked in node_modules starting from %s)", s.Package, start)
}
