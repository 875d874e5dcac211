/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate renders a token document into the sources of a Swift
// package: one module for the default theme and the core protocols, and
// one module per light theme.
package generate

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"

	"bennypowers.dev/prism/fs"
	"bennypowers.dev/prism/internal/logger"
	"bennypowers.dev/prism/internal/version"
	"bennypowers.dev/prism/kind"
	"bennypowers.dev/prism/parser"
	"bennypowers.dev/prism/render"
	"bennypowers.dev/prism/theme"
	"bennypowers.dev/prism/token"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(
	template.New("prism").Funcs(render.Functions{}.FuncMap()).ParseFS(templateFS, "templates/*.tmpl"),
)

// Options configures generation.
type Options struct {
	// Kinds limits generation to these kinds. Empty means all kinds.
	Kinds []kind.Kind

	// IncludeInherited gives every light theme the full default token set
	// with its overrides applied, instead of only its overrides.
	IncludeInherited bool
}

// File is one generated source file. Path is relative to the output root.
type File struct {
	Path    string
	Content string
}

// data is passed to every template.
type data struct {
	Header string
	Theme  theme.Theme
	Kind   kind.Kind
	Kinds  []kind.Kind
	Tokens []*token.Token
}

// Generate renders every file for doc.
func Generate(doc *parser.Document, opts Options) ([]File, error) {
	kinds := opts.Kinds
	if len(kinds) == 0 {
		kinds = kind.All
	}

	merged, err := theme.MergeDarkValues(doc.Tokens, doc.Themes, opts.IncludeInherited)
	if err != nil {
		return nil, err
	}

	var f render.Functions
	g := &generator{header: "Generated by prism " + version.Get() + ". Do not edit."}
	defaults := merged[0]

	g.render(path.Join(render.SourcesRoot, render.ModuleName, "Core", "PrismThemeProvider.swift"),
		"core.swift.tmpl", data{Kinds: kinds})
	for _, k := range kinds {
		tokens := f.FilterTokenPathForType(k, defaults.Tokens)
		g.render(f.FilePathForTokenProtocol(k), "protocol.swift.tmpl",
			data{Theme: defaults, Kind: k, Tokens: tokens})
		g.render(f.FilePathForTokenProvider(defaults, k, true), "extension.swift.tmpl",
			data{Theme: defaults, Kind: k, Tokens: tokens})
	}

	for _, t := range merged {
		t = t.Compact()
		for _, k := range kinds {
			var tokens []*token.Token
			// Default values live in the protocol extensions.
			if !t.IsDefault() {
				tokens = f.FilterTokenPathForType(k, t.Tokens)
			}
			g.render(f.FilePathForTokenProvider(t, k, false), "provider.swift.tmpl",
				data{Theme: t, Kind: k, Tokens: tokens})
		}
		g.render(f.FilePathForThemeProvider(t), "themeprovider.swift.tmpl", data{Theme: t, Kinds: kinds})
		g.render(f.FilePathForThemeActivator(t), "activator.swift.tmpl", data{Theme: t})
		g.render(f.FilePathForFonts(t), "fonts.swift.tmpl",
			data{Theme: t, Tokens: f.FilterTokenPathForType(kind.Font, t.Tokens)})
	}

	if g.err != nil {
		return nil, g.err
	}
	logger.Debug("generated %d files for %d themes", len(g.files), len(merged))
	return g.files, nil
}

// Write writes files below dir.
func Write(filesystem fs.FileSystem, dir string, files []File) error {
	for _, file := range files {
		p := path.Join(dir, file.Path)
		if err := filesystem.MkdirAll(path.Dir(p), 0755); err != nil {
			return fmt.Errorf("error creating directory for %s: %w", p, err)
		}
		if err := filesystem.WriteFile(p, []byte(file.Content), 0644); err != nil {
			return fmt.Errorf("error writing %s: %w", p, err)
		}
		logger.Debug("wrote %s", p)
	}
	return nil
}

type generator struct {
	header string
	files  []File
	err    error
}

// render executes a template into a new file. After the first failure
// it does nothing.
func (g *generator) render(filePath, name string, d data) {
	if g.err != nil {
		return
	}
	d.Header = g.header
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, d); err != nil {
		g.err = fmt.Errorf("rendering %s: %w", filePath, err)
		return
	}
	g.files = append(g.files, File{Path: filePath, Content: buf.String()})
}
