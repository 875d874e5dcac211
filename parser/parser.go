/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser loads token documents: a tree of tokens plus named
// theme overrides, written in YAML or JSON (comments allowed).
//
// A document looks like:
//
//	tokens:
//	  base:
//	    color:
//	      $type: color
//	      brand:
//	        primary:
//	          $value: "#ff6b35"
//	themes:
//	  DefaultDark:
//	    base.color.brand.primary: "#1a1a1a"
//
// A document without a tokens or themes key is read as a bare token tree.
package parser

import (
	"fmt"
	"strings"

	"github.com/tidwall/jsonc"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/prism/fs"
	"bennypowers.dev/prism/internal/logger"
	"bennypowers.dev/prism/resolver"
	"bennypowers.dev/prism/theme"
	"bennypowers.dev/prism/token"
)

// Document is a fully loaded token tree and its themes.
type Document struct {
	// Tokens holds the default token set in authoring order.
	Tokens []*token.Token

	// Themes holds the theme overrides in authoring order.
	Themes []theme.Theme
}

// Token returns the token at a dotted tree path.
func (d *Document) Token(dotPath string) (*token.Token, bool) {
	for _, t := range d.Tokens {
		if t.DotPath() == dotPath {
			return t, true
		}
	}
	return nil, false
}

// entry is a token whose value has not been decoded yet.
type entry struct {
	tok  *token.Token
	raw  *yaml.Node
	file string
}

type override struct {
	path string
	raw  *yaml.Node
	file string
}

type rawTheme struct {
	name      string
	overrides []override
}

// Loader collects token documents and resolves them into a Document.
// References may cross files, so values are decoded only in Load.
type Loader struct {
	entries []*entry
	byPath  map[string]*entry
	themes  []*rawTheme
	errs    error
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{
		byPath: make(map[string]*entry),
	}
}

// Parse loads a single document.
func Parse(data []byte) (*Document, error) {
	l := NewLoader()
	if err := l.Add("", data); err != nil {
		return nil, err
	}
	return l.Load()
}

// AddFile reads and adds a document from the filesystem.
func (l *Loader) AddFile(filesystem fs.FileSystem, path string) error {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}
	return l.Add(path, data)
}

// Add parses a document and records its tokens and themes.
// Syntax errors are returned immediately; structural problems are
// collected and reported by Load.
func (l *Loader) Add(filePath string, data []byte) error {
	var doc yaml.Node
	if isLikelyJSON(data) {
		data = jsonc.ToJSON(data)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse %s: %w", displayName(filePath), err)
	}
	if len(doc.Content) == 0 {
		logger.Warn("%s: empty document", displayName(filePath))
		return nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return &ValidationError{FilePath: filePath, Line: root.Line, Message: "document root must be a mapping"}
	}

	tokens, themes := mappingValue(root, "tokens"), mappingValue(root, "themes")
	if tokens == nil && themes == nil {
		tokens = root
	}
	if tokens != nil {
		l.walkGroup(filePath, tokens, token.Root())
	}
	if themes != nil {
		l.addThemes(filePath, themes)
	}
	return nil
}

// Load resolves references, decodes every value and applies theme
// overrides. All problems found are returned together.
func (l *Loader) Load() (*Document, error) {
	errs := l.errs
	order, err := l.resolveOrder()
	if err != nil {
		return nil, multierr.Append(errs, err)
	}

	d := &decoder{lookup: l.lookup}
	for _, p := range order {
		e := l.byPath[p]
		v, err := d.decode(e.tok.Type, e.raw)
		if err != nil {
			errs = multierr.Append(errs, l.valueError(e.file, e.tok.DotPath(), e.raw, err))
			continue
		}
		e.tok.Value = v
	}
	if errs != nil {
		return nil, errs
	}

	doc := &Document{Tokens: make([]*token.Token, len(l.entries))}
	for i, e := range l.entries {
		doc.Tokens[i] = e.tok
	}

	for _, rt := range l.themes {
		th := theme.Theme{Name: rt.name, Tokens: make([]*token.Token, 0, len(rt.overrides))}
		for _, o := range rt.overrides {
			base, ok := l.byPath[o.path]
			if !ok {
				errs = multierr.Append(errs, &ValidationError{
					FilePath:   o.file,
					Path:       o.path,
					Line:       o.raw.Line,
					Message:    fmt.Sprintf("theme %q overrides a token that does not exist", rt.name),
					Suggestion: "override paths are dotted tree paths of default tokens",
					Err:        token.ErrReferenceNotFound,
				})
				continue
			}
			v, err := d.decode(base.tok.Type, o.raw)
			if err != nil {
				errs = multierr.Append(errs, l.valueError(o.file, rt.name+"/"+o.path, o.raw, err))
				continue
			}
			th.Tokens = append(th.Tokens, base.tok.WithValue(v))
		}
		doc.Themes = append(doc.Themes, th)
	}
	if errs != nil {
		return nil, errs
	}

	logger.Debug("loaded %d tokens and %d themes", len(doc.Tokens), len(doc.Themes))
	return doc, nil
}

// resolveOrder returns token paths with every reference target before
// the tokens that use it.
func (l *Loader) resolveOrder() ([]string, error) {
	graph := resolver.NewDependencyGraph()
	var errs error
	for _, e := range l.entries {
		from := e.tok.DotPath()
		graph.AddNode(from)
		for _, ref := range collectRefs(e.raw) {
			if _, ok := l.byPath[ref]; !ok {
				errs = multierr.Append(errs, &ValidationError{
					FilePath: e.file,
					Path:     from,
					Line:     e.raw.Line,
					Message:  fmt.Sprintf("reference {%s} does not match any token", ref),
					Err:      token.ErrReferenceNotFound,
				})
				continue
			}
			graph.AddDependency(from, ref)
		}
	}
	for _, rt := range l.themes {
		for _, o := range rt.overrides {
			for _, ref := range collectRefs(o.raw) {
				if _, ok := l.byPath[ref]; !ok {
					errs = multierr.Append(errs, &ValidationError{
						FilePath: o.file,
						Path:     rt.name + "/" + o.path,
						Line:     o.raw.Line,
						Message:  fmt.Sprintf("reference {%s} does not match any token", ref),
						Err:      token.ErrReferenceNotFound,
					})
				}
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	return graph.TopologicalSort()
}

func (l *Loader) lookup(dotPath string) (*token.Token, bool) {
	e, ok := l.byPath[dotPath]
	if !ok {
		return nil, false
	}
	return e.tok, true
}

func (l *Loader) fail(err *ValidationError) {
	l.errs = multierr.Append(l.errs, err)
}

func (l *Loader) valueError(file, path string, node *yaml.Node, err error) *ValidationError {
	return &ValidationError{
		FilePath: file,
		Path:     path,
		Line:     node.Line,
		Message:  err.Error(),
		Err:      err,
	}
}

// walkGroup records the tokens of a group and recurses into subgroups,
// preserving document order.
func (l *Loader) walkGroup(file string, node *yaml.Node, group *token.Group) {
	// Group properties apply to every child regardless of key order.
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		switch key {
		case "$type":
			t, err := token.ParseType(val.Value)
			if err != nil {
				l.fail(&ValidationError{FilePath: file, Path: groupPath(group), Line: val.Line, Message: err.Error(), Err: err})
				continue
			}
			group.Type = t
		case "$description":
			group.Description = val.Value
		}
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		if strings.HasPrefix(key, "$") {
			continue
		}
		if val.Kind != yaml.MappingNode {
			l.fail(&ValidationError{
				FilePath:   file,
				Path:       joinPath(groupPath(group), key),
				Line:       val.Line,
				Message:    "expected a group or a token object",
				Suggestion: "wrap literal values as {$value: ...}",
			})
			continue
		}
		if mappingValue(val, "$value") != nil {
			l.addToken(file, key, val, group)
			continue
		}
		l.walkGroup(file, val, group.Child(key))
	}
}

func (l *Loader) addToken(file, name string, node *yaml.Node, group *token.Group) {
	path := joinPath(groupPath(group), name)
	if group.IsRoot() {
		l.fail(&ValidationError{
			FilePath:   file,
			Path:       path,
			Line:       node.Line,
			Message:    "tokens must be declared inside a group",
			Suggestion: "nest the token under a tier such as base",
		})
		return
	}

	typ := group.Type
	if t := mappingValue(node, "$type"); t != nil {
		parsed, err := token.ParseType(t.Value)
		if err != nil {
			l.fail(&ValidationError{FilePath: file, Path: path, Line: t.Line, Message: err.Error(), Err: err})
			return
		}
		typ = parsed
	}
	if typ == token.Unknown {
		l.fail(&ValidationError{
			FilePath:   file,
			Path:       path,
			Line:       node.Line,
			Message:    "token has no $type",
			Suggestion: "set $type on the token or an enclosing group",
			Err:        token.ErrUnsupportedType,
		})
		return
	}

	tok := &token.Token{
		Name:     name,
		Parent:   group.Node(),
		Type:     typ,
		FilePath: file,
	}
	if d := mappingValue(node, "$description"); d != nil {
		tok.Description = d.Value
	}

	if prev, exists := l.byPath[path]; exists {
		l.fail(&ValidationError{
			FilePath: file,
			Path:     path,
			Line:     node.Line,
			Message:  fmt.Sprintf("token already declared in %s", displayName(prev.file)),
		})
		return
	}

	e := &entry{tok: tok, raw: mappingValue(node, "$value"), file: file}
	l.entries = append(l.entries, e)
	l.byPath[path] = e
}

func (l *Loader) addThemes(file string, node *yaml.Node) {
	if node.Kind != yaml.MappingNode {
		l.fail(&ValidationError{FilePath: file, Path: "themes", Line: node.Line, Message: "themes must be a mapping of theme names to overrides"})
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		name, val := node.Content[i].Value, node.Content[i+1]
		if val.Kind != yaml.MappingNode {
			l.fail(&ValidationError{FilePath: file, Path: name, Line: val.Line, Message: "theme overrides must be a mapping of token paths to values"})
			continue
		}

		rt := l.theme(name)
		for j := 0; j+1 < len(val.Content); j += 2 {
			path, raw := val.Content[j].Value, val.Content[j+1]
			if v := mappingValue(raw, "$value"); v != nil {
				raw = v
			}
			rt.overrides = append(rt.overrides, override{path: path, raw: raw, file: file})
		}
	}
}

// theme returns the theme called name, creating it on first use so that
// overrides split across files accumulate in one theme.
func (l *Loader) theme(name string) *rawTheme {
	for _, rt := range l.themes {
		if rt.name == name {
			return rt
		}
	}
	rt := &rawTheme{name: name}
	l.themes = append(l.themes, rt)
	return rt
}

// collectRefs returns the dotted paths of all whole-value references
// found anywhere inside a raw value.
func collectRefs(node *yaml.Node) []string {
	if node == nil {
		return nil
	}
	if node.Kind == yaml.ScalarNode {
		if p, ok := token.ParseRef(node.Value); ok {
			return []string{p}
		}
		return nil
	}
	var refs []string
	for _, child := range node.Content {
		refs = append(refs, collectRefs(child)...)
	}
	return refs
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// isLikelyJSON checks if data appears to be JSON rather than YAML.
// JSON typically starts with '{' (optionally preceded by whitespace/BOM).
func isLikelyJSON(data []byte) bool {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		case 0xEF, 0xBB, 0xBF: // UTF-8 BOM
			continue
		case '{', '/':
			return true
		default:
			return false
		}
	}
	return false
}

func groupPath(g *token.Group) string {
	if g.IsRoot() {
		return ""
	}
	return strings.Join(append(g.Path[:len(g.Path):len(g.Path)], g.Name), ".")
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func displayName(file string) string {
	if file == "" {
		return "<input>"
	}
	return file
}
