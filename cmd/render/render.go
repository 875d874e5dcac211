/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/mazznoer/csscolorparser"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/prism/kind"
	"bennypowers.dev/prism/synth"
	"bennypowers.dev/prism/token"
)

// Row holds computed display values for a single token.
type Row struct {
	Name        string   `json:"name"`                  // Swift identifier
	Key         string   `json:"key"`                   // Backend key
	Kind        string   `json:"kind"`                  // Generation kind or "-"
	Type        string   `json:"type"`                  // Value category
	Value       string   `json:"value"`                 // Swift expression, on one line
	Hex         string   `json:"hex,omitempty"`         // Light hex, for colors
	Reference   string   `json:"reference,omitempty"`   // Dotted path of the referenced token
	Description string   `json:"description,omitempty"` // Token description
	Path        []string `json:"path"`                  // Canonical token path
}

// KindOf returns the first kind whose filter accepts tok.
func KindOf(tok *token.Token) (kind.Kind, bool) {
	for _, k := range kind.All {
		if k.Matches(tok) {
			return k, true
		}
	}
	return 0, false
}

// ComputeRows transforms tokens into display rows, synthesizing values
// for the named theme.
func ComputeRows(tokens []*token.Token, themeName string) ([]Row, error) {
	s := synth.New(themeName)
	rows := make([]Row, 0, len(tokens))
	for _, tok := range tokens {
		expr, err := s.Expression(tok)
		if err != nil {
			return nil, err
		}
		row := Row{
			Name:        tok.VariableName(),
			Key:         tok.BackendKey(),
			Kind:        "-",
			Type:        tok.Type.String(),
			Value:       oneLine(expr),
			Description: tok.Description,
			Path:        tok.Path(),
		}
		if k, ok := KindOf(tok); ok {
			row.Kind = k.String()
		}
		if c, ok := tok.Value.(token.ColorValue); ok {
			row.Hex = c.Hex
		}
		if ref := token.Referenced(tok.Value); ref != nil {
			row.Reference = ref.DotPath()
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// oneLine collapses runs of whitespace so multi-line expressions fit a row.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// ColumnWidths calculates the max width needed for each column.
func ColumnWidths(rows []Row) (name, key, knd int) {
	name, key, knd = 4, 3, 4 // minimums for headers
	for _, r := range rows {
		name = max(name, len(r.Name))
		key = max(key, len(r.Key))
		knd = max(knd, len(r.Kind))
	}
	return
}

// ColorSwatch returns a 24-bit ANSI color block for the given color value.
func ColorSwatch(value string) string {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ""
	}
	r, g, b, _ := c.RGBA255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m ", r, g, b)
}

// Table renders rows as a table. Swatches are drawn for colors when
// swatches is set.
func Table(w io.Writer, rows []Row, swatches bool) error {
	if len(rows) == 0 {
		return nil
	}
	nameW, keyW, kindW := ColumnWidths(rows)
	for _, r := range rows {
		swatch := ""
		if swatches && r.Hex != "" {
			swatch = ColorSwatch(r.Hex)
		}
		ref := ""
		if r.Reference != "" {
			ref = " → {" + r.Reference + "}"
		}
		if _, err := fmt.Fprintf(w, "%-*s  %-*s  %-*s  %s%s%s\n",
			nameW, r.Name, keyW, r.Key, kindW, r.Kind, swatch, r.Value, ref); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented JSON array.
func JSON(w io.Writer, rows []Row) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rows)
}

// Names renders just the identifiers, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Name); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders rows as markdown tables grouped by kind, in order of
// first occurrence.
func Markdown(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	kindOrder := make([]string, 0)
	byKind := make(map[string][]Row)
	for _, r := range rows {
		if _, exists := byKind[r.Kind]; !exists {
			kindOrder = append(kindOrder, r.Kind)
		}
		byKind[r.Kind] = append(byKind[r.Kind], r)
	}

	var sb strings.Builder
	for i, k := range kindOrder {
		if i > 0 {
			sb.WriteString("\n")
		}
		heading := toTitleCase(k)
		if k == "-" {
			heading = "Unclassified"
		}
		fmt.Fprintf(&sb, "## %s {#%s}\n\n", heading, slugify(heading))
		renderTokenTable(&sb, byKind[k])
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func renderTokenTable(sb *strings.Builder, rows []Row) {
	nameW, keyW, valW := 4, 3, 5
	for _, r := range rows {
		nameW = max(nameW, len(formatName(r)))
		keyW = max(keyW, len(r.Key))
		valW = max(valW, len(formatValue(r)))
	}

	fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, "Name", keyW, "Key", valW, "Value")
	fmt.Fprintf(sb, "|-%s-|-%s-|-%s-|\n",
		strings.Repeat("-", nameW), strings.Repeat("-", keyW), strings.Repeat("-", valW))
	for _, r := range rows {
		fmt.Fprintf(sb, "| %-*s | %-*s | %-*s |\n", nameW, formatName(r), keyW, r.Key, valW, formatValue(r))
	}
}

func formatName(r Row) string {
	return "`" + r.Name + "`"
}

func formatValue(r Row) string {
	v := "`" + strings.ReplaceAll(r.Value, "|", `\|`) + "`"
	if r.Description != "" {
		v += " " + r.Description
	}
	return v
}

// slugify converts a name to a URL-safe anchor ID.
// e.g., "Border Radius" -> "border-radius"
func slugify(name string) string {
	var result strings.Builder
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			result.WriteRune(r)
		} else if r == ' ' || r == '-' || r == '_' || r == '.' {
			result.WriteRune('-')
		}
	}
	// Remove consecutive dashes
	s := result.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}

// toTitleCase splits a camelCase kind name into words and title-cases them.
// e.g., "borderRadius" -> "Border Radius"
func toTitleCase(s string) string {
	var words strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			words.WriteRune(' ')
		}
		words.WriteRune(r)
	}
	return cases.Title(language.English).String(words.String())
}
