/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token_test

import (
	"errors"
	"slices"
	"testing"

	"bennypowers.dev/prism/token"
)

func tok(name string, parent string, ancestors ...string) *token.Token {
	return &token.Token{
		Name:   name,
		Parent: token.Node{Name: parent, Path: ancestors},
		Type:   token.Color,
		Value:  token.ColorValue{R: 255, A: 255, Hex: "#ff0000"},
	}
}

func TestToken_Path(t *testing.T) {
	tests := []struct {
		name     string
		token    *token.Token
		expected []string
	}{
		{
			name:     "tier root is kept",
			token:    tok("primary", "brand", "base", "color"),
			expected: []string{"base", "color", "brand", "primary"},
		},
		{
			name:     "non-tier root is dropped",
			token:    tok("primary", "brand", "Tokens", "color"),
			expected: []string{"color", "brand", "primary"},
		},
		{
			name:     "repeated root is collapsed",
			token:    tok("primary", "brand", "base", "base", "color"),
			expected: []string{"base", "color", "brand", "primary"},
		},
		{
			name:     "repeated non-tier root is collapsed then dropped",
			token:    tok("small", "size", "Tokens", "Tokens", "base"),
			expected: []string{"base", "size", "small"},
		},
		{
			name:     "later segments are always kept",
			token:    tok("x", "grp", "usage", "Tokens", "deep"),
			expected: []string{"usage", "Tokens", "deep", "grp", "x"},
		},
		{
			name:     "no ancestors",
			token:    tok("primary", "color"),
			expected: []string{"color", "primary"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Path(); !slices.Equal(got, tt.expected) {
				t.Errorf("Token.Path() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDedupeRoot_Idempotent(t *testing.T) {
	path := []string{"base", "base", "color"}
	once := token.DedupeRoot(path)
	twice := token.DedupeRoot(token.DedupeRoot(path))
	if !slices.Equal(once, twice) {
		t.Errorf("DedupeRoot once = %v, twice = %v", once, twice)
	}
	if !slices.Equal(token.NormalizeAncestors(path), token.NormalizeAncestors(once)) {
		t.Errorf("NormalizeAncestors differs after dedupe: %v vs %v",
			token.NormalizeAncestors(path), token.NormalizeAncestors(once))
	}
}

// A root repeated three times only loses one copy per pass, so
// DedupeRoot is idempotent only for a root repeated at most twice.
func TestDedupeRoot_TripleRoot(t *testing.T) {
	path := []string{"base", "base", "base", "color"}
	once := token.DedupeRoot(path)
	if want := []string{"base", "base", "color"}; !slices.Equal(once, want) {
		t.Errorf("DedupeRoot once = %v, want %v", once, want)
	}
	twice := token.DedupeRoot(once)
	if want := []string{"base", "color"}; !slices.Equal(twice, want) {
		t.Errorf("DedupeRoot twice = %v, want %v", twice, want)
	}
}

func TestToken_Path_DoesNotAliasParent(t *testing.T) {
	ancestors := []string{"base", "color"}
	tk := tok("primary", "brand", ancestors...)
	p := tk.Path()
	p[0] = "changed"
	if tk.Parent.Path[0] != "base" {
		t.Errorf("Path() mutated parent path: %v", tk.Parent.Path)
	}
}

func TestVariableName(t *testing.T) {
	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{"simple", []string{"base", "color", "brand", "primary"}, "baseColorBrandPrimary"},
		{"hyphenated later segment", []string{"base", "border-radius", "small"}, "baseBorderRadiusSmall"},
		{"multi hyphen", []string{"usage", "color", "on-surface-variant"}, "usageColorOnSurfaceVariant"},
		{"first segment unchanged", []string{"my-tier", "color"}, "my-tierColor"},
		{"size token", []string{"base", "size", "small"}, "baseSizeSmall"},
		{"single segment", []string{"base"}, "base"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.VariableName(tt.path); got != tt.expected {
				t.Errorf("VariableName(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestBackendKey(t *testing.T) {
	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{"simple", []string{"base", "color", "brand", "primary"}, "BASE_COLOR_BRAND_PRIMARY"},
		{"hyphenated later segment", []string{"base", "border-radius", "small"}, "BASE_BORDER_RADIUS_SMALL"},
		{"first segment keeps hyphen", []string{"my-tier", "color"}, "MY-TIER_COLOR"},
		{"single segment", []string{"usage"}, "USAGE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := token.BackendKey(tt.path); got != tt.expected {
				t.Errorf("BackendKey(%v) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestToken_Identifiers(t *testing.T) {
	tk := tok("primary", "brand", "Tokens", "base", "color")
	if got := tk.VariableName(); got != "baseColorBrandPrimary" {
		t.Errorf("VariableName() = %q", got)
	}
	if got := tk.BackendKey(); got != "BASE_COLOR_BRAND_PRIMARY" {
		t.Errorf("BackendKey() = %q", got)
	}
	if got := tk.DotPath(); got != "Tokens.base.color.brand.primary" {
		t.Errorf("DotPath() = %q", got)
	}
}

func TestToken_Validate(t *testing.T) {
	tests := []struct {
		name    string
		token   token.Token
		wantErr error
	}{
		{
			name:  "matching value",
			token: token.Token{Name: "a", Type: token.Measure, Value: token.MeasureValue{Measure: 4}},
		},
		{
			name:    "unknown type",
			token:   token.Token{Name: "a", Value: token.MeasureValue{Measure: 4}},
			wantErr: token.ErrUnsupportedType,
		},
		{
			name:    "missing value",
			token:   token.Token{Name: "a", Type: token.Measure},
			wantErr: token.ErrMissingValue,
		},
		{
			name:    "value mismatch",
			token:   token.Token{Name: "a", Type: token.Color, Value: token.MeasureValue{Measure: 4}},
			wantErr: token.ErrShapeMismatch,
		},
		{
			name: "dark value mismatch",
			token: token.Token{
				Name:      "a",
				Type:      token.Color,
				Value:     token.ColorValue{A: 255},
				DarkValue: token.GenericValue{Text: "x"},
			},
			wantErr: token.ErrShapeMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.token.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestToken_WithDarkValue(t *testing.T) {
	orig := tok("primary", "brand", "base", "color")
	dark := token.ColorValue{A: 255, Hex: "#000000"}

	derived := orig.WithDarkValue(dark)

	if orig.DarkValue != nil {
		t.Error("WithDarkValue mutated the original token")
	}
	if derived.DarkValue != dark {
		t.Errorf("derived.DarkValue = %v, want %v", derived.DarkValue, dark)
	}
	derived.Parent.Path[0] = "usage"
	if orig.Parent.Path[0] != "base" {
		t.Error("derived token shares its parent path with the original")
	}
}

func TestToken_IsReference(t *testing.T) {
	target := tok("primary", "brand", "base", "color")
	ref := &token.Token{
		Name:  "accent",
		Type:  token.Color,
		Value: token.ColorValue{Ref: target},
	}
	if !ref.IsReference() {
		t.Error("expected reference")
	}
	if target.IsReference() {
		t.Error("literal reported as reference")
	}
	shadow := &token.Token{Type: token.Shadow, Value: token.ShadowValue{}}
	if shadow.IsReference() {
		t.Error("composite reported as reference")
	}
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		input string
		path  string
		ok    bool
	}{
		{"{base.color.primary}", "base.color.primary", true},
		{" {base.size.small} ", "base.size.small", true},
		{"#/base/color/primary", "base.color.primary", true},
		{"#ff0000", "", false},
		{"prefix {base.color}", "", false},
		{"16", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			path, ok := token.ParseRef(tt.input)
			if ok != tt.ok || path != tt.path {
				t.Errorf("ParseRef(%q) = (%q, %v), want (%q, %v)", tt.input, path, ok, tt.path, tt.ok)
			}
		})
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		input    string
		expected token.Type
		wantErr  bool
	}{
		{"color", token.Color, false},
		{"dimension", token.Measure, false},
		{"radius", token.Measure, false},
		{"typography", token.Typography, false},
		{"shadow", token.Shadow, false},
		{"gradient", token.Gradient, false},
		{"GenericToken", token.Generic, false},
		{"duration", token.Generic, false},
		{"fontFamily", token.Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := token.ParseType(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseType(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestGroup_Child(t *testing.T) {
	root := token.Root()
	base := root.Child("base")
	base.Type = token.Color
	brand := base.Child("color").Child("brand")

	node := brand.Node()
	if node.Name != "brand" {
		t.Errorf("Node().Name = %q, want brand", node.Name)
	}
	if !slices.Equal(node.Path, []string{"base", "color"}) {
		t.Errorf("Node().Path = %v, want [base color]", node.Path)
	}
	if brand.Type != token.Color {
		t.Errorf("child did not inherit $type: %v", brand.Type)
	}
}
