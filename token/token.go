/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package token provides the design token model: tokens, their tree
// position, typed values and the identifiers derived from them.
package token

import (
	"fmt"
	"slices"
	"strings"
)

// Token is a single design value positioned in the token tree.
type Token struct {
	// Name is the token's own key in its parent group (e.g., "primary").
	Name string `json:"name"`

	// Parent is the group that declares this token.
	Parent Node `json:"parent"`

	// Type is the declared value category.
	Type Type `json:"type"`

	// Value is the light (or only) value. Its variant matches Type.
	Value Value `json:"-"`

	// DarkValue is the dark-mode value, or nil when the token has none.
	DarkValue Value `json:"-"`

	// Description is optional documentation for the token.
	Description string `json:"description,omitempty"`

	// FilePath is the file this token was loaded from.
	FilePath string `json:"-"`
}

// Node is the parent group of a token.
type Node struct {
	// Name is the group's key (e.g., "brand").
	Name string `json:"name"`

	// Path is the ancestor chain from the tree root down to, but excluding, this group.
	Path []string `json:"path"`
}

// TreePath returns the raw, unnormalized position of the token in its tree.
func (t *Token) TreePath() []string {
	p := make([]string, 0, len(t.Parent.Path)+2)
	p = append(p, t.Parent.Path...)
	return append(p, t.Parent.Name, t.Name)
}

// DotPath returns the dot-separated tree path, the form used by references.
func (t *Token) DotPath() string {
	return strings.Join(t.TreePath(), ".")
}

// IsReference reports whether the token's value points at another token.
func (t *Token) IsReference() bool {
	return t.Value != nil && Referenced(t.Value) != nil
}

// Clone returns a structural copy of the token. Values are immutable
// structs and are shared.
func (t *Token) Clone() *Token {
	c := *t
	c.Parent.Path = slices.Clone(t.Parent.Path)
	return &c
}

// WithDarkValue returns a copy of the token carrying the given dark value.
func (t *Token) WithDarkValue(v Value) *Token {
	c := t.Clone()
	c.DarkValue = v
	return c
}

// WithValue returns a copy of the token carrying a replacement value.
// The dark value is dropped, since it was paired with the old value.
func (t *Token) WithValue(v Value) *Token {
	c := t.Clone()
	c.Value = v
	c.DarkValue = nil
	return c
}

// Validate checks that Value and DarkValue agree with the declared Type.
func (t *Token) Validate() error {
	if !t.Type.Valid() {
		return fmt.Errorf("%w: %s has type %q", ErrUnsupportedType, t.DotPath(), t.Type)
	}
	if t.Value == nil {
		return fmt.Errorf("%w: %s", ErrMissingValue, t.DotPath())
	}
	if t.Value.Type() != t.Type {
		return fmt.Errorf("%w: %s is declared %s but holds a %s value",
			ErrShapeMismatch, t.DotPath(), t.Type, t.Value.Type())
	}
	if t.DarkValue != nil && t.DarkValue.Type() != t.Type {
		return fmt.Errorf("%w: %s is declared %s but its dark value is %s",
			ErrShapeMismatch, t.DotPath(), t.Type, t.DarkValue.Type())
	}
	return nil
}
