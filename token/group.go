/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// Group is a node of the token tree while it is being walked.
type Group struct {
	// Name is the group's identifier.
	Name string

	// Path is the ancestor chain above this group.
	Path []string

	// Type is the inherited $type for tokens in this group.
	Type Type

	// Description is optional documentation for the group.
	Description string
}

// Root returns the unnamed group above the top-level entries.
func Root() *Group {
	return &Group{}
}

// IsRoot reports whether g is the unnamed tree root.
func (g *Group) IsRoot() bool {
	return g.Name == "" && len(g.Path) == 0
}

// Child returns the nested group called name. The child inherits the
// parent's $type until it declares its own.
func (g *Group) Child(name string) *Group {
	path := slices.Clone(g.Path)
	if !g.IsRoot() {
		path = append(path, g.Name)
	}
	return &Group{
		Name: name,
		Path: path,
		Type: g.Type,
	}
}

// Node returns the parent node for tokens declared directly in g.
func (g *Group) Node() Node {
	return Node{
		Name: g.Name,
		Path: slices.Clone(g.Path),
	}
}
