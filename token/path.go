/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import "slices"

// Tiers are the only root segments kept in a token path.
var Tiers = []string{"base", "usage", "comp"}

// NormalizeAncestors collapses a repeated root entry and drops a root
// segment that is not a tier.
func NormalizeAncestors(path []string) []string {
	path = DedupeRoot(path)
	out := make([]string, 0, len(path))
	for i, entry := range path {
		if i == 0 && !slices.Contains(Tiers, entry) {
			continue
		}
		out = append(out, entry)
	}
	return out
}

// DedupeRoot drops the first entry when the first two are equal.
// Only one entry is dropped, so a root repeated three or more times
// still starts with a repeat afterwards.
func DedupeRoot(path []string) []string {
	if len(path) >= 2 && path[0] == path[1] {
		return path[1:]
	}
	return path
}

// Path returns the canonical path of the token: the normalized ancestor
// chain, then the parent group, then the token itself.
func (t *Token) Path() []string {
	p := NormalizeAncestors(t.Parent.Path)
	return append(p, t.Parent.Name, t.Name)
}
