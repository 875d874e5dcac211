/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package kind

import (
	"slices"

	"bennypowers.dev/prism/token"
)

// Group names in a token's canonical path that select a kind.
const (
	groupElevation    = "elevation"
	groupBorderRadius = "border-radius"
	groupBorderWidth  = "border-width"
	groupType         = "type"
	groupColor        = "color"
	groupGradient     = "gradient"
	groupMotion       = "motion"
	groupEasing       = "easing"
)

// Matches reports whether tok belongs to kind k.
func (k Kind) Matches(tok *token.Token) bool {
	path := tok.Path()
	switch k {
	case Shadow:
		return segment(path, 1) == groupElevation
	case BorderRadius:
		return segment(path, 1) == groupBorderRadius
	case BorderWidth:
		return segment(path, 1) == groupBorderWidth
	case Font:
		return segment(path, 1) == groupType
	case Color:
		return segment(path, 1) == groupColor && !slices.Contains(path, groupGradient)
	case Gradient:
		g, ok := tok.Value.(token.GradientValue)
		return ok && g.Shape == token.LinearGradient
	case MotionDuration:
		return segment(path, 1) == groupMotion && segment(path, 2) != groupEasing
	case MotionEasing:
		return segment(path, 1) == groupMotion && segment(path, 2) == groupEasing
	case Size, Space:
		return segment(path, 1) == k.String()
	default:
		return false
	}
}

// Filter returns the tokens of kind k in their original order.
func Filter(k Kind, tokens []*token.Token) []*token.Token {
	out := make([]*token.Token, 0, len(tokens))
	for _, tok := range tokens {
		if k.Matches(tok) {
			out = append(out, tok)
		}
	}
	return out
}

func segment(path []string, i int) string {
	if i < len(path) {
		return path[i]
	}
	return ""
}
