/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package kind classifies tokens into the generation kinds that each get
// their own provider, and filters token collections by kind.
package kind

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"bennypowers.dev/prism/token"
)

// Kind is a generation kind.
type Kind int

const (
	Color Kind = iota
	Size
	Space
	Font
	BorderRadius
	Shadow
	BorderWidth
	Gradient
	MotionDuration
	MotionEasing
)

// All lists every kind in generation order.
var All = []Kind{
	Color,
	Size,
	Space,
	Font,
	BorderRadius,
	Shadow,
	BorderWidth,
	Gradient,
	MotionDuration,
	MotionEasing,
}

var names = [...]string{
	Color:          "color",
	Size:           "size",
	Space:          "space",
	Font:           "font",
	BorderRadius:   "borderRadius",
	Shadow:         "shadow",
	BorderWidth:    "borderWidth",
	Gradient:       "gradient",
	MotionDuration: "motionDuration",
	MotionEasing:   "motionEasing",
}

// String returns the kind's name as used in configuration and templates.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(names) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return names[k]
}

// MarshalJSON encodes the kind by name.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Parse returns the Kind with the given name. Matching ignores case.
func Parse(s string) (Kind, error) {
	for _, k := range All {
		if strings.EqualFold(names[k], s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown kind: %s (valid: %s)", s, strings.Join(Names(), ", "))
}

// ParseAll parses a list of kind names, preserving order.
// An empty list yields All.
func ParseAll(ss []string) ([]Kind, error) {
	if len(ss) == 0 {
		return slices.Clone(All), nil
	}
	kinds := make([]Kind, 0, len(ss))
	for _, s := range ss {
		k, err := Parse(s)
		if err != nil {
			return nil, err
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

// Names returns every kind name in generation order.
func Names() []string {
	out := make([]string, len(All))
	for i, k := range All {
		out[i] = k.String()
	}
	return out
}

// Category returns the token type that values of this kind hold.
func (k Kind) Category() token.Type {
	switch k {
	case Color:
		return token.Color
	case Size, Space, BorderRadius, BorderWidth:
		return token.Measure
	case Font:
		return token.Typography
	case Shadow:
		return token.Shadow
	case Gradient:
		return token.Gradient
	case MotionDuration, MotionEasing:
		return token.Generic
	default:
		return token.Unknown
	}
}

// Mapping pairs a kind with its value category.
type Mapping struct {
	Kind     Kind       `json:"tokenType"`
	Category token.Type `json:"supernovaType"`
}

// Supported returns the kind-to-category table in generation order.
func Supported() []Mapping {
	out := make([]Mapping, len(All))
	for i, k := range All {
		out[i] = Mapping{Kind: k, Category: k.Category()}
	}
	return out
}
