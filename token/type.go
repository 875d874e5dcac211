/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Type is the value category of a token.
type Type int

const (
	// Unknown is the zero Type and is never valid on a loaded token.
	Unknown Type = iota

	// Color tokens hold RGBA colors.
	Color

	// Measure tokens hold a single number (sizes, spacing, radii, widths).
	Measure

	// Typography tokens hold a font and its metrics.
	Typography

	// Shadow tokens hold a color and offset/blur measures.
	Shadow

	// Gradient tokens hold a linear gradient.
	Gradient

	// Generic tokens hold free text, such as motion durations and easings.
	Generic
)

// Types lists every valid Type in declaration order.
var Types = []Type{Color, Measure, Typography, Shadow, Gradient, Generic}

// String returns the category name.
func (t Type) String() string {
	switch t {
	case Color:
		return "Color"
	case Measure:
		return "Measure"
	case Typography:
		return "Typography"
	case Shadow:
		return "Shadow"
	case Gradient:
		return "Gradient"
	case Generic:
		return "GenericToken"
	default:
		return "Unknown"
	}
}

// Valid reports whether t is one of the known categories.
func (t Type) Valid() bool {
	return t >= Color && t <= Generic
}

// MarshalJSON encodes the type by name.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// ParseType returns the Type for a $type string.
// Common DTCG spellings are accepted alongside the category names.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "color":
		return Color, nil
	case "measure", "dimension", "number", "radius", "size", "spacing":
		return Measure, nil
	case "typography", "font":
		return Typography, nil
	case "shadow", "elevation":
		return Shadow, nil
	case "gradient":
		return Gradient, nil
	case "generictoken", "generic", "motion", "duration", "cubicbezier", "string":
		return Generic, nil
	default:
		return Unknown, fmt.Errorf("%w: %q", ErrUnsupportedType, s)
	}
}
