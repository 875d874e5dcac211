/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package token

// Value is the closed set of token value variants.
// Implementations are immutable value types.
type Value interface {
	// Type returns the category this variant belongs to.
	Type() Type

	sealed()
}

// ColorValue is an RGBA color with 0..255 channels.
// A reference carries the resolved channels and hex of its target.
type ColorValue struct {
	R, G, B, A int
	Hex        string
	Ref        *Token
}

// MeasureValue is a plain number. A reference carries the resolved number.
type MeasureValue struct {
	Measure float64
	Ref     *Token
}

// ShadowValue is a drop shadow.
type ShadowValue struct {
	Color  ColorValue
	X      MeasureValue
	Y      MeasureValue
	Radius MeasureValue
}

// Point is a unit-space coordinate, each axis in [0,1].
type Point struct {
	X, Y float64
}

// GradientStop is a single color stop in a gradient.
type GradientStop struct {
	Color    ColorValue
	Position float64
}

// GradientValue is a gradient between two points.
type GradientValue struct {
	// Shape is the gradient discriminator; only "Linear" is generated.
	Shape string
	From  Point
	To    Point
	Stops []GradientStop
}

// Font names a font family and its subfamily (weight/style).
type Font struct {
	Family    string
	Subfamily string
}

// TypographyValue is a text style. LineHeight and LetterSpacing are optional.
type TypographyValue struct {
	Font          Font
	FontSize      MeasureValue
	LineHeight    *MeasureValue
	LetterSpacing *MeasureValue
	Ref           *Token
}

// GenericValue is free text, used for motion durations and easings.
type GenericValue struct {
	Text string
	Ref  *Token
}

// LinearGradient is the GradientValue.Shape of linear gradients.
const LinearGradient = "Linear"

func (ColorValue) Type() Type      { return Color }
func (MeasureValue) Type() Type    { return Measure }
func (ShadowValue) Type() Type     { return Shadow }
func (GradientValue) Type() Type   { return Gradient }
func (TypographyValue) Type() Type { return Typography }
func (GenericValue) Type() Type    { return Generic }

func (ColorValue) sealed()      {}
func (MeasureValue) sealed()    {}
func (ShadowValue) sealed()     {}
func (GradientValue) sealed()   {}
func (TypographyValue) sealed() {}
func (GenericValue) sealed()    {}

// Referenced returns the token a value points at, or nil for literals
// and for composite variants, which cannot be references themselves.
func Referenced(v Value) *Token {
	switch v := v.(type) {
	case ColorValue:
		return v.Ref
	case MeasureValue:
		return v.Ref
	case TypographyValue:
		return v.Ref
	case GenericValue:
		return v.Ref
	default:
		return nil
	}
}

// SameColor reports whether two colors have identical channels.
func (c ColorValue) SameColor(o ColorValue) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B && c.A == o.A
}
