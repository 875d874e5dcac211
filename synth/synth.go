/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package synth synthesizes Swift value expressions for design tokens.
package synth

import (
	"fmt"
	"strconv"
	"strings"

	"bennypowers.dev/prism/theme"
	"bennypowers.dev/prism/token"
)

// SizingNamespace is the global enum holding base sizing tokens.
const SizingNamespace = "PrismSizing"

// Synthesizer builds value expressions for the tokens of one theme.
type Synthesizer struct {
	theme string
}

// New creates a synthesizer for the named theme.
// An empty name denotes the default theme.
func New(themeName string) *Synthesizer {
	if themeName == "" {
		themeName = theme.DefaultName
	}
	return &Synthesizer{theme: themeName}
}

// Theme returns the name of the theme being generated.
func (s *Synthesizer) Theme() string {
	return s.theme
}

// IsDefault reports whether the synthesizer generates the default theme.
func (s *Synthesizer) IsDefault() bool {
	return s.theme == theme.DefaultName
}

// Expression returns the Swift expression for tok's value.
func (s *Synthesizer) Expression(tok *token.Token) (string, error) {
	if err := tok.Validate(); err != nil {
		return "", err
	}

	switch v := tok.Value.(type) {
	case token.MeasureValue:
		return s.measure(v), nil
	case token.GenericValue:
		if v.Ref != nil {
			return s.Reference(v.Ref), nil
		}
		return Quote(v.Text), nil
	case token.ColorValue:
		var dark *token.ColorValue
		if d, ok := tok.DarkValue.(token.ColorValue); ok {
			dark = &d
		}
		return s.Color(v, dark), nil
	case token.ShadowValue:
		var dark *token.ColorValue
		if d, ok := tok.DarkValue.(token.ShadowValue); ok {
			dark = &d.Color
		}
		return s.shadow(v, dark), nil
	case token.GradientValue:
		var dark *token.GradientValue
		if d, ok := tok.DarkValue.(token.GradientValue); ok {
			dark = &d
		}
		return s.gradient(v, dark), nil
	case token.TypographyValue:
		if v.Ref != nil {
			return s.Reference(v.Ref), nil
		}
		return typography(v), nil
	default:
		return "", fmt.Errorf("%w: %s holds %T", token.ErrUnsupportedType, tok.DotPath(), tok.Value)
	}
}

// Reference returns the expression that reads another token's value.
// Base sizing tokens live in a global namespace. Everything else is a
// member of the provider: explicit on self in the default theme, and
// resolved through the inherited default extension in other themes.
func (s *Synthesizer) Reference(target *token.Token) string {
	name := target.VariableName()
	switch {
	case strings.Contains(name, "base") && strings.Contains(name, "Size"):
		return SizingNamespace + "." + name + ".value"
	case s.IsDefault():
		return "self." + name
	default:
		return name
	}
}

// closureReference is Reference for use inside a Swift closure, where
// member access needs an explicit self.
func (s *Synthesizer) closureReference(target *token.Token) string {
	ref := s.Reference(target)
	if !strings.Contains(ref, ".") {
		return "self." + ref
	}
	return ref
}

func (s *Synthesizer) measure(v token.MeasureValue) string {
	if v.Ref != nil {
		return s.Reference(v.Ref)
	}
	return Number(v.Measure)
}

// Color returns the expression for a color with an optional dark variant.
// Equal light and dark sides collapse to a single expression.
func (s *Synthesizer) Color(light token.ColorValue, dark *token.ColorValue) string {
	if dark == nil || sameColor(light, *dark) {
		if light.Ref != nil {
			return s.Reference(light.Ref)
		}
		return colorLiteral(light)
	}
	return fmt.Sprintf("UIColor(\n    light: { %s }(),\n    dark: { %s }()\n  )",
		s.colorSide(light), s.colorSide(*dark))
}

func (s *Synthesizer) colorSide(c token.ColorValue) string {
	if c.Ref != nil {
		return s.closureReference(c.Ref)
	}
	return colorLiteral(c)
}

// sameColor compares references by target and literals by channels.
// A reference never equals a literal.
func sameColor(a, b token.ColorValue) bool {
	switch {
	case a.Ref != nil && b.Ref != nil:
		return a.Ref == b.Ref || a.Ref.VariableName() == b.Ref.VariableName()
	case a.Ref == nil && b.Ref == nil:
		return a.SameColor(b)
	default:
		return false
	}
}

func colorLiteral(c token.ColorValue) string {
	return fmt.Sprintf("UIColor(red: %s, green: %s, blue: %s, alpha: %s)",
		NormalizeChannel(c.R, 3),
		NormalizeChannel(c.G, 3),
		NormalizeChannel(c.B, 3),
		NormalizeChannel(c.A, 2))
}

func (s *Synthesizer) shadow(v token.ShadowValue, dark *token.ColorValue) string {
	return fmt.Sprintf("PrismShadow(\n    color: %s,\n    x: %s,\n    y: %s,\n    radius: %s\n  )",
		s.Color(v.Color, dark),
		Number(v.X.Measure),
		Number(v.Y.Measure),
		Number(v.Radius.Measure))
}

func (s *Synthesizer) gradient(v token.GradientValue, dark *token.GradientValue) string {
	stops := make([]string, len(v.Stops))
	for i, stop := range v.Stops {
		var darkColor *token.ColorValue
		if dark != nil && i < len(dark.Stops) {
			darkColor = &dark.Stops[i].Color
		}
		stops[i] = fmt.Sprintf("Gradient.Stop(color: Color(%s), location: %s)",
			s.Color(stop.Color, darkColor), Number(stop.Position))
	}
	return fmt.Sprintf("LinearGradient(\n    stops: [%s],\n    startPoint: %s,\n    endPoint: %s\n  )",
		strings.Join(stops, ",\n\t"), unitPoint(v.From), unitPoint(v.To))
}

func unitPoint(p token.Point) string {
	return fmt.Sprintf("UnitPoint(x: %s, y: %s)", Number(p.X), Number(p.Y))
}

func typography(v token.TypographyValue) string {
	return fmt.Sprintf("PrismTypography(fontFamily: %s, weight: %s, size: %s, lineHeight: %s, letterSpacing: %s)",
		Quote(v.Font.Family),
		Quote(v.Font.Subfamily),
		Number(v.FontSize.Measure),
		optionalNumber(v.LineHeight),
		optionalNumber(v.LetterSpacing))
}

func optionalNumber(m *token.MeasureValue) string {
	if m == nil {
		return "nil"
	}
	return Number(m.Measure)
}

// NormalizeChannel maps a 0..255 channel into 0..1 with fixed decimals.
func NormalizeChannel(v, decimals int) string {
	return strconv.FormatFloat(float64(v)/255, 'f', decimals, 64)
}

// Number formats a measure in its shortest exact form.
func Number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var quoteReplacer = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

// Quote returns s as a Swift string literal.
func Quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
