/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"bennypowers.dev/prism/parser/common"
	"bennypowers.dev/prism/token"
)

// measureUnits are stripped from scalar measures. Values are points.
var measureUnits = []string{"px", "pt", "dp"}

type decoder struct {
	lookup func(dotPath string) (*token.Token, bool)
}

func (d *decoder) decode(typ token.Type, node *yaml.Node) (token.Value, error) {
	if node == nil {
		return nil, token.ErrMissingValue
	}
	switch typ {
	case token.Color:
		return d.color(node)
	case token.Measure:
		return d.measure(node)
	case token.Shadow:
		return d.shadow(node)
	case token.Gradient:
		return d.gradient(node)
	case token.Typography:
		return d.typography(node)
	case token.Generic:
		return d.generic(node)
	default:
		return nil, fmt.Errorf("%w: %s", token.ErrUnsupportedType, typ)
	}
}

// target resolves a scalar reference to a token of the wanted type.
// ok is false when node is not a reference.
func (d *decoder) target(node *yaml.Node, want token.Type) (*token.Token, bool, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, false, nil
	}
	p, isRef := token.ParseRef(node.Value)
	if !isRef {
		return nil, false, nil
	}
	t, found := d.lookup(p)
	if !found {
		return nil, true, fmt.Errorf("%w: {%s}", token.ErrReferenceNotFound, p)
	}
	if t.Type != want {
		return nil, true, fmt.Errorf("%w: {%s} is %s, expected %s", token.ErrShapeMismatch, p, t.Type, want)
	}
	if t.Value == nil {
		return nil, true, fmt.Errorf("%w: {%s}", token.ErrMissingValue, p)
	}
	return t, true, nil
}

func (d *decoder) color(node *yaml.Node) (token.ColorValue, error) {
	t, isRef, err := d.target(node, token.Color)
	if err != nil {
		return token.ColorValue{}, err
	}
	if isRef {
		v := t.Value.(token.ColorValue)
		v.Ref = t
		return v, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		return common.ParseColor(node.Value)
	case yaml.MappingNode:
		if comps := mappingValue(node, "components"); comps != nil {
			return unitColor(node, comps)
		}
		if hex := mappingValue(node, "hex"); hex != nil {
			return common.ParseColor(hex.Value)
		}
		var ch [4]int
		ch[3] = 255
		for i, key := range []string{"r", "g", "b", "a"} {
			n := mappingValue(node, key)
			if n == nil {
				if i == 3 {
					continue
				}
				return token.ColorValue{}, fmt.Errorf("color is missing channel %q", key)
			}
			v, err := strconv.Atoi(n.Value)
			if err != nil {
				return token.ColorValue{}, fmt.Errorf("color channel %q: %w", key, err)
			}
			ch[i] = v
		}
		return common.ColorFromChannels(ch[0], ch[1], ch[2], ch[3])
	default:
		return token.ColorValue{}, fmt.Errorf("%w: color must be a string or an object", token.ErrShapeMismatch)
	}
}

// unitColor decodes a DTCG srgb color: {colorSpace, components, alpha}.
func unitColor(node, comps *yaml.Node) (token.ColorValue, error) {
	if cs := mappingValue(node, "colorSpace"); cs != nil && cs.Value != "srgb" {
		return token.ColorValue{}, fmt.Errorf("unsupported color space %q", cs.Value)
	}
	if comps.Kind != yaml.SequenceNode || len(comps.Content) != 3 {
		return token.ColorValue{}, fmt.Errorf("color components must be a list of three numbers")
	}
	var rgb [3]float64
	for i, c := range comps.Content {
		v, err := strconv.ParseFloat(c.Value, 64)
		if err != nil {
			return token.ColorValue{}, fmt.Errorf("color component %d: %w", i, err)
		}
		rgb[i] = v
	}
	alpha := 1.0
	if a := mappingValue(node, "alpha"); a != nil {
		v, err := strconv.ParseFloat(a.Value, 64)
		if err != nil {
			return token.ColorValue{}, fmt.Errorf("color alpha: %w", err)
		}
		alpha = v
	}
	return common.ColorFromUnit(rgb[0], rgb[1], rgb[2], alpha)
}

func (d *decoder) measure(node *yaml.Node) (token.MeasureValue, error) {
	t, isRef, err := d.target(node, token.Measure)
	if err != nil {
		return token.MeasureValue{}, err
	}
	if isRef {
		v := t.Value.(token.MeasureValue)
		v.Ref = t
		return v, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		f, err := parseMeasure(node.Value)
		return token.MeasureValue{Measure: f}, err
	case yaml.MappingNode:
		n := mappingValue(node, "measure")
		if n == nil {
			n = mappingValue(node, "value")
		}
		if n == nil {
			return token.MeasureValue{}, fmt.Errorf("measure object needs a measure or value key")
		}
		return d.measure(n)
	default:
		return token.MeasureValue{}, fmt.Errorf("%w: measure must be a number", token.ErrShapeMismatch)
	}
}

func parseMeasure(s string) (float64, error) {
	s = strings.TrimSpace(s)
	for _, unit := range measureUnits {
		if trimmed, ok := strings.CutSuffix(s, unit); ok {
			s = strings.TrimSpace(trimmed)
			break
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid measure %q", s)
	}
	return f, nil
}

// optionalMeasure decodes the first present key, or returns nil.
func (d *decoder) optionalMeasure(node *yaml.Node, keys ...string) (*token.MeasureValue, error) {
	for _, key := range keys {
		if n := mappingValue(node, key); n != nil {
			if n.ShortTag() == "!!null" {
				return nil, nil
			}
			v, err := d.measure(n)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			return &v, nil
		}
	}
	return nil, nil
}

func (d *decoder) requiredMeasure(node *yaml.Node, keys ...string) (token.MeasureValue, error) {
	v, err := d.optionalMeasure(node, keys...)
	if err != nil {
		return token.MeasureValue{}, err
	}
	if v == nil {
		return token.MeasureValue{}, fmt.Errorf("missing %s", keys[0])
	}
	return *v, nil
}

func (d *decoder) shadow(node *yaml.Node) (token.ShadowValue, error) {
	t, isRef, err := d.target(node, token.Shadow)
	if err != nil {
		return token.ShadowValue{}, err
	}
	if isRef {
		return t.Value.(token.ShadowValue), nil
	}
	if node.Kind != yaml.MappingNode {
		return token.ShadowValue{}, fmt.Errorf("%w: shadow must be an object", token.ErrShapeMismatch)
	}

	var v token.ShadowValue
	c := mappingValue(node, "color")
	if c == nil {
		return v, fmt.Errorf("shadow is missing color")
	}
	if v.Color, err = d.color(c); err != nil {
		return v, fmt.Errorf("color: %w", err)
	}
	if v.X, err = d.requiredMeasure(node, "x", "offsetX"); err != nil {
		return v, err
	}
	if v.Y, err = d.requiredMeasure(node, "y", "offsetY"); err != nil {
		return v, err
	}
	if v.Radius, err = d.requiredMeasure(node, "radius", "blur"); err != nil {
		return v, err
	}
	return v, nil
}

func (d *decoder) gradient(node *yaml.Node) (token.GradientValue, error) {
	t, isRef, err := d.target(node, token.Gradient)
	if err != nil {
		return token.GradientValue{}, err
	}
	if isRef {
		return t.Value.(token.GradientValue), nil
	}
	if node.Kind != yaml.MappingNode {
		return token.GradientValue{}, fmt.Errorf("%w: gradient must be an object", token.ErrShapeMismatch)
	}

	v := token.GradientValue{Shape: token.LinearGradient, To: token.Point{X: 1, Y: 0}}
	if s := mappingValue(node, "type"); s != nil {
		v.Shape = cases.Title(language.Und).String(strings.ToLower(s.Value))
	}
	if from := mappingValue(node, "from"); from != nil {
		if v.From, err = point(from); err != nil {
			return v, fmt.Errorf("from: %w", err)
		}
	}
	if to := mappingValue(node, "to"); to != nil {
		if v.To, err = point(to); err != nil {
			return v, fmt.Errorf("to: %w", err)
		}
	}

	stops := mappingValue(node, "stops")
	if stops == nil || stops.Kind != yaml.SequenceNode || len(stops.Content) == 0 {
		return v, fmt.Errorf("gradient needs a non-empty list of stops")
	}
	for i, s := range stops.Content {
		c := mappingValue(s, "color")
		if c == nil {
			return v, fmt.Errorf("stop %d is missing color", i)
		}
		color, err := d.color(c)
		if err != nil {
			return v, fmt.Errorf("stop %d: %w", i, err)
		}
		stop := token.GradientStop{Color: color}
		if p := mappingValue(s, "position"); p != nil {
			if stop.Position, err = strconv.ParseFloat(p.Value, 64); err != nil {
				return v, fmt.Errorf("stop %d position: %w", i, err)
			}
		}
		v.Stops = append(v.Stops, stop)
	}
	return v, nil
}

func point(node *yaml.Node) (token.Point, error) {
	var p token.Point
	if err := node.Decode(&p); err != nil {
		return p, err
	}
	return p, nil
}

func (d *decoder) typography(node *yaml.Node) (token.TypographyValue, error) {
	t, isRef, err := d.target(node, token.Typography)
	if err != nil {
		return token.TypographyValue{}, err
	}
	if isRef {
		v := t.Value.(token.TypographyValue)
		v.Ref = t
		return v, nil
	}
	if node.Kind != yaml.MappingNode {
		return token.TypographyValue{}, fmt.Errorf("%w: typography must be an object", token.ErrShapeMismatch)
	}

	var v token.TypographyValue
	if font := mappingValue(node, "font"); font != nil {
		if err := font.Decode(&v.Font); err != nil {
			return v, fmt.Errorf("font: %w", err)
		}
	}
	if fam := mappingValue(node, "fontFamily"); fam != nil {
		v.Font.Family = fam.Value
	}
	if w := mappingValue(node, "fontWeight"); w != nil {
		v.Font.Subfamily = w.Value
	}
	if v.Font.Family == "" {
		return v, fmt.Errorf("typography is missing a font family")
	}
	if v.FontSize, err = d.requiredMeasure(node, "fontSize"); err != nil {
		return v, err
	}
	if v.LineHeight, err = d.optionalMeasure(node, "lineHeight"); err != nil {
		return v, err
	}
	if v.LetterSpacing, err = d.optionalMeasure(node, "letterSpacing"); err != nil {
		return v, err
	}
	return v, nil
}

func (d *decoder) generic(node *yaml.Node) (token.GenericValue, error) {
	t, isRef, err := d.target(node, token.Generic)
	if err != nil {
		return token.GenericValue{}, err
	}
	if isRef {
		v := t.Value.(token.GenericValue)
		v.Ref = t
		return v, nil
	}
	switch node.Kind {
	case yaml.ScalarNode:
		return token.GenericValue{Text: node.Value}, nil
	case yaml.SequenceNode:
		parts := make([]string, len(node.Content))
		for i, c := range node.Content {
			if c.Kind != yaml.ScalarNode {
				return token.GenericValue{}, fmt.Errorf("%w: list items must be scalars", token.ErrShapeMismatch)
			}
			parts[i] = c.Value
		}
		return token.GenericValue{Text: strings.Join(parts, ", ")}, nil
	default:
		return token.GenericValue{}, fmt.Errorf("%w: generic tokens hold text", token.ErrShapeMismatch)
	}
}
