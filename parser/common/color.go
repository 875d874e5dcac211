/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides shared utilities for token parsing.
package common

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"

	"bennypowers.dev/prism/token"
)

// ParseColor parses a CSS color string (hex, rgb(), hsl(), named colors)
// into 0..255 channels. The hex is normalized to lower case and carries
// an alpha pair only when the color is translucent.
func ParseColor(s string) (token.ColorValue, error) {
	c, err := csscolorparser.Parse(strings.TrimSpace(s))
	if err != nil {
		return token.ColorValue{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b, a := c.RGBA255()
	return ColorFromChannels(int(r), int(g), int(b), int(a))
}

// ColorFromChannels builds a color from 0..255 channels.
func ColorFromChannels(r, g, b, a int) (token.ColorValue, error) {
	for _, ch := range []struct {
		name  string
		value int
	}{{"r", r}, {"g", g}, {"b", b}, {"a", a}} {
		if ch.value < 0 || ch.value > 255 {
			return token.ColorValue{}, fmt.Errorf("channel %s out of range 0..255: %d", ch.name, ch.value)
		}
	}
	return token.ColorValue{R: r, G: g, B: b, A: a, Hex: Hex(r, g, b, a)}, nil
}

// ColorFromUnit builds a color from 0..1 float components, as used by
// structured color objects.
func ColorFromUnit(r, g, b, alpha float64) (token.ColorValue, error) {
	c := colorful.Color{R: r, G: g, B: b}
	if !c.IsValid() || alpha < 0 || alpha > 1 {
		return token.ColorValue{}, fmt.Errorf("color components out of range 0..1: %g %g %g / %g", r, g, b, alpha)
	}
	r8, g8, b8 := c.RGB255()
	return ColorFromChannels(int(r8), int(g8), int(b8), int(math.Round(alpha*255)))
}

// Hex returns the lower-case #rrggbb form of a color, with an alpha pair
// appended when the color is not fully opaque.
func Hex(r, g, b, a int) string {
	hex := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}.Hex()
	if a < 255 {
		hex += fmt.Sprintf("%02x", a)
	}
	return hex
}
