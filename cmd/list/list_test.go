/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package list

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"bennypowers.dev/prism/cmd/render"
	"bennypowers.dev/prism/testutil"
	"bennypowers.dev/prism/theme"
	"bennypowers.dev/prism/token"
)

func tok(name string, path []string, typ token.Type, v token.Value) *token.Token {
	return &token.Token{
		Name:   name,
		Parent: token.Node{Name: path[len(path)-1], Path: path[:len(path)-1]},
		Type:   typ,
		Value:  v,
	}
}

func TestFilterTokens(t *testing.T) {
	tokens := []*token.Token{
		tok("primary", []string{"base", "color", "brand"}, token.Color, token.ColorValue{R: 255, A: 255, Hex: "#ff0000"}),
		tok("small", []string{"base", "size"}, token.Measure, token.MeasureValue{Measure: 4}),
		tok("medium", []string{"base", "space"}, token.Measure, token.MeasureValue{Measure: 8}),
		tok("card", []string{"base", "border-radius"}, token.Measure, token.MeasureValue{Measure: 12}),
	}

	t.Run("no filter", func(t *testing.T) {
		result, err := filterTokens(tokens, "")
		if err != nil {
			t.Fatal(err)
		}
		if len(result) != 4 {
			t.Errorf("expected 4 tokens, got %d", len(result))
		}
	})

	t.Run("filter by kind", func(t *testing.T) {
		result, err := filterTokens(tokens, "borderRadius")
		if err != nil {
			t.Fatal(err)
		}
		if len(result) != 1 || result[0].Name != "card" {
			t.Errorf("expected only card, got %d tokens", len(result))
		}
	})

	t.Run("kind is case-insensitive", func(t *testing.T) {
		result, err := filterTokens(tokens, "COLOR")
		if err != nil {
			t.Fatal(err)
		}
		if len(result) != 1 || result[0].Name != "primary" {
			t.Errorf("expected only primary, got %d tokens", len(result))
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := filterTokens(tokens, "opacity"); err == nil {
			t.Error("expected error for unknown kind")
		}
	})
}

func TestFindTheme(t *testing.T) {
	themes := []theme.Theme{{Name: theme.DefaultName}, {Name: "Deep Sea"}}

	for _, name := range []string{"Deep Sea", "DeepSea"} {
		got, ok := findTheme(themes, name)
		if !ok || got.Name != "Deep Sea" {
			t.Errorf("findTheme(%q) = %q, %v", name, got.Name, ok)
		}
	}
	if _, ok := findTheme(themes, "Ocean"); ok {
		t.Error("expected Ocean to be missing")
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := write(&buf, []render.Row{{Name: "a"}}, "css", false); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRun(t *testing.T) {
	t.Cleanup(viper.Reset)
	viper.Set("root", testutil.Dir(t, "generate"))

	var out bytes.Buffer
	Cmd.SetOut(&out)
	Cmd.SetArgs([]string{"--format", "names", "--kind", "color", "--theme", "DeepSea", "tokens.yaml"})
	if err := Cmd.ExecuteContext(t.Context()); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	names := strings.Fields(out.String())
	if len(names) != 1 || names[0] != "baseColorBrandPrimary" {
		t.Errorf("expected only the overridden color, got %v", names)
	}
}
