/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package specifier_test

import (
	"testing"

	"bennypowers.dev/prism/internal/mapfs"
	"bennypowers.dev/prism/specifier"
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		kind specifier.Kind
		pkg  string
		file string
	}{
		{"npm:@acme/tokens/tokens.yaml", specifier.KindNPM, "@acme/tokens", "tokens.yaml"},
		{"npm:tokens/dist/all.json", specifier.KindNPM, "tokens", "dist/all.json"},
		{"npm:@acme/tokens", specifier.KindNPM, "@acme/tokens", ""},
		{"https://example.com/tokens.yaml", specifier.KindURL, "", ""},
		{"tokens/**/*.yaml", specifier.KindLocal, "", "tokens/**/*.yaml"},
		{"npm:@broken", specifier.KindLocal, "", "npm:@broken"},
	}
	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got := specifier.Parse(tt.spec)
			if got.Kind != tt.kind || got.Package != tt.pkg || got.File != tt.file {
				t.Errorf("Parse(%q) = %+v", tt.spec, got)
			}
		})
	}
}

func TestCDNURL(t *testing.T) {
	url, ok := specifier.Parse("npm:@acme/tokens/tokens.yaml").CDNURL()
	if !ok || url != "https://unpkg.com/@acme/tokens/tokens.yaml" {
		t.Errorf("CDNURL() = %q, %v", url, ok)
	}
	if _, ok := specifier.Parse("tokens.yaml").CDNURL(); ok {
		t.Error("local paths have no CDN URL")
	}
}

func TestResolveNPM(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/repo/node_modules/@acme/tokens/tokens.yaml", "base: {}", 0644)

	t.Run("walks up to node_modules", func(t *testing.T) {
		got, err := specifier.ResolveNPM(mfs, "/repo/apps/ios", specifier.Parse("npm:@acme/tokens/tokens.yaml"))
		if err != nil {
			t.Fatal(err)
		}
		if got != "/repo/node_modules/@acme/tokens/tokens.yaml" {
			t.Errorf("ResolveNPM() = %q", got)
		}
	})

	t.Run("missing package", func(t *testing.T) {
		if _, err := specifier.ResolveNPM(mfs, "/repo", specifier.Parse("npm:@acme/other/tokens.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("no file", func(t *testing.T) {
		if _, err := specifier.ResolveNPM(mfs, "/repo", specifier.Parse("npm:@acme/tokens")); err == nil {
			t.Error("expected error")
		}
	})
}
