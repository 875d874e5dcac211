/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"

	"bennypowers.dev/prism/load"
	"bennypowers.dev/prism/testutil"
	"bennypowers.dev/prism/token"
)

const remoteDoc = `base:
  color:
    $type: color
    remote:
      $value: "#123456"
`

type mockFetcher struct {
	content []byte
	err     error
	calls   []string
}

func (m *mockFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	m.calls = append(m.calls, url)
	if m.err != nil {
		return nil, m.err
	}
	return m.content, nil
}

func TestLoad_FromConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/globs", "/project")

	result, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(result.Files) != 3 {
		t.Errorf("expected 3 files, got %v", result.Files)
	}
	if len(result.Document.Tokens) != 2 {
		t.Errorf("expected 2 tokens, got %d", len(result.Document.Tokens))
	}
	if len(result.Document.Themes) != 1 || result.Document.Themes[0].Name != "DefaultDark" {
		t.Errorf("expected DefaultDark theme, got %+v", result.Document.Themes)
	}
	if result.Config == nil || len(result.Config.Files) != 2 {
		t.Errorf("expected loaded config, got %+v", result.Config)
	}
}

func TestLoad_FilesOverrideConfig(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/globs", "/project")

	result, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []string{"tokens/base/sizes.yaml"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(result.Document.Tokens) != 1 || result.Document.Tokens[0].Name != "small" {
		t.Errorf("expected only the size token, got %d tokens", len(result.Document.Tokens))
	}
}

func TestLoad_OverlappingEntries(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/globs", "/project")

	result, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []string{"tokens/base/*.yaml", "tokens/base/sizes.yaml", "/project/tokens/base/colors.yaml"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"/project/tokens/base/colors.yaml", "/project/tokens/base/sizes.yaml"}
	if !slices.Equal(result.Files, want) {
		t.Errorf("Files = %v, want %v", result.Files, want)
	}
	if len(result.Document.Tokens) != 2 {
		t.Errorf("expected 2 tokens, got %d", len(result.Document.Tokens))
	}
}

func TestLoad_NoFiles(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")

	_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs})
	if !errors.Is(err, load.ErrNoFiles) {
		t.Errorf("expected ErrNoFiles, got %v", err)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")

	_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs, Files: []string{"missing.yaml"}})
	if err == nil || !strings.Contains(err.Error(), "missing.yaml") {
		t.Errorf("expected read error naming the file, got %v", err)
	}
}

func TestLoad_ReportsEveryFile(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")
	mfs.AddFile("/project/a.yaml", "base: [unclosed", 0644)
	mfs.AddFile("/project/b.yaml", "base: {unclosed", 0644)

	_, err := load.Load(t.Context(), load.Options{Root: "/project", FS: mfs, Files: []string{"a.yaml", "b.yaml"}})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "a.yaml") || !strings.Contains(err.Error(), "b.yaml") {
		t.Errorf("expected both files in error, got %v", err)
	}
}

func TestLoad_Remote(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")
	fetcher := &mockFetcher{content: []byte(remoteDoc)}

	result, err := load.Load(t.Context(), load.Options{
		Root:    "/project",
		FS:      mfs,
		Files:   []string{"https://example.com/tokens.yaml"},
		Fetcher: fetcher,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(fetcher.calls) != 1 || fetcher.calls[0] != "https://example.com/tokens.yaml" {
		t.Errorf("unexpected fetches: %v", fetcher.calls)
	}
	tok := result.Document.Tokens[0]
	if tok.FilePath != "https://example.com/tokens.yaml" {
		t.Errorf("FilePath = %q", tok.FilePath)
	}
	if c := tok.Value.(token.ColorValue); c.Hex != "#123456" {
		t.Errorf("Hex = %q", c.Hex)
	}
}

func TestLoad_RemoteDisabled(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")

	_, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []string{"https://example.com/tokens.yaml"},
	})
	if !errors.Is(err, load.ErrRemoteDisabled) {
		t.Errorf("expected ErrRemoteDisabled, got %v", err)
	}
}

func TestLoad_RemoteError(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")
	fetcher := &mockFetcher{err: fmt.Errorf("connection refused")}

	_, err := load.Load(t.Context(), load.Options{
		Root:    "/project",
		FS:      mfs,
		Files:   []string{"https://example.com/tokens.yaml"},
		Fetcher: fetcher,
	})
	if err == nil || !strings.Contains(err.Error(), "connection refused") {
		t.Errorf("expected fetch error, got %v", err)
	}
}

func TestIsRemote(t *testing.T) {
	tests := map[string]bool{
		"https://example.com/a.yaml": true,
		"http://localhost/a.json":    true,
		"tokens/**/*.yaml":           false,
		"/abs/tokens.yaml":           false,
	}
	for spec, want := range tests {
		if got := load.IsRemote(spec); got != want {
			t.Errorf("IsRemote(%q) = %v, want %v", spec, got, want)
		}
	}
}

func TestHTTPFetcher_Success(t *testing.T) {
	var userAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write([]byte(remoteDoc))
	}))
	defer srv.Close()

	f := load.NewHTTPFetcher(load.DefaultMaxSize)
	content, err := f.Fetch(t.Context(), srv.URL+"/tokens.yaml")
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if string(content) != remoteDoc {
		t.Errorf("Fetch() = %q", string(content))
	}
	if !strings.HasPrefix(userAgent, "prism/") {
		t.Errorf("User-Agent = %q", userAgent)
	}
}

func TestHTTPFetcher_Errors(t *testing.T) {
	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("too late"))
		}))
		defer srv.Close()

		ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
		defer cancel()
		_, err := load.NewHTTPFetcher(load.DefaultMaxSize).Fetch(ctx, srv.URL)
		if err == nil {
			t.Fatal("expected timeout error")
		}
	})

	t.Run("too large", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(strings.Repeat("x", 100)))
		}))
		defer srv.Close()

		_, err := load.NewHTTPFetcher(50).Fetch(t.Context(), srv.URL)
		if err == nil || !strings.Contains(err.Error(), "exceeds maximum size") {
			t.Errorf("expected max size error, got %v", err)
		}
	})

	t.Run("html page", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html>sign in</html>"))
		}))
		defer srv.Close()

		_, err := load.NewHTTPFetcher(load.DefaultMaxSize).Fetch(t.Context(), srv.URL)
		if err == nil || !strings.Contains(err.Error(), "HTML") {
			t.Errorf("expected HTML rejection, got %v", err)
		}
	})

	t.Run("status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := load.NewHTTPFetcher(load.DefaultMaxSize).Fetch(t.Context(), srv.URL)
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Errorf("expected 404 error, got %v", err)
		}
	})
}

func TestFromFlags(t *testing.T) {
	v := viper.New()
	v.Set("root", "/project")

	opts := load.FromFlags(v, []string{"a.yaml"})
	if opts.Root != "/project" || len(opts.Files) != 1 || opts.Fetcher != nil {
		t.Errorf("FromFlags() = %+v", opts)
	}

	v.Set("remote", true)
	if _, ok := load.FromFlags(v, nil).Fetcher.(*load.HTTPFetcher); !ok {
		t.Error("expected an HTTPFetcher when remote is enabled")
	}
}

func TestLoad_NPMPackage(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project/app")
	mfs.AddFile("/project/node_modules/@acme/tokens/tokens.yaml", remoteDoc, 0644)

	result, err := load.Load(t.Context(), load.Options{
		Root:  "/project/app",
		FS:    mfs,
		Files: []string{"npm:@acme/tokens/tokens.yaml"},
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if result.Files[0] != "/project/node_modules/@acme/tokens/tokens.yaml" {
		t.Errorf("Files = %v", result.Files)
	}
}

func TestLoad_NPMFallsBackToCDN(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")
	fetcher := &mockFetcher{content: []byte(remoteDoc)}

	_, err := load.Load(t.Context(), load.Options{
		Root:  "/project",
		FS:    mfs,
		Files: []string{"npm:@acme/tokens/tokens.yaml"},
	})
	if err == nil || !strings.Contains(err.Error(), "package not found") {
		t.Errorf("expected package not found without remote, got %v", err)
	}

	result, err := load.Load(t.Context(), load.Options{
		Root:    "/project",
		FS:      mfs,
		Files:   []string{"npm:@acme/tokens/tokens.yaml"},
		Fetcher: fetcher,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(fetcher.calls) != 1 || fetcher.calls[0] != "https://unpkg.com/@acme/tokens/tokens.yaml" {
		t.Errorf("fetches = %v", fetcher.calls)
	}
	if len(result.Document.Tokens) != 1 {
		t.Errorf("expected 1 token, got %d", len(result.Document.Tokens))
	}
}

func TestLoad_FetcherFunc(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "config/none", "/project")
	fetch := load.FetcherFunc(func(ctx context.Context, url string) ([]byte, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Error("expected fetch to be bounded by a deadline")
		}
		return []byte(remoteDoc), nil
	})

	_, err := load.Load(t.Context(), load.Options{
		Root:         "/project",
		FS:           mfs,
		Files:        []string{"https://example.com/tokens.yaml"},
		Fetcher:      fetch,
		FetchTimeout: time.Second,
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
}
