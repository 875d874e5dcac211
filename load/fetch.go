/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package load

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"bennypowers.dev/prism/internal/version"
	"bennypowers.dev/prism/specifier"
)

const (
	// DefaultTimeout bounds each remote fetch.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxSize is the largest remote document accepted (10 MB).
	DefaultMaxSize int64 = 10 * 1024 * 1024
)

// Fetcher fetches a token document from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) { return f(ctx, url) }

// HTTPFetcher GETs documents, rejecting oversized bodies and HTML pages
// such as CDN error or login pages.
type HTTPFetcher struct {
	MaxSize int64
	Client  *http.Client
}

// NewHTTPFetcher returns an HTTPFetcher using http.DefaultClient.
func NewHTTPFetcher(maxSize int64) *HTTPFetcher {
	return &HTTPFetcher{MaxSize: maxSize, Client: http.DefaultClient}
}

// IsRemote reports whether a file entry names a document to fetch.
func IsRemote(spec string) bool {
	return specifier.Parse(spec).Kind == specifier.KindURL
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", "prism/"+version.Get())
	req.Header.Set("Accept", "application/yaml, application/json;q=0.9, */*;q=0.1")

	resp, err := f.Client.Do(req)
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("timeout fetching %s: %w", url, err)
	case err != nil:
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: %s", url, resp.Status)
	}
	if mt, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type")); mt == "text/html" {
		return nil, fmt.Errorf("fetching %s: got an HTML page, not a token document", url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.MaxSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", url, err)
	}
	if int64(len(body)) > f.MaxSize {
		return nil, fmt.Errorf("response from %s exceeds maximum size of %d bytes", url, f.MaxSize)
	}
	return body, nil
}
