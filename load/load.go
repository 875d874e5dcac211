/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading token documents the
// way the CLI does: config discovery, glob expansion, optional remote
// documents, then parsing and reference resolution.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/multierr"

	"bennypowers.dev/prism/config"
	"bennypowers.dev/prism/fs"
	"bennypowers.dev/prism/internal/logger"
	"bennypowers.dev/prism/parser"
	"bennypowers.dev/prism/specifier"
)

var (
	// ErrNoFiles indicates that neither arguments nor config named any documents.
	ErrNoFiles = errors.New("no token files specified and none found in config")

	// ErrRemoteDisabled indicates a URL was given without a Fetcher.
	ErrRemoteDisabled = errors.New("remote documents are disabled")
)

// Options configures how documents are loaded.
type Options struct {
	// Root is the directory config and relative paths are resolved from.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// Files overrides the config's file list when non-empty.
	Files []string

	// Fetcher enables http(s) URLs in the file list.
	// Nil means URLs are rejected with ErrRemoteDisabled.
	Fetcher Fetcher

	// FetchTimeout bounds each remote fetch. Defaults to DefaultTimeout.
	FetchTimeout time.Duration
}

// Result is a loaded document with the config it was loaded under.
type Result struct {
	Document *parser.Document
	Config   *config.Config
	Files    []string
}

// Load loads and resolves every document named by opts or the config.
// Problems from all files are reported together.
func Load(ctx context.Context, opts Options) (*Result, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	cfg, err := config.Load(filesystem, root)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		cfg = config.Default()
	} else {
		logger.Debug("using config %s", config.Path(filesystem, root))
	}

	specs := opts.Files
	if len(specs) == 0 {
		specs = cfg.Files
	}
	files, err := expand(filesystem, root, specs, opts.Fetcher != nil)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	timeout := opts.FetchTimeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	l := parser.NewLoader()
	var errs error
	for _, file := range files {
		if IsRemote(file) {
			errs = multierr.Append(errs, addRemote(ctx, l, opts.Fetcher, timeout, file))
			continue
		}
		errs = multierr.Append(errs, l.AddFile(filesystem, file))
	}
	if errs != nil {
		return nil, errs
	}

	doc, err := l.Load()
	if err != nil {
		return nil, err
	}
	return &Result{Document: doc, Config: cfg, Files: files}, nil
}

// expand resolves local globs against root, npm specifiers against
// node_modules, and passes URLs through. When remote is set, an npm
// package missing from node_modules is fetched from its CDN URL instead.
// A file named by more than one entry is loaded once, at its first position.
func expand(filesystem fs.FileSystem, root string, specs []string, remote bool) ([]string, error) {
	var files []string
	seen := make(map[string]bool)
	add := func(paths ...string) {
		for _, p := range paths {
			if !seen[p] {
				seen[p] = true
				files = append(files, p)
			}
		}
	}

	for _, spec := range specs {
		s := specifier.Parse(spec)
		switch s.Kind {
		case specifier.KindURL:
			add(spec)
		case specifier.KindNPM:
			path, err := specifier.ResolveNPM(filesystem, root, s)
			if err != nil {
				url, ok := s.CDNURL()
				if !remote || !ok {
					return nil, err
				}
				logger.Debug("%v; falling back to %s", err, url)
				path = url
			}
			add(path)
		default:
			expanded, err := config.ExpandPatterns(filesystem, root, []string{spec})
			if err != nil {
				return nil, fmt.Errorf("error expanding %s: %w", spec, err)
			}
			add(expanded...)
		}
	}
	return files, nil
}

func addRemote(ctx context.Context, l *parser.Loader, fetcher Fetcher, timeout time.Duration, url string) error {
	if fetcher == nil {
		return fmt.Errorf("%w: %s", ErrRemoteDisabled, url)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	content, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return err
	}
	return l.Add(url, content)
}
