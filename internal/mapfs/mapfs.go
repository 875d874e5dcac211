/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package mapfs is an in-memory prism filesystem for tests.
package mapfs

import (
	"io/fs"
	"path"
	"slices"
	"strings"
	"sync"
	"testing/fstest"
	"time"
)

// MapFileSystem stores files in an fstest.MapFS keyed by slash paths
// without the leading slash. Parent directories are implied by file
// paths; MkdirAll records explicit entries so empty directories exist.
type MapFileSystem struct {
	mu    sync.RWMutex
	files fstest.MapFS
	mtime time.Time
}

// New returns an empty filesystem.
func New() *MapFileSystem {
	return &MapFileSystem{
		files: make(fstest.MapFS),
		mtime: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// AddFile stores content at p, replacing any existing file.
func (m *MapFileSystem) AddFile(p string, content string, mode fs.FileMode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.files[clean(p)] = &fstest.MapFile{Data: []byte(content), Mode: mode, ModTime: m.mtime}
}

// WriteFile fails when an ancestor of name is a regular file.
func (m *MapFileSystem) WriteFile(name string, data []byte, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = clean(name)
	if err := m.checkAncestors("write", name); err != nil {
		return err
	}
	m.files[name] = &fstest.MapFile{Data: slices.Clone(data), Mode: perm, ModTime: m.mtime}
	return nil
}

func (m *MapFileSystem) MkdirAll(p string, perm fs.FileMode) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	p = clean(p)
	if p == "." {
		return nil
	}
	if f, ok := m.files[p]; ok && !f.Mode.IsDir() {
		return &fs.PathError{Op: "mkdir", Path: "/" + p, Err: fs.ErrExist}
	}
	if err := m.checkAncestors("mkdir", p); err != nil {
		return err
	}
	m.files[p] = &fstest.MapFile{Mode: fs.ModeDir | perm.Perm(), ModTime: m.mtime}
	return nil
}

func (m *MapFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadFile(m.files, clean(name))
}

func (m *MapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.ReadDir(m.files, clean(name))
}

func (m *MapFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return fs.Stat(m.files, clean(name))
}

// Exists reports whether p is a file or an explicit or implied directory.
func (m *MapFileSystem) Exists(p string) bool {
	_, err := m.Stat(p)
	return err == nil
}

func (m *MapFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.files.Open(clean(name))
}

// Paths returns the sorted absolute paths of every regular file under dir.
func (m *MapFileSystem) Paths(dir string) []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	prefix := clean(dir) + "/"
	if prefix == "./" {
		prefix = ""
	}
	var paths []string
	for p, f := range m.files {
		if !f.Mode.IsDir() && strings.HasPrefix(p, prefix) {
			paths = append(paths, "/"+p)
		}
	}
	slices.Sort(paths)
	return paths
}

func (m *MapFileSystem) checkAncestors(op, name string) error {
	for dir := path.Dir(name); dir != "."; dir = path.Dir(dir) {
		if f, ok := m.files[dir]; ok && !f.Mode.IsDir() {
			return &fs.PathError{Op: op, Path: "/" + name, Err: fs.ErrInvalid}
		}
	}
	return nil
}

// clean maps absolute or relative slash paths to MapFS keys.
func clean(p string) string {
	p = strings.TrimPrefix(path.Clean("/"+p), "/")
	if p == "" {
		return "."
	}
	return p
}
