// Package testutil provides helper functions for testing tsgraph components
package testutil

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// FixtureModule is one in-memory source file keyed by its absolute path.
type FixtureModule struct {
	Path   string
	Source string
}

// Fixture is a virtual filesystem of (path -> source) plus a resolver that
// answers (parentDir, specifier) -> path from a declared edge list. It lets
// symbol-map-builder tests run without touching the real filesystem.
type Fixture struct {
	files   map[string]string
	imports map[string]string // "parentDir\x00specifier" -> resolved path
}

// NewFixture builds a Fixture from a list of modules. Resolution edges are
// registered separately via Resolve, since a fixture's import graph is
// usually easier to state next to each source string.
func NewFixture(modules ...FixtureModule) *Fixture {
	f := &Fixture{
		files:   make(map[string]string, len(modules)),
		imports: make(map[string]string),
	}
	for _, m := range modules {
		f.files[m.Path] = m.Source
	}
	return f
}

// Resolve registers specifier, seen from the directory containing from, as
// resolving to target. Chain calls to build out a fixture's whole import
// graph.
func (f *Fixture) Resolve(from, specifier, target string) *Fixture {
	dir := filepath.Dir(from)
	f.imports[dir+"\x00"+specifier] = target
	return f
}

// Resolver returns a resolve function matching the signature the symbol
// map builder depends on.
func (f *Fixture) Resolver() func(parentDir, specifier string) (string, error) {
	return func(parentDir, specifier string) (string, error) {
		if target, ok := f.imports[parentDir+"\x00"+specifier]; ok {
			return target, nil
		}
		return "", fmt.Errorf("fixture: no resolution registered for %q from %q", specifier, parentDir)
	}
}

// Loader returns a source-loader function matching domain.SourceLoader.
func (f *Fixture) Loader() func(path string) ([]byte, error) {
	return func(path string) ([]byte, error) {
		src, ok := f.files[path]
		if !ok {
			return nil, fmt.Errorf("fixture: no source registered for %q", path)
		}
		return []byte(src), nil
	}
}

// SortedPaths returns every path registered in the fixture, sorted, for
// tests that want deterministic iteration.
func (f *Fixture) SortedPaths() []string {
	paths := make([]string, 0, len(f.files))
	for p := range f.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// JoinPath builds a fixture path from slash-separated segments, keeping
// fixture sources portable across platforms regardless of the host's
// path separator.
func JoinPath(segments ...string) string {
	return "/" + strings.Join(segments, "/")
}
