package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceLoader reads the full contents of a module's source file. The
// symbol map builder installs the real filesystem loader; tests install an
// in-memory one over a fixture map (see internal/testutil).
type SourceLoader func(path string) ([]byte, error)

// SymbolsMap owns the append-only vectors of Module and Symbol and a
// path -> module id index. It is built once, by service.Builder, from a
// list of entry paths, and is read-only thereafter. Source text is read at
// most once per module and cached for span-to-source lookups (line numbers,
// annotation rendering).
type SymbolsMap struct {
	Modules []*Module
	Symbols []*Symbol

	pathIndex map[string]int
	loader    SourceLoader
	sourceBuf map[int][]byte
}

// NewSymbolsMap creates an empty map. loader is used to resolve a module's
// source text on first access; pass nil to disable source-backed lookups
// (e.g. when only graph topology is needed).
func NewSymbolsMap(loader SourceLoader) *SymbolsMap {
	return &SymbolsMap{
		pathIndex: make(map[string]int),
		loader:    loader,
		sourceBuf: make(map[int][]byte),
	}
}

// ModuleIDForPath returns the module id already registered for path, if any.
func (m *SymbolsMap) ModuleIDForPath(path string) (int, bool) {
	id, ok := m.pathIndex[path]
	return id, ok
}

// AddModule registers path as a module, or returns the existing module id
// if path was already registered. isEntry is only honored on first
// registration.
func (m *SymbolsMap) AddModule(path string, isEntry bool) int {
	if id, ok := m.pathIndex[path]; ok {
		return id
	}
	id := len(m.Modules)
	mod := &Module{ID: id, Path: path, IsEntry: isEntry}
	m.Modules = append(m.Modules, mod)
	m.pathIndex[path] = id
	return id
}

// RegisterResolvedModule registers a resolver-produced path as a module,
// enforcing invariant 4: a path whose extension is ".json" is never added
// as a module (the resolver may legitimately return one; it is filtered
// here instead of at the resolver, since "json is not a module" is a
// symbol-map-level rule, not a resolution rule). ok is false for a
// rejected path, and the caller must drop the originating declaration.
func (m *SymbolsMap) RegisterResolvedModule(path string) (id int, ok bool) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return 0, false
	}
	return m.AddModule(path, false), true
}

// Module returns the module with the given id. Panics on an invariant
// violation (id out of range) since that can only happen from a bug in the
// builder.
func (m *SymbolsMap) Module(id int) *Module {
	return m.Modules[id]
}

// AddSymbol appends sym to the map, assigns it an id, attaches it to its
// owning module, and returns the new symbol id.
func (m *SymbolsMap) AddSymbol(sym *Symbol) int {
	id := len(m.Symbols)
	m.Symbols = append(m.Symbols, sym)
	m.Modules[sym.ModuleID].AddSymbol(id)
	return id
}

// Symbol returns the symbol with the given id.
func (m *SymbolsMap) Symbol(id int) *Symbol {
	return m.Symbols[id]
}

// Source returns the cached source text for a module, reading and caching
// it on first access.
func (m *SymbolsMap) Source(moduleID int) ([]byte, error) {
	if buf, ok := m.sourceBuf[moduleID]; ok {
		return buf, nil
	}
	if m.loader == nil {
		return nil, fmt.Errorf("symbols map: no source loader configured")
	}
	mod := m.Module(moduleID)
	buf, err := m.loader(mod.Path)
	if err != nil {
		return nil, err
	}
	m.sourceBuf[moduleID] = buf
	return buf, nil
}

// SpanText returns the source text covered by span within the given
// module, reading and caching the module's source on first access.
func (m *SymbolsMap) SpanText(moduleID int, span Span) (string, error) {
	src, err := m.Source(moduleID)
	if err != nil {
		return "", err
	}
	if span.Start < 0 || span.End > len(src) || span.Start > span.End {
		return "", fmt.Errorf("span %s out of bounds for module %d (%d bytes)", span, moduleID, len(src))
	}
	return string(src[span.Start:span.End]), nil
}

// LineNumberFromSpan returns the 1-based source line containing span.Start.
// A span starting at byte 0 is defined to be on line 1 (preserved from the
// original implementation's special case), even though the general
// newline-counting rule would also yield 1 for that input.
func (m *SymbolsMap) LineNumberFromSpan(moduleID int, span Span) (int, error) {
	if span.Start == 0 {
		return 1, nil
	}
	src, err := m.Source(moduleID)
	if err != nil {
		return 0, err
	}
	if span.Start > len(src) {
		return 0, fmt.Errorf("span %s out of bounds for module %d (%d bytes)", span, moduleID, len(src))
	}
	line := 1
	for i := 0; i < span.Start; i++ {
		if src[i] == '\n' {
			line++
		}
	}
	return line, nil
}

// ColumnFromSpan returns the 0-based byte column of span.Start within its
// own source line (the offset since the preceding newline, or since byte 0
// on the first line).
func (m *SymbolsMap) ColumnFromSpan(moduleID int, span Span) (int, error) {
	src, err := m.Source(moduleID)
	if err != nil {
		return 0, err
	}
	if span.Start < 0 || span.Start > len(src) {
		return 0, fmt.Errorf("span %s out of bounds for module %d (%d bytes)", span, moduleID, len(src))
	}
	col := 0
	for i := span.Start - 1; i >= 0 && src[i] != '\n'; i-- {
		col++
	}
	return col, nil
}
