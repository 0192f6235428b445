package service

import (
	"sort"
	"strings"

	"github.com/tsgraph/tsgraph/domain"
)

// isDefaultFamily reports whether kind is one of the default-export
// variants that ImportDefault can consume. (A "default"-named ExportNamed
// re-export consumes only ExportDefaultExpr, or a default decl by name.)
func isDefaultFamily(k domain.SymbolKind) bool {
	switch k {
	case domain.KindExportDefaultClassDecl, domain.KindExportDefaultExpr,
		domain.KindExportDefaultFnDecl, domain.KindExportDefaultInterfaceDecl:
		return true
	}
	return false
}

// UnusedExports seeds a working set with every export symbol, then walks
// every symbol once: each named/default import or named re-export removes
// the first export it consumes, and each `export *` or `import * as`
// removes every export of its target module. Whatever remains, outside
// entry modules and node_modules paths, was never imported in the graph.
func UnusedExports(m *domain.SymbolsMap) []*domain.Symbol {
	working := make([]*domain.Symbol, 0)
	indexOf := make(map[*domain.Symbol]int)
	for _, sym := range m.Symbols {
		if sym.Kind.IsExport() {
			indexOf[sym] = len(working)
			working = append(working, sym)
		}
	}
	removed := make([]bool, len(working))

	removeFirst := func(pred func(*domain.Symbol) bool) {
		for i, sym := range working {
			if removed[i] {
				continue
			}
			if pred(sym) {
				removed[i] = true
				return
			}
		}
	}
	removeAllFrom := func(moduleID int) {
		for i, sym := range working {
			if !removed[i] && sym.ModuleID == moduleID {
				removed[i] = true
			}
		}
	}

	for _, sym := range m.Symbols {
		switch sym.Kind {
		case domain.KindImportDefault:
			if sym.Ref == nil {
				continue
			}
			target := sym.Ref.ModuleID
			removeFirst(func(x *domain.Symbol) bool {
				return x.ModuleID == target && isDefaultFamily(x.Kind)
			})

		case domain.KindImportNamed:
			if sym.Ref == nil {
				continue
			}
			target := sym.Ref.ModuleID
			removeFirst(func(x *domain.Symbol) bool {
				if x.ModuleID != target {
					return false
				}
				if x.Kind == domain.KindExportAll {
					return true
				}
				name, ok := x.Name()
				return ok && name == sym.Imported
			})

		case domain.KindExportNamed:
			if sym.Ref == nil {
				continue
			}
			target := sym.Ref.ModuleID
			removeFirst(func(x *domain.Symbol) bool {
				if x.ModuleID != target {
					return false
				}
				if sym.Local == "default" && x.Kind == domain.KindExportDefaultExpr {
					return true
				}
				name, ok := x.Name()
				return ok && name == sym.Local
			})

		case domain.KindExportAll, domain.KindImportStar:
			if sym.Ref == nil {
				continue
			}
			removeAllFrom(sym.Ref.ModuleID)
		}
	}

	result := make([]*domain.Symbol, 0)
	for i, sym := range working {
		if removed[i] {
			continue
		}
		mod := m.Module(sym.ModuleID)
		if mod.IsEntry || strings.Contains(mod.Path, "node_modules") {
			continue
		}
		result = append(result, sym)
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].ModuleID != result[j].ModuleID {
			return result[i].ModuleID < result[j].ModuleID
		}
		return indexOf[result[i]] < indexOf[result[j]]
	})
	return result
}
