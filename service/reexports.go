package service

import (
	"strings"

	"github.com/tsgraph/tsgraph/domain"
)

// ReExports returns every symbol that forwards a name from another
// module (ExportAll, or ExportNamed with a FileReference), filtered to
// non-entry modules outside node_modules. Iteration follows module id
// then symbol id, matching the map's natural storage order.
func ReExports(m *domain.SymbolsMap) []*domain.Symbol {
	result := make([]*domain.Symbol, 0)
	for _, sym := range m.Symbols {
		switch sym.Kind {
		case domain.KindExportAll:
		case domain.KindExportNamed:
			if sym.Ref == nil {
				continue
			}
		default:
			continue
		}
		mod := m.Module(sym.ModuleID)
		if mod.IsEntry || strings.Contains(mod.Path, "node_modules") {
			continue
		}
		result = append(result, sym)
	}
	return result
}
