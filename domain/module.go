package domain

// Module is one absolute file path known to a SymbolsMap, together with the
// ordered list of symbols attached to it. Modules are created the first
// time they're referenced — either supplied as an entry path or discovered
// via a resolved import/export specifier — and carry an immutable integer
// id assigned in first-seen order.
type Module struct {
	ID        int
	Path      string
	IsEntry   bool
	SymbolIDs []int
}

// AddSymbol records that symbol id belongs to this module, preserving
// discovery order.
func (m *Module) AddSymbol(symbolID int) {
	m.SymbolIDs = append(m.SymbolIDs, symbolID)
}
