package domain

import "testing"

func buildTestMap() *SymbolsMap {
	m := NewSymbolsMap(nil)
	a := m.AddModule("/a.ts", true)
	b := m.AddModule("/b.ts", false)
	m.AddSymbol(&Symbol{
		ModuleID: a,
		Kind:     KindImportNamed,
		Local:    "x",
		Imported: "x",
		Ref:      &FileReference{ModuleID: b, Span: Span{Start: 0, End: 1}},
	})
	m.AddSymbol(&Symbol{ModuleID: b, Kind: KindExportDecl, Exported: "x", HasName: true})
	return m
}

func TestDependencyGraphEdges(t *testing.T) {
	m := buildTestMap()
	g := NewDependencyGraphFromSymbolsMap(m)

	deps := g.DependenciesOf(0)
	if _, ok := deps[1]; !ok || len(deps) != 1 {
		t.Fatalf("expected module 0 to depend on module 1, got %v", deps)
	}
	dependents := g.DependentsOf(1)
	if _, ok := dependents[0]; !ok || len(dependents) != 1 {
		t.Fatalf("expected module 1 to have dependent 0, got %v", dependents)
	}
}

func TestGraphvizFormat(t *testing.T) {
	m := buildTestMap()
	g := NewDependencyGraphFromSymbolsMap(m)

	want := "digraph {\n" +
		"  0 [label=\"/a.ts\"]\n" +
		"  0 -> 1\n" +
		"  1 [label=\"/b.ts\"]\n" +
		"}\n"
	if got := g.Graphviz(); got != want {
		t.Errorf("Graphviz() = %q, want %q", got, want)
	}
}

func TestGraphvizIdempotent(t *testing.T) {
	m := buildTestMap()
	g1 := NewDependencyGraphFromSymbolsMap(m)
	g2 := NewDependencyGraphFromSymbolsMap(m)
	if g1.Graphviz() != g2.Graphviz() {
		t.Error("expected identical Graphviz output across rebuilds from the same map")
	}
}
