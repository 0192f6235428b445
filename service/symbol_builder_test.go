package service

import (
	"testing"

	"github.com/tsgraph/tsgraph/internal/parser"
	"github.com/tsgraph/tsgraph/internal/testutil"
)

func buildFixture(t *testing.T, fx *testutil.Fixture, entries ...string) *Builder {
	t.Helper()
	b := NewBuilder(BuilderConfig{
		Resolve: fx.Resolver(),
		Parse:   parser.ParseForLanguage,
		Loader:  fx.Loader(),
	})
	return b
}

func TestBuildSimpleNamedUnused(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	m := testutil.JoinPath("m.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `import { a } from "./m";`},
		testutil.FixtureModule{Path: m, Source: `export const a = 1; export const b = 2;`},
	).Resolve(index, "./m", m)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(symbols.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(symbols.Modules))
	}

	unused := UnusedExports(symbols)
	if len(unused) != 1 {
		t.Fatalf("expected 1 unused export, got %d", len(unused))
	}
	if name, _ := unused[0].Name(); name != "b" {
		t.Errorf("expected unused export %q, got %q", "b", name)
	}
}

func TestBuildDeepChainUsed(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	m1 := testutil.JoinPath("m1.ts")
	m2 := testutil.JoinPath("m2.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `import { a } from "./m1";`},
		testutil.FixtureModule{Path: m1, Source: `export { a } from "./m2";`},
		testutil.FixtureModule{Path: m2, Source: `export const a = 1;`},
	).Resolve(index, "./m1", m1).Resolve(m1, "./m2", m2)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if unused := UnusedExports(symbols); len(unused) != 0 {
		t.Errorf("expected 0 unused exports, got %d", len(unused))
	}
}

func TestBuildDeepChainUnused(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	m1 := testutil.JoinPath("m1.ts")
	m2 := testutil.JoinPath("m2.ts")
	// m1 is only reachable because index side-effect-imports it; index
	// never consumes the name "a", so the chain stays unused.
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `import "./m1";`},
		testutil.FixtureModule{Path: m1, Source: `export { a } from "./m2";`},
		testutil.FixtureModule{Path: m2, Source: `export const a = 1;`},
	).Resolve(index, "./m1", m1).Resolve(m1, "./m2", m2)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	unused := UnusedExports(symbols)
	if len(unused) != 1 {
		t.Fatalf("expected 1 unused export, got %d", len(unused))
	}
	if name, _ := unused[0].Name(); name != "a" {
		t.Errorf("expected unused export %q, got %q", "a", name)
	}
}

func TestBuildDefaultExportUsed(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	m := testutil.JoinPath("m.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `import X from "./m";`},
		testutil.FixtureModule{Path: m, Source: `export default class M {}`},
	).Resolve(index, "./m", m)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if unused := UnusedExports(symbols); len(unused) != 0 {
		t.Errorf("expected 0 unused exports, got %d", len(unused))
	}
}

func TestBuildSpanOfExportConst(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `export const a = 1;`},
	)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(symbols.Symbols) != 1 {
		t.Fatalf("expected 1 symbol, got %d", len(symbols.Symbols))
	}
	sym := symbols.Symbols[0]
	if sym.Span.Start != 13 || sym.Span.End != 14 {
		t.Errorf("expected span [13, 14), got %s", sym.Span)
	}
	line, err := symbols.LineNumberFromSpan(sym.ModuleID, sym.Span)
	if err != nil {
		t.Fatalf("LineNumberFromSpan: %v", err)
	}
	if line != 1 {
		t.Errorf("expected line 1, got %d", line)
	}
}

func TestBuildRejectsJSONModule(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	data := testutil.JoinPath("data.json")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `import data from "./data.json";`},
		testutil.FixtureModule{Path: data, Source: `{}`},
	).Resolve(index, "./data.json", data)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(symbols.Modules) != 1 {
		t.Fatalf("expected json target to be rejected as a module, got %d modules", len(symbols.Modules))
	}
	if len(symbols.Symbols) != 0 {
		t.Errorf("expected the import declaration to be dropped, got %d symbols", len(symbols.Symbols))
	}
}
