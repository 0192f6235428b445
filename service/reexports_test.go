package service

import (
	"testing"

	"github.com/tsgraph/tsgraph/internal/testutil"
)

func TestReExports(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	m1 := testutil.JoinPath("m1.ts")
	m2 := testutil.JoinPath("m2.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `import { a } from "./m1";`},
		testutil.FixtureModule{Path: m1, Source: `export * from "./m2";`},
		testutil.FixtureModule{Path: m2, Source: `export const a = 1;`},
	).Resolve(index, "./m1", m1).Resolve(m1, "./m2", m2)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	reexports := ReExports(symbols)
	if len(reexports) != 1 {
		t.Fatalf("expected 1 re-export, got %d", len(reexports))
	}
	mod := symbols.Module(reexports[0].ModuleID)
	if mod.Path != m1 {
		t.Errorf("expected re-export owned by %q, got %q", m1, mod.Path)
	}
}

func TestReExportsExcludesEntries(t *testing.T) {
	index := testutil.JoinPath("index.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: index, Source: `export * from "./m";`},
		testutil.FixtureModule{Path: testutil.JoinPath("m.ts"), Source: `export const a = 1;`},
	).Resolve(index, "./m", testutil.JoinPath("m.ts"))

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{index})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if reexports := ReExports(symbols); len(reexports) != 0 {
		t.Errorf("expected 0 re-exports (owning module is an entry), got %d", len(reexports))
	}
}
