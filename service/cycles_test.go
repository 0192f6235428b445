package service

import (
	"testing"

	"github.com/tsgraph/tsgraph/domain"
	"github.com/tsgraph/tsgraph/internal/testutil"
)

func TestFindCyclesThreeFileCycle(t *testing.T) {
	a := testutil.JoinPath("a.ts")
	bPath := testutil.JoinPath("b.ts")
	c := testutil.JoinPath("c.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: a, Source: `import { x } from "./b";`},
		testutil.FixtureModule{Path: bPath, Source: `import { x } from "./c"; export const x = 1;`},
		testutil.FixtureModule{Path: c, Source: `import { x } from "./a"; export const x = 1;`},
	).Resolve(a, "./b", bPath).Resolve(bPath, "./c", c).Resolve(c, "./a", a)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{a})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	graph := domain.NewDependencyGraphFromSymbolsMap(symbols)

	cycles := FindCycles(graph)
	if len(cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(cycles))
	}
	if len(cycles[0].ModuleIDs) != 3 {
		t.Errorf("expected cycle of length 3, got %d", len(cycles[0].ModuleIDs))
	}
}

func TestFindCyclesNoCycle(t *testing.T) {
	a := testutil.JoinPath("a.ts")
	bPath := testutil.JoinPath("b.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: a, Source: `import { x } from "./b";`},
		testutil.FixtureModule{Path: bPath, Source: `export const x = 1;`},
	).Resolve(a, "./b", bPath)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{a})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	graph := domain.NewDependencyGraphFromSymbolsMap(symbols)

	if cycles := FindCycles(graph); len(cycles) != 0 {
		t.Errorf("expected 0 cycles, got %d", len(cycles))
	}
}
