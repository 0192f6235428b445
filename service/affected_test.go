package service

import (
	"testing"

	"github.com/tsgraph/tsgraph/domain"
	"github.com/tsgraph/tsgraph/internal/testutil"
)

func TestAffectedRestrictedToEntries(t *testing.T) {
	a := testutil.JoinPath("a.ts")
	bPath := testutil.JoinPath("b.ts")
	lib := testutil.JoinPath("lib.ts")
	fx := testutil.NewFixture(
		testutil.FixtureModule{Path: a, Source: `import { x } from "./lib";`},
		testutil.FixtureModule{Path: bPath, Source: `export const y = 2;`},
		testutil.FixtureModule{Path: lib, Source: `export const x = 1;`},
	).Resolve(a, "./lib", lib)

	b := buildFixture(t, fx)
	symbols, err := b.Build([]string{a, bPath})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	graph := domain.NewDependencyGraphFromSymbolsMap(symbols)

	affected := Affected(symbols, graph, []string{lib}, true)
	if len(affected) != 1 || affected[0] != a {
		t.Fatalf("expected [%q], got %v", a, affected)
	}
}
