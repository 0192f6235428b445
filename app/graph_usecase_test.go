package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/tsgraph/tsgraph/internal/config"
)

func writeModule(t *testing.T, dir, name, source string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGraphUseCaseUnusedExports(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "index.ts", `import { a } from "./m";`)
	writeModule(t, dir, "m.ts", `export const a = 1; export const b = 2;`)

	uc := NewGraphUseCase(config.DefaultConfig())
	g, err := uc.BuildGraph(context.Background(), []string{filepath.Join(dir, "index.ts")})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	findings, err := uc.UnusedExports(g)
	if err != nil {
		t.Fatalf("UnusedExports: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 unused export, got %d: %+v", len(findings), findings)
	}
	if findings[0].Message != `unused export "b"` {
		t.Errorf("unexpected message %q", findings[0].Message)
	}
}

func TestGraphUseCaseFilesWithReExportsLocatesStatement(t *testing.T) {
	dir := t.TempDir()
	index := writeModule(t, dir, "index.ts", `import { a } from "./m1";`)
	writeModule(t, dir, "m1.ts", "\nexport * from \"./m2\";\n")
	writeModule(t, dir, "m2.ts", `export const a = 1;`)

	uc := NewGraphUseCase(config.DefaultConfig())
	g, err := uc.BuildGraph(context.Background(), []string{index})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	findings, err := uc.FilesWithReExports(g)
	if err != nil {
		t.Fatalf("FilesWithReExports: %v", err)
	}
	if len(findings) != 1 {
		t.Fatalf("expected 1 re-export finding, got %d: %+v", len(findings), findings)
	}
	if findings[0].Line != 2 {
		t.Errorf("expected line 2 (the export * statement), got %d", findings[0].Line)
	}
	if findings[0].Column != 14 {
		t.Errorf("expected column 14 (the specifier string literal), got %d", findings[0].Column)
	}
}

func TestGraphUseCaseCyclesAndDepgraph(t *testing.T) {
	dir := t.TempDir()
	a := writeModule(t, dir, "a.ts", `import { x } from "./b"; export const y = 1;`)
	writeModule(t, dir, "b.ts", `import { y } from "./a"; export const x = 1;`)

	uc := NewGraphUseCase(config.DefaultConfig())
	g, err := uc.BuildGraph(context.Background(), []string{a})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	cycles := uc.Cycles(g)
	if len(cycles) != 1 {
		t.Fatalf("expected 1 cycle, got %d", len(cycles))
	}
	if g.Graph.Graphviz() == "" {
		t.Error("expected non-empty graphviz output")
	}
}

func TestGraphUseCaseAffected(t *testing.T) {
	dir := t.TempDir()
	a := writeModule(t, dir, "a.ts", `import { x } from "./lib";`)
	writeModule(t, dir, "lib.ts", `export const x = 1;`)
	lib := filepath.Join(dir, "lib.ts")

	uc := NewGraphUseCase(config.DefaultConfig())
	g, err := uc.BuildGraph(context.Background(), []string{a})
	if err != nil {
		t.Fatalf("BuildGraph: %v", err)
	}

	affected, err := uc.Affected(g, []string{lib}, false)
	if err != nil {
		t.Fatalf("Affected: %v", err)
	}
	if len(affected) != 1 || affected[0] != a {
		t.Fatalf("expected [%q], got %v", a, affected)
	}
}

func TestGraphUseCaseNoFilesFound(t *testing.T) {
	dir := t.TempDir()
	uc := NewGraphUseCase(config.DefaultConfig())
	if _, err := uc.BuildGraph(context.Background(), []string{dir}); err == nil {
		t.Fatal("expected error for a directory with no tracked files")
	}
}
