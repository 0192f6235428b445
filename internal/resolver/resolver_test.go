package resolver

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestResolveRelativeWithExtension(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "m.ts"), "export const a = 1;\n")

	r := New(DefaultConfig())
	got, err := r.Resolve(dir, "./m")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(dir, "m.ts")
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveRelativeExactMatch(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "m.ts"), "export const a = 1;\n")

	r := New(DefaultConfig())
	got, err := r.Resolve(dir, "./m.ts")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(dir, "m.ts"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveIndexFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "lib", "index.ts"), "export const a = 1;\n")

	r := New(DefaultConfig())
	got, err := r.Resolve(dir, "./lib")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(dir, "lib", "index.ts"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveExtensionPriority(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "m.json"), "{}")
	writeFile(t, filepath.Join(dir, "m.ts"), "export const a = 1;\n")

	r := New(DefaultConfig())
	got, err := r.Resolve(dir, "./m")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	// .json precedes .ts in the configured priority list.
	if want := filepath.Join(dir, "m.json"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolveNotFound(t *testing.T) {
	dir := t.TempDir()
	r := New(DefaultConfig())
	if _, err := r.Resolve(dir, "./missing"); err == nil {
		t.Fatal("expected NotFoundError, got nil")
	}
}

func TestResolveAlias(t *testing.T) {
	dir := t.TempDir()
	srcDir := filepath.Join(dir, "src")
	writeFile(t, filepath.Join(srcDir, "util.ts"), "export const a = 1;\n")

	cfg := DefaultConfig()
	cfg.Aliases = map[string]string{"@/": srcDir}
	r := New(cfg)

	got, err := r.Resolve(dir, "@/util")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(srcDir, "util.ts"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolvePackageStyle(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "node_modules", "some-lib")
	writeFile(t, filepath.Join(pkgDir, "index.js"), "module.exports = {};\n")

	r := New(DefaultConfig())
	got, err := r.Resolve(dir, "some-lib")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(pkgDir, "index.js"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestResolvePackageStyleMainField(t *testing.T) {
	dir := t.TempDir()
	pkgDir := filepath.Join(dir, "node_modules", "some-lib")
	writeFile(t, filepath.Join(pkgDir, "package.json"), `{"main": "dist/entry.js"}`)
	writeFile(t, filepath.Join(pkgDir, "dist", "entry.js"), "module.exports = {};\n")

	r := New(DefaultConfig())
	got, err := r.Resolve(dir, "some-lib")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if want := filepath.Join(pkgDir, "dist", "entry.js"); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
