package app

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestCollectEntryFilesWalksDirectory(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.ts", "export const a = 1;")
	writeModule(t, dir, "b.js", "module.exports = {};")
	writeModule(t, dir, "readme.md", "not tracked")

	h := NewFileHelper([]string{".ts", ".js"}, nil)
	files, err := h.CollectEntryFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectEntryFiles: %v", err)
	}

	names := basenames(files)
	sort.Strings(names)
	want := []string{"a.ts", "b.js"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("got %v, want %v", names, want)
	}
}

func TestCollectEntryFilesPassesFilesThrough(t *testing.T) {
	dir := t.TempDir()
	path := writeModule(t, dir, "entry.ts", "export const a = 1;")

	h := NewFileHelper([]string{".ts"}, nil)
	files, err := h.CollectEntryFiles([]string{path})
	if err != nil {
		t.Fatalf("CollectEntryFiles: %v", err)
	}
	if len(files) != 1 || files[0] != path {
		t.Fatalf("expected [%q], got %v", path, files)
	}
}

func TestCollectEntryFilesHonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, ".gitignore", "ignored.ts\n")
	writeModule(t, dir, "kept.ts", "export const a = 1;")
	writeModule(t, dir, "ignored.ts", "export const b = 2;")

	h := NewFileHelper([]string{".ts"}, nil)
	files, err := h.CollectEntryFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectEntryFiles: %v", err)
	}
	names := basenames(files)
	if len(names) != 1 || names[0] != "kept.ts" {
		t.Fatalf("expected [kept.ts], got %v", names)
	}
}

func TestCollectEntryFilesHonorsIgnoreGlobs(t *testing.T) {
	dir := t.TempDir()
	writeModule(t, dir, "a.ts", "export const a = 1;")
	writeModule(t, dir, "a.test.ts", "export const b = 2;")

	h := NewFileHelper([]string{".ts"}, []string{"*.test.ts"})
	files, err := h.CollectEntryFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectEntryFiles: %v", err)
	}
	names := basenames(files)
	if len(names) != 1 || names[0] != "a.ts" {
		t.Fatalf("expected [a.ts], got %v", names)
	}
}

func TestCollectEntryFilesSkipsNodeModules(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "node_modules", "lib"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeModule(t, dir, "a.ts", "export const a = 1;")
	writeModule(t, filepath.Join(dir, "node_modules", "lib"), "index.ts", "export const x = 1;")

	h := NewFileHelper([]string{".ts"}, nil)
	files, err := h.CollectEntryFiles([]string{dir})
	if err != nil {
		t.Fatalf("CollectEntryFiles: %v", err)
	}
	names := basenames(files)
	if len(names) != 1 || names[0] != "a.ts" {
		t.Fatalf("expected [a.ts], got %v", names)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}
