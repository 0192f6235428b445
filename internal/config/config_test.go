package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Extensions) == 0 {
		t.Fatal("expected default extensions to be non-empty")
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestValidateRejectsExtensionWithoutDot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = []string{"ts"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for extension missing leading dot")
	}
}

func TestValidateRejectsEmptyExtensions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Extensions = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for empty extensions")
	}
}

func TestLoadConfigNoFileReturnsDefault(t *testing.T) {
	dir := t.TempDir()
	cfg, err := LoadConfig("", dir)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.IncludeNodeModules {
		t.Error("expected default IncludeNodeModules to be false")
	}
}

func TestLoadConfigDiscoversFileUpward(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "extensions: [.ts, .js]\ninclude_node_modules: true\n"
	if err := os.WriteFile(filepath.Join(root, "tsgraph.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig("", sub)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.IncludeNodeModules {
		t.Error("expected discovered config's include_node_modules to be true")
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("expected 2 extensions from discovered config, got %v", cfg.Extensions)
	}
}

func TestLoadConfigExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("no_color: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path, "")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.NoColor {
		t.Error("expected explicit config's no_color to be true")
	}
}
