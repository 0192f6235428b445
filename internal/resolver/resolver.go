// Package resolver maps an import/export specifier string to an absolute
// file path on disk, following a node/esbuild-style resolution order:
// try the specifier as given, then with each configured extension
// appended, then as a directory with an "index" file. The only error mode
// is "not found" — callers treat that as non-fatal and drop the
// declaration after logging.
package resolver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config controls the extension priority list and alias rewriting used
// during resolution. The zero value is not useful; build one via
// DefaultConfig.
type Config struct {
	// Extensions is the priority-ordered list tried after the bare
	// specifier, e.g. []string{".js", ".json", ".ts", ".tsx"}.
	Extensions []string

	// Aliases rewrites a specifier prefix to a filesystem root before the
	// same file/extension search runs, e.g. {"@/": "/repo/src/"}.
	Aliases map[string]string
}

// DefaultConfig returns the standard resolution order: .js, .json,
// .ts, .tsx, with no aliases configured.
func DefaultConfig() *Config {
	return &Config{
		Extensions: []string{".js", ".json", ".ts", ".tsx"},
		Aliases:    map[string]string{},
	}
}

// NotFoundError reports a specifier that could not be resolved to a file
// on disk. It is the only error this package produces.
type NotFoundError struct {
	ParentDir string
	Specifier string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot resolve %q from %q", e.Specifier, e.ParentDir)
}

// Resolver resolves specifiers against the real filesystem.
type Resolver struct {
	cfg *Config
}

// New builds a Resolver from cfg. A nil cfg falls back to DefaultConfig.
func New(cfg *Config) *Resolver {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Resolver{cfg: cfg}
}

// Resolve maps specifier, seen from parentDir, to an absolute path.
// Relative (./  ../) and absolute (/) specifiers are resolved directly
// against the filesystem; alias prefixes are rewritten first; anything
// else is looked up through ancestor node_modules directories.
func (r *Resolver) Resolve(parentDir, specifier string) (string, error) {
	if rewritten, ok := r.applyAlias(specifier); ok {
		if abs, ok := r.loadAsFileOrIndex(rewritten); ok {
			return abs, nil
		}
		return "", &NotFoundError{parentDir, specifier}
	}

	if isRelativeOrAbsolute(specifier) {
		candidate := specifier
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(parentDir, specifier)
		}
		if abs, ok := r.loadAsFileOrIndex(candidate); ok {
			return abs, nil
		}
		return "", &NotFoundError{parentDir, specifier}
	}

	if abs, ok := r.resolvePackageStyle(parentDir, specifier); ok {
		return abs, nil
	}
	return "", &NotFoundError{parentDir, specifier}
}

func isRelativeOrAbsolute(specifier string) bool {
	return strings.HasPrefix(specifier, "./") ||
		strings.HasPrefix(specifier, "../") ||
		filepath.IsAbs(specifier)
}

func (r *Resolver) applyAlias(specifier string) (string, bool) {
	for prefix, root := range r.cfg.Aliases {
		if strings.HasPrefix(specifier, prefix) {
			return filepath.Join(root, strings.TrimPrefix(specifier, prefix)), true
		}
	}
	return "", false
}

// resolvePackageStyle walks parentDir and its ancestors looking for a
// node_modules/<specifier> directory, then applies the same file/index
// search rooted there, honoring package.json's "main"/"module" field
// when present.
func (r *Resolver) resolvePackageStyle(parentDir, specifier string) (string, bool) {
	dir := parentDir
	for {
		candidateRoot := filepath.Join(dir, "node_modules", specifier)
		if info, err := os.Stat(candidateRoot); err == nil && info.IsDir() {
			if main, ok := r.packageMainField(candidateRoot); ok {
				if abs, ok := r.loadAsFileOrIndex(filepath.Join(candidateRoot, main)); ok {
					return abs, true
				}
			}
			if abs, ok := r.loadAsIndex(candidateRoot); ok {
				return abs, true
			}
		}
		if abs, ok := r.loadAsFileOrIndex(candidateRoot); ok {
			return abs, true
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (r *Resolver) packageMainField(pkgDir string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(pkgDir, "package.json"))
	if err != nil {
		return "", false
	}
	for _, key := range []string{"\"main\"", "\"module\""} {
		if idx := strings.Index(string(data), key); idx >= 0 {
			rest := string(data)[idx+len(key):]
			if v, ok := extractJSONStringValue(rest); ok {
				return v, true
			}
		}
	}
	return "", false
}

// extractJSONStringValue pulls the first quoted string value out of a
// ": "value"..." fragment without pulling in a full JSON decoder, since
// the only thing the resolver needs is the "main"/"module" field value.
func extractJSONStringValue(s string) (string, bool) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return "", false
	}
	rest := s[colon+1:]
	start := strings.IndexByte(rest, '"')
	if start < 0 {
		return "", false
	}
	rest = rest[start+1:]
	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// loadAsFileOrIndex tries path bare, then path+ext for each configured
// extension, then path as a directory containing an index file.
func (r *Resolver) loadAsFileOrIndex(path string) (string, bool) {
	if abs, ok := r.loadAsFile(path); ok {
		return abs, true
	}
	return r.loadAsIndex(path)
}

func (r *Resolver) loadAsFile(path string) (string, bool) {
	if isRegularFile(path) {
		return path, true
	}
	for _, ext := range r.cfg.Extensions {
		if candidate := path + ext; isRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func (r *Resolver) loadAsIndex(dir string) (string, bool) {
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return "", false
	}
	for _, ext := range r.cfg.Extensions {
		if candidate := filepath.Join(dir, "index"+ext); isRegularFile(candidate) {
			return candidate, true
		}
	}
	return "", false
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
