package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsgraph/tsgraph/domain"
	"github.com/tsgraph/tsgraph/internal/parser"
)

// Resolve maps a module specifier, seen from parentDir, to an absolute
// path. Implemented by internal/resolver.Resolver in production and by an
// in-memory stand-in (internal/testutil.Fixture) in tests.
type Resolve func(parentDir, specifier string) (string, error)

// Parse turns one file's bytes into a syntax tree. Implemented by
// parser.ParseForLanguage in production.
type Parse func(path string, source []byte) (*parser.Node, error)

// BuilderConfig wires the symbol map builder's collaborators: the resolver
// and parser, injected capabilities the builder depends on only through
// their narrow contracts, plus the source loader and an optional progress
// reporter.
type BuilderConfig struct {
	Resolve  Resolve
	Parse    Parse
	Loader   domain.SourceLoader
	Progress ProgressReporter
}

// Builder runs a fixed-point worklist over entry modules: parse a
// module, visit its top-level declarations, resolve and register any
// newly discovered modules, repeat until the module vector stops
// growing.
type Builder struct {
	cfg         BuilderConfig
	diagnostics []domain.Diagnostic
}

// NewBuilder constructs a Builder from cfg. Resolve, Parse, and Loader are
// required; Progress defaults to a no-op reporter.
func NewBuilder(cfg BuilderConfig) *Builder {
	if cfg.Progress == nil {
		cfg.Progress = noOpProgressReporter{}
	}
	return &Builder{cfg: cfg}
}

// Diagnostics returns every resolver miss recorded during the most recent
// Build call, in the order encountered.
func (b *Builder) Diagnostics() []domain.Diagnostic {
	return b.diagnostics
}

// Build parses entryPaths and every module transitively reachable from
// them, producing a completed SymbolsMap. A parse or I/O error aborts the
// whole run; resolver misses are recorded as diagnostics and the
// offending declaration is dropped.
func (b *Builder) Build(entryPaths []string) (*domain.SymbolsMap, error) {
	b.diagnostics = nil
	prefetcher := NewSourcePrefetcher(b.cfg.Loader, defaultPrefetchConcurrency)
	m := domain.NewSymbolsMap(prefetcher.Load)

	for _, p := range entryPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing entry %q: %w", p, err)
		}
		m.AddModule(abs, true)
	}
	prefetcher.Prefetch(modulePaths(m.Modules))

	for i := 0; i < len(m.Modules); i++ {
		mod := m.Modules[i]
		b.cfg.Progress.Describe(mod.Path)
		src, err := m.Source(mod.ID)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", mod.Path, err)
		}
		tree, err := b.cfg.Parse(mod.Path, src)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", mod.Path, err)
		}
		before := len(m.Modules)
		b.visitModule(m, mod, tree)
		if discovered := m.Modules[before:]; len(discovered) > 0 {
			prefetcher.Prefetch(modulePaths(discovered))
		}
		b.cfg.Progress.Increment(1)
	}
	b.cfg.Progress.Complete()

	return m, nil
}

// visitModule walks mod's top-level declarations exactly once, per
// invariant 5 (only top-level import/export declarations attach symbols;
// function-body declarations are invisible).
func (b *Builder) visitModule(m *domain.SymbolsMap, mod *domain.Module, tree *parser.Node) {
	if tree == nil {
		return
	}
	for _, node := range tree.Body {
		switch node.Type {
		case parser.NodeImportDeclaration:
			b.visitImport(m, mod, node)
		case parser.NodeExportAllDeclaration:
			b.visitExportAll(m, mod, node)
		case parser.NodeExportDefaultDeclaration:
			b.visitExportDefault(m, mod, node)
		case parser.NodeExportNamedDeclaration:
			b.visitExportNamed(m, mod, node)
		}
	}
}

// resolveAndRegister resolves specifierNode's string value against
// parentDir and registers the result as a module. ok is false if
// resolution failed (diagnostic recorded) or the resolved path was
// rejected as a module (invariant 4, ".json").
func (b *Builder) resolveAndRegister(m *domain.SymbolsMap, mod *domain.Module, specifierNode *parser.Node) (moduleID int, span domain.Span, ok bool) {
	specifier := stringLiteralValue(specifierNode)
	span = nodeSpan(specifierNode)
	if specifier == "" {
		return 0, span, false
	}
	resolved, err := b.cfg.Resolve(filepath.Dir(mod.Path), specifier)
	if err != nil {
		b.diagnostics = append(b.diagnostics, domain.Diagnostic{
			ModulePath: mod.Path,
			Specifier:  specifier,
			Span:       span,
			Err:        err,
		})
		return 0, span, false
	}
	id, ok := m.RegisterResolvedModule(resolved)
	if !ok {
		return 0, span, false
	}
	return id, span, true
}

func (b *Builder) visitImport(m *domain.SymbolsMap, mod *domain.Module, node *parser.Node) {
	if node.Source == nil {
		return
	}
	targetID, span, ok := b.resolveAndRegister(m, mod, node.Source)
	if !ok {
		return
	}
	ref := &domain.FileReference{ModuleID: targetID, Span: span}

	for _, spec := range node.Specifiers {
		typeOnly := node.TypeOnly || spec.TypeOnly
		switch spec.Type {
		case parser.NodeImportDefaultSpecifier:
			m.AddSymbol(&domain.Symbol{
				ModuleID: mod.ID,
				Kind:     domain.KindImportDefault,
				Span:     nodeSpan(spec),
				Local:    spec.Name,
				Ref:      ref,
				TypeOnly: typeOnly,
			})
		case parser.NodeImportNamespaceSpecifier:
			m.AddSymbol(&domain.Symbol{
				ModuleID: mod.ID,
				Kind:     domain.KindImportStar,
				Span:     nodeSpan(spec),
				Local:    spec.Name,
				Ref:      ref,
				TypeOnly: typeOnly,
			})
		case parser.NodeImportSpecifier:
			imported := spec.Name
			if spec.Imported != nil {
				imported = spec.Imported.Name
			}
			m.AddSymbol(&domain.Symbol{
				ModuleID: mod.ID,
				Kind:     domain.KindImportNamed,
				Span:     nodeSpan(spec),
				Local:    spec.Name,
				Imported: imported,
				Ref:      ref,
				TypeOnly: typeOnly,
			})
		}
	}
}

func (b *Builder) visitExportAll(m *domain.SymbolsMap, mod *domain.Module, node *parser.Node) {
	if node.Source == nil {
		return
	}
	targetID, span, ok := b.resolveAndRegister(m, mod, node.Source)
	if !ok {
		return
	}
	m.AddSymbol(&domain.Symbol{
		ModuleID: mod.ID,
		Kind:     domain.KindExportAll,
		Ref:      &domain.FileReference{ModuleID: targetID, Span: span},
	})
}

func (b *Builder) visitExportNamed(m *domain.SymbolsMap, mod *domain.Module, node *parser.Node) {
	if len(node.Specifiers) > 0 {
		var ref *domain.FileReference
		if node.Source != nil {
			targetID, span, ok := b.resolveAndRegister(m, mod, node.Source)
			if !ok {
				return
			}
			ref = &domain.FileReference{ModuleID: targetID, Span: span}
		}
		for _, spec := range node.Specifiers {
			local := spec.Name
			if spec.Local != nil {
				local = spec.Local.Name
			}
			m.AddSymbol(&domain.Symbol{
				ModuleID: mod.ID,
				Kind:     domain.KindExportNamed,
				Span:     nodeSpan(spec),
				Local:    local,
				Exported: spec.Name,
				Ref:      ref,
				TypeOnly: node.TypeOnly || spec.TypeOnly,
			})
		}
		return
	}

	decl := node.Declaration
	if decl == nil {
		return
	}

	switch decl.Type {
	case parser.NodeVariableDeclaration:
		for _, declarator := range decl.Declarations {
			if declarator.Name == "" {
				continue
			}
			m.AddSymbol(&domain.Symbol{
				ModuleID: mod.ID,
				Kind:     domain.KindExportDecl,
				Span:     nameSpan(declarator),
				HasName:  true,
				Exported: declarator.Name,
			})
		}
	case parser.NodeFunction:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportFnDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
		})
	case parser.NodeClass:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportClassDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
		})
	case parser.NodeEnumDeclaration:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportEnumDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
		})
	case parser.NodeInterfaceDeclaration:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportInterfaceDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
		})
	case parser.NodeTypeAlias:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportTypeAliasDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
			TypeOnly: true,
		})
	}
}

func (b *Builder) visitExportDefault(m *domain.SymbolsMap, mod *domain.Module, node *parser.Node) {
	decl := node.Declaration
	if decl == nil {
		return
	}
	switch decl.Type {
	case parser.NodeFunction:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportDefaultFnDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
		})
	case parser.NodeClass:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportDefaultClassDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
		})
	case parser.NodeInterfaceDeclaration:
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportDefaultInterfaceDecl,
			Span:     nameSpan(decl),
			HasName:  decl.Name != "",
			Exported: decl.Name,
		})
	default:
		// Any other expression form (identifier, call, conditional,
		// literal, arrow function, ...) collapses to the single
		// default-expression variant.
		m.AddSymbol(&domain.Symbol{
			ModuleID: mod.ID,
			Kind:     domain.KindExportDefaultExpr,
			Span:     nodeSpan(decl),
		})
	}
}

// nameSpan prefers a node's identifier-only span (NameStartByte/EndByte),
// falling back to its full location when the node carries no separately
// tracked name span (e.g. an anonymous default export).
func nameSpan(n *parser.Node) domain.Span {
	if n.Name != "" && n.NameEndByte > n.NameStartByte {
		return domain.Span{Start: n.NameStartByte, End: n.NameEndByte}
	}
	return nodeSpan(n)
}

func nodeSpan(n *parser.Node) domain.Span {
	if n == nil {
		return domain.Span{}
	}
	return domain.Span{Start: n.Location.StartByte, End: n.Location.EndByte}
}

// stringLiteralValue extracts the quoted text from a string-literal node
// (an import/export specifier), stripping its surrounding quote marks.
func stringLiteralValue(n *parser.Node) string {
	if n == nil {
		return ""
	}
	raw := n.Raw
	if raw == "" {
		raw = n.Name
	}
	if len(raw) >= 2 {
		first, last := raw[0], raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
			return raw[1 : len(raw)-1]
		}
	}
	return strings.TrimSpace(raw)
}
