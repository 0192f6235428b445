package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tsgraph/tsgraph/domain"
	"github.com/tsgraph/tsgraph/internal/config"
	"github.com/tsgraph/tsgraph/internal/parser"
	"github.com/tsgraph/tsgraph/internal/resolver"
	"github.com/tsgraph/tsgraph/service"
)

// GraphUseCase builds a module's dependency graph from entry paths and
// runs the analyses the CLI subcommands expose over it. It owns the
// Builder's collaborators (resolver, parser, loader) so every subcommand
// shares the same construction path.
type GraphUseCase struct {
	cfg        *config.Config
	fileHelper *FileHelper
}

// NewGraphUseCase builds a GraphUseCase from a loaded configuration.
func NewGraphUseCase(cfg *config.Config) *GraphUseCase {
	return &GraphUseCase{
		cfg:        cfg,
		fileHelper: NewFileHelper(cfg.Extensions, cfg.Ignore),
	}
}

// GraphResult bundles the built symbol map and its derived dependency
// graph, the shared input every analysis in this use case consumes.
type GraphResult struct {
	Symbols *domain.SymbolsMap
	Graph   *domain.DependencyGraph
}

// BuildGraph expands paths into entry files and runs the fixed-point
// builder over them, producing the symbol map and dependency graph shared
// by every analysis below.
func (uc *GraphUseCase) BuildGraph(ctx context.Context, paths []string) (*GraphResult, error) {
	entries, err := uc.fileHelper.CollectEntryFiles(paths)
	if err != nil {
		return nil, fmt.Errorf("collecting entry files: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no JavaScript/TypeScript files found in the specified paths")
	}

	res := resolver.New(&resolver.Config{
		Extensions: uc.cfg.Extensions,
		Aliases:    uc.cfg.Aliases,
	})

	builder := service.NewBuilder(service.BuilderConfig{
		Resolve:  res.Resolve,
		Parse:    parser.ParseForLanguage,
		Loader:   os.ReadFile,
		Progress: service.NewProgressReporter(true),
	})

	symbols, err := builder.Build(entries)
	if err != nil {
		return nil, err
	}
	for _, d := range builder.Diagnostics() {
		fmt.Fprintf(os.Stderr, "tsgraph: unresolved %q from %s: %v\n", d.Specifier, d.ModulePath, d.Err)
	}

	return &GraphResult{
		Symbols: symbols,
		Graph:   domain.NewDependencyGraphFromSymbolsMap(symbols),
	}, nil
}

// UnusedExports runs the unused-exports analysis and renders each finding
// as a domain.Finding, ready for the annotation presenter.
func (uc *GraphUseCase) UnusedExports(g *GraphResult) ([]domain.Finding, error) {
	unused := service.UnusedExports(g.Symbols)
	return uc.findingsFor(g.Symbols, unused, func(s *domain.Symbol) string {
		name, _ := s.Name()
		return fmt.Sprintf("unused export %q", name)
	})
}

// FilesWithReExports runs the re-exports finder and renders each finding.
func (uc *GraphUseCase) FilesWithReExports(g *GraphResult) ([]domain.Finding, error) {
	reexports := service.ReExports(g.Symbols)
	return uc.findingsFor(g.Symbols, reexports, func(s *domain.Symbol) string {
		return "re-export"
	})
}

// Cycles runs the cycle finder over the dependency graph.
func (uc *GraphUseCase) Cycles(g *GraphResult) []service.Cycle {
	return service.FindCycles(g.Graph)
}

// Affected runs the affected-files analysis for the given changed paths,
// canonicalizing them the same way entry paths are canonicalized.
func (uc *GraphUseCase) Affected(g *GraphResult, changed []string, entriesOnly bool) ([]string, error) {
	abs := make([]string, len(changed))
	for i, p := range changed {
		a, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("canonicalizing %q: %w", p, err)
		}
		abs[i] = a
	}
	return service.Affected(g.Symbols, g.Graph, abs, entriesOnly), nil
}

func (uc *GraphUseCase) findingsFor(m *domain.SymbolsMap, symbols []*domain.Symbol, message func(*domain.Symbol) string) ([]domain.Finding, error) {
	findings := make([]domain.Finding, 0, len(symbols))
	for _, sym := range symbols {
		mod := m.Module(sym.ModuleID)
		span := symbolSpan(sym)
		line, err := m.LineNumberFromSpan(sym.ModuleID, span)
		if err != nil {
			return nil, err
		}
		col, err := m.ColumnFromSpan(sym.ModuleID, span)
		if err != nil {
			return nil, err
		}
		findings = append(findings, domain.Finding{
			Path:    mod.Path,
			Line:    line,
			Column:  col,
			Span:    span,
			Message: message(sym),
		})
	}
	return findings, nil
}

// symbolSpan returns the span a Finding should be anchored to. KindExportAll
// carries no span of its own (visitExportAll records only the target
// reference); its location lives on Ref.Span, the span of the `"X"`
// specifier string literal in `export * from "X"`.
func symbolSpan(sym *domain.Symbol) domain.Span {
	if sym.Kind == domain.KindExportAll && sym.Ref != nil {
		return sym.Ref.Span
	}
	return sym.Span
}
