package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tsgraph/tsgraph/app"
	"github.com/tsgraph/tsgraph/domain"
	"github.com/tsgraph/tsgraph/internal/config"
	"github.com/tsgraph/tsgraph/internal/presenter"
)

var (
	globalConfigPath string
	globalNoColor    bool
)

// loadGraph resolves configuration from the first path argument's ancestry,
// then builds the symbol map and dependency graph shared by every
// subcommand's analysis.
func loadGraph(paths []string) (*app.GraphUseCase, *app.GraphResult, error) {
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no paths specified")
	}

	target := ""
	if len(paths) > 0 {
		target = paths[0]
	}
	cfg, err := config.LoadConfig(globalConfigPath, target)
	if err != nil {
		return nil, nil, err
	}
	if globalNoColor {
		cfg.NoColor = true
	}
	// renderFindings reads globalNoColor, so carry a no_color setting from
	// the config file or TSGRAPH_NO_COLOR over to it as well.
	globalNoColor = cfg.NoColor

	uc := app.NewGraphUseCase(cfg)
	result, err := uc.BuildGraph(context.Background(), paths)
	if err != nil {
		return nil, nil, err
	}
	return uc, result, nil
}

// renderFindings writes findings via the annotation presenter, reading
// each distinct path's source once, then prints the trailing total line.
func renderFindings(g *app.GraphResult, findings []domain.Finding, totalLabel string, noColor bool) error {
	presenter.SortFindings(findings)

	source := make(map[string][]byte)
	for _, f := range findings {
		if _, ok := source[f.Path]; ok {
			continue
		}
		id, ok := g.Symbols.ModuleIDForPath(f.Path)
		if !ok {
			continue
		}
		buf, err := g.Symbols.Source(id)
		if err != nil {
			return err
		}
		source[f.Path] = buf
	}

	annotator := presenter.NewAnnotator(noColor)
	if err := annotator.Render(os.Stdout, findings, source); err != nil {
		return err
	}
	fmt.Printf("%s: %d\n", totalLabel, len(findings))
	return nil
}

// jsonOutput encodes v as indented JSON to stdout, for --format json.
func jsonOutput(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
