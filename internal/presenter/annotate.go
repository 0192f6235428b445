// Package presenter renders findings as source-underlined terminal output.
// It is the only place in the module that colors findings output; the core
// analyses hand it plain domain.Finding values.
package presenter

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/tsgraph/tsgraph/domain"
)

// Annotator groups findings by file and renders them against that file's
// source text, one annotation block per finding.
type Annotator struct {
	highlight *color.Color
	noColor   bool
}

// NewAnnotator builds an Annotator. Coloring is auto-disabled when stdout is
// not a terminal or NO_COLOR is set, matching color.NoColor's own detection;
// forceNoColor additionally disables it regardless (the CLI's --no-color flag).
func NewAnnotator(forceNoColor bool) *Annotator {
	noColor := forceNoColor || color.NoColor
	return &Annotator{
		highlight: color.New(color.FgYellow),
		noColor:   noColor,
	}
}

// Render writes one "PATH:" block per distinct finding path, in the order
// paths first appear, each followed by its findings in the order given.
// source supplies the full text of a finding's file, keyed by Path.
func (a *Annotator) Render(w io.Writer, findings []domain.Finding, source map[string][]byte) error {
	grouped := make(map[string][]domain.Finding)
	var order []string
	for _, f := range findings {
		if _, ok := grouped[f.Path]; !ok {
			order = append(order, f.Path)
		}
		grouped[f.Path] = append(grouped[f.Path], f)
	}

	for _, path := range order {
		if _, err := fmt.Fprintf(w, "%s:\n", path); err != nil {
			return err
		}
		lines := strings.Split(string(source[path]), "\n")
		for _, f := range grouped[path] {
			a.renderOne(w, f, lines)
		}
	}
	return nil
}

// renderOne writes one finding's annotation block: optional prior-line
// context, the highlighted line, and a caret-aligned arrow message.
func (a *Annotator) renderOne(w io.Writer, f domain.Finding, lines []string) {
	lineIdx := f.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		fmt.Fprintf(w, "   └── %s\n", f.Message)
		return
	}
	line := lines[lineIdx]

	if lineIdx > 0 {
		fmt.Fprintf(w, "%d │ %s\n", f.Line-1, lines[lineIdx-1])
	}

	startCol := f.Column
	if startCol < 0 {
		startCol = 0
	}
	if startCol > len(line) {
		startCol = len(line)
	}
	endCol := startCol + (f.Span.End - f.Span.Start)
	if endCol > len(line) {
		endCol = len(line)
	}
	if endCol < startCol {
		endCol = startCol
	}

	lineNumStr := fmt.Sprintf("%d", f.Line)
	fmt.Fprintf(w, "%s │ %s\n", lineNumStr, a.highlightSpan(line, startCol, endCol))

	indent := startCol + len(lineNumStr) + 3
	fmt.Fprintf(w, "%s└── %s\n", strings.Repeat(" ", indent), f.Message)
}

func (a *Annotator) highlightSpan(line string, start, end int) string {
	before, span, after := line[:start], line[start:end], line[end:]
	if a.noColor {
		return before + span + after
	}
	return before + a.highlight.Sprint(span) + after
}

// SortFindings orders findings by path, then by line, then by column, so
// Render's grouping produces deterministic output regardless of analysis
// iteration order.
func SortFindings(findings []domain.Finding) {
	sort.Slice(findings, func(i, j int) bool {
		a, b := findings[i], findings[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
}

// Stdout returns an io.Writer appropriate for CLI output, matching color's
// own TTY detection for deciding whether coloring applies.
func Stdout() io.Writer {
	return os.Stdout
}
