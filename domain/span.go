// Package domain holds the data model shared by the parser, resolver,
// symbol map builder, dependency graph, and graph analyses: modules,
// symbols, spans, and the two derived artifacts (SymbolsMap, DependencyGraph).
package domain

import "fmt"

// Span is a half-open byte interval [Start, End) into a module's original
// source text.
type Span struct {
	Start int
	End   int
}

// String renders the span as "[start, end)".
func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.Start, s.End)
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// FileReference pairs a resolved module id with the source span of the
// specifier string literal that named it.
type FileReference struct {
	ModuleID int
	Span     Span
}
