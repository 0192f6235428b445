package domain

// Diagnostic is a non-fatal resolver-miss record: an import/export
// specifier that could not be resolved to a file on disk. The builder logs
// these and drops the offending declaration; it never aborts the run.
type Diagnostic struct {
	ModulePath string
	Specifier  string
	Span       Span
	Err        error
}

// Finding is a presentation-layer record built from a Symbol plus its
// owning module's source text, consumed by the annotation presenter. It
// carries nothing the core data model doesn't already expose; it exists so
// the presenter never has to reach back into a SymbolsMap mid-render.
type Finding struct {
	Path    string
	Line    int
	Column  int
	Span    Span
	Message string
}
