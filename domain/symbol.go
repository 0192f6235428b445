package domain

// SymbolKind tags the closed set of import/export declaration forms the
// builder recognizes. Go does not check switches for exhaustiveness, so a
// variant added here must be added by hand to every switch over SymbolKind.
type SymbolKind int

const (
	// KindExportAll is `export * from "X"`.
	KindExportAll SymbolKind = iota
	// KindExportNamed is `export { a }` or `export { a as b } from "X"`.
	KindExportNamed
	// KindExportDecl is `export const/let/var NAME`.
	KindExportDecl
	// KindExportFnDecl is `export function NAME`.
	KindExportFnDecl
	// KindExportClassDecl is `export class NAME`.
	KindExportClassDecl
	// KindExportEnumDecl is `export enum NAME`.
	KindExportEnumDecl
	// KindExportInterfaceDecl is `export interface NAME`.
	KindExportInterfaceDecl
	// KindExportTypeAliasDecl is `export type NAME = ...`.
	KindExportTypeAliasDecl
	// KindExportDefaultExpr is `export default <anyExpression>`.
	KindExportDefaultExpr
	// KindExportDefaultClassDecl is `export default class [NAME] {}`.
	KindExportDefaultClassDecl
	// KindExportDefaultFnDecl is `export default function [NAME]() {}`.
	KindExportDefaultFnDecl
	// KindExportDefaultInterfaceDecl is `export default interface NAME`.
	KindExportDefaultInterfaceDecl
	// KindImportDefault is `import X from "M"`.
	KindImportDefault
	// KindImportStar is `import * as X from "M"`.
	KindImportStar
	// KindImportNamed is `import { A as B } from "M"`.
	KindImportNamed
)

// String returns a short human-readable tag, used by the annotation
// presenter and test failure messages.
func (k SymbolKind) String() string {
	switch k {
	case KindExportAll:
		return "ExportAll"
	case KindExportNamed:
		return "ExportNamed"
	case KindExportDecl:
		return "ExportDecl"
	case KindExportFnDecl:
		return "ExportFnDecl"
	case KindExportClassDecl:
		return "ExportClassDecl"
	case KindExportEnumDecl:
		return "ExportEnumDecl"
	case KindExportInterfaceDecl:
		return "ExportInterfaceDecl"
	case KindExportTypeAliasDecl:
		return "ExportTypeAliasDecl"
	case KindExportDefaultExpr:
		return "ExportDefaultExpr"
	case KindExportDefaultClassDecl:
		return "ExportDefaultClassDecl"
	case KindExportDefaultFnDecl:
		return "ExportDefaultFnDecl"
	case KindExportDefaultInterfaceDecl:
		return "ExportDefaultInterfaceDecl"
	case KindImportDefault:
		return "ImportDefault"
	case KindImportStar:
		return "ImportStar"
	case KindImportNamed:
		return "ImportNamed"
	default:
		return "Unknown"
	}
}

// IsExport reports whether the kind is one of the Export* variants.
func (k SymbolKind) IsExport() bool {
	switch k {
	case KindExportAll, KindExportNamed, KindExportDecl, KindExportFnDecl,
		KindExportClassDecl, KindExportEnumDecl, KindExportInterfaceDecl,
		KindExportTypeAliasDecl, KindExportDefaultExpr, KindExportDefaultClassDecl,
		KindExportDefaultFnDecl, KindExportDefaultInterfaceDecl:
		return true
	default:
		return false
	}
}

// IsDefaultExport reports whether the kind is one of the four
// default-export-family variants that an `import X from "M"` can consume.
func (k SymbolKind) IsDefaultExport() bool {
	switch k {
	case KindExportDefaultClassDecl, KindExportDefaultExpr,
		KindExportDefaultFnDecl, KindExportDefaultInterfaceDecl:
		return true
	default:
		return false
	}
}

// IsImport reports whether the kind is one of the Import* variants.
func (k SymbolKind) IsImport() bool {
	switch k {
	case KindImportDefault, KindImportStar, KindImportNamed:
		return true
	default:
		return false
	}
}

// Symbol is a tagged record of one import or export declaration found at
// the top level of a module. Symbols are immutable after creation.
//
// Field usage varies by Kind (see the table in the package's governing
// specification); unused fields for a given kind are left at their zero
// value:
//
//   - Local:    the local binding name (ExportNamed's local side, every
//     Import* variant's local binding).
//   - Exported: the exported/declared name (ExportNamed's exported side,
//     and the NAME in every `export <decl> NAME` / `export default <decl>
//     [NAME]` form). HasName distinguishes an anonymous default decl
//     (HasName == false) from one that merely has an empty string name.
//   - Imported: the imported name in `import { A as B }` (A).
//   - Ref:      present for ExportAll, ExportNamed-with-source, and every
//     Import* variant; nil otherwise.
type Symbol struct {
	ModuleID int
	Kind     SymbolKind
	Span     Span

	Local    string
	Exported string
	Imported string
	HasName  bool

	TypeOnly bool

	Ref *FileReference
}

// Name returns the declared/exported identifier for export-family symbols
// that carry one. The second return value is false for anonymous default
// declarations and for kinds that carry no single name (ExportAll,
// ExportDefaultExpr).
func (s *Symbol) Name() (string, bool) {
	switch s.Kind {
	case KindExportNamed:
		return s.Exported, true
	case KindExportDecl, KindExportFnDecl, KindExportClassDecl, KindExportEnumDecl,
		KindExportInterfaceDecl, KindExportTypeAliasDecl:
		return s.Exported, true
	case KindExportDefaultClassDecl, KindExportDefaultFnDecl:
		return s.Exported, s.HasName
	case KindExportDefaultInterfaceDecl:
		return s.Exported, true
	default:
		return "", false
	}
}
