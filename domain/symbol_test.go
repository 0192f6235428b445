package domain

import "testing"

func TestSymbolNameByKind(t *testing.T) {
	tests := []struct {
		name string
		sym  Symbol
		want string
		ok   bool
	}{
		{"export decl", Symbol{Kind: KindExportDecl, Exported: "a"}, "a", true},
		{"import named carries no Name()", Symbol{Kind: KindImportNamed, Local: "b", Imported: "a"}, "", false},
		{"export all has no name", Symbol{Kind: KindExportAll}, "", false},
		{"anonymous default", Symbol{Kind: KindExportDefaultFnDecl, HasName: false}, "", false},
		{"named default", Symbol{Kind: KindExportDefaultFnDecl, HasName: true, Exported: "f"}, "f", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.sym.Name()
			if got != tt.want || ok != tt.ok {
				t.Errorf("Name() = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestSymbolKindPredicates(t *testing.T) {
	if !KindExportDecl.IsExport() {
		t.Error("ExportDecl should be IsExport")
	}
	if KindImportNamed.IsExport() {
		t.Error("ImportNamed should not be IsExport")
	}
	if !KindImportStar.IsImport() {
		t.Error("ImportStar should be IsImport")
	}
	if !KindExportDefaultClassDecl.IsDefaultExport() {
		t.Error("ExportDefaultClassDecl should be IsDefaultExport")
	}
	if KindExportDecl.IsDefaultExport() {
		t.Error("ExportDecl should not be IsDefaultExport")
	}
}
