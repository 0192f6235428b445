package presenter

import (
	"bytes"
	"testing"

	"github.com/tsgraph/tsgraph/domain"
)

func TestRenderSingleLineNoContext(t *testing.T) {
	a := NewAnnotator(true)
	findings := []domain.Finding{
		{Path: "/a.ts", Line: 1, Column: 13, Span: domain.Span{Start: 13, End: 14}, Message: "unused export \"a\""},
	}
	source := map[string][]byte{"/a.ts": []byte(`export const a = 1;`)}

	var buf bytes.Buffer
	if err := a.Render(&buf, findings, source); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "/a.ts:\n" +
		"1 │ export const a = 1;\n" +
		"                 └── unused export \"a\"\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderIncludesPriorLine(t *testing.T) {
	a := NewAnnotator(true)
	findings := []domain.Finding{
		{Path: "/a.ts", Line: 2, Column: 13, Span: domain.Span{Start: 13, End: 14}, Message: "unused export \"b\""},
	}
	source := map[string][]byte{"/a.ts": []byte("export const a = 1;\nexport const b = 2;")}

	var buf bytes.Buffer
	if err := a.Render(&buf, findings, source); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "/a.ts:\n" +
		"1 │ export const a = 1;\n" +
		"2 │ export const b = 2;\n" +
		"                 └── unused export \"b\"\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderGroupsByPathInFirstSeenOrder(t *testing.T) {
	a := NewAnnotator(true)
	findings := []domain.Finding{
		{Path: "/b.ts", Line: 1, Column: 0, Span: domain.Span{Start: 0, End: 1}, Message: "m1"},
		{Path: "/a.ts", Line: 1, Column: 0, Span: domain.Span{Start: 0, End: 1}, Message: "m2"},
		{Path: "/b.ts", Line: 1, Column: 0, Span: domain.Span{Start: 0, End: 1}, Message: "m3"},
	}
	source := map[string][]byte{"/a.ts": []byte("x"), "/b.ts": []byte("y")}

	var buf bytes.Buffer
	if err := a.Render(&buf, findings, source); err != nil {
		t.Fatalf("Render: %v", err)
	}

	want := "/b.ts:\n" +
		"1 │ y\n" +
		"    └── m1\n" +
		"1 │ y\n" +
		"    └── m3\n" +
		"/a.ts:\n" +
		"1 │ x\n" +
		"    └── m2\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}
