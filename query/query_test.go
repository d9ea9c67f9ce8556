package query

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/stringify"
)

func sampleDoc() *ast.Document {
	return ast.NewDocument(
		&ast.Header{Level: 1, Attr: ast.NewAttr("intro", "unnumbered"), Inlines: ast.Words("Intro")},
		&ast.Para{Inlines: []ast.Inline{
			&ast.Str{Text: "See"},
			&ast.Space{},
			&ast.Link{Inlines: ast.Words("docs"), Target: ast.Target{URL: "https://pandoc.org", Title: "Pandoc"}},
			&ast.Note{Blocks: []ast.Block{&ast.Para{Inlines: ast.Words("note text")}}},
		}},
		&ast.Div{Attr: ast.Attr{ID: "d", Attributes: []ast.KeyValue{{Key: "lang", Value: "en"}}}, Blocks: []ast.Block{
			&ast.Header{Level: 2, Inlines: ast.Words("Details")},
			&ast.CodeBlock{Attr: ast.NewAttr("", "go"), Text: "package main"},
			&ast.RawBlock{Format: "html", Text: "<hr>"},
		}},
	)
}

func TestBlocks(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "kind", query: `Kind == "Header"`, want: []string{"Intro", "Details"}},
		{name: "level", query: `Kind == "Header" && Level > 1`, want: []string{"Details"}},
		{name: "class", query: `hasClass("unnumbered")`, want: []string{"Intro"}},
		{name: "id", query: `ID == "d"`, want: []string{"Div"}},
		{name: "attributes", query: `Attributes["lang"] == "en"`, want: []string{"Div"}},
		{name: "literal", query: `Literal startsWith "package"`, want: []string{"CodeBlock"}},
		{name: "format", query: `Format == "html"`, want: []string{"RawBlock"}},
		{name: "text", query: `Kind == "Para" && Text contains "note"`, want: []string{"note text"}},
		{name: "none", query: `false`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Compile(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			slots, err := q.Blocks(sampleDoc())
			if err != nil {
				t.Fatal(err)
			}
			var got []string
			for _, p := range slots {
				s := stringify.Node(*p)
				if s == "" {
					s = (*p).Kind().String()
				}
				got = append(got, s)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInlines(t *testing.T) {
	q, err := Compile(`Kind == "Link" && URL startsWith "https://" && Title == "Pandoc"`)
	if err != nil {
		t.Fatal(err)
	}
	doc := sampleDoc()
	slots, err := q.Inlines(doc)
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Fatalf("expected 1 match, got %d", len(slots))
	}
	if got := stringify.Inline(*slots[0]); got != "docs" {
		t.Errorf("expected docs, got %q", got)
	}
	*slots[0] = &ast.Str{Text: "replaced"}
	para := doc.Blocks[1].(*ast.Para)
	if got := stringify.Inlines(para.Inlines); got != "See replaced" {
		t.Errorf("expected replacement in place, got %q", got)
	}
}

func TestInlinesInNotes(t *testing.T) {
	q, err := Compile(`Kind == "Str" && Literal == "note"`)
	if err != nil {
		t.Fatal(err)
	}
	slots, err := q.Inlines(sampleDoc())
	if err != nil {
		t.Fatal(err)
	}
	if len(slots) != 1 {
		t.Errorf("expected 1 match, got %d", len(slots))
	}
}

func TestCompileErrors(t *testing.T) {
	for _, src := range []string{`Kind ==`, `Level + 1`, `Nope == 1`} {
		if _, err := Compile(src); !errors.Is(err, ErrQuery) {
			t.Errorf("%q: expected ErrQuery, got %v", src, err)
		}
	}
}

func TestMatch(t *testing.T) {
	q, err := Compile(`Kind == "Math" && Literal == "x"`)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := q.MatchInline(&ast.Math{Type: ast.InlineMath, Text: "x"})
	if err != nil || !ok {
		t.Errorf("expected match, got %v %v", ok, err)
	}
	ok, err = q.MatchBlock(&ast.Para{})
	if err != nil || ok {
		t.Errorf("expected no match, got %v %v", ok, err)
	}
	if q.String() != `Kind == "Math" && Literal == "x"` {
		t.Errorf("unexpected source %q", q.String())
	}
}
