package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/go-pandoc/ast"
)

const helloDoc = `{"pandoc-api-version":[1,23,1],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Str","c":"Hello"},{"t":"Space"},{"t":"Str","c":"world"}]}]}`

func TestParseHello(t *testing.T) {
	doc, err := Parse([]byte(helloDoc))
	if err != nil {
		t.Fatal(err)
	}
	want := ast.NewDocument(&ast.Para{Inlines: ast.Words("Hello world")})
	if !ast.Equal(doc, want) {
		t.Errorf("mismatch:\n%s", ast.Diff(want, doc))
	}
}

func TestVersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr bool
	}{
		{name: "exact", version: "[1,23,1]"},
		{name: "major minor only", version: "[1,23]"},
		{name: "extra components", version: "[1,23,1,5]"},
		{name: "other patch", version: "[1,23,0]"},
		{name: "empty", version: "[]", wantErr: true},
		{name: "too short", version: "[1]", wantErr: true},
		{name: "newer minor", version: "[1,24]", wantErr: true},
		{name: "older minor", version: "[1,22,1]", wantErr: true},
		{name: "other major", version: "[2,23]", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := `{"pandoc-api-version":` + tt.version + `,"meta":{},"blocks":[]}`
			doc, err := Parse([]byte(d))
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(doc.Blocks) != 0 {
					t.Errorf("expected no blocks, got %d", len(doc.Blocks))
				}
				return
			}
			if !errors.Is(err, ErrVersion) {
				t.Fatalf("expected version error, got %v", err)
			}
			if !strings.Contains(err.Error(), "expected pandoc-api-version to start with 1,23") {
				t.Errorf("unexpected message %q", err.Error())
			}
		})
	}
}

func TestVersionCheckedFirst(t *testing.T) {
	d := `{"pandoc-api-version":[1,24],"meta":{},"blocks":[{"t":"Bogus"}]}`
	_, err := Parse([]byte(d))
	if !errors.Is(err, ErrVersion) {
		t.Fatalf("expected version error, got %v", err)
	}
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     ErrorKind
		sentinel error
		path     string
	}{
		{
			name:     "invalid json",
			input:    `{"pandoc-api-version":`,
			kind:     ShapeError,
			sentinel: ErrShape,
		},
		{
			name:     "trailing data",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[]} []`,
			kind:     ShapeError,
			sentinel: ErrShape,
		},
		{
			name:     "missing blocks",
			input:    `{"pandoc-api-version":[1,23],"meta":{}}`,
			kind:     ShapeError,
			sentinel: ErrShape,
			path:     "$",
		},
		{
			name:     "missing version",
			input:    `{"meta":{},"blocks":[]}`,
			kind:     ShapeError,
			sentinel: ErrShape,
			path:     "$",
		},
		{
			name:     "unknown block tag",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"HorizontalRule"},{"t":"Bogus","c":[]}]}`,
			kind:     TagError,
			sentinel: ErrTag,
			path:     "$.blocks[1]",
		},
		{
			name:     "unknown inline tag",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Word","c":"x"}]}]}`,
			kind:     TagError,
			sentinel: ErrTag,
			path:     "$.blocks[0].c[0]",
		},
		{
			name:     "payload arity",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Header","c":[1,["",[],[]]]}]}`,
			kind:     TagError,
			sentinel: ErrTag,
			path:     "$.blocks[0].c",
		},
		{
			name:     "contents on nullary",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Null","c":[]}]}`,
			kind:     TagError,
			sentinel: ErrTag,
			path:     "$.blocks[0]",
		},
		{
			name:     "missing contents",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Para"}]}`,
			kind:     TagError,
			sentinel: ErrTag,
			path:     "$.blocks[0]",
		},
		{
			name:     "wrong type",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Para","c":[{"t":"Str","c":3}]}]}`,
			kind:     ShapeError,
			sentinel: ErrShape,
			path:     "$.blocks[0].c[0].c",
		},
		{
			name:     "non integer level",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Header","c":[1.5,["",[],[]],[]]}]}`,
			kind:     ShapeError,
			sentinel: ErrShape,
			path:     "$.blocks[0].c[0]",
		},
		{
			name:     "bad attr arity",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Div","c":[["",[]],[]]}]}`,
			kind:     ShapeError,
			sentinel: ErrShape,
			path:     "$.blocks[0].c[0]",
		},
		{
			name:     "unknown enum",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"OrderedList","c":[[1,{"t":"Hex"},{"t":"Period"}],[]]}]}`,
			kind:     TagError,
			sentinel: ErrTag,
			path:     "$.blocks[0].c[0][1]",
		},
		{
			name:     "meta path",
			input:    `{"pandoc-api-version":[1,23],"meta":{"title":{"t":"MetaString","c":false}},"blocks":[]}`,
			kind:     ShapeError,
			sentinel: ErrShape,
			path:     "$.meta.title.c",
		},
		{
			name:     "citation missing key",
			input:    `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Plain","c":[{"t":"Cite","c":[[{"citationId":"x"}],[]]}]}]}`,
			kind:     ShapeError,
			sentinel: ErrShape,
			path:     "$.blocks[0].c[0].c[0][0]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			var pe *Error
			if !errors.As(err, &pe) {
				t.Fatalf("expected *Error, got %T: %v", err, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("kind: expected %s, got %s (%v)", tt.kind, pe.Kind, err)
			}
			if !errors.Is(err, tt.sentinel) || !errors.Is(err, ErrParse) {
				t.Errorf("%v does not wrap %v", err, tt.sentinel)
			}
			if tt.path != "" && pe.Path != tt.path {
				t.Errorf("path: expected %q, got %q", tt.path, pe.Path)
			}
		})
	}
}

func TestParseBlockAndInline(t *testing.T) {
	b, err := ParseBlock([]byte(`{"t":"HorizontalRule"}`))
	if err != nil {
		t.Fatal(err)
	}
	if b.Kind() != ast.HorizontalRuleKind {
		t.Errorf("expected HorizontalRule, got %s", b.Kind())
	}
	in, err := ParseInline([]byte(`{"t":"Math","c":[{"t":"InlineMath"},"x^2"]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.Math{Type: ast.InlineMath, Text: "x^2"}
	if !ast.Equal[ast.Inline](in, want) {
		t.Errorf("mismatch:\n%s", ast.Diff[ast.Inline](want, in))
	}
}

func TestUnknownKeysIgnored(t *testing.T) {
	d := `{"pandoc-api-version":[1,23],"meta":{},"blocks":[{"t":"Null","extra":1}],"x":true}`
	doc, err := Parse([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Blocks) != 1 || doc.Blocks[0].Kind() != ast.NullKind {
		t.Errorf("unexpected blocks %v", ast.KindsOfBlocks(doc.Blocks))
	}
}

func TestCaptionShort(t *testing.T) {
	tests := []struct {
		name      string
		short     string
		wantShort bool
	}{
		{name: "null", short: "null"},
		{name: "empty", short: "[]", wantShort: true},
		{name: "text", short: `[{"t":"Str","c":"s"}]`, wantShort: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := `{"t":"Figure","c":[["",[],[]],[` + tt.short + `,[]],[]]}`
			b, err := ParseBlock([]byte(d))
			if err != nil {
				t.Fatal(err)
			}
			f := b.(*ast.Figure)
			if f.Caption.HasShort() != tt.wantShort {
				t.Errorf("HasShort: expected %v", tt.wantShort)
			}
		})
	}
}

func TestParseTable(t *testing.T) {
	d := `{"t":"Table","c":[
		["t",[],[]],
		[null,[{"t":"Plain","c":[{"t":"Str","c":"cap"}]}]],
		[[{"t":"AlignLeft"},{"t":"ColWidth","c":0.5}],[{"t":"AlignDefault"},{"t":"ColWidthDefault"}]],
		[["",[],[]],[[["",[],[]],[[["",[],[]],{"t":"AlignDefault"},1,1,[{"t":"Plain","c":[{"t":"Str","c":"h"}]}]]]]]],
		[[["",[],[]],1,[],[[["",[],[]],[[["",[],[]],{"t":"AlignRight"},1,2,[]]]]]]],
		[["",[],[]],[]]
	]}`
	b, err := ParseBlock([]byte(d))
	if err != nil {
		t.Fatal(err)
	}
	want := &ast.Table{
		Attr:    ast.NewAttr("t"),
		Caption: ast.Caption{Long: []ast.Block{&ast.Plain{Inlines: ast.Words("cap")}}},
		ColSpecs: []ast.ColSpec{
			{Align: ast.AlignLeft, Width: ast.Width(0.5)},
			ast.DefaultColSpec(),
		},
		Head: ast.TableHead{Rows: []ast.Row{
			ast.NewRow(ast.NewCell(&ast.Plain{Inlines: ast.Words("h")})),
		}},
		Bodies: []ast.TableBody{{
			RowHeadColumns: 1,
			Body: []ast.Row{ast.NewRow(ast.Cell{
				Align: ast.AlignRight, RowSpan: 1, ColSpan: 2,
			})},
		}},
	}
	if !ast.Equal[ast.Block](b, want) {
		t.Errorf("mismatch:\n%s", ast.Diff[ast.Block](want, b))
	}
}

func TestParseYAML(t *testing.T) {
	y := `
pandoc-api-version: [1, 23, 1]
meta:
  title:
    t: MetaInlines
    c:
    - t: Str
      c: Title
blocks:
- t: HorizontalRule
`
	doc, err := Parse([]byte(y), ParseYAML())
	if err != nil {
		t.Fatal(err)
	}
	want := ast.NewDocument(&ast.HorizontalRule{})
	want.Meta["title"] = &ast.MetaInlines{Inlines: []ast.Inline{&ast.Str{Text: "Title"}}}
	if !ast.Equal(doc, want) {
		t.Errorf("mismatch:\n%s", ast.Diff(want, doc))
	}
}

func TestPathString(t *testing.T) {
	var root *path
	p := root.key("blocks").at(2).key("c").at(1)
	if got := p.String(); got != "$.blocks[2].c[1]" {
		t.Errorf("got %q", got)
	}
	if got := root.key("a.b").String(); got != "$.'a.b'" {
		t.Errorf("got %q", got)
	}
}
