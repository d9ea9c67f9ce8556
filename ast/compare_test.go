package ast

import (
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	if !(Attr{}).IsEmpty() {
		t.Error("zero Attr should be empty")
	}
	la := NewListAttributes()
	if la.Start != 1 || la.Style != DefaultStyle || la.Delim != DefaultDelim {
		t.Errorf("unexpected list attributes %+v", la)
	}
	c := NewCell()
	if c.RowSpan != 1 || c.ColSpan != 1 || c.Align != AlignDefault {
		t.Errorf("unexpected cell %+v", c)
	}
	cs := DefaultColSpec()
	if !cs.Width.IsDefault() || cs.Align != AlignDefault {
		t.Errorf("unexpected col spec %+v", cs)
	}
	if Width(0.5).IsDefault() {
		t.Error("specified width reported as default")
	}
	doc := NewDocument()
	if doc.Meta == nil {
		t.Error("expected non-nil meta")
	}
	major, minor := APIVersionMajorMinor()
	if major != 1 || minor != 23 {
		t.Errorf("unexpected api version %d.%d", major, minor)
	}
}

func TestAttr(t *testing.T) {
	a := Attr{ID: "x", Classes: []string{"a", "b"}, Attributes: []KeyValue{{"k", "1"}, {"k", "2"}}}
	if !a.HasClass("b") || a.HasClass("c") {
		t.Error("HasClass")
	}
	if v, ok := a.Get("k"); !ok || v != "1" {
		t.Errorf("Get: expected first value, got %q %v", v, ok)
	}
	if _, ok := a.Get("z"); ok {
		t.Error("Get: unexpected value")
	}
}

func TestWords(t *testing.T) {
	got := KindsOfInlines(Words("  a  b\tc "))
	want := []InlineKind{StrKind, SpaceKind, StrKind, SpaceKind, StrKind}
	if !Equal(got, want) {
		t.Errorf("mismatch:\n%s", Diff(want, got))
	}
	if Words("   ") != nil {
		t.Error("expected nil for blank input")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  Block
		equal bool
	}{
		{
			name:  "nil and empty",
			a:     &Para{},
			b:     &Para{Inlines: []Inline{}},
			equal: true,
		},
		{
			name: "order matters",
			a:    &Para{Inlines: Words("a b")},
			b:    &Para{Inlines: Words("b a")},
		},
		{
			name: "variant matters",
			a:    &Para{Inlines: Words("a")},
			b:    &Plain{Inlines: Words("a")},
		},
		{
			name: "absent short caption",
			a:    &Figure{Caption: Caption{}},
			b:    &Figure{Caption: Caption{Short: []Inline{}}},
		},
		{
			name:  "default width ignores fraction",
			a:     &Table{ColSpecs: []ColSpec{{Width: ColWidth{Fraction: 0.3}}}},
			b:     &Table{ColSpecs: []ColSpec{DefaultColSpec()}},
			equal: true,
		},
		{
			name: "specified widths",
			a:    &Table{ColSpecs: []ColSpec{{Width: Width(0.3)}}},
			b:    &Table{ColSpecs: []ColSpec{{Width: Width(0.4)}}},
		},
		{
			name: "attributes order",
			a:    &Div{Attr: Attr{Attributes: []KeyValue{{"a", "1"}, {"b", "2"}}}},
			b:    &Div{Attr: Attr{Attributes: []KeyValue{{"b", "2"}, {"a", "1"}}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.equal {
				t.Errorf("expected %v, got %v", tt.equal, got)
			}
			if got := Hash(tt.a) == Hash(tt.b); tt.equal && !got {
				t.Error("equal blocks hash differently")
			}
			d := Diff(tt.a, tt.b)
			if (d == "") != tt.equal {
				t.Errorf("unexpected diff %q", d)
			}
		})
	}
}

func TestEqualDocuments(t *testing.T) {
	a := NewDocument(&Para{Inlines: Words("x")})
	b := &Document{Blocks: []Block{&Para{Inlines: Words("x")}}}
	if !Equal(a, b) {
		t.Errorf("expected equal:\n%s", Diff(a, b))
	}
	b.Meta = Meta{"k": &MetaBool{Value: true}}
	if Equal(a, b) {
		t.Error("expected meta difference")
	}
	if !strings.Contains(Diff(a, b), "MetaBool") {
		t.Errorf("diff should mention the meta value:\n%s", Diff(a, b))
	}
}

func TestHash(t *testing.T) {
	mk := func() *Document {
		d := NewDocument(
			&Header{Level: 1, Attr: NewAttr("h"), Inlines: Words("Title")},
			&Table{
				Caption:  Caption{Short: Words("s")},
				ColSpecs: []ColSpec{{Align: AlignCenter, Width: Width(1)}},
				Bodies:   []TableBody{{Body: []Row{NewRow(NewCell(&Plain{Inlines: Words("c")}))}}},
			},
			&Para{Inlines: []Inline{&Cite{Citations: []Citation{{ID: "k"}}}, &Note{}}},
		)
		d.Meta["b"] = &MetaList{Items: []MetaValue{&MetaString{Text: "x"}}}
		d.Meta["a"] = &MetaInlines{Inlines: Words("y")}
		return d
	}
	if Hash(mk()) != Hash(mk()) {
		t.Error("equal documents hash differently")
	}
	other := mk()
	other.Blocks[1].(*Table).Bodies[0].Body[0].Cells[0].ColSpan = 2
	if Hash(mk()) == Hash(other) {
		t.Error("expected different hash")
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic on nil")
		}
	}()
	Hash(nil)
}

func TestTableRows(t *testing.T) {
	row := func(id string) Row { return Row{Attr: NewAttr(id)} }
	tbl := &Table{
		Head:   TableHead{Rows: []Row{row("h")}},
		Bodies: []TableBody{{Head: []Row{row("bh")}, Body: []Row{row("b1"), row("b2")}}, {Body: []Row{row("c")}}},
		Foot:   TableFoot{Rows: []Row{row("f")}},
	}
	var ids []string
	for _, r := range tbl.Rows() {
		ids = append(ids, r.Attr.ID)
	}
	want := []string{"h", "bh", "b1", "b2", "c", "f"}
	if !Equal(ids, want) {
		t.Errorf("mismatch:\n%s", Diff(want, ids))
	}
	tbl.Rows()[0].Attr.ID = "changed"
	if tbl.Head.Rows[0].Attr.ID != "changed" {
		t.Error("Rows should point into the table")
	}
}
