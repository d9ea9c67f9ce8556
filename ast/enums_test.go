package ast

import "testing"

type textEnum interface {
	MarshalText() ([]byte, error)
	String() string
}

func TestEnumZeroValues(t *testing.T) {
	tests := []struct {
		v    textEnum
		want string
	}{
		{v: Alignment(0), want: "AlignDefault"},
		{v: ListNumberStyle(0), want: "DefaultStyle"},
		{v: ListNumberDelim(0), want: "DefaultDelim"},
		{v: CitationMode(0), want: "NormalCitation"},
		{v: QuoteType(0), want: "SingleQuote"},
		{v: MathType(0), want: "DisplayMath"},
	}
	for _, tt := range tests {
		d, err := tt.v.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		if string(d) != tt.want || tt.v.String() != tt.want {
			t.Errorf("expected %s, got %s / %s", tt.want, d, tt.v)
		}
	}
}

func TestEnumText(t *testing.T) {
	for _, s := range ListNumberStyles() {
		var u ListNumberStyle
		d, _ := s.MarshalText()
		if err := u.UnmarshalText(d); err != nil || u != s {
			t.Errorf("%s: got %s, %v", s, u, err)
		}
	}
	for _, a := range Alignments() {
		var u Alignment
		d, _ := a.MarshalText()
		if err := u.UnmarshalText(d); err != nil || u != a {
			t.Errorf("%s: got %s, %v", a, u, err)
		}
	}
	for _, m := range CitationModes() {
		var u CitationMode
		d, _ := m.MarshalText()
		if err := u.UnmarshalText(d); err != nil || u != m {
			t.Errorf("%s: got %s, %v", m, u, err)
		}
	}
	var d ListNumberDelim
	if err := d.UnmarshalText([]byte("Comma")); err == nil {
		t.Error("expected error for unknown delimiter")
	}
	if _, err := Alignment(9).MarshalText(); err == nil {
		t.Error("expected error for out of range alignment")
	}
	if len(ListNumberDelims()) != 4 || len(QuoteTypes()) != 2 || len(MathTypes()) != 2 {
		t.Error("unexpected enum sizes")
	}
}

func TestCitationFields(t *testing.T) {
	want := []string{"citationId", "citationPrefix", "citationSuffix", "citationMode", "citationNoteNum", "citationHash"}
	fs := CitationFields()
	if len(fs) != len(want) {
		t.Fatalf("expected %d fields, got %d", len(want), len(fs))
	}
	for i, f := range fs {
		if f.Key() != want[i] {
			t.Errorf("field %d: expected %s, got %s", i, want[i], f.Key())
		}
		back, ok := CitationFieldByKey(want[i])
		if !ok || back != f {
			t.Errorf("%s does not map back", want[i])
		}
	}
	if _, ok := CitationFieldByKey("citationID"); ok {
		t.Error("keys are case sensitive")
	}
}
