package ast

import "fmt"

// enumNames holds the wire tags of a closed enum, indexed by value.
type enumNames []string

func (ns enumNames) name(v int) (string, bool) {
	if v < 0 || v >= len(ns) {
		return "", false
	}
	return ns[v], true
}

func (ns enumNames) value(s string) (int, bool) {
	for i, n := range ns {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

func (ns enumNames) marshal(what string, v int) ([]byte, error) {
	n, ok := ns.name(v)
	if !ok {
		return nil, fmt.Errorf("<err: %d is not a %s>", v, what)
	}
	return []byte(n), nil
}

func (ns enumNames) unmarshal(what string, d []byte) (int, error) {
	v, ok := ns.value(string(d))
	if !ok {
		return 0, fmt.Errorf("unrecognized %s %q", what, d)
	}
	return v, nil
}

// Alignment is the horizontal alignment of a table column or cell.
// The zero value is AlignDefault.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

var alignmentNames = enumNames{
	AlignDefault: "AlignDefault",
	AlignLeft:    "AlignLeft",
	AlignRight:   "AlignRight",
	AlignCenter:  "AlignCenter",
}

func (a Alignment) String() string {
	if n, ok := alignmentNames.name(int(a)); ok {
		return n
	}
	return "<unknown alignment>"
}

func (a Alignment) MarshalText() ([]byte, error) { return alignmentNames.marshal("alignment", int(a)) }

func (a *Alignment) UnmarshalText(d []byte) error {
	v, err := alignmentNames.unmarshal("alignment", d)
	if err != nil {
		return err
	}
	*a = Alignment(v)
	return nil
}

func Alignments() []Alignment {
	return []Alignment{AlignDefault, AlignLeft, AlignRight, AlignCenter}
}

// ListNumberStyle is the numbering style of an ordered list.
// The zero value is DefaultStyle.
type ListNumberStyle int

const (
	DefaultStyle ListNumberStyle = iota
	Example
	Decimal
	LowerRoman
	UpperRoman
	LowerAlpha
	UpperAlpha
)

var listNumberStyleNames = enumNames{
	DefaultStyle: "DefaultStyle",
	Example:      "Example",
	Decimal:      "Decimal",
	LowerRoman:   "LowerRoman",
	UpperRoman:   "UpperRoman",
	LowerAlpha:   "LowerAlpha",
	UpperAlpha:   "UpperAlpha",
}

func (s ListNumberStyle) String() string {
	if n, ok := listNumberStyleNames.name(int(s)); ok {
		return n
	}
	return "<unknown list number style>"
}

func (s ListNumberStyle) MarshalText() ([]byte, error) {
	return listNumberStyleNames.marshal("list number style", int(s))
}

func (s *ListNumberStyle) UnmarshalText(d []byte) error {
	v, err := listNumberStyleNames.unmarshal("list number style", d)
	if err != nil {
		return err
	}
	*s = ListNumberStyle(v)
	return nil
}

func ListNumberStyles() []ListNumberStyle {
	return []ListNumberStyle{DefaultStyle, Example, Decimal, LowerRoman, UpperRoman, LowerAlpha, UpperAlpha}
}

// ListNumberDelim is the delimiter around ordered list numbers.
// The zero value is DefaultDelim.
type ListNumberDelim int

const (
	DefaultDelim ListNumberDelim = iota
	Period
	OneParen
	TwoParens
)

var listNumberDelimNames = enumNames{
	DefaultDelim: "DefaultDelim",
	Period:       "Period",
	OneParen:     "OneParen",
	TwoParens:    "TwoParens",
}

func (d ListNumberDelim) String() string {
	if n, ok := listNumberDelimNames.name(int(d)); ok {
		return n
	}
	return "<unknown list number delim>"
}

func (d ListNumberDelim) MarshalText() ([]byte, error) {
	return listNumberDelimNames.marshal("list number delim", int(d))
}

func (d *ListNumberDelim) UnmarshalText(b []byte) error {
	v, err := listNumberDelimNames.unmarshal("list number delim", b)
	if err != nil {
		return err
	}
	*d = ListNumberDelim(v)
	return nil
}

func ListNumberDelims() []ListNumberDelim {
	return []ListNumberDelim{DefaultDelim, Period, OneParen, TwoParens}
}

// QuoteType distinguishes single from double quotation.
type QuoteType int

const (
	SingleQuote QuoteType = iota
	DoubleQuote
)

var quoteTypeNames = enumNames{
	SingleQuote: "SingleQuote",
	DoubleQuote: "DoubleQuote",
}

func (q QuoteType) String() string {
	if n, ok := quoteTypeNames.name(int(q)); ok {
		return n
	}
	return "<unknown quote type>"
}

func (q QuoteType) MarshalText() ([]byte, error) { return quoteTypeNames.marshal("quote type", int(q)) }

func (q *QuoteType) UnmarshalText(d []byte) error {
	v, err := quoteTypeNames.unmarshal("quote type", d)
	if err != nil {
		return err
	}
	*q = QuoteType(v)
	return nil
}

func QuoteTypes() []QuoteType { return []QuoteType{SingleQuote, DoubleQuote} }

// MathType distinguishes display from inline math.
type MathType int

const (
	DisplayMath MathType = iota
	InlineMath
)

var mathTypeNames = enumNames{
	DisplayMath: "DisplayMath",
	InlineMath:  "InlineMath",
}

func (m MathType) String() string {
	if n, ok := mathTypeNames.name(int(m)); ok {
		return n
	}
	return "<unknown math type>"
}

func (m MathType) MarshalText() ([]byte, error) { return mathTypeNames.marshal("math type", int(m)) }

func (m *MathType) UnmarshalText(d []byte) error {
	v, err := mathTypeNames.unmarshal("math type", d)
	if err != nil {
		return err
	}
	*m = MathType(v)
	return nil
}

func MathTypes() []MathType { return []MathType{DisplayMath, InlineMath} }

// CitationMode is how a citation is rendered relative to its author.
// The zero value is NormalCitation.
type CitationMode int

const (
	NormalCitation CitationMode = iota
	AuthorInText
	SuppressAuthor
)

var citationModeNames = enumNames{
	NormalCitation: "NormalCitation",
	AuthorInText:   "AuthorInText",
	SuppressAuthor: "SuppressAuthor",
}

func (c CitationMode) String() string {
	if n, ok := citationModeNames.name(int(c)); ok {
		return n
	}
	return "<unknown citation mode>"
}

func (c CitationMode) MarshalText() ([]byte, error) {
	return citationModeNames.marshal("citation mode", int(c))
}

func (c *CitationMode) UnmarshalText(d []byte) error {
	v, err := citationModeNames.unmarshal("citation mode", d)
	if err != nil {
		return err
	}
	*c = CitationMode(v)
	return nil
}

func CitationModes() []CitationMode { return []CitationMode{NormalCitation, AuthorInText, SuppressAuthor} }
