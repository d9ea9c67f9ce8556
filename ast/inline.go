package ast

import "strings"

// Inline is a unit of text-level content. The set of implementations is
// closed: each variant below reports its InlineKind.
type Inline interface {
	Node
	Kind() InlineKind
	isInline()
}

type Str struct {
	Text string
}

type Emph struct {
	Inlines []Inline
}

type Underline struct {
	Inlines []Inline
}

type Strong struct {
	Inlines []Inline
}

type Strikeout struct {
	Inlines []Inline
}

type Superscript struct {
	Inlines []Inline
}

type Subscript struct {
	Inlines []Inline
}

type SmallCaps struct {
	Inlines []Inline
}

type Quoted struct {
	Type    QuoteType
	Inlines []Inline
}

// Cite holds citations and their fallback rendering.
type Cite struct {
	Citations []Citation
	Inlines   []Inline
}

type Code struct {
	Attr Attr
	Text string
}

// Space is an inter-word space.
type Space struct{}

type SoftBreak struct{}

type LineBreak struct{}

// Math holds TeX math source.
type Math struct {
	Type MathType
	Text string
}

type RawInline struct {
	Format Format
	Text   string
}

// Link holds a label and a target.
type Link struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

// Image holds alt text and a target.
type Image struct {
	Attr    Attr
	Inlines []Inline
	Target  Target
}

// Note is a footnote or endnote.
type Note struct {
	Blocks []Block
}

// Span is a generic inline container with attributes.
type Span struct {
	Attr    Attr
	Inlines []Inline
}

// Citation is one reference inside a Cite.
type Citation struct {
	ID      string
	Prefix  []Inline
	Suffix  []Inline
	Mode    CitationMode
	NoteNum int
	Hash    int
}

// Words splits s on white space into Str inlines separated by Space.
func Words(s string) []Inline {
	fs := strings.Fields(s)
	if len(fs) == 0 {
		return nil
	}
	res := make([]Inline, 0, 2*len(fs)-1)
	for i, f := range fs {
		if i > 0 {
			res = append(res, &Space{})
		}
		res = append(res, &Str{Text: f})
	}
	return res
}

func (*Str) Kind() InlineKind         { return StrKind }
func (*Emph) Kind() InlineKind        { return EmphKind }
func (*Underline) Kind() InlineKind   { return UnderlineKind }
func (*Strong) Kind() InlineKind      { return StrongKind }
func (*Strikeout) Kind() InlineKind   { return StrikeoutKind }
func (*Superscript) Kind() InlineKind { return SuperscriptKind }
func (*Subscript) Kind() InlineKind   { return SubscriptKind }
func (*SmallCaps) Kind() InlineKind   { return SmallCapsKind }
func (*Quoted) Kind() InlineKind      { return QuotedKind }
func (*Cite) Kind() InlineKind        { return CiteKind }
func (*Code) Kind() InlineKind        { return CodeKind }
func (*Space) Kind() InlineKind       { return SpaceKind }
func (*SoftBreak) Kind() InlineKind   { return SoftBreakKind }
func (*LineBreak) Kind() InlineKind   { return LineBreakKind }
func (*Math) Kind() InlineKind        { return MathKind }
func (*RawInline) Kind() InlineKind   { return RawInlineKind }
func (*Link) Kind() InlineKind        { return LinkKind }
func (*Image) Kind() InlineKind       { return ImageKind }
func (*Note) Kind() InlineKind        { return NoteKind }
func (*Span) Kind() InlineKind        { return SpanKind }

func (*Str) isInline()         {}
func (*Emph) isInline()        {}
func (*Underline) isInline()   {}
func (*Strong) isInline()      {}
func (*Strikeout) isInline()   {}
func (*Superscript) isInline() {}
func (*Subscript) isInline()   {}
func (*SmallCaps) isInline()   {}
func (*Quoted) isInline()      {}
func (*Cite) isInline()        {}
func (*Code) isInline()        {}
func (*Space) isInline()       {}
func (*SoftBreak) isInline()   {}
func (*LineBreak) isInline()   {}
func (*Math) isInline()        {}
func (*RawInline) isInline()   {}
func (*Link) isInline()        {}
func (*Image) isInline()       {}
func (*Note) isInline()        {}
func (*Span) isInline()        {}

func (*Str) astNode()         {}
func (*Emph) astNode()        {}
func (*Underline) astNode()   {}
func (*Strong) astNode()      {}
func (*Strikeout) astNode()   {}
func (*Superscript) astNode() {}
func (*Subscript) astNode()   {}
func (*SmallCaps) astNode()   {}
func (*Quoted) astNode()      {}
func (*Cite) astNode()        {}
func (*Code) astNode()        {}
func (*Space) astNode()       {}
func (*SoftBreak) astNode()   {}
func (*LineBreak) astNode()   {}
func (*Math) astNode()        {}
func (*RawInline) astNode()   {}
func (*Link) astNode()        {}
func (*Image) astNode()       {}
func (*Note) astNode()        {}
func (*Span) astNode()        {}
