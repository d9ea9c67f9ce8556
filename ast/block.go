package ast

// Block is a structural document unit. The set of implementations is
// closed: each variant below reports its BlockKind.
type Block interface {
	Node
	Kind() BlockKind
	isBlock()
}

// Plain is text that is not a paragraph.
type Plain struct {
	Inlines []Inline
}

type Para struct {
	Inlines []Inline
}

// LineBlock is a sequence of non-breaking lines.
type LineBlock struct {
	Lines [][]Inline
}

type CodeBlock struct {
	Attr Attr
	Text string
}

type RawBlock struct {
	Format Format
	Text   string
}

type BlockQuote struct {
	Blocks []Block
}

// OrderedList holds items, each a sequence of blocks.
type OrderedList struct {
	Attrs ListAttributes
	Items [][]Block
}

type BulletList struct {
	Items [][]Block
}

// DefinitionList holds terms, each with one or more definitions.
type DefinitionList struct {
	Items []DefinitionItem
}

type DefinitionItem struct {
	Term        []Inline
	Definitions [][]Block
}

type Header struct {
	Level   int
	Attr    Attr
	Inlines []Inline
}

type HorizontalRule struct{}

type Figure struct {
	Attr    Attr
	Caption Caption
	Blocks  []Block
}

// Div is a generic block container with attributes.
type Div struct {
	Attr   Attr
	Blocks []Block
}

// Null is the block that renders as nothing.
type Null struct{}

// ListAttributes are the numbering attributes of an ordered list.
type ListAttributes struct {
	Start int
	Style ListNumberStyle
	Delim ListNumberDelim
}

// NewListAttributes returns list attributes numbering from 1 in the
// default style and delimiter.
func NewListAttributes() ListAttributes {
	return ListAttributes{Start: 1}
}

func (*Plain) Kind() BlockKind          { return PlainKind }
func (*Para) Kind() BlockKind           { return ParaKind }
func (*LineBlock) Kind() BlockKind      { return LineBlockKind }
func (*CodeBlock) Kind() BlockKind      { return CodeBlockKind }
func (*RawBlock) Kind() BlockKind       { return RawBlockKind }
func (*BlockQuote) Kind() BlockKind     { return BlockQuoteKind }
func (*OrderedList) Kind() BlockKind    { return OrderedListKind }
func (*BulletList) Kind() BlockKind     { return BulletListKind }
func (*DefinitionList) Kind() BlockKind { return DefinitionListKind }
func (*Header) Kind() BlockKind         { return HeaderKind }
func (*HorizontalRule) Kind() BlockKind { return HorizontalRuleKind }
func (*Table) Kind() BlockKind          { return TableKind }
func (*Figure) Kind() BlockKind         { return FigureKind }
func (*Div) Kind() BlockKind            { return DivKind }
func (*Null) Kind() BlockKind           { return NullKind }

func (*Plain) isBlock()          {}
func (*Para) isBlock()           {}
func (*LineBlock) isBlock()      {}
func (*CodeBlock) isBlock()      {}
func (*RawBlock) isBlock()       {}
func (*BlockQuote) isBlock()     {}
func (*OrderedList) isBlock()    {}
func (*BulletList) isBlock()     {}
func (*DefinitionList) isBlock() {}
func (*Header) isBlock()         {}
func (*HorizontalRule) isBlock() {}
func (*Table) isBlock()          {}
func (*Figure) isBlock()         {}
func (*Div) isBlock()            {}
func (*Null) isBlock()           {}

func (*Plain) astNode()          {}
func (*Para) astNode()           {}
func (*LineBlock) astNode()      {}
func (*CodeBlock) astNode()      {}
func (*RawBlock) astNode()       {}
func (*BlockQuote) astNode()     {}
func (*OrderedList) astNode()    {}
func (*BulletList) astNode()     {}
func (*DefinitionList) astNode() {}
func (*Header) astNode()         {}
func (*HorizontalRule) astNode() {}
func (*Table) astNode()          {}
func (*Figure) astNode()         {}
func (*Div) astNode()            {}
func (*Null) astNode()           {}
