package ast

import "fmt"

// BlockKind identifies a Block variant. Its String form is the wire tag.
type BlockKind int

const (
	PlainKind BlockKind = iota
	ParaKind
	LineBlockKind
	CodeBlockKind
	RawBlockKind
	BlockQuoteKind
	OrderedListKind
	BulletListKind
	DefinitionListKind
	HeaderKind
	HorizontalRuleKind
	TableKind
	FigureKind
	DivKind
	NullKind
)

var blockKindNames = [...]string{
	PlainKind:          "Plain",
	ParaKind:           "Para",
	LineBlockKind:      "LineBlock",
	CodeBlockKind:      "CodeBlock",
	RawBlockKind:       "RawBlock",
	BlockQuoteKind:     "BlockQuote",
	OrderedListKind:    "OrderedList",
	BulletListKind:     "BulletList",
	DefinitionListKind: "DefinitionList",
	HeaderKind:         "Header",
	HorizontalRuleKind: "HorizontalRule",
	TableKind:          "Table",
	FigureKind:         "Figure",
	DivKind:            "Div",
	NullKind:           "Null",
}

var blockKindsByName = func() map[string]BlockKind {
	m := make(map[string]BlockKind, len(blockKindNames))
	for i, n := range blockKindNames {
		m[n] = BlockKind(i)
	}
	return m
}()

func (k BlockKind) String() string {
	if k < 0 || int(k) >= len(blockKindNames) {
		return "<unknown block kind>"
	}
	return blockKindNames[k]
}

func (k BlockKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(blockKindNames) {
		return nil, fmt.Errorf("<err: %d is not a block kind>", int(k))
	}
	return []byte(blockKindNames[k]), nil
}

func (k *BlockKind) UnmarshalText(d []byte) error {
	kk, ok := ParseBlockKind(string(d))
	if !ok {
		return fmt.Errorf("unrecognized block kind %q", d)
	}
	*k = kk
	return nil
}

// ParseBlockKind maps a wire tag to its kind.
func ParseBlockKind(tag string) (BlockKind, bool) {
	k, ok := blockKindsByName[tag]
	return k, ok
}

// BlockKinds returns all block kinds in declaration order.
func BlockKinds() []BlockKind {
	res := make([]BlockKind, len(blockKindNames))
	for i := range res {
		res[i] = BlockKind(i)
	}
	return res
}

// KindsOfBlocks returns the kinds of bs, for error messages that should
// not carry node payloads.
func KindsOfBlocks(bs []Block) []BlockKind {
	res := make([]BlockKind, len(bs))
	for i, b := range bs {
		res[i] = b.Kind()
	}
	return res
}

// InlineKind identifies an Inline variant. Its String form is the wire tag.
type InlineKind int

const (
	StrKind InlineKind = iota
	EmphKind
	UnderlineKind
	StrongKind
	StrikeoutKind
	SuperscriptKind
	SubscriptKind
	SmallCapsKind
	QuotedKind
	CiteKind
	CodeKind
	SpaceKind
	SoftBreakKind
	LineBreakKind
	MathKind
	RawInlineKind
	LinkKind
	ImageKind
	NoteKind
	SpanKind
)

var inlineKindNames = [...]string{
	StrKind:         "Str",
	EmphKind:        "Emph",
	UnderlineKind:   "Underline",
	StrongKind:      "Strong",
	StrikeoutKind:   "Strikeout",
	SuperscriptKind: "Superscript",
	SubscriptKind:   "Subscript",
	SmallCapsKind:   "SmallCaps",
	QuotedKind:      "Quoted",
	CiteKind:        "Cite",
	CodeKind:        "Code",
	SpaceKind:       "Space",
	SoftBreakKind:   "SoftBreak",
	LineBreakKind:   "LineBreak",
	MathKind:        "Math",
	RawInlineKind:   "RawInline",
	LinkKind:        "Link",
	ImageKind:       "Image",
	NoteKind:        "Note",
	SpanKind:        "Span",
}

var inlineKindsByName = func() map[string]InlineKind {
	m := make(map[string]InlineKind, len(inlineKindNames))
	for i, n := range inlineKindNames {
		m[n] = InlineKind(i)
	}
	return m
}()

func (k InlineKind) String() string {
	if k < 0 || int(k) >= len(inlineKindNames) {
		return "<unknown inline kind>"
	}
	return inlineKindNames[k]
}

func (k InlineKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(inlineKindNames) {
		return nil, fmt.Errorf("<err: %d is not an inline kind>", int(k))
	}
	return []byte(inlineKindNames[k]), nil
}

func (k *InlineKind) UnmarshalText(d []byte) error {
	kk, ok := ParseInlineKind(string(d))
	if !ok {
		return fmt.Errorf("unrecognized inline kind %q", d)
	}
	*k = kk
	return nil
}

// ParseInlineKind maps a wire tag to its kind.
func ParseInlineKind(tag string) (InlineKind, bool) {
	k, ok := inlineKindsByName[tag]
	return k, ok
}

// InlineKinds returns all inline kinds in declaration order.
func InlineKinds() []InlineKind {
	res := make([]InlineKind, len(inlineKindNames))
	for i := range res {
		res[i] = InlineKind(i)
	}
	return res
}

// KindsOfInlines returns the kinds of is.
func KindsOfInlines(is []Inline) []InlineKind {
	res := make([]InlineKind, len(is))
	for i, in := range is {
		res[i] = in.Kind()
	}
	return res
}

// IsLeaf reports whether inlines of kind k never have child inlines or
// blocks.
func (k InlineKind) IsLeaf() bool {
	switch k {
	case StrKind, CodeKind, SpaceKind, SoftBreakKind, LineBreakKind, MathKind, RawInlineKind:
		return true
	default:
		return false
	}
}

// MetaKind identifies a MetaValue variant.
type MetaKind int

const (
	MetaMapKind MetaKind = iota
	MetaListKind
	MetaBoolKind
	MetaStringKind
	MetaInlinesKind
	MetaBlocksKind
)

var metaKindNames = [...]string{
	MetaMapKind:     "MetaMap",
	MetaListKind:    "MetaList",
	MetaBoolKind:    "MetaBool",
	MetaStringKind:  "MetaString",
	MetaInlinesKind: "MetaInlines",
	MetaBlocksKind:  "MetaBlocks",
}

func (k MetaKind) String() string {
	if k < 0 || int(k) >= len(metaKindNames) {
		return "<unknown meta kind>"
	}
	return metaKindNames[k]
}

func (k MetaKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(metaKindNames) {
		return nil, fmt.Errorf("<err: %d is not a meta kind>", int(k))
	}
	return []byte(metaKindNames[k]), nil
}

func (k *MetaKind) UnmarshalText(d []byte) error {
	kk, ok := ParseMetaKind(string(d))
	if !ok {
		return fmt.Errorf("unrecognized meta kind %q", d)
	}
	*k = kk
	return nil
}

// ParseMetaKind maps a wire tag to its kind.
func ParseMetaKind(tag string) (MetaKind, bool) {
	for i, n := range metaKindNames {
		if n == tag {
			return MetaKind(i), true
		}
	}
	return 0, false
}
