package ast

import (
	"maps"
	"slices"
)

// APIVersion is the pandoc-api-version written by the encoder. Decoders
// accept any version whose first two components match.
var APIVersion = [...]int{1, 23, 1}

// APIVersionMajorMinor returns the pinned major and minor components.
func APIVersionMajorMinor() (int, int) {
	return APIVersion[0], APIVersion[1]
}

// Node is implemented by every value the traversal functions accept:
// all Block and Inline variants and *Document.
type Node interface {
	astNode()
}

// Document is the root of a document tree.
type Document struct {
	Meta   Meta
	Blocks []Block
}

func (*Document) astNode() {}

// NewDocument returns a document with empty metadata holding blocks.
func NewDocument(blocks ...Block) *Document {
	return &Document{Meta: Meta{}, Blocks: blocks}
}

// Meta maps metadata keys to values. Key order carries no meaning.
type Meta map[string]MetaValue

// Keys returns the keys of m in sorted order, which is also the order the
// encoder writes them in.
func (m Meta) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}

// MetaValue is one of *MetaMap, *MetaList, *MetaBool, *MetaString,
// *MetaInlines or *MetaBlocks.
type MetaValue interface {
	Kind() MetaKind
	isMetaValue()
}

type MetaMap struct {
	Map Meta
}

type MetaList struct {
	Items []MetaValue
}

type MetaBool struct {
	Value bool
}

type MetaString struct {
	Text string
}

// MetaInlines holds short metadata text such as a title.
type MetaInlines struct {
	Inlines []Inline
}

// MetaBlocks holds long-form metadata such as an abstract.
type MetaBlocks struct {
	Blocks []Block
}

func (*MetaMap) Kind() MetaKind     { return MetaMapKind }
func (*MetaList) Kind() MetaKind    { return MetaListKind }
func (*MetaBool) Kind() MetaKind    { return MetaBoolKind }
func (*MetaString) Kind() MetaKind  { return MetaStringKind }
func (*MetaInlines) Kind() MetaKind { return MetaInlinesKind }
func (*MetaBlocks) Kind() MetaKind  { return MetaBlocksKind }

func (*MetaMap) isMetaValue()     {}
func (*MetaList) isMetaValue()    {}
func (*MetaBool) isMetaValue()    {}
func (*MetaString) isMetaValue()  {}
func (*MetaInlines) isMetaValue() {}
func (*MetaBlocks) isMetaValue()  {}
