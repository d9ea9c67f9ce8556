package ast

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of n consistent with Equal within one
// process. It is not stable across processes; see encode.Digest for that.
// It panics if n is nil.
func Hash(n Node) uint64 {
	if n == nil {
		panic("ast: Hash called on nil node")
	}
	h := &hasher{}
	h.h.SetSeed(hashSeed)
	switch x := n.(type) {
	case *Document:
		h.meta(x.Meta)
		h.blocks(x.Blocks)
	case Block:
		h.block(x)
	case Inline:
		h.inline(x)
	}
	return h.h.Sum64()
}

type hasher struct {
	h maphash.Hash
}

func (h *hasher) int(v int) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(v))
	h.h.Write(b[:])
}

func (h *hasher) str(s string) {
	h.int(len(s))
	h.h.WriteString(s)
}

func (h *hasher) bool(v bool) {
	if v {
		h.h.WriteByte(1)
	} else {
		h.h.WriteByte(0)
	}
}

func (h *hasher) attr(a Attr) {
	h.str(a.ID)
	h.int(len(a.Classes))
	for _, c := range a.Classes {
		h.str(c)
	}
	h.int(len(a.Attributes))
	for _, kv := range a.Attributes {
		h.str(kv.Key)
		h.str(kv.Value)
	}
}

func (h *hasher) meta(m Meta) {
	h.int(len(m))
	for _, k := range m.Keys() {
		h.str(k)
		h.metaValue(m[k])
	}
}

func (h *hasher) metaValue(v MetaValue) {
	h.int(int(v.Kind()))
	switch x := v.(type) {
	case *MetaMap:
		h.meta(x.Map)
	case *MetaList:
		h.int(len(x.Items))
		for _, it := range x.Items {
			h.metaValue(it)
		}
	case *MetaBool:
		h.bool(x.Value)
	case *MetaString:
		h.str(x.Text)
	case *MetaInlines:
		h.inlines(x.Inlines)
	case *MetaBlocks:
		h.blocks(x.Blocks)
	}
}

func (h *hasher) blocks(bs []Block) {
	h.int(len(bs))
	for _, b := range bs {
		h.block(b)
	}
}

func (h *hasher) items(items [][]Block) {
	h.int(len(items))
	for _, it := range items {
		h.blocks(it)
	}
}

func (h *hasher) inlines(is []Inline) {
	h.int(len(is))
	for _, in := range is {
		h.inline(in)
	}
}

func (h *hasher) block(b Block) {
	h.int(int(b.Kind()))
	switch x := b.(type) {
	case *Plain:
		h.inlines(x.Inlines)
	case *Para:
		h.inlines(x.Inlines)
	case *LineBlock:
		h.int(len(x.Lines))
		for _, ln := range x.Lines {
			h.inlines(ln)
		}
	case *CodeBlock:
		h.attr(x.Attr)
		h.str(x.Text)
	case *RawBlock:
		h.str(string(x.Format))
		h.str(x.Text)
	case *BlockQuote:
		h.blocks(x.Blocks)
	case *OrderedList:
		h.int(x.Attrs.Start)
		h.int(int(x.Attrs.Style))
		h.int(int(x.Attrs.Delim))
		h.items(x.Items)
	case *BulletList:
		h.items(x.Items)
	case *DefinitionList:
		h.int(len(x.Items))
		for _, it := range x.Items {
			h.inlines(it.Term)
			h.items(it.Definitions)
		}
	case *Header:
		h.int(x.Level)
		h.attr(x.Attr)
		h.inlines(x.Inlines)
	case *Table:
		h.table(x)
	case *Figure:
		h.attr(x.Attr)
		h.caption(x.Caption)
		h.blocks(x.Blocks)
	case *Div:
		h.attr(x.Attr)
		h.blocks(x.Blocks)
	}
}

func (h *hasher) caption(c Caption) {
	h.bool(c.HasShort())
	h.inlines(c.Short)
	h.blocks(c.Long)
}

func (h *hasher) rows(rs []Row) {
	h.int(len(rs))
	for _, r := range rs {
		h.attr(r.Attr)
		h.int(len(r.Cells))
		for _, c := range r.Cells {
			h.attr(c.Attr)
			h.int(int(c.Align))
			h.int(c.RowSpan)
			h.int(c.ColSpan)
			h.blocks(c.Content)
		}
	}
}

func (h *hasher) table(t *Table) {
	h.attr(t.Attr)
	h.caption(t.Caption)
	h.int(len(t.ColSpecs))
	for _, cs := range t.ColSpecs {
		h.int(int(cs.Align))
		h.bool(cs.Width.Specified)
		if cs.Width.Specified {
			h.int(int(math.Float64bits(cs.Width.Fraction)))
		}
	}
	h.attr(t.Head.Attr)
	h.rows(t.Head.Rows)
	h.int(len(t.Bodies))
	for _, b := range t.Bodies {
		h.attr(b.Attr)
		h.int(b.RowHeadColumns)
		h.rows(b.Head)
		h.rows(b.Body)
	}
	h.attr(t.Foot.Attr)
	h.rows(t.Foot.Rows)
}

func (h *hasher) inline(in Inline) {
	h.int(int(in.Kind()))
	switch x := in.(type) {
	case *Str:
		h.str(x.Text)
	case *Emph:
		h.inlines(x.Inlines)
	case *Underline:
		h.inlines(x.Inlines)
	case *Strong:
		h.inlines(x.Inlines)
	case *Strikeout:
		h.inlines(x.Inlines)
	case *Superscript:
		h.inlines(x.Inlines)
	case *Subscript:
		h.inlines(x.Inlines)
	case *SmallCaps:
		h.inlines(x.Inlines)
	case *Quoted:
		h.int(int(x.Type))
		h.inlines(x.Inlines)
	case *Cite:
		h.int(len(x.Citations))
		for _, c := range x.Citations {
			h.str(c.ID)
			h.inlines(c.Prefix)
			h.inlines(c.Suffix)
			h.int(int(c.Mode))
			h.int(c.NoteNum)
			h.int(c.Hash)
		}
		h.inlines(x.Inlines)
	case *Code:
		h.attr(x.Attr)
		h.str(x.Text)
	case *Math:
		h.int(int(x.Type))
		h.str(x.Text)
	case *RawInline:
		h.str(string(x.Format))
		h.str(x.Text)
	case *Link:
		h.attr(x.Attr)
		h.inlines(x.Inlines)
		h.str(x.Target.URL)
		h.str(x.Target.Title)
	case *Image:
		h.attr(x.Attr)
		h.inlines(x.Inlines)
		h.str(x.Target.URL)
		h.str(x.Target.Title)
	case *Note:
		h.blocks(x.Blocks)
	case *Span:
		h.attr(x.Attr)
		h.inlines(x.Inlines)
	}
}
