package encode

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/debug"
	"github.com/signadot/go-pandoc/format"
)

type EncState struct {
	indent int
	format format.Format
	Color  func(ColorAttr, string) string

	em  emitter
	err error
}

// Encode writes doc to w. By default the output is compact JSON identical
// to what pandoc writes for the same document, always carrying
// ast.APIVersion. Nothing is written if encoding fails.
func Encode(doc *ast.Document, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(doc, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Marshal returns the encoding of doc.
func Marshal(doc *ast.Document, opts ...EncodeOption) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document", ErrNilNode)
	}
	es := newState(opts)
	es.document(doc)
	return es.finish("document")
}

// MarshalBlock returns the encoding of a single block, without the
// document envelope.
func MarshalBlock(b ast.Block, opts ...EncodeOption) ([]byte, error) {
	es := newState(opts)
	es.block(b)
	return es.finish("block")
}

// MarshalInline returns the encoding of a single inline, without the
// document envelope.
func MarshalInline(in ast.Inline, opts ...EncodeOption) ([]byte, error) {
	es := newState(opts)
	es.inline(in)
	return es.finish("inline")
}

// MarshalMetaValue returns the encoding of a single metadata value.
func MarshalMetaValue(v ast.MetaValue, opts ...EncodeOption) ([]byte, error) {
	es := newState(opts)
	es.metaValue(v)
	return es.finish("meta value")
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if es.format.IsJSON() {
		es.em.indent = es.indent
		es.em.color = es.Color
	}
	return es
}

func (es *EncState) finish(what string) ([]byte, error) {
	if es.err != nil {
		if debug.Encode() {
			debug.Logf("encoding %s failed: %v", what, es.err)
		}
		return nil, es.err
	}
	d := es.em.buf.Bytes()
	if debug.Encode() {
		debug.Log("encoded", "what", what, "bytes", len(d), "format", es.format.String())
	}
	switch es.format {
	case format.JSONFormat:
		return d, nil
	case format.YAMLFormat:
		y, err := yaml.JSONToYAML(d)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
		}
		return y, nil
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
	}
}

func (es *EncState) fail(err error) {
	if es.err == nil {
		es.err = err
	}
}

func (es *EncState) document(doc *ast.Document) {
	em := &es.em
	em.beginObject()
	em.key(ast.VersionKey)
	em.beginArray()
	for _, v := range ast.APIVersion {
		em.int(v)
	}
	em.endArray()
	em.key(ast.MetaKey)
	es.meta(doc.Meta)
	em.key(ast.BlocksKey)
	es.blocks(doc.Blocks)
	em.endObject()
}

func (es *EncState) meta(m ast.Meta) {
	em := &es.em
	em.beginObject()
	for _, k := range m.Keys() {
		em.key(k)
		es.metaValue(m[k])
	}
	em.endObject()
}

// tagged opens a tagged union object and, if withContents, its contents
// key. The caller closes the object with es.em.endObject.
func (es *EncState) tagged(tag string, withContents bool) {
	em := &es.em
	em.beginObject()
	em.key(ast.TagKey)
	em.tag(tag)
	if withContents {
		em.key(ast.ContentsKey)
	}
}

// enum writes a zero-payload tagged object for a closed enum value.
func (es *EncState) enum(v interface{ MarshalText() ([]byte, error) }) {
	d, err := v.MarshalText()
	if err != nil {
		es.fail(fmt.Errorf("%w: %w", ErrEncoding, err))
		return
	}
	es.tagged(string(d), false)
	es.em.endObject()
}

func (es *EncState) metaValue(v ast.MetaValue) {
	if v == nil {
		es.fail(fmt.Errorf("%w: meta value", ErrNilNode))
		return
	}
	em := &es.em
	es.tagged(v.Kind().String(), true)
	switch x := v.(type) {
	case *ast.MetaMap:
		es.meta(x.Map)
	case *ast.MetaList:
		em.beginArray()
		for _, it := range x.Items {
			es.metaValue(it)
		}
		em.endArray()
	case *ast.MetaBool:
		em.bool(x.Value)
	case *ast.MetaString:
		em.str(x.Text)
	case *ast.MetaInlines:
		es.inlines(x.Inlines)
	case *ast.MetaBlocks:
		es.blocks(x.Blocks)
	}
	em.endObject()
}

func (es *EncState) blocks(bs []ast.Block) {
	es.em.beginArray()
	for _, b := range bs {
		es.block(b)
	}
	es.em.endArray()
}

func (es *EncState) items(items [][]ast.Block) {
	es.em.beginArray()
	for _, it := range items {
		es.blocks(it)
	}
	es.em.endArray()
}

func (es *EncState) inlines(is []ast.Inline) {
	es.em.beginArray()
	for _, in := range is {
		es.inline(in)
	}
	es.em.endArray()
}

func (es *EncState) attr(a ast.Attr) {
	em := &es.em
	em.beginArray()
	em.str(a.ID)
	em.beginArray()
	for _, c := range a.Classes {
		em.str(c)
	}
	em.endArray()
	em.beginArray()
	for _, kv := range a.Attributes {
		em.beginArray()
		em.str(kv.Key)
		em.str(kv.Value)
		em.endArray()
	}
	em.endArray()
	em.endArray()
}

func (es *EncState) target(t ast.Target) {
	em := &es.em
	em.beginArray()
	em.str(t.URL)
	em.str(t.Title)
	em.endArray()
}

func (es *EncState) block(b ast.Block) {
	if b == nil {
		es.fail(fmt.Errorf("%w: block", ErrNilNode))
		return
	}
	em := &es.em
	switch b.(type) {
	case *ast.HorizontalRule, *ast.Null:
		es.tagged(b.Kind().String(), false)
		em.endObject()
		return
	}
	es.tagged(b.Kind().String(), true)
	switch x := b.(type) {
	case *ast.Plain:
		es.inlines(x.Inlines)
	case *ast.Para:
		es.inlines(x.Inlines)
	case *ast.LineBlock:
		em.beginArray()
		for _, ln := range x.Lines {
			es.inlines(ln)
		}
		em.endArray()
	case *ast.CodeBlock:
		em.beginArray()
		es.attr(x.Attr)
		em.str(x.Text)
		em.endArray()
	case *ast.RawBlock:
		em.beginArray()
		em.str(string(x.Format))
		em.str(x.Text)
		em.endArray()
	case *ast.BlockQuote:
		es.blocks(x.Blocks)
	case *ast.OrderedList:
		em.beginArray()
		es.listAttributes(x.Attrs)
		es.items(x.Items)
		em.endArray()
	case *ast.BulletList:
		es.items(x.Items)
	case *ast.DefinitionList:
		em.beginArray()
		for _, it := range x.Items {
			em.beginArray()
			es.inlines(it.Term)
			es.items(it.Definitions)
			em.endArray()
		}
		em.endArray()
	case *ast.Header:
		em.beginArray()
		em.int(x.Level)
		es.attr(x.Attr)
		es.inlines(x.Inlines)
		em.endArray()
	case *ast.Table:
		es.table(x)
	case *ast.Figure:
		em.beginArray()
		es.attr(x.Attr)
		es.caption(x.Caption)
		es.blocks(x.Blocks)
		em.endArray()
	case *ast.Div:
		em.beginArray()
		es.attr(x.Attr)
		es.blocks(x.Blocks)
		em.endArray()
	}
	em.endObject()
}

func (es *EncState) listAttributes(la ast.ListAttributes) {
	em := &es.em
	em.beginArray()
	em.int(la.Start)
	es.enum(la.Style)
	es.enum(la.Delim)
	em.endArray()
}

func (es *EncState) caption(c ast.Caption) {
	em := &es.em
	em.beginArray()
	if c.HasShort() {
		es.inlines(c.Short)
	} else {
		em.null()
	}
	es.blocks(c.Long)
	em.endArray()
}

func (es *EncState) colSpec(cs ast.ColSpec) {
	em := &es.em
	em.beginArray()
	es.enum(cs.Align)
	if cs.Width.Specified {
		es.tagged(ast.ColWidthTag, true)
		em.double(cs.Width.Fraction)
	} else {
		es.tagged(ast.ColWidthDefaultTag, false)
	}
	em.endObject()
	em.endArray()
}

func (es *EncState) rows(rs []ast.Row) {
	em := &es.em
	em.beginArray()
	for i := range rs {
		r := &rs[i]
		em.beginArray()
		es.attr(r.Attr)
		em.beginArray()
		for j := range r.Cells {
			es.cell(&r.Cells[j])
		}
		em.endArray()
		em.endArray()
	}
	em.endArray()
}

func (es *EncState) cell(c *ast.Cell) {
	em := &es.em
	em.beginArray()
	es.attr(c.Attr)
	es.enum(c.Align)
	em.int(c.RowSpan)
	em.int(c.ColSpan)
	es.blocks(c.Content)
	em.endArray()
}

func (es *EncState) table(t *ast.Table) {
	em := &es.em
	em.beginArray()
	es.attr(t.Attr)
	es.caption(t.Caption)
	em.beginArray()
	for _, cs := range t.ColSpecs {
		es.colSpec(cs)
	}
	em.endArray()

	em.beginArray()
	es.attr(t.Head.Attr)
	es.rows(t.Head.Rows)
	em.endArray()

	em.beginArray()
	for i := range t.Bodies {
		b := &t.Bodies[i]
		em.beginArray()
		es.attr(b.Attr)
		em.int(b.RowHeadColumns)
		es.rows(b.Head)
		es.rows(b.Body)
		em.endArray()
	}
	em.endArray()

	em.beginArray()
	es.attr(t.Foot.Attr)
	es.rows(t.Foot.Rows)
	em.endArray()
	em.endArray()
}

func (es *EncState) citation(c *ast.Citation) {
	em := &es.em
	em.beginObject()
	for _, f := range ast.CitationFields() {
		em.key(f.Key())
		switch f {
		case ast.CitationIDField:
			em.str(c.ID)
		case ast.CitationPrefixField:
			es.inlines(c.Prefix)
		case ast.CitationSuffixField:
			es.inlines(c.Suffix)
		case ast.CitationModeField:
			es.enum(c.Mode)
		case ast.CitationNoteNumField:
			em.int(c.NoteNum)
		case ast.CitationHashField:
			em.int(c.Hash)
		}
	}
	em.endObject()
}

func (es *EncState) inline(in ast.Inline) {
	if in == nil {
		es.fail(fmt.Errorf("%w: inline", ErrNilNode))
		return
	}
	em := &es.em
	switch in.(type) {
	case *ast.Space, *ast.SoftBreak, *ast.LineBreak:
		es.tagged(in.Kind().String(), false)
		em.endObject()
		return
	}
	es.tagged(in.Kind().String(), true)
	switch x := in.(type) {
	case *ast.Str:
		em.str(x.Text)
	case *ast.Emph:
		es.inlines(x.Inlines)
	case *ast.Underline:
		es.inlines(x.Inlines)
	case *ast.Strong:
		es.inlines(x.Inlines)
	case *ast.Strikeout:
		es.inlines(x.Inlines)
	case *ast.Superscript:
		es.inlines(x.Inlines)
	case *ast.Subscript:
		es.inlines(x.Inlines)
	case *ast.SmallCaps:
		es.inlines(x.Inlines)
	case *ast.Quoted:
		em.beginArray()
		es.enum(x.Type)
		es.inlines(x.Inlines)
		em.endArray()
	case *ast.Cite:
		em.beginArray()
		em.beginArray()
		for i := range x.Citations {
			es.citation(&x.Citations[i])
		}
		em.endArray()
		es.inlines(x.Inlines)
		em.endArray()
	case *ast.Code:
		em.beginArray()
		es.attr(x.Attr)
		em.str(x.Text)
		em.endArray()
	case *ast.Math:
		em.beginArray()
		es.enum(x.Type)
		em.str(x.Text)
		em.endArray()
	case *ast.RawInline:
		em.beginArray()
		em.str(string(x.Format))
		em.str(x.Text)
		em.endArray()
	case *ast.Link:
		em.beginArray()
		es.attr(x.Attr)
		es.inlines(x.Inlines)
		es.target(x.Target)
		em.endArray()
	case *ast.Image:
		em.beginArray()
		es.attr(x.Attr)
		es.inlines(x.Inlines)
		es.target(x.Target)
		em.endArray()
	case *ast.Note:
		es.blocks(x.Blocks)
	case *ast.Span:
		em.beginArray()
		es.attr(x.Attr)
		es.inlines(x.Inlines)
		em.endArray()
	}
	em.endObject()
}
