package parse

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/debug"
	"github.com/signadot/go-pandoc/format"
)

// Parse decodes a pandoc JSON document. The document's pandoc-api-version
// must start with the major and minor components of ast.APIVersion.
func Parse(d []byte, opts ...ParseOption) (*ast.Document, error) {
	v, err := decode(d, opts)
	if err != nil {
		return nil, err
	}
	doc, err := document(v)
	if err != nil {
		if debug.Parse() {
			debug.Logf("parse failed: %v", err)
		}
		return nil, err
	}
	if debug.Parse() {
		debug.Log("parsed document", "meta", len(doc.Meta), "blocks", len(doc.Blocks))
	}
	return doc, nil
}

// ParseReader is Parse reading its input from r.
func ParseReader(r io.Reader, opts ...ParseOption) (*ast.Document, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(d, opts...)
}

// ParseBlock decodes a single block object.
func ParseBlock(d []byte, opts ...ParseOption) (ast.Block, error) {
	v, err := decode(d, opts)
	if err != nil {
		return nil, err
	}
	b, err := block(v, nil)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed block %v", b)
	}
	return b, nil
}

// ParseInline decodes a single inline object.
func ParseInline(d []byte, opts ...ParseOption) (ast.Inline, error) {
	v, err := decode(d, opts)
	if err != nil {
		return nil, err
	}
	in, err := inline(v, nil)
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parsed inline %v", in)
	}
	return in, nil
}

// ParseMetaValue decodes a single metadata value.
func ParseMetaValue(d []byte, opts ...ParseOption) (ast.MetaValue, error) {
	v, err := decode(d, opts)
	if err != nil {
		return nil, err
	}
	return metaValue(v, nil)
}

// decode reads d into generic JSON values, numbers kept as json.Number.
func decode(d []byte, opts []ParseOption) (any, error) {
	po := &parseOpts{}
	for _, opt := range opts {
		opt(po)
	}
	switch po.format {
	case format.JSONFormat:
	case format.YAMLFormat:
		j, err := yaml.YAMLToJSON(d)
		if err != nil {
			return nil, &Error{Kind: ShapeError, Msg: "invalid yaml", Err: err}
		}
		d = j
	default:
		return nil, fmt.Errorf("%w: %s", format.ErrBadFormat, po.format)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &Error{Kind: ShapeError, Msg: "invalid json", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &Error{Kind: ShapeError, Msg: "trailing data after json value"}
	}
	return v, nil
}

func shapeErr(p *path, msg string, args ...any) error {
	return &Error{Kind: ShapeError, Path: p.String(), Msg: fmt.Sprintf(msg, args...)}
}

func tagErr(p *path, msg string, args ...any) error {
	return &Error{Kind: TagError, Path: p.String(), Msg: fmt.Sprintf(msg, args...)}
}

func jsonType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func object(v any, p *path) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, shapeErr(p, "expected object, found %s", jsonType(v))
	}
	return m, nil
}

func array(v any, p *path) ([]any, error) {
	a, ok := v.([]any)
	if !ok {
		return nil, shapeErr(p, "expected array, found %s", jsonType(v))
	}
	return a, nil
}

// tuple checks that v is an array of exactly n elements.
func tuple(v any, p *path, n int) ([]any, error) {
	a, err := array(v, p)
	if err != nil {
		return nil, err
	}
	if len(a) != n {
		return nil, shapeErr(p, "expected array of %d elements, found %d", n, len(a))
	}
	return a, nil
}

func field(m map[string]any, k string, p *path) (any, error) {
	v, ok := m[k]
	if !ok {
		return nil, shapeErr(p, "missing key %q", k)
	}
	return v, nil
}

func str(v any, p *path) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", shapeErr(p, "expected string, found %s", jsonType(v))
	}
	return s, nil
}

func boolean(v any, p *path) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, shapeErr(p, "expected boolean, found %s", jsonType(v))
	}
	return b, nil
}

func integer(v any, p *path) (int, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, shapeErr(p, "expected integer, found %s", jsonType(v))
	}
	i, err := strconv.ParseInt(n.String(), 10, 0)
	if err != nil {
		return 0, shapeErr(p, "expected integer, found %s", n)
	}
	return int(i), nil
}

func double(v any, p *path) (float64, error) {
	n, ok := v.(json.Number)
	if !ok {
		return 0, shapeErr(p, "expected number, found %s", jsonType(v))
	}
	f, err := n.Float64()
	if err != nil {
		return 0, shapeErr(p, "expected number, found %s", n)
	}
	return f, nil
}

// tagged splits a tagged union object into its tag and contents. has
// reports whether the contents key was present.
func tagged(v any, p *path) (tag string, c any, has bool, err error) {
	m, err := object(v, p)
	if err != nil {
		return "", nil, false, err
	}
	t, err := field(m, ast.TagKey, p)
	if err != nil {
		return "", nil, false, err
	}
	tag, err = str(t, p.key(ast.TagKey))
	if err != nil {
		return "", nil, false, err
	}
	c, has = m[ast.ContentsKey]
	return tag, c, has, nil
}

// contents checks the payload arity of a tagged value: n == 0 means no
// contents, n == 1 a bare payload, n > 1 an array of n payloads.
func contents(tag string, c any, has bool, p *path, n int) ([]any, error) {
	switch {
	case n == 0:
		if has {
			return nil, tagErr(p, "%s takes no contents", tag)
		}
		return nil, nil
	case !has:
		return nil, tagErr(p, "%s expects contents", tag)
	case n == 1:
		return []any{c}, nil
	}
	a, ok := c.([]any)
	if !ok || len(a) != n {
		return nil, tagErr(p.key(ast.ContentsKey), "%s expects %d fields", tag, n)
	}
	return a, nil
}

// enum decodes a zero-payload tagged object into dst.
func enum(v any, p *path, dst interface{ UnmarshalText([]byte) error }) error {
	tag, _, has, err := tagged(v, p)
	if err != nil {
		return err
	}
	if err := dst.UnmarshalText([]byte(tag)); err != nil {
		return tagErr(p, "%v", err)
	}
	if has {
		return tagErr(p, "%s takes no contents", tag)
	}
	return nil
}

func document(v any) (*ast.Document, error) {
	var root *path
	m, err := object(v, root)
	if err != nil {
		return nil, err
	}
	vv, err := field(m, ast.VersionKey, root)
	if err != nil {
		return nil, err
	}
	if err := version(vv, root.key(ast.VersionKey)); err != nil {
		return nil, err
	}
	mv, err := field(m, ast.MetaKey, root)
	if err != nil {
		return nil, err
	}
	meta, err := metaMap(mv, root.key(ast.MetaKey))
	if err != nil {
		return nil, err
	}
	bv, err := field(m, ast.BlocksKey, root)
	if err != nil {
		return nil, err
	}
	bs, err := blocks(bv, root.key(ast.BlocksKey))
	if err != nil {
		return nil, err
	}
	return &ast.Document{Meta: meta, Blocks: bs}, nil
}

func version(v any, p *path) error {
	a, err := array(v, p)
	if err != nil {
		return err
	}
	vs := make([]int, len(a))
	for i, x := range a {
		n, err := integer(x, p.at(i))
		if err != nil {
			return err
		}
		vs[i] = n
	}
	major, minor := ast.APIVersionMajorMinor()
	if len(vs) < 2 || vs[0] != major || vs[1] != minor {
		return &Error{
			Kind: VersionError,
			Path: p.String(),
			Msg:  fmt.Sprintf("expected pandoc-api-version to start with %d,%d, found %v", major, minor, vs),
		}
	}
	return nil
}

func metaMap(v any, p *path) (ast.Meta, error) {
	m, err := object(v, p)
	if err != nil {
		return nil, err
	}
	res := make(ast.Meta, len(m))
	for k, x := range m {
		mv, err := metaValue(x, p.key(k))
		if err != nil {
			return nil, err
		}
		res[k] = mv
	}
	return res, nil
}

func metaValue(v any, p *path) (ast.MetaValue, error) {
	tag, c, has, err := tagged(v, p)
	if err != nil {
		return nil, err
	}
	kind, ok := ast.ParseMetaKind(tag)
	if !ok {
		return nil, tagErr(p, "unknown meta value tag %q", tag)
	}
	if !has {
		return nil, tagErr(p, "%s expects contents", tag)
	}
	cp := p.key(ast.ContentsKey)
	switch kind {
	case ast.MetaMapKind:
		m, err := metaMap(c, cp)
		if err != nil {
			return nil, err
		}
		return &ast.MetaMap{Map: m}, nil
	case ast.MetaListKind:
		a, err := array(c, cp)
		if err != nil {
			return nil, err
		}
		items := make([]ast.MetaValue, len(a))
		for i, x := range a {
			if items[i], err = metaValue(x, cp.at(i)); err != nil {
				return nil, err
			}
		}
		return &ast.MetaList{Items: items}, nil
	case ast.MetaBoolKind:
		b, err := boolean(c, cp)
		if err != nil {
			return nil, err
		}
		return &ast.MetaBool{Value: b}, nil
	case ast.MetaStringKind:
		s, err := str(c, cp)
		if err != nil {
			return nil, err
		}
		return &ast.MetaString{Text: s}, nil
	case ast.MetaInlinesKind:
		is, err := inlines(c, cp)
		if err != nil {
			return nil, err
		}
		return &ast.MetaInlines{Inlines: is}, nil
	default:
		bs, err := blocks(c, cp)
		if err != nil {
			return nil, err
		}
		return &ast.MetaBlocks{Blocks: bs}, nil
	}
}

func blocks(v any, p *path) ([]ast.Block, error) {
	a, err := array(v, p)
	if err != nil {
		return nil, err
	}
	res := make([]ast.Block, len(a))
	for i, x := range a {
		if res[i], err = block(x, p.at(i)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func items(v any, p *path) ([][]ast.Block, error) {
	a, err := array(v, p)
	if err != nil {
		return nil, err
	}
	res := make([][]ast.Block, len(a))
	for i, x := range a {
		if res[i], err = blocks(x, p.at(i)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func inlines(v any, p *path) ([]ast.Inline, error) {
	a, err := array(v, p)
	if err != nil {
		return nil, err
	}
	res := make([]ast.Inline, len(a))
	for i, x := range a {
		if res[i], err = inline(x, p.at(i)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func attr(v any, p *path) (ast.Attr, error) {
	a, err := tuple(v, p, 3)
	if err != nil {
		return ast.Attr{}, err
	}
	res := ast.Attr{}
	if res.ID, err = str(a[0], p.at(0)); err != nil {
		return ast.Attr{}, err
	}
	cs, err := array(a[1], p.at(1))
	if err != nil {
		return ast.Attr{}, err
	}
	for i, c := range cs {
		s, err := str(c, p.at(1).at(i))
		if err != nil {
			return ast.Attr{}, err
		}
		res.Classes = append(res.Classes, s)
	}
	kvs, err := array(a[2], p.at(2))
	if err != nil {
		return ast.Attr{}, err
	}
	for i, x := range kvs {
		kp := p.at(2).at(i)
		kv, err := tuple(x, kp, 2)
		if err != nil {
			return ast.Attr{}, err
		}
		k, err := str(kv[0], kp.at(0))
		if err != nil {
			return ast.Attr{}, err
		}
		val, err := str(kv[1], kp.at(1))
		if err != nil {
			return ast.Attr{}, err
		}
		res.Attributes = append(res.Attributes, ast.KeyValue{Key: k, Value: val})
	}
	return res, nil
}

func target(v any, p *path) (ast.Target, error) {
	a, err := tuple(v, p, 2)
	if err != nil {
		return ast.Target{}, err
	}
	u, err := str(a[0], p.at(0))
	if err != nil {
		return ast.Target{}, err
	}
	t, err := str(a[1], p.at(1))
	if err != nil {
		return ast.Target{}, err
	}
	return ast.Target{URL: u, Title: t}, nil
}

// attrText decodes the common [attr, text] payload.
func attrText(fs []any, p *path) (ast.Attr, string, error) {
	a, err := attr(fs[0], p.at(0))
	if err != nil {
		return ast.Attr{}, "", err
	}
	s, err := str(fs[1], p.at(1))
	if err != nil {
		return ast.Attr{}, "", err
	}
	return a, s, nil
}

// attrInlines decodes the common [attr, [inline]] payload.
func attrInlines(fs []any, p *path) (ast.Attr, []ast.Inline, error) {
	a, err := attr(fs[0], p.at(0))
	if err != nil {
		return ast.Attr{}, nil, err
	}
	is, err := inlines(fs[1], p.at(1))
	if err != nil {
		return ast.Attr{}, nil, err
	}
	return a, is, nil
}

// attrBlocks decodes the common [attr, [block]] payload.
func attrBlocks(fs []any, p *path) (ast.Attr, []ast.Block, error) {
	a, err := attr(fs[0], p.at(0))
	if err != nil {
		return ast.Attr{}, nil, err
	}
	bs, err := blocks(fs[1], p.at(1))
	if err != nil {
		return ast.Attr{}, nil, err
	}
	return a, bs, nil
}

func formatText(fs []any, p *path) (ast.Format, string, error) {
	f, err := str(fs[0], p.at(0))
	if err != nil {
		return "", "", err
	}
	s, err := str(fs[1], p.at(1))
	if err != nil {
		return "", "", err
	}
	return ast.Format(f), s, nil
}

var blockArity = [...]int{
	ast.PlainKind:          1,
	ast.ParaKind:           1,
	ast.LineBlockKind:      1,
	ast.CodeBlockKind:      2,
	ast.RawBlockKind:       2,
	ast.BlockQuoteKind:     1,
	ast.OrderedListKind:    2,
	ast.BulletListKind:     1,
	ast.DefinitionListKind: 1,
	ast.HeaderKind:         3,
	ast.HorizontalRuleKind: 0,
	ast.TableKind:          6,
	ast.FigureKind:         3,
	ast.DivKind:            2,
	ast.NullKind:           0,
}

func block(v any, p *path) (ast.Block, error) {
	tag, c, has, err := tagged(v, p)
	if err != nil {
		return nil, err
	}
	kind, ok := ast.ParseBlockKind(tag)
	if !ok {
		return nil, tagErr(p, "unknown block tag %q", tag)
	}
	fs, err := contents(tag, c, has, p, blockArity[kind])
	if err != nil {
		return nil, err
	}
	cp := p.key(ast.ContentsKey)
	switch kind {
	case ast.PlainKind, ast.ParaKind:
		is, err := inlines(fs[0], cp)
		if err != nil {
			return nil, err
		}
		if kind == ast.PlainKind {
			return &ast.Plain{Inlines: is}, nil
		}
		return &ast.Para{Inlines: is}, nil
	case ast.LineBlockKind:
		a, err := array(fs[0], cp)
		if err != nil {
			return nil, err
		}
		lines := make([][]ast.Inline, len(a))
		for i, x := range a {
			if lines[i], err = inlines(x, cp.at(i)); err != nil {
				return nil, err
			}
		}
		return &ast.LineBlock{Lines: lines}, nil
	case ast.CodeBlockKind:
		a, s, err := attrText(fs, cp)
		if err != nil {
			return nil, err
		}
		return &ast.CodeBlock{Attr: a, Text: s}, nil
	case ast.RawBlockKind:
		f, s, err := formatText(fs, cp)
		if err != nil {
			return nil, err
		}
		return &ast.RawBlock{Format: f, Text: s}, nil
	case ast.BlockQuoteKind:
		bs, err := blocks(fs[0], cp)
		if err != nil {
			return nil, err
		}
		return &ast.BlockQuote{Blocks: bs}, nil
	case ast.OrderedListKind:
		la, err := listAttributes(fs[0], cp.at(0))
		if err != nil {
			return nil, err
		}
		its, err := items(fs[1], cp.at(1))
		if err != nil {
			return nil, err
		}
		return &ast.OrderedList{Attrs: la, Items: its}, nil
	case ast.BulletListKind:
		its, err := items(fs[0], cp)
		if err != nil {
			return nil, err
		}
		return &ast.BulletList{Items: its}, nil
	case ast.DefinitionListKind:
		return definitionList(fs[0], cp)
	case ast.HeaderKind:
		lvl, err := integer(fs[0], cp.at(0))
		if err != nil {
			return nil, err
		}
		a, err := attr(fs[1], cp.at(1))
		if err != nil {
			return nil, err
		}
		is, err := inlines(fs[2], cp.at(2))
		if err != nil {
			return nil, err
		}
		return &ast.Header{Level: lvl, Attr: a, Inlines: is}, nil
	case ast.HorizontalRuleKind:
		return &ast.HorizontalRule{}, nil
	case ast.TableKind:
		return table(fs, cp)
	case ast.FigureKind:
		a, err := attr(fs[0], cp.at(0))
		if err != nil {
			return nil, err
		}
		capt, err := caption(fs[1], cp.at(1))
		if err != nil {
			return nil, err
		}
		bs, err := blocks(fs[2], cp.at(2))
		if err != nil {
			return nil, err
		}
		return &ast.Figure{Attr: a, Caption: capt, Blocks: bs}, nil
	case ast.DivKind:
		a, bs, err := attrBlocks(fs, cp)
		if err != nil {
			return nil, err
		}
		return &ast.Div{Attr: a, Blocks: bs}, nil
	default:
		return &ast.Null{}, nil
	}
}

func definitionList(v any, p *path) (*ast.DefinitionList, error) {
	a, err := array(v, p)
	if err != nil {
		return nil, err
	}
	res := &ast.DefinitionList{Items: make([]ast.DefinitionItem, len(a))}
	for i, x := range a {
		ip := p.at(i)
		pair, err := tuple(x, ip, 2)
		if err != nil {
			return nil, err
		}
		term, err := inlines(pair[0], ip.at(0))
		if err != nil {
			return nil, err
		}
		defs, err := items(pair[1], ip.at(1))
		if err != nil {
			return nil, err
		}
		res.Items[i] = ast.DefinitionItem{Term: term, Definitions: defs}
	}
	return res, nil
}

func listAttributes(v any, p *path) (ast.ListAttributes, error) {
	a, err := tuple(v, p, 3)
	if err != nil {
		return ast.ListAttributes{}, err
	}
	res := ast.ListAttributes{}
	if res.Start, err = integer(a[0], p.at(0)); err != nil {
		return ast.ListAttributes{}, err
	}
	if err := enum(a[1], p.at(1), &res.Style); err != nil {
		return ast.ListAttributes{}, err
	}
	if err := enum(a[2], p.at(2), &res.Delim); err != nil {
		return ast.ListAttributes{}, err
	}
	return res, nil
}

func caption(v any, p *path) (ast.Caption, error) {
	a, err := tuple(v, p, 2)
	if err != nil {
		return ast.Caption{}, err
	}
	res := ast.Caption{}
	if a[0] != nil {
		if res.Short, err = inlines(a[0], p.at(0)); err != nil {
			return ast.Caption{}, err
		}
	}
	if res.Long, err = blocks(a[1], p.at(1)); err != nil {
		return ast.Caption{}, err
	}
	return res, nil
}

func colSpec(v any, p *path) (ast.ColSpec, error) {
	a, err := tuple(v, p, 2)
	if err != nil {
		return ast.ColSpec{}, err
	}
	res := ast.ColSpec{}
	if err := enum(a[0], p.at(0), &res.Align); err != nil {
		return ast.ColSpec{}, err
	}
	wp := p.at(1)
	tag, c, has, err := tagged(a[1], wp)
	if err != nil {
		return ast.ColSpec{}, err
	}
	switch tag {
	case ast.ColWidthDefaultTag:
		if _, err := contents(tag, c, has, wp, 0); err != nil {
			return ast.ColSpec{}, err
		}
	case ast.ColWidthTag:
		if _, err := contents(tag, c, has, wp, 1); err != nil {
			return ast.ColSpec{}, err
		}
		f, err := double(c, wp.key(ast.ContentsKey))
		if err != nil {
			return ast.ColSpec{}, err
		}
		res.Width = ast.Width(f)
	default:
		return ast.ColSpec{}, tagErr(wp, "unknown column width tag %q", tag)
	}
	return res, nil
}

func rows(v any, p *path) ([]ast.Row, error) {
	a, err := array(v, p)
	if err != nil {
		return nil, err
	}
	res := make([]ast.Row, len(a))
	for i, x := range a {
		rp := p.at(i)
		r, err := tuple(x, rp, 2)
		if err != nil {
			return nil, err
		}
		if res[i].Attr, err = attr(r[0], rp.at(0)); err != nil {
			return nil, err
		}
		cs, err := array(r[1], rp.at(1))
		if err != nil {
			return nil, err
		}
		res[i].Cells = make([]ast.Cell, len(cs))
		for j, cv := range cs {
			if res[i].Cells[j], err = cell(cv, rp.at(1).at(j)); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

func cell(v any, p *path) (ast.Cell, error) {
	a, err := tuple(v, p, 5)
	if err != nil {
		return ast.Cell{}, err
	}
	res := ast.Cell{}
	if res.Attr, err = attr(a[0], p.at(0)); err != nil {
		return ast.Cell{}, err
	}
	if err := enum(a[1], p.at(1), &res.Align); err != nil {
		return ast.Cell{}, err
	}
	if res.RowSpan, err = integer(a[2], p.at(2)); err != nil {
		return ast.Cell{}, err
	}
	if res.ColSpan, err = integer(a[3], p.at(3)); err != nil {
		return ast.Cell{}, err
	}
	if res.Content, err = blocks(a[4], p.at(4)); err != nil {
		return ast.Cell{}, err
	}
	return res, nil
}

// table decodes the six Table fields: attr, caption, colspecs, head,
// bodies and foot.
func table(fs []any, p *path) (*ast.Table, error) {
	t := &ast.Table{}
	var err error
	if t.Attr, err = attr(fs[0], p.at(0)); err != nil {
		return nil, err
	}
	if t.Caption, err = caption(fs[1], p.at(1)); err != nil {
		return nil, err
	}
	css, err := array(fs[2], p.at(2))
	if err != nil {
		return nil, err
	}
	t.ColSpecs = make([]ast.ColSpec, len(css))
	for i, x := range css {
		if t.ColSpecs[i], err = colSpec(x, p.at(2).at(i)); err != nil {
			return nil, err
		}
	}

	hp := p.at(3)
	head, err := tuple(fs[3], hp, 2)
	if err != nil {
		return nil, err
	}
	if t.Head.Attr, err = attr(head[0], hp.at(0)); err != nil {
		return nil, err
	}
	if t.Head.Rows, err = rows(head[1], hp.at(1)); err != nil {
		return nil, err
	}

	bodies, err := array(fs[4], p.at(4))
	if err != nil {
		return nil, err
	}
	t.Bodies = make([]ast.TableBody, len(bodies))
	for i, x := range bodies {
		bp := p.at(4).at(i)
		b, err := tuple(x, bp, 4)
		if err != nil {
			return nil, err
		}
		tb := &t.Bodies[i]
		if tb.Attr, err = attr(b[0], bp.at(0)); err != nil {
			return nil, err
		}
		if tb.RowHeadColumns, err = integer(b[1], bp.at(1)); err != nil {
			return nil, err
		}
		if tb.Head, err = rows(b[2], bp.at(2)); err != nil {
			return nil, err
		}
		if tb.Body, err = rows(b[3], bp.at(3)); err != nil {
			return nil, err
		}
	}

	fp := p.at(5)
	foot, err := tuple(fs[5], fp, 2)
	if err != nil {
		return nil, err
	}
	if t.Foot.Attr, err = attr(foot[0], fp.at(0)); err != nil {
		return nil, err
	}
	if t.Foot.Rows, err = rows(foot[1], fp.at(1)); err != nil {
		return nil, err
	}
	return t, nil
}

func citation(v any, p *path) (ast.Citation, error) {
	m, err := object(v, p)
	if err != nil {
		return ast.Citation{}, err
	}
	res := ast.Citation{}
	for _, f := range ast.CitationFields() {
		x, err := field(m, f.Key(), p)
		if err != nil {
			return ast.Citation{}, err
		}
		fp := p.key(f.Key())
		switch f {
		case ast.CitationIDField:
			res.ID, err = str(x, fp)
		case ast.CitationPrefixField:
			res.Prefix, err = inlines(x, fp)
		case ast.CitationSuffixField:
			res.Suffix, err = inlines(x, fp)
		case ast.CitationModeField:
			err = enum(x, fp, &res.Mode)
		case ast.CitationNoteNumField:
			res.NoteNum, err = integer(x, fp)
		case ast.CitationHashField:
			res.Hash, err = integer(x, fp)
		}
		if err != nil {
			return ast.Citation{}, err
		}
	}
	return res, nil
}

var inlineArity = [...]int{
	ast.StrKind:         1,
	ast.EmphKind:        1,
	ast.UnderlineKind:   1,
	ast.StrongKind:      1,
	ast.StrikeoutKind:   1,
	ast.SuperscriptKind: 1,
	ast.SubscriptKind:   1,
	ast.SmallCapsKind:   1,
	ast.QuotedKind:      2,
	ast.CiteKind:        2,
	ast.CodeKind:        2,
	ast.SpaceKind:       0,
	ast.SoftBreakKind:   0,
	ast.LineBreakKind:   0,
	ast.MathKind:        2,
	ast.RawInlineKind:   2,
	ast.LinkKind:        3,
	ast.ImageKind:       3,
	ast.NoteKind:        1,
	ast.SpanKind:        2,
}

func inline(v any, p *path) (ast.Inline, error) {
	tag, c, has, err := tagged(v, p)
	if err != nil {
		return nil, err
	}
	kind, ok := ast.ParseInlineKind(tag)
	if !ok {
		return nil, tagErr(p, "unknown inline tag %q", tag)
	}
	fs, err := contents(tag, c, has, p, inlineArity[kind])
	if err != nil {
		return nil, err
	}
	cp := p.key(ast.ContentsKey)
	switch kind {
	case ast.StrKind:
		s, err := str(fs[0], cp)
		if err != nil {
			return nil, err
		}
		return &ast.Str{Text: s}, nil
	case ast.EmphKind, ast.UnderlineKind, ast.StrongKind, ast.StrikeoutKind,
		ast.SuperscriptKind, ast.SubscriptKind, ast.SmallCapsKind:
		is, err := inlines(fs[0], cp)
		if err != nil {
			return nil, err
		}
		return wrapper(kind, is), nil
	case ast.QuotedKind:
		q := &ast.Quoted{}
		if err := enum(fs[0], cp.at(0), &q.Type); err != nil {
			return nil, err
		}
		if q.Inlines, err = inlines(fs[1], cp.at(1)); err != nil {
			return nil, err
		}
		return q, nil
	case ast.CiteKind:
		cs, err := array(fs[0], cp.at(0))
		if err != nil {
			return nil, err
		}
		ci := &ast.Cite{Citations: make([]ast.Citation, len(cs))}
		for i, x := range cs {
			if ci.Citations[i], err = citation(x, cp.at(0).at(i)); err != nil {
				return nil, err
			}
		}
		if ci.Inlines, err = inlines(fs[1], cp.at(1)); err != nil {
			return nil, err
		}
		return ci, nil
	case ast.CodeKind:
		a, s, err := attrText(fs, cp)
		if err != nil {
			return nil, err
		}
		return &ast.Code{Attr: a, Text: s}, nil
	case ast.SpaceKind:
		return &ast.Space{}, nil
	case ast.SoftBreakKind:
		return &ast.SoftBreak{}, nil
	case ast.LineBreakKind:
		return &ast.LineBreak{}, nil
	case ast.MathKind:
		m := &ast.Math{}
		if err := enum(fs[0], cp.at(0), &m.Type); err != nil {
			return nil, err
		}
		if m.Text, err = str(fs[1], cp.at(1)); err != nil {
			return nil, err
		}
		return m, nil
	case ast.RawInlineKind:
		f, s, err := formatText(fs, cp)
		if err != nil {
			return nil, err
		}
		return &ast.RawInline{Format: f, Text: s}, nil
	case ast.LinkKind, ast.ImageKind:
		a, is, err := attrInlines(fs[:2], cp)
		if err != nil {
			return nil, err
		}
		t, err := target(fs[2], cp.at(2))
		if err != nil {
			return nil, err
		}
		if kind == ast.LinkKind {
			return &ast.Link{Attr: a, Inlines: is, Target: t}, nil
		}
		return &ast.Image{Attr: a, Inlines: is, Target: t}, nil
	case ast.NoteKind:
		bs, err := blocks(fs[0], cp)
		if err != nil {
			return nil, err
		}
		return &ast.Note{Blocks: bs}, nil
	default:
		a, is, err := attrInlines(fs, cp)
		if err != nil {
			return nil, err
		}
		return &ast.Span{Attr: a, Inlines: is}, nil
	}
}

func wrapper(k ast.InlineKind, is []ast.Inline) ast.Inline {
	switch k {
	case ast.EmphKind:
		return &ast.Emph{Inlines: is}
	case ast.UnderlineKind:
		return &ast.Underline{Inlines: is}
	case ast.StrongKind:
		return &ast.Strong{Inlines: is}
	case ast.StrikeoutKind:
		return &ast.Strikeout{Inlines: is}
	case ast.SuperscriptKind:
		return &ast.Superscript{Inlines: is}
	case ast.SubscriptKind:
		return &ast.Subscript{Inlines: is}
	default:
		return &ast.SmallCaps{Inlines: is}
	}
}
