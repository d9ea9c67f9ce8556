// Package meta converts document metadata to and from YAML, the form it
// takes in a markdown front matter block.
package meta

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/stringify"
	"github.com/signadot/go-pandoc/walk"
)

var ErrMeta = errors.New("metadata error")

// FromYAML reads a YAML mapping as metadata. Mappings become MetaMap,
// sequences MetaList, booleans MetaBool and every other scalar a
// MetaString holding its text; null becomes the empty MetaString.
func FromYAML(d []byte) (ast.Meta, error) {
	if len(bytes.TrimSpace(d)) == 0 {
		return ast.Meta{}, nil
	}
	var v any
	if err := yaml.Unmarshal(d, &v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMeta, err)
	}
	if v == nil {
		return ast.Meta{}, nil
	}
	mv, err := fromAny(v)
	if err != nil {
		return nil, err
	}
	m, ok := mv.(*ast.MetaMap)
	if !ok {
		return nil, fmt.Errorf("%w: expected a mapping, found %s", ErrMeta, mv.Kind())
	}
	return m.Map, nil
}

func fromAny(v any) (ast.MetaValue, error) {
	switch x := v.(type) {
	case nil:
		return &ast.MetaString{}, nil
	case bool:
		return &ast.MetaBool{Value: x}, nil
	case string:
		return &ast.MetaString{Text: x}, nil
	case int:
		return &ast.MetaString{Text: strconv.Itoa(x)}, nil
	case int64:
		return &ast.MetaString{Text: strconv.FormatInt(x, 10)}, nil
	case uint64:
		return &ast.MetaString{Text: strconv.FormatUint(x, 10)}, nil
	case float64:
		return &ast.MetaString{Text: strconv.FormatFloat(x, 'g', -1, 64)}, nil
	case []any:
		items := make([]ast.MetaValue, len(x))
		for i, it := range x {
			mv, err := fromAny(it)
			if err != nil {
				return nil, err
			}
			items[i] = mv
		}
		return &ast.MetaList{Items: items}, nil
	case map[string]any:
		m := make(ast.Meta, len(x))
		for k, it := range x {
			mv, err := fromAny(it)
			if err != nil {
				return nil, err
			}
			m[k] = mv
		}
		return &ast.MetaMap{Map: m}, nil
	case map[any]any:
		m := make(ast.Meta, len(x))
		for k, it := range x {
			mv, err := fromAny(it)
			if err != nil {
				return nil, err
			}
			m[fmt.Sprint(k)] = mv
		}
		return &ast.MetaMap{Map: m}, nil
	default:
		return &ast.MetaString{Text: fmt.Sprint(x)}, nil
	}
}

// ToYAML renders m as a YAML mapping with sorted keys. Inline and block
// values are written as their plain text.
func ToYAML(m ast.Meta) ([]byte, error) {
	d, err := yaml.Marshal(toMapSlice(m))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMeta, err)
	}
	return d, nil
}

func toMapSlice(m ast.Meta) yaml.MapSlice {
	res := make(yaml.MapSlice, 0, len(m))
	for _, k := range m.Keys() {
		res = append(res, yaml.MapItem{Key: k, Value: toAny(m[k])})
	}
	return res
}

func toAny(v ast.MetaValue) any {
	switch x := v.(type) {
	case *ast.MetaMap:
		return toMapSlice(x.Map)
	case *ast.MetaList:
		res := make([]any, len(x.Items))
		for i, it := range x.Items {
			res[i] = toAny(it)
		}
		return res
	case *ast.MetaBool:
		return x.Value
	case *ast.MetaString:
		return x.Text
	case *ast.MetaInlines:
		return stringify.Inlines(x.Inlines)
	case *ast.MetaBlocks:
		return blocksText(x.Blocks)
	default:
		return nil
	}
}

// blocksText is the plain text of bs, one line per block holding inlines.
func blocksText(bs []ast.Block) string {
	var lines []string
	for _, b := range bs {
		_ = walk.Visit(b, func(n ast.Node, isPost bool) (bool, error) {
			if isPost {
				return false, nil
			}
			if _, ok := n.(ast.Inline); ok {
				return false, nil
			}
			if s := stringify.Node(n); s != "" {
				lines = append(lines, s)
			}
			return true, nil
		})
	}
	return strings.Join(lines, "\n")
}

// Lookup finds the value at a dotted path such as "author.0.name", where
// numeric components index lists.
func Lookup(m ast.Meta, path string) (ast.MetaValue, bool) {
	parts := strings.Split(path, ".")
	cur, ok := m[parts[0]]
	if !ok {
		return nil, false
	}
	for _, p := range parts[1:] {
		switch x := cur.(type) {
		case *ast.MetaMap:
			if cur, ok = x.Map[p]; !ok {
				return nil, false
			}
		case *ast.MetaList:
			i, err := strconv.Atoi(p)
			if err != nil || i < 0 || i >= len(x.Items) {
				return nil, false
			}
			cur = x.Items[i]
		default:
			return nil, false
		}
	}
	return cur, true
}

// Paths lists the dotted paths of all leaves of m, sorted.
func Paths(m ast.Meta) []string {
	var res []string
	var rec func(prefix string, v ast.MetaValue)
	rec = func(prefix string, v ast.MetaValue) {
		switch x := v.(type) {
		case *ast.MetaMap:
			for _, k := range x.Map.Keys() {
				rec(prefix+"."+k, x.Map[k])
			}
		case *ast.MetaList:
			for i, it := range x.Items {
				rec(prefix+"."+strconv.Itoa(i), it)
			}
		default:
			res = append(res, prefix)
		}
	}
	for _, k := range m.Keys() {
		rec(k, m[k])
	}
	sort.Strings(res)
	return res
}
