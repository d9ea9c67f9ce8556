package parse

import (
	"strconv"
	"strings"
)

// path is the location of a value being decoded. It is only rendered when
// an error is reported.
type path struct {
	parent *path
	field  string
	index  int
	isIdx  bool
}

func (p *path) key(k string) *path { return &path{parent: p, field: k} }
func (p *path) at(i int) *path     { return &path{parent: p, index: i, isIdx: true} }

func (p *path) String() string {
	if p == nil {
		return "$"
	}
	var parts []*path
	for x := p; x != nil; x = x.parent {
		parts = append(parts, x)
	}
	b := strings.Builder{}
	b.WriteByte('$')
	for i := len(parts) - 1; i >= 0; i-- {
		x := parts[i]
		if x.isIdx {
			b.WriteString("[" + strconv.Itoa(x.index) + "]")
			continue
		}
		if x.field != "" && strings.IndexAny(x.field, "'.*$[]") == -1 {
			b.WriteString("." + x.field)
			continue
		}
		b.WriteString(".'" + strings.ReplaceAll(x.field, "'", "\\'") + "'")
	}
	return b.String()
}
