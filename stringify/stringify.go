// Package stringify reduces inline content to plain text, following
// pandoc's own stringify so that results agree with other pandoc tooling.
package stringify

import (
	"strings"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/walk"
)

const (
	leftSingle  = '‘'
	rightSingle = '’'
	leftDouble  = '“'
	rightDouble = '”'
)

// Inlines returns the plain text of is.
func Inlines(is []ast.Inline) string {
	b := &strings.Builder{}
	for _, in := range is {
		WriteInline(b, in)
	}
	return b.String()
}

// Inline returns the plain text of in.
func Inline(in ast.Inline) string {
	b := &strings.Builder{}
	WriteInline(b, in)
	return b.String()
}

// Node returns the plain text of the child inlines of n. For blocks
// without child inlines, such as a BlockQuote, this is empty.
func Node(n ast.Node) string {
	b := &strings.Builder{}
	for in := range walk.ChildInlines(n) {
		WriteInline(b, in)
	}
	return b.String()
}

// WriteInline appends the plain text of in to b.
func WriteInline(b *strings.Builder, in ast.Inline) {
	switch x := in.(type) {
	case nil:
	case *ast.Space, *ast.SoftBreak:
		b.WriteByte(' ')
	case *ast.LineBreak:
		b.WriteByte('\n')
	case *ast.Str:
		b.WriteString(x.Text)
	case *ast.Code:
		b.WriteString(x.Text)
	case *ast.Math:
		b.WriteString(x.Text)
	case *ast.RawInline:
		if isHTMLBreak(x) {
			b.WriteByte(' ')
		}
	case *ast.Quoted:
		l, r := leftDouble, rightDouble
		if x.Type == ast.SingleQuote {
			l, r = leftSingle, rightSingle
		}
		b.WriteRune(l)
		for _, c := range x.Inlines {
			WriteInline(b, c)
		}
		b.WriteRune(r)
	default:
		for c := range walk.ChildInlines(in) {
			WriteInline(b, c)
		}
	}
}

func isHTMLBreak(r *ast.RawInline) bool {
	return r.Format == "html" && strings.HasPrefix(r.Text, "<br")
}
