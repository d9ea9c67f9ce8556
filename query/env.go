package query

import (
	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/stringify"
)

// Env is what a query expression sees of the node being tested. Fields
// that do not apply to the node's variant are zero.
type Env struct {
	Kind       string
	Level      int
	ID         string
	Classes    []string
	Attributes map[string]string
	Text       string
	URL        string
	Title      string
	Format     string
	Literal    string

	HasClass func(string) bool `expr:"hasClass"`
}

func (e *Env) setAttr(a ast.Attr) {
	e.ID = a.ID
	e.Classes = a.Classes
	if len(a.Attributes) != 0 {
		e.Attributes = make(map[string]string, len(a.Attributes))
		for _, kv := range a.Attributes {
			e.Attributes[kv.Key] = kv.Value
		}
	}
	e.HasClass = a.HasClass
}

func newEnv(kind string) *Env {
	return &Env{
		Kind:     kind,
		HasClass: func(string) bool { return false },
	}
}

func blockEnv(b ast.Block) *Env {
	e := newEnv(b.Kind().String())
	e.Text = stringify.Node(b)
	switch x := b.(type) {
	case *ast.Header:
		e.Level = x.Level
		e.setAttr(x.Attr)
	case *ast.CodeBlock:
		e.setAttr(x.Attr)
		e.Literal = x.Text
	case *ast.RawBlock:
		e.Format = string(x.Format)
		e.Literal = x.Text
	case *ast.Div:
		e.setAttr(x.Attr)
	case *ast.Figure:
		e.setAttr(x.Attr)
	case *ast.Table:
		e.setAttr(x.Attr)
	}
	return e
}

func inlineEnv(in ast.Inline) *Env {
	e := newEnv(in.Kind().String())
	e.Text = stringify.Inline(in)
	switch x := in.(type) {
	case *ast.Str:
		e.Literal = x.Text
	case *ast.Code:
		e.setAttr(x.Attr)
		e.Literal = x.Text
	case *ast.Math:
		e.Literal = x.Text
	case *ast.RawInline:
		e.Format = string(x.Format)
		e.Literal = x.Text
	case *ast.Link:
		e.setAttr(x.Attr)
		e.URL, e.Title = x.Target.URL, x.Target.Title
	case *ast.Image:
		e.setAttr(x.Attr)
		e.URL, e.Title = x.Target.URL, x.Target.Title
	case *ast.Span:
		e.setAttr(x.Attr)
	}
	return e
}
