// Package query selects nodes of a document with boolean expressions in
// the expr language:
//
//	q, err := query.Compile(`Kind == "Header" && Level <= 2 && hasClass("unnumbered")`)
//	...
//	slots, err := q.Blocks(doc)
//
// An expression is evaluated against an Env built from each node in turn.
package query

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/debug"
	"github.com/signadot/go-pandoc/walk"
)

var ErrQuery = errors.New("query error")

// Query is a compiled selection expression. It is safe for concurrent use.
type Query struct {
	src  string
	prog *vm.Program
}

// Compile parses src. Expressions that do not evaluate to a boolean are
// rejected here rather than at match time.
func Compile(src string) (*Query, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if debug.Query() {
		debug.Logf("compiled query %q", src)
	}
	return &Query{src: src, prog: prog}, nil
}

func (q *Query) String() string { return q.src }

func (q *Query) run(env *Env) (bool, error) {
	out, err := vm.Run(q.prog, env)
	if err != nil {
		return false, fmt.Errorf("%w: %q: %w", ErrQuery, q.src, err)
	}
	return out.(bool), nil
}

// MatchBlock reports whether b satisfies q.
func (q *Query) MatchBlock(b ast.Block) (bool, error) {
	return q.run(blockEnv(b))
}

// MatchInline reports whether in satisfies q.
func (q *Query) MatchInline(in ast.Inline) (bool, error) {
	return q.run(inlineEnv(in))
}

// Blocks returns the slots of all blocks below n that satisfy q, in
// pre-order. Assigning through a returned slot replaces the block.
func (q *Query) Blocks(n ast.Node) ([]*ast.Block, error) {
	var res []*ast.Block
	for p := range walk.Blocks(n) {
		if *p == nil {
			continue
		}
		ok, err := q.MatchBlock(*p)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, p)
		}
	}
	if debug.Query() {
		debug.Log("query blocks", "query", q.src, "matches", len(res))
	}
	return res, nil
}

// Inlines returns the slots of all inlines below n that satisfy q, in
// pre-order.
func (q *Query) Inlines(n ast.Node) ([]*ast.Inline, error) {
	var res []*ast.Inline
	for p := range walk.Inlines(n) {
		if *p == nil {
			continue
		}
		ok, err := q.MatchInline(*p)
		if err != nil {
			return nil, err
		}
		if ok {
			res = append(res, p)
		}
	}
	if debug.Query() {
		debug.Log("query inlines", "query", q.src, "matches", len(res))
	}
	return res, nil
}
