package walk

import (
	"iter"
	"slices"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/debug"
)

// slot holds exactly one of a block or an inline slot.
type slot struct {
	b *ast.Block
	i *ast.Inline
}

func (s slot) node() ast.Node {
	if s.b != nil {
		if *s.b == nil {
			return nil
		}
		return *s.b
	}
	if *s.i == nil {
		return nil
	}
	return *s.i
}

// children lists the slots below n: its inlines first, then its blocks.
func children(n ast.Node) []slot {
	var res []slot
	for p := range ChildInlinesMut(n) {
		res = append(res, slot{i: p})
	}
	for p := range ChildBlocksMut(n) {
		res = append(res, slot{b: p})
	}
	return res
}

func push(stack []slot, n ast.Node) []slot {
	cs := children(n)
	slices.Reverse(cs)
	return append(stack, cs...)
}

// deep runs a pre-order traversal below n on an explicit stack, so nesting
// depth is bounded by memory rather than the goroutine stack. A slot is
// descended into after it is yielded, using the value it then holds.
func deep(n ast.Node, yb func(*ast.Block) bool, yi func(*ast.Inline) bool) {
	stack := push(nil, n)
	count := 0
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		switch {
		case s.b != nil && yb != nil:
			if !yb(s.b) {
				return
			}
		case s.i != nil && yi != nil:
			if !yi(s.i) {
				return
			}
		}
		if c := s.node(); c != nil {
			stack = push(stack, c)
		}
	}
	if debug.Walk() {
		debug.Log("walked", "nodes", count)
	}
}

// Blocks yields the slot of every block below n in pre-order, including
// blocks inside notes. The inlines of a node are searched before its
// child blocks.
func Blocks(n ast.Node) iter.Seq[*ast.Block] {
	return func(yield func(*ast.Block) bool) {
		deep(n, yield, nil)
	}
}

// Inlines yields the slot of every inline below n in pre-order, including
// inlines inside nested blocks and notes.
func Inlines(n ast.Node) iter.Seq[*ast.Inline] {
	return func(yield func(*ast.Inline) bool) {
		deep(n, nil, yield)
	}
}
