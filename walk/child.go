package walk

import (
	"iter"

	"github.com/signadot/go-pandoc/ast"
)

// ChildBlocks yields the blocks immediately contained in n, in document
// order. Nodes without child blocks yield nothing.
func ChildBlocks(n ast.Node) iter.Seq[ast.Block] {
	return func(yield func(ast.Block) bool) {
		blockSlots(n, func(p *ast.Block) bool { return yield(*p) })
	}
}

// ChildBlocksMut is ChildBlocks yielding the slot holding each child.
// Assigning through a slot replaces that child in place; no slot is
// yielded twice.
func ChildBlocksMut(n ast.Node) iter.Seq[*ast.Block] {
	return func(yield func(*ast.Block) bool) {
		blockSlots(n, yield)
	}
}

// ChildInlines yields the inlines immediately contained in n, in document
// order.
func ChildInlines(n ast.Node) iter.Seq[ast.Inline] {
	return func(yield func(ast.Inline) bool) {
		inlineSlots(n, func(p *ast.Inline) bool { return yield(*p) })
	}
}

// ChildInlinesMut is ChildInlines yielding the slot holding each child.
func ChildInlinesMut(n ast.Node) iter.Seq[*ast.Inline] {
	return func(yield func(*ast.Inline) bool) {
		inlineSlots(n, yield)
	}
}

func eachBlock(bs []ast.Block, yield func(*ast.Block) bool) bool {
	for i := range bs {
		if !yield(&bs[i]) {
			return false
		}
	}
	return true
}

func eachItem(items [][]ast.Block, yield func(*ast.Block) bool) bool {
	for _, it := range items {
		if !eachBlock(it, yield) {
			return false
		}
	}
	return true
}

func eachInline(is []ast.Inline, yield func(*ast.Inline) bool) bool {
	for i := range is {
		if !yield(&is[i]) {
			return false
		}
	}
	return true
}

func blockSlots(n ast.Node, yield func(*ast.Block) bool) bool {
	switch x := n.(type) {
	case *ast.Document:
		return eachBlock(x.Blocks, yield)
	case *ast.BlockQuote:
		return eachBlock(x.Blocks, yield)
	case *ast.Figure:
		return eachBlock(x.Blocks, yield)
	case *ast.Div:
		return eachBlock(x.Blocks, yield)
	case *ast.BulletList:
		return eachItem(x.Items, yield)
	case *ast.OrderedList:
		return eachItem(x.Items, yield)
	case *ast.DefinitionList:
		for i := range x.Items {
			if !eachItem(x.Items[i].Definitions, yield) {
				return false
			}
		}
	case *ast.Table:
		if !eachBlock(x.Caption.Long, yield) {
			return false
		}
		for _, r := range x.Rows() {
			for j := range r.Cells {
				if !eachBlock(r.Cells[j].Content, yield) {
					return false
				}
			}
		}
	case *ast.Note:
		return eachBlock(x.Blocks, yield)
	}
	return true
}

func inlineSlots(n ast.Node, yield func(*ast.Inline) bool) bool {
	switch x := n.(type) {
	case *ast.Plain:
		return eachInline(x.Inlines, yield)
	case *ast.Para:
		return eachInline(x.Inlines, yield)
	case *ast.LineBlock:
		for _, ln := range x.Lines {
			if !eachInline(ln, yield) {
				return false
			}
		}
	case *ast.DefinitionList:
		for i := range x.Items {
			if !eachInline(x.Items[i].Term, yield) {
				return false
			}
		}
	case *ast.Header:
		return eachInline(x.Inlines, yield)
	case *ast.Table:
		return eachInline(x.Caption.Short, yield)
	case *ast.Emph:
		return eachInline(x.Inlines, yield)
	case *ast.Underline:
		return eachInline(x.Inlines, yield)
	case *ast.Strong:
		return eachInline(x.Inlines, yield)
	case *ast.Strikeout:
		return eachInline(x.Inlines, yield)
	case *ast.Superscript:
		return eachInline(x.Inlines, yield)
	case *ast.Subscript:
		return eachInline(x.Inlines, yield)
	case *ast.SmallCaps:
		return eachInline(x.Inlines, yield)
	case *ast.Quoted:
		return eachInline(x.Inlines, yield)
	case *ast.Cite:
		return eachInline(x.Inlines, yield)
	case *ast.Link:
		return eachInline(x.Inlines, yield)
	case *ast.Image:
		return eachInline(x.Inlines, yield)
	case *ast.Span:
		return eachInline(x.Inlines, yield)
	}
	return true
}
