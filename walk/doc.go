// Package walk enumerates and traverses the children of ast nodes.
//
// ChildBlocks and ChildInlines yield the children one level below a node:
//
//	for b := range walk.ChildBlocks(list) {
//	    ...
//	}
//
// Containers of blocks (Document, BlockQuote, Figure, Div, Note) yield
// their blocks; lists yield the blocks of every item in turn; a
// DefinitionList yields its definitions as blocks and its terms as
// inlines; a Table yields its long caption followed by the content of
// every cell, head rows first, then each body's head and body rows, then
// foot rows, and yields its short caption as inlines. Plain, Para, Header
// and LineBlock yield their inlines, lines concatenated. Inline containers
// yield their inlines; a Cite yields its rendered inlines, a Link its
// label and an Image its alt text.
//
// The Mut variants yield pointers into the owning slices. Assigning
// through one replaces that child in place:
//
//	for p := range walk.ChildInlinesMut(para) {
//	    if s, ok := (*p).(*ast.Str); ok && s.Text == "teh" {
//	        *p = &ast.Str{Text: "the"}
//	    }
//	}
//
// Appending to or re-slicing a container while iterating over it is not
// supported.
//
// Blocks, Inlines and Visit descend the whole tree using an explicit
// stack, so arbitrarily deep documents do not exhaust the goroutine stack.
package walk
