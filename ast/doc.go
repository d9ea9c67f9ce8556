// Package ast provides the in-memory document tree exchanged with pandoc.
//
// # Overview
//
// A Document is metadata plus an ordered sequence of blocks. Blocks
// (paragraphs, lists, tables, ...) contain inlines (text runs, emphasis,
// links, ...) and sometimes further blocks; inlines may in turn contain
// inlines, and a Note contains blocks.
//
// The tree is strictly owned: every node belongs to exactly one parent
// container and there are no back references. Values are plain data; the
// only behaviour here is construction, kinds, equality and hashing.
//
// # Variants
//
// Block, Inline and MetaValue are closed sum types expressed as sealed
// interfaces. Each variant is a pointer to a struct:
//
//	doc := ast.NewDocument(
//	    &ast.Header{Level: 1, Attr: ast.NewAttr("intro"), Inlines: ast.Words("Intro")},
//	    &ast.Para{Inlines: ast.Words("Hello world")},
//	    &ast.HorizontalRule{},
//	)
//
// Use a type switch to dispatch on variants, or Kind() when only the
// variant name matters:
//
//	switch b := blk.(type) {
//	case *ast.Para:
//	    ...
//	case *ast.Header:
//	    ...
//	}
//
// BlockKind, InlineKind and MetaKind print as the pandoc wire tags.
//
// # Defaults
//
// Zero values are the defaults pandoc expects for optional-looking fields:
// the zero Attr is empty, the zero Alignment is AlignDefault, the zero
// ColWidth is the unspecified width, the zero ListNumberStyle and
// ListNumberDelim are the default ones. Fields whose default is not zero
// have constructors: NewListAttributes starts numbering at 1 and NewCell
// spans one row and one column.
//
// # Equality
//
// Equal compares trees structurally with ordering significant everywhere.
// Nil and empty sequences compare equal, so a tree built by hand equals
// the same tree decoded from JSON. Hash is a process-local hash consistent
// with Equal.
//
// # Thread Safety
//
// Trees are not synchronized. Concurrent reads are fine; mutation (see
// package walk) requires exclusive access to the mutated subtree.
//
// # Related Packages
//
//   - github.com/signadot/go-pandoc/encode - Encodes documents as pandoc JSON
//   - github.com/signadot/go-pandoc/parse - Decodes pandoc JSON
//   - github.com/signadot/go-pandoc/walk - Child enumeration and traversal
//   - github.com/signadot/go-pandoc/stringify - Plain text extraction
package ast
