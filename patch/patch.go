// Package patch edits documents through their JSON encoding with RFC 6902
// JSON Patch and RFC 7386 JSON Merge Patch documents.
//
// Paths address the pandoc JSON form, e.g. "/blocks/0/c/0/c" is the text
// of the first inline of the first block. Results are decoded again, so a
// patch producing an invalid document fails with a parse error.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/debug"
	"github.com/signadot/go-pandoc/encode"
	"github.com/signadot/go-pandoc/parse"
)

var ErrPatch = errors.New("patch error")

// Apply applies the JSON Patch ops to doc and returns the result. doc is
// not modified.
func Apply(doc *ast.Document, ops []byte) (*ast.Document, error) {
	p, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Log("json patch", "ops", len(p))
	}
	return transform(doc, p.Apply)
}

// Merge applies a JSON Merge Patch to doc. Arrays, which hold all blocks
// and inlines, are replaced as a whole.
func Merge(doc *ast.Document, mergePatch []byte) (*ast.Document, error) {
	if debug.Patch() {
		debug.Logf("merge patch %s", mergePatch)
	}
	return transform(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, mergePatch)
	})
}

// CreateMerge returns the JSON Merge Patch turning from into to.
func CreateMerge(from, to *ast.Document) ([]byte, error) {
	a, err := encode.Marshal(from)
	if err != nil {
		return nil, err
	}
	b, err := encode.Marshal(to)
	if err != nil {
		return nil, err
	}
	d, err := jsonpatch.CreateMergePatch(a, b)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return d, nil
}

func transform(doc *ast.Document, f func([]byte) ([]byte, error)) (*ast.Document, error) {
	d, err := encode.Marshal(doc)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := parse.Parse(out)
	if err != nil {
		if debug.Patch() {
			debug.Logf("patched document does not decode: %v", err)
		}
		return nil, err
	}
	return res, nil
}
