package encode

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/signadot/go-pandoc/ast"
)

// Digest returns the hex BLAKE3-256 digest of doc's canonical compact JSON
// encoding. Unlike ast.Hash it is stable across processes, so it can key
// caches and detect changes between runs.
func Digest(doc *ast.Document) (string, error) {
	d, err := Marshal(doc)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(d)
	return hex.EncodeToString(sum[:]), nil
}
