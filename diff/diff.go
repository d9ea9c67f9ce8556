// Package diff reports differences between documents as line diffs of
// their indented JSON encodings.
package diff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/go-pandoc/ast"
	"github.com/signadot/go-pandoc/encode"
)

// Context is the number of unchanged lines kept around each change.
const Context = 3

// Documents returns the line diff of a and b, or "" if they encode
// identically.
func Documents(a, b *ast.Document) (string, error) {
	da, err := encode.Marshal(a, encode.Indent(2))
	if err != nil {
		return "", err
	}
	db, err := encode.Marshal(b, encode.Indent(2))
	if err != nil {
		return "", err
	}
	return Lines(string(da), string(db)), nil
}

// Blocks is Documents for single blocks.
func Blocks(a, b ast.Block) (string, error) {
	da, err := encode.MarshalBlock(a, encode.Indent(2))
	if err != nil {
		return "", err
	}
	db, err := encode.MarshalBlock(b, encode.Indent(2))
	if err != nil {
		return "", err
	}
	return Lines(string(da), string(db)), nil
}

type line struct {
	op   diffpatch.Operation
	text string
}

// Lines returns a line diff of a and b: removed lines prefixed "-",
// added lines "+", context lines " ". Runs of unchanged lines longer than
// the context are elided with a "@@" marker. The result is "" if a == b.
func Lines(a, b string) string {
	if a == b {
		return ""
	}
	dmp := diffpatch.New()
	ra, rb, lineArray := dmp.DiffLinesToRunes(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(ra, rb, false), lineArray)

	var lines []line
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		for _, ln := range strings.Split(text, "\n") {
			lines = append(lines, line{op: d.Type, text: ln})
		}
	}

	keep := make([]bool, len(lines))
	for i, ln := range lines {
		if ln.op == diffpatch.DiffEqual {
			continue
		}
		for j := max(0, i-Context); j <= min(len(lines)-1, i+Context); j++ {
			keep[j] = true
		}
	}

	b2 := &strings.Builder{}
	elided := false
	for i, ln := range lines {
		if !keep[i] {
			if !elided {
				b2.WriteString("@@\n")
				elided = true
			}
			continue
		}
		elided = false
		switch ln.op {
		case diffpatch.DiffDelete:
			b2.WriteString("-")
		case diffpatch.DiffInsert:
			b2.WriteString("+")
		default:
			b2.WriteString(" ")
		}
		b2.WriteString(ln.text)
		b2.WriteByte('\n')
	}
	return b2.String()
}
