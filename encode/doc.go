// Package encode encodes documents in pandoc's JSON interchange form.
//
// # Usage
//
//	// Encode exactly as pandoc would
//	err := encode.Encode(doc, os.Stdout)
//
//	// Encode to bytes
//	d, err := encode.Marshal(doc)
//
//	// Pretty, coloured output for a terminal
//	err := encode.Encode(doc, os.Stdout, encode.Indent(2), encode.EncodeColors(encode.NewColors()))
//
//	// YAML rendition of the same structure
//	d, err := encode.Marshal(doc, encode.EncodeFormat(format.YAMLFormat))
//
// # Wire Rules
//
// The default output is byte compatible with pandoc's own JSON writer:
//
//   - the document is {"pandoc-api-version":[...],"meta":{...},"blocks":[...]}
//   - blocks, inlines, metadata values and enums are {"t":Tag,"c":contents};
//     contents is the single payload value or an array of several, and is
//     omitted for variants without payload
//   - Attr, Target, ListAttributes, Caption, ColSpec, table head, bodies,
//     foot, rows and cells are positional arrays
//   - citations are objects keyed citationId, citationPrefix, ...
//   - metadata keys are sorted
//
// Digest hashes the canonical encoding for content addressing.
//
// # Related Packages
//
//   - github.com/signadot/go-pandoc/ast - Document tree
//   - github.com/signadot/go-pandoc/parse - Decode pandoc JSON
package encode
