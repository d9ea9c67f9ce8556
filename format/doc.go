// Package format names the textual representations of pandoc's document
// interchange form.
//
// JSONFormat is the representation pandoc itself reads and writes and is
// the default everywhere. YAMLFormat carries the same structure as YAML,
// which is easier to read and to write by hand.
//
//	f, err := format.ParseFormat("yaml")
//
// # Related Packages
//
//   - github.com/signadot/go-pandoc/encode - Encode documents
//   - github.com/signadot/go-pandoc/parse - Decode documents
package format
