// Package parse decodes pandoc's JSON interchange form into ast trees.
//
// Parse accepts a complete document and checks its pandoc-api-version
// before anything else: the first two components must equal those of
// ast.APIVersion, later components are ignored. ParseBlock, ParseInline
// and ParseMetaValue decode single nodes without the envelope.
//
// Unknown object keys are ignored. Everything else is strict: unknown
// tags, wrong payload arity, wrong JSON types, out of range integers and
// trailing data are errors.
//
// # Errors
//
// Every failure is an *Error whose Kind is one of ShapeError, TagError or
// VersionError and whose Path locates the offending value:
//
//	_, err := parse.Parse(d)
//	if errors.Is(err, parse.ErrVersion) {
//	    ...
//	}
//
// The sentinels ErrShape, ErrTag and ErrVersion all wrap ErrParse.
//
// # YAML
//
// With ParseYAML the input is first converted to JSON, so a document
// written by encode with format.YAMLFormat reads back unchanged.
package parse
