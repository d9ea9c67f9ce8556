package encode

import "github.com/signadot/go-pandoc/format"

type EncodeOption func(*EncState)

// EncodeFormat selects the output representation. The default is
// format.JSONFormat.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// Indent pretty prints JSON output with n spaces per level. Indented
// output is valid pandoc input but no longer byte identical to pandoc's.
func Indent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeColors colours JSON tokens for terminal display.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}
