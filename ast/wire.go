package ast

// Keys of pandoc's JSON interchange form.
const (
	VersionKey  = "pandoc-api-version"
	MetaKey     = "meta"
	BlocksKey   = "blocks"
	TagKey      = "t"
	ContentsKey = "c"
)

// Tags of the ColWidth variants.
const (
	ColWidthTag        = "ColWidth"
	ColWidthDefaultTag = "ColWidthDefault"
)

// CitationField enumerates the fields of a Citation in wire order.
type CitationField int

const (
	CitationIDField CitationField = iota
	CitationPrefixField
	CitationSuffixField
	CitationModeField
	CitationNoteNumField
	CitationHashField
)

var citationFieldKeys = [...]string{
	CitationIDField:      "citationId",
	CitationPrefixField:  "citationPrefix",
	CitationSuffixField:  "citationSuffix",
	CitationModeField:    "citationMode",
	CitationNoteNumField: "citationNoteNum",
	CitationHashField:    "citationHash",
}

// Key returns the wire key of f.
func (f CitationField) Key() string {
	if f < 0 || int(f) >= len(citationFieldKeys) {
		return ""
	}
	return citationFieldKeys[f]
}

func (f CitationField) String() string { return f.Key() }

// CitationFields returns all citation fields in wire order.
func CitationFields() []CitationField {
	res := make([]CitationField, len(citationFieldKeys))
	for i := range res {
		res[i] = CitationField(i)
	}
	return res
}

// CitationFieldByKey maps a wire key back to its field.
func CitationFieldByKey(k string) (CitationField, bool) {
	for i, key := range citationFieldKeys {
		if key == k {
			return CitationField(i), true
		}
	}
	return 0, false
}
