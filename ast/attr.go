package ast

// Attr is an identifier, an ordered list of classes and ordered key-value
// pairs attached to a node. The zero value is the empty Attr.
type Attr struct {
	ID         string
	Classes    []string
	Attributes []KeyValue
}

// KeyValue is one attribute pair of an Attr.
type KeyValue struct {
	Key   string
	Value string
}

// NewAttr returns an Attr with the given id and classes.
func NewAttr(id string, classes ...string) Attr {
	return Attr{ID: id, Classes: classes}
}

// IsEmpty reports whether a carries no identifier, classes or attributes.
func (a Attr) IsEmpty() bool {
	return a.ID == "" && len(a.Classes) == 0 && len(a.Attributes) == 0
}

// HasClass reports whether c is one of a's classes.
func (a Attr) HasClass(c string) bool {
	for _, x := range a.Classes {
		if x == c {
			return true
		}
	}
	return false
}

// Get returns the value of the first attribute pair with key k.
func (a Attr) Get(k string) (string, bool) {
	for _, kv := range a.Attributes {
		if kv.Key == k {
			return kv.Value, true
		}
	}
	return "", false
}

// Target is the destination of a link or image.
type Target struct {
	URL   string
	Title string
}

// Format names the output format of raw content, e.g. "html" or "latex".
type Format string
