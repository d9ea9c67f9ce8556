package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse   = errors.New("parse error")
	ErrShape   = fmt.Errorf("%w: malformed document", ErrParse)
	ErrTag     = fmt.Errorf("%w: bad tag", ErrParse)
	ErrVersion = fmt.Errorf("%w: unsupported pandoc-api-version", ErrParse)
)

// ErrorKind categorizes decode failures.
type ErrorKind int

const (
	// ShapeError: malformed JSON, a missing key or a wrong JSON type.
	ShapeError ErrorKind = iota
	// TagError: an unknown variant tag or the wrong payload arity for a
	// known one.
	TagError
	// VersionError: a pandoc-api-version other than the pinned one.
	VersionError
)

func (k ErrorKind) String() string {
	switch k {
	case ShapeError:
		return "shape"
	case TagError:
		return "tag"
	case VersionError:
		return "version"
	default:
		return "<unknown error kind>"
	}
}

func (k ErrorKind) sentinel() error {
	switch k {
	case TagError:
		return ErrTag
	case VersionError:
		return ErrVersion
	default:
		return ErrShape
	}
}

// Error is returned for every decode failure. Path locates the offending
// value JSONPath style, e.g. "$.blocks[2].c[1]".
type Error struct {
	Kind ErrorKind
	Path string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %s", e.Kind.sentinel(), e.Msg)
	}
	return fmt.Sprintf("%v at %s: %s", e.Kind.sentinel(), e.Path, e.Msg)
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind.sentinel(), e.Err}
	}
	return []error{e.Kind.sentinel()}
}
