package encode

import "errors"

var (
	ErrEncoding = errors.New("encoding error")
	ErrNilNode  = errors.New("nil node")
)
