package ast

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var cmpOptions cmp.Options

func init() {
	cmpOptions = cmp.Options{
		cmpopts.EquateEmpty(),
		cmp.Comparer(equalCaption),
		cmp.Comparer(equalColWidth),
	}
}

// Equal reports whether a and b are structurally equal: same variants,
// same scalars, same order in every sequence. Nil and empty sequences and
// maps are equal, except that an absent short caption differs from an
// empty one.
func Equal[T any](a, b T) bool {
	return cmp.Equal(a, b, cmpOptions)
}

// Diff returns a human readable report of the differences between a and b,
// or "" if they are Equal.
func Diff[T any](a, b T) string {
	return cmp.Diff(a, b, cmpOptions)
}

func equalCaption(a, b Caption) bool {
	if a.HasShort() != b.HasShort() {
		return false
	}
	return cmp.Equal(a.Short, b.Short, cmpOptions) && cmp.Equal(a.Long, b.Long, cmpOptions)
}

func equalColWidth(a, b ColWidth) bool {
	if a.Specified != b.Specified {
		return false
	}
	return !a.Specified || a.Fraction == b.Fraction
}
