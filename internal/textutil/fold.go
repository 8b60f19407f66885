package textutil

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold returns the case-folded form of the trimmed input, suitable as a
// comparison key.
func Fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// EqualFold reports whether two strings are equal after trimming and case
// folding.
func EqualFold(a, b string) bool {
	return Fold(a) == Fold(b)
}
