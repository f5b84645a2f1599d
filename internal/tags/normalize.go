// Package tags canonicalizes identifiers read from RFID tags.
package tags

import (
	"strings"
	"unicode"
)

// Normalizer turns raw tag identifiers into comparable directory keys.
type Normalizer struct {
	stripSeparators bool
}

// NewNormalizer creates a Normalizer. When stripSeparators is set, the
// '-', ':' and '.' separators some readers emit are removed as well.
func NewNormalizer(stripSeparators bool) *Normalizer {
	return &Normalizer{stripSeparators: stripSeparators}
}

// Normalize removes whitespace (and separators, if configured) and upper-cases the result.
func (n *Normalizer) Normalize(raw string) string {
	return strings.ToUpper(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		if n.stripSeparators && isSeparator(r) {
			return -1
		}
		return r
	}, raw))
}

func isSeparator(r rune) bool {
	return r == '-' || r == ':' || r == '.'
}

// Normalize applies the default normalization, which keeps separators.
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

var defaultNormalizer = NewNormalizer(false)
