package ir

import "golang.org/x/text/unicode/norm"

// Canonical returns the canonical Identifier for explicit source text.
// Text is NFC normalized so composed and decomposed spellings of the same
// name denote one entity.
func Canonical(text string) Identifier {
	return Identifier(norm.NFC.String(text))
}
