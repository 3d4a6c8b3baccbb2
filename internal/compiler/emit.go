package compiler

import "github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"

// Emit appends (s, p, o) to the triple sequence, or (o, p, s) when
// mirrored. Duplicates are kept.
func (c *Context) Emit(s, p, o ir.Identifier, mirrored bool) {
	if mirrored {
		s, o = o, s
	}
	c.triples = append(c.triples, ir.Triple{Subject: s, Predicate: p, Object: o})
}
