package compiler

import (
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/taxonomy"
)

// NewArc mints the Identifier of a fresh arc for connector. When
// linkToKeynode is set and the connector has a type keynode, the arc is
// also declared a member of that keynode.
func (c *Context) NewArc(connector string, linkToKeynode bool) ir.Identifier {
	category, _ := taxonomy.Category(connector)
	arc := ir.ArcName(category, c.counters.arc.Next())

	if !linkToKeynode {
		return arc
	}
	if keynode, ok := taxonomy.Keynode(connector); ok {
		c.Emit(ir.Identifier(keynode), c.NewArc(taxonomy.Generic, false), arc, false)
	}
	return arc
}
