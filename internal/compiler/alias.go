package compiler

import (
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
)

// aliasKey identifies a construct in the alias table. Anonymous constructs
// (sets, ordered sets, content) are keyed by node identity; everything else
// by canonical text.
type aliasKey struct {
	text string
	node syntax.Node
}

func textKey(text string) aliasKey { return aliasKey{text: string(ir.Canonical(text))} }

func nodeKey(n syntax.Node) aliasKey { return aliasKey{node: n} }

// AliasTable binds construct keys to Identifiers. A key is bound at most
// once; bindings are kept in insertion order so a checkpoint can drop the
// ones made after it.
type AliasTable struct {
	bindings map[aliasKey]ir.Identifier
	order    []aliasKey
}

// NewAliasTable creates an empty table.
func NewAliasTable() *AliasTable {
	return &AliasTable{bindings: make(map[aliasKey]ir.Identifier)}
}

// Lookup returns the Identifier bound to k.
func (t *AliasTable) Lookup(k aliasKey) (ir.Identifier, bool) {
	id, ok := t.bindings[k]
	return id, ok
}

// Bind binds k to id unless k is already bound, and returns the Identifier
// k is bound to afterwards.
func (t *AliasTable) Bind(k aliasKey, id ir.Identifier) ir.Identifier {
	if existing, ok := t.bindings[k]; ok {
		return existing
	}
	t.bindings[k] = id
	t.order = append(t.order, k)
	return id
}

// Len returns the number of bindings.
func (t *AliasTable) Len() int {
	return len(t.order)
}

// truncate drops every binding made after the first n.
func (t *AliasTable) truncate(n int) {
	for _, k := range t.order[n:] {
		delete(t.bindings, k)
	}
	t.order = t.order[:n]
}
