package compiler

import (
	"fmt"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
)

// Resolve returns the Identifier of n, binding it in the alias table on
// first sight. Resolving the same node (or the same literal text) again
// returns the same Identifier.
func (c *Context) Resolve(n syntax.Node) (ir.Identifier, error) {
	switch n := n.(type) {
	case *syntax.Set:
		return c.resolveAnonymous(n, func() ir.Identifier {
			return ir.SetName(c.counters.set.Next())
		}), nil
	case *syntax.OrderedSet:
		return c.resolveAnonymous(n, func() ir.Identifier {
			return ir.OrderedSetName(c.counters.oset.Next())
		}), nil
	case *syntax.Content:
		if id, ok := c.aliases.Lookup(nodeKey(n)); ok {
			return id, nil
		}
		return c.convertContent(n)
	case *syntax.SimpleIdentifier:
		return c.resolveText(n.Name), nil
	case *syntax.Alias:
		return c.resolveText(n.Name), nil
	case *syntax.URL:
		return c.resolveText(syntax.Quote(n.Value)), nil
	case *syntax.Triple:
		return c.resolveText(syntax.Render(n)), nil
	case *syntax.Keyword:
		return ir.Identifier(n.Name), nil
	case *syntax.IdentifierWithInternalList:
		return c.Resolve(n.Subject)
	case *syntax.SimpleSentence, *syntax.Sentence, *syntax.Synonym,
		*syntax.InternalGroup, *syntax.InternalListGroup:
		return "", fmt.Errorf("%s: %T: %w", n.Pos(), n, ErrNotIdentifier)
	default:
		return "", &UnknownNodeError{Node: n}
	}
}

func (c *Context) resolveAnonymous(n syntax.Node, mint func() ir.Identifier) ir.Identifier {
	key := nodeKey(n)
	if id, ok := c.aliases.Lookup(key); ok {
		return id
	}
	return c.aliases.Bind(key, mint())
}

func (c *Context) resolveText(text string) ir.Identifier {
	key := textKey(text)
	if id, ok := c.aliases.Lookup(key); ok {
		return id
	}
	return c.aliases.Bind(key, ir.Identifier(key.text))
}
