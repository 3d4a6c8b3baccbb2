package compiler

import (
	"fmt"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
)

// ConvertForest converts the top-level statements of one document in order.
func (c *Context) ConvertForest(forest syntax.Forest) error {
	for _, n := range forest {
		if _, err := c.convert(n); err != nil {
			return err
		}
	}
	return nil
}

// ConvertSource parses src with the context's parser and converts the
// result into the context. name labels positions in errors.
func (c *Context) ConvertSource(name string, src []byte) error {
	prev := c.source
	c.source = src
	defer func() { c.source = prev }()

	return c.convertText(syntax.Pos{File: name, Line: 1, Column: 1}, src)
}

// convertText parses src as text starting at start and converts it.
func (c *Context) convertText(start syntax.Pos, src []byte) error {
	forest, err := c.parser.ParseAt(start, src)
	if err != nil {
		return err
	}
	return c.ConvertForest(forest)
}

// ConvertFile converts one source file. The file's provenance is recorded
// at the current triple count. On a syntax or depth error the context is
// rolled back to its state before the file, unless rollback is disabled.
func (c *Context) ConvertFile(path string, src []byte) error {
	cp := c.Checkpoint()
	c.provenance.Record(len(c.triples), path)

	err := c.ConvertSource(path, src)
	if err != nil && c.rollback && IsFileError(err) {
		c.Rollback(cp)
		c.logger.Debug("rolled back file", "path", path, "triples", len(c.triples))
	}
	return err
}

// convert lowers one node and returns its Identifier. Statement kinds
// return an empty Identifier.
func (c *Context) convert(n syntax.Node) (ir.Identifier, error) {
	if err := c.guard.Enter(n); err != nil {
		return "", err
	}
	defer c.guard.Leave()

	switch n := n.(type) {
	case *syntax.Alias, *syntax.Keyword, *syntax.SimpleIdentifier,
		*syntax.URL, *syntax.Triple, *syntax.Content:
		return c.Resolve(n)
	case *syntax.Set:
		return c.convertSet(n, n.Members, false)
	case *syntax.OrderedSet:
		return c.convertSet(n, n.Members, true)
	case *syntax.SimpleSentence:
		return "", c.convertSimpleSentence(n)
	case *syntax.Sentence:
		return "", c.convertSentence(n)
	case *syntax.Synonym:
		return "", c.convertSynonym(n)
	case *syntax.IdentifierWithInternalList:
		return c.convertWithInternal(n)
	case *syntax.InternalGroup, *syntax.InternalListGroup:
		// Only meaningful under an IdentifierWithInternalList.
		return "", nil
	default:
		return "", &UnknownNodeError{Node: n}
	}
}

// operand converts n and requires it to denote an entity.
func (c *Context) operand(n syntax.Node) (ir.Identifier, error) {
	id, err := c.convert(n)
	if err != nil {
		return "", err
	}
	if id == "" {
		return "", fmt.Errorf("%s: %T: %w", n.Pos(), n, ErrNotIdentifier)
	}
	return id, nil
}
