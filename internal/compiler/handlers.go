package compiler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/taxonomy"
)

// nestedMarker delimits content that is itself SCs text.
const nestedMarker = "*"

func (c *Context) convertSet(n syntax.Node, members []syntax.Member, ordered bool) (ir.Identifier, error) {
	set, err := c.Resolve(n)
	if err != nil {
		return "", err
	}
	for i, m := range members {
		obj, err := c.operand(m.Object)
		if err != nil {
			return "", err
		}
		arc := c.NewArc(taxonomy.Generic, true)
		c.Emit(set, arc, obj, false)

		if ordered {
			c.Emit(ir.OrderMarker(i+1), c.NewArc(taxonomy.Generic, true), arc, false)
		}
		for _, a := range m.Attrs {
			attr, err := c.operand(a)
			if err != nil {
				return "", err
			}
			c.Emit(attr, c.NewArc(taxonomy.Generic, true), arc, false)
		}
	}
	return set, nil
}

func (c *Context) convertSimpleSentence(n *syntax.SimpleSentence) error {
	s, err := c.operand(n.Subject)
	if err != nil {
		return err
	}
	p, err := c.operand(n.Predicate)
	if err != nil {
		return err
	}
	o, err := c.operand(n.Object)
	if err != nil {
		return err
	}
	c.Emit(s, p, o, taxonomy.IsMirrored(string(p)))
	return nil
}

func (c *Context) convertSentence(n *syntax.Sentence) error {
	subject, err := c.operand(n.Subject)
	if err != nil {
		return err
	}
	return c.relate(subject, n.Connector, n.Attrs, n.Objects)
}

func (c *Context) convertWithInternal(n *syntax.IdentifierWithInternalList) (ir.Identifier, error) {
	subject, err := c.operand(n.Subject)
	if err != nil {
		return "", err
	}
	if n.Internal == nil || n.Internal.List == nil {
		return subject, nil
	}
	for _, s := range n.Internal.List.Sentences {
		if err := c.relate(subject, s.Connector, s.Attrs, s.Objects); err != nil {
			return "", err
		}
	}
	return subject, nil
}

// relate connects subject to every object through a fresh arc of
// connector, and marks each arc with every attribute. Attributes are
// converted again for each object, after its arc.
func (c *Context) relate(subject ir.Identifier, connector string, attrs, objects []syntax.Node) error {
	mirrored := taxonomy.IsMirrored(connector)
	for _, o := range objects {
		obj, err := c.operand(o)
		if err != nil {
			return err
		}
		arc := c.NewArc(connector, true)
		c.Emit(subject, arc, obj, mirrored)
		for _, a := range attrs {
			attr, err := c.operand(a)
			if err != nil {
				return err
			}
			c.Emit(attr, c.NewArc(taxonomy.Generic, true), arc, false)
		}
	}
	return nil
}

func (c *Context) convertSynonym(n *syntax.Synonym) error {
	if alias, ok := n.Left.(*syntax.Alias); ok {
		right, err := c.operand(n.Right)
		if err != nil {
			return err
		}
		key := textKey(alias.Name)
		bound, ok := c.aliases.Lookup(key)
		if !ok {
			c.aliases.Bind(key, right)
			c.logger.Debug("bound alias", "alias", alias.Name, "id", right)
			return nil
		}
		switch {
		case bound == right:
		case bound == ir.Identifier(key.text) && c.synonyms.find(bound) == bound:
			// Used before assignment: the alias only stood for itself.
			c.synonyms.union(right, bound)
			c.logger.Debug("bound alias after use", "alias", alias.Name, "id", right)
		default:
			c.synonyms.union(bound, right)
			c.logger.Debug("declared synonyms", "keep", bound, "other", right)
		}
		return nil
	}

	left, err := c.operand(n.Left)
	if err != nil {
		return err
	}
	right, err := c.operand(n.Right)
	if err != nil {
		return err
	}
	if left != right {
		c.synonyms.union(left, right)
		c.logger.Debug("declared synonyms", "keep", left, "other", right)
	}
	return nil
}

// convertContent extracts a content block into a link. Content wrapped in
// the nested marker is first converted as a document of its own into the
// same context.
func (c *Context) convertContent(n *syntax.Content) (ir.Identifier, error) {
	if isNested(n.Value) {
		if err := c.expandContent(n); err != nil {
			return "", err
		}
	}

	seq := c.counters.link.Next()
	id := ir.LinkName(seq)
	c.links = append(c.links, ir.Link{ID: id, Seq: int(seq), Payload: n.Value})
	return c.aliases.Bind(nodeKey(n), ir.LinkRef(id)), nil
}

// expandContent converts the interior of nested content. A syntax or depth
// failure inside it is recorded as a warning and only the expansion is
// rolled back (when rollback is on); other errors are returned.
func (c *Context) expandContent(n *syntax.Content) error {
	interior := n.Value[len(nestedMarker) : len(n.Value)-len(nestedMarker)]
	start := n.Start
	start.Column += 1 + len(nestedMarker) // opening quote and marker
	c.logger.Debug("expanding nested content", "pos", n.Start.String(), "bytes", len(interior))

	cp := c.Checkpoint()
	err := c.convertText(start, []byte(interior))
	if err == nil {
		return nil
	}
	if !IsFileError(err) {
		return fmt.Errorf("content at %s: %w", n.Start, err)
	}
	if c.rollback {
		c.Rollback(cp)
	}

	var se *syntax.SyntaxError
	if errors.As(err, &se) && c.source != nil {
		se.Line = syntax.SourceLine(c.source, se.Pos.Line)
	}
	c.warnings = append(c.warnings, &ContentError{Pos: n.Start, Err: err})
	c.logger.Warn("skipping nested content", "pos", n.Start.String(), "error", err)
	return nil
}

func isNested(v string) bool {
	return len(v) >= 2*len(nestedMarker) &&
		strings.HasPrefix(v, nestedMarker) && strings.HasSuffix(v, nestedMarker)
}
