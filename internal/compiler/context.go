package compiler

import (
	"io"
	"log/slog"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
	"github.com/AlesiaSk/OSTIS-UI-Core/internal/syntax"
)

// Parser is the front-end contract: text in, forest out. start is the
// position of the first byte of src in its file. Failures must be
// *syntax.SyntaxError.
type Parser interface {
	ParseAt(start syntax.Pos, src []byte) (syntax.Forest, error)
}

// Context is one conversion context: every piece of state a run mutates.
//
// A Context is not safe for concurrent use. Nested content expansion
// borrows the same Context rather than a copy.
type Context struct {
	aliases    *AliasTable
	synonyms   *synonymSet
	triples    []ir.Triple
	links      []ir.Link
	provenance ir.ProvenanceMap
	counters   counters
	warnings   []error

	// source is the top-level text being converted, used to quote the
	// offending line of errors inside nested content.
	source []byte

	parser   Parser
	guard    *DepthGuard
	rollback bool
	logger   *slog.Logger
}

// Option configures a Context.
type Option func(*Context)

// WithParser replaces the front end used for files and nested content.
func WithParser(p Parser) Option {
	return func(c *Context) {
		c.parser = p
	}
}

// WithMaxDepth sets the recursion limit of the tree-walk and of the default
// parser.
//
// Default: 256 (DefaultMaxDepth)
func WithMaxDepth(maxDepth int) Option {
	return func(c *Context) {
		if maxDepth > 0 {
			c.guard = NewDepthGuard(maxDepth)
		}
	}
}

// WithRollback controls whether a file that fails part-way is rolled back
// to the state before it. Default: true. With false, triples already
// emitted by the failing file are kept.
func WithRollback(enabled bool) Option {
	return func(c *Context) {
		c.rollback = enabled
	}
}

// WithLogger sets the logger for progress and diagnostics.
// Default: a logger that discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Context) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty conversion context.
func New(opts ...Option) *Context {
	c := &Context{
		aliases:    NewAliasTable(),
		synonyms:   newSynonymSet(),
		provenance: ir.ProvenanceMap{},
		guard:      NewDepthGuard(DefaultMaxDepth),
		rollback:   true,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.parser == nil {
		c.parser = syntax.Parser{MaxDepth: c.guard.MaxDepth()}
	}
	return c
}

// Len returns the number of triples accumulated so far.
func (c *Context) Len() int {
	return len(c.triples)
}

// Triples returns a copy of the triple sequence with declared synonyms
// folded to their representatives.
func (c *Context) Triples() []ir.Triple {
	out := make([]ir.Triple, len(c.triples))
	for i, t := range c.triples {
		if c.synonyms.empty() {
			out[i] = t
			continue
		}
		out[i] = c.synonyms.apply(t)
	}
	return out
}

// Links returns a copy of the extracted link payloads in creation order.
func (c *Context) Links() []ir.Link {
	out := make([]ir.Link, len(c.links))
	copy(out, c.links)
	return out
}

// Provenance returns a copy of the provenance map.
func (c *Context) Provenance() ir.ProvenanceMap {
	out := make(ir.ProvenanceMap, len(c.provenance))
	for k, v := range c.provenance {
		out[k] = v
	}
	return out
}

// Document returns the current conversion result.
func (c *Context) Document() ir.Document {
	return ir.Document{
		Triples:    c.Triples(),
		Links:      c.Links(),
		Provenance: c.Provenance(),
	}
}

// Warnings returns the failures inside nested content that were reported
// and skipped, in the order they occurred.
func (c *Context) Warnings() []error {
	out := make([]error, len(c.warnings))
	copy(out, c.warnings)
	return out
}

// Aliases exposes the alias table for inspection.
func (c *Context) Aliases() *AliasTable {
	return c.aliases
}
