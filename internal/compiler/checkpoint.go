package compiler

// Checkpoint is a restorable position of a Context. Everything a Context
// accumulates is append-only, so a checkpoint is a set of lengths plus the
// counters.
type Checkpoint struct {
	triples  int
	links    int
	aliases  int
	synonyms int
	counters counters

	// provenance entry at the triple offset, which the next file record
	// may overwrite
	provPath   string
	provExists bool
}

// Checkpoint captures the current state.
func (c *Context) Checkpoint() Checkpoint {
	path, ok := c.provenance[len(c.triples)]
	return Checkpoint{
		triples:    len(c.triples),
		links:      len(c.links),
		aliases:    c.aliases.Len(),
		synonyms:   c.synonyms.Len(),
		counters:   c.counters,
		provPath:   path,
		provExists: ok,
	}
}

// Rollback restores the state captured by cp, discarding every triple,
// link, binding and synonym added since and rewinding the counters.
func (c *Context) Rollback(cp Checkpoint) {
	c.triples = c.triples[:cp.triples]
	c.links = c.links[:cp.links]
	c.aliases.truncate(cp.aliases)
	c.synonyms.truncate(cp.synonyms)
	c.counters = cp.counters
	for off := range c.provenance {
		if off > cp.triples {
			delete(c.provenance, off)
		}
	}
	if cp.provExists {
		c.provenance[cp.triples] = cp.provPath
	} else {
		delete(c.provenance, cp.triples)
	}
}
