package ir

import (
	"fmt"
	"sort"
)

// Identifier is the canonical name of a graph entity.
type Identifier string

func (id Identifier) String() string { return string(id) }

// Triple is one (subject, predicate, object) assertion.
type Triple struct {
	Subject   Identifier `json:"subject"`
	Predicate Identifier `json:"predicate"`
	Object    Identifier `json:"object"`
}

// String renders the triple in SCs level-1 form without the trailing newline.
func (t Triple) String() string {
	return fmt.Sprintf("%s | %s | %s;;", t.Subject, t.Predicate, t.Object)
}

// Link is the literal payload of one content block.
type Link struct {
	ID      Identifier `json:"id"`
	Seq     int        `json:"seq"`     // numeric suffix of ID
	Payload string     `json:"payload"` // raw literal, unescaped
}

// ProvenanceMap maps a triple offset to the source file whose triples start
// there. Used only for output comments.
type ProvenanceMap map[int]string

// Record marks offset as the first triple of path. A later record at the
// same offset wins, so a file that produced no triples leaves no trace.
func (p ProvenanceMap) Record(offset int, path string) {
	p[offset] = path
}

// Offsets returns the recorded offsets in ascending order.
func (p ProvenanceMap) Offsets() []int {
	out := make([]int, 0, len(p))
	for off := range p {
		out = append(out, off)
	}
	sort.Ints(out)
	return out
}

// SourceOf returns the source file that produced the triple at index i.
func (p ProvenanceMap) SourceOf(i int) (string, bool) {
	best := -1
	for off := range p {
		if off <= i && off > best {
			best = off
		}
	}
	if best < 0 {
		return "", false
	}
	return p[best], true
}

// Document is the full result of a conversion: the triple sequence, the
// extracted payloads and the provenance of each triple run.
type Document struct {
	Triples    []Triple
	Links      []Link
	Provenance ProvenanceMap
}
