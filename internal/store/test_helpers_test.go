package store

import (
	"path/filepath"
	"testing"

	"github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"
)

// createTestStore creates a new store in a temp dir for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestDocument returns a small document with two triples and a link.
func createTestDocument() ir.Document {
	return ir.Document{
		Triples: []ir.Triple{
			{Subject: "a", Predicate: "sc_arc_main#1", Object: "b"},
			{Subject: "c", Predicate: "sc_arc_main#2", Object: `"file://data/link_1"`},
		},
		Links: []ir.Link{
			{ID: "data/link_1", Seq: 1, Payload: "hello"},
		},
		Provenance: ir.ProvenanceMap{0: "a.scs", 1: "b.scs"},
	}
}
