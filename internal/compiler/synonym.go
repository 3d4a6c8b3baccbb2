package compiler

import "github.com/AlesiaSk/OSTIS-UI-Core/internal/ir"

// synonymSet is a union-find over Identifiers declared equivalent with
// "a = b;;". The representative of a class is the left-hand operand of the
// first declaration that formed it.
type synonymSet struct {
	parent map[ir.Identifier]ir.Identifier
	unions [][2]ir.Identifier
}

func newSynonymSet() *synonymSet {
	return &synonymSet{parent: make(map[ir.Identifier]ir.Identifier)}
}

// find returns the representative of id.
func (s *synonymSet) find(id ir.Identifier) ir.Identifier {
	root := id
	for {
		p, ok := s.parent[root]
		if !ok || p == root {
			break
		}
		root = p
	}
	// Path compression.
	for id != root {
		next := s.parent[id]
		s.parent[id] = root
		id = next
	}
	return root
}

// union merges the classes of keep and other under keep's representative.
func (s *synonymSet) union(keep, other ir.Identifier) {
	s.unions = append(s.unions, [2]ir.Identifier{keep, other})
	s.link(keep, other)
}

func (s *synonymSet) link(keep, other ir.Identifier) {
	rk, ro := s.find(keep), s.find(other)
	if rk == ro {
		return
	}
	s.parent[ro] = rk
}

// empty reports whether no synonyms were declared.
func (s *synonymSet) empty() bool { return len(s.unions) == 0 }

// Len returns the number of declarations recorded.
func (s *synonymSet) Len() int { return len(s.unions) }

// truncate forgets every declaration after the first n by rebuilding the
// forest from the surviving ones.
func (s *synonymSet) truncate(n int) {
	kept := s.unions[:n]
	s.parent = make(map[ir.Identifier]ir.Identifier)
	s.unions = kept
	for _, u := range kept {
		s.link(u[0], u[1])
	}
}

// apply rewrites every Identifier of a triple to its representative.
func (s *synonymSet) apply(t ir.Triple) ir.Triple {
	return ir.Triple{
		Subject:   s.find(t.Subject),
		Predicate: s.find(t.Predicate),
		Object:    s.find(t.Object),
	}
}
