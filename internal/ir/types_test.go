package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripleString(t *testing.T) {
	tr := Triple{Subject: "x", Predicate: "sc_arc_main#1", Object: "y"}
	assert.Equal(t, "x | sc_arc_main#1 | y;;", tr.String())
}

func TestSyntheticNames(t *testing.T) {
	assert.Equal(t, Identifier(".set_3"), SetName(3))
	assert.Equal(t, Identifier(".oset_1"), OrderedSetName(1))
	assert.Equal(t, Identifier("sc_arc_main#7"), ArcName("sc_arc_main", 7))
	assert.Equal(t, Identifier(".arc_2"), ArcName("", 2))
	assert.Equal(t, Identifier("data/link_4"), LinkName(4))
	assert.Equal(t, Identifier(`"file://data/link_4"`), LinkRef(LinkName(4)))
	assert.Equal(t, Identifier("2_"), OrderMarker(2))
}

func TestProvenanceMap(t *testing.T) {
	p := ProvenanceMap{}
	p.Record(0, "a.scs")
	p.Record(3, "b.scs")
	p.Record(3, "c.scs") // b.scs produced nothing
	p.Record(8, "d.scs")

	assert.Equal(t, []int{0, 3, 8}, p.Offsets())

	tests := []struct {
		index int
		want  string
	}{
		{0, "a.scs"},
		{2, "a.scs"},
		{3, "c.scs"},
		{7, "c.scs"},
		{8, "d.scs"},
		{100, "d.scs"},
	}
	for _, tt := range tests {
		got, ok := p.SourceOf(tt.index)
		assert.True(t, ok)
		assert.Equal(t, tt.want, got, "index %d", tt.index)
	}

	_, ok := ProvenanceMap{5: "x"}.SourceOf(1)
	assert.False(t, ok)
}
