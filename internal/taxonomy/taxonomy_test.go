package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		conn string
		want string
	}{
		{"->", ArcMain},
		{"<-", ArcMain},
		{">", ArcCommon},
		{"=>", ArcCommon},
		{"<>", Edge},
		{"<=>", Edge},
		{"..>", ArcAccess},
		{"_</~", ArcAccess},
	}
	for _, tt := range tests {
		got, ok := Category(tt.conn)
		require.True(t, ok, tt.conn)
		assert.Equal(t, tt.want, got, tt.conn)
	}

	_, ok := Category("=")
	assert.False(t, ok, "synonym is not an arc connector")
}

func TestKeynode(t *testing.T) {
	k, ok := Keynode("=>")
	require.True(t, ok)
	assert.Equal(t, "sc_arc_common_const", k)

	k, ok = Keynode("_<=>")
	require.True(t, ok)
	assert.Equal(t, "sc_edge_var", k)

	_, ok = Keynode("->")
	assert.False(t, ok, "-> has no keynode")
}

func TestEveryKeynodeConnectorHasCategory(t *testing.T) {
	for conn := range keynodes {
		_, ok := Category(conn)
		assert.True(t, ok, "%s has a keynode but no category", conn)
	}
}

func TestMirroredCounterparts(t *testing.T) {
	for conn := range mirrored {
		cp := Counterpart(conn)
		assert.NotEqual(t, conn, cp, "%s has no counterpart", conn)
		assert.False(t, IsMirrored(cp), "counterpart %s of %s is itself mirrored", cp, conn)

		gotCat, _ := Category(conn)
		wantCat, _ := Category(cp)
		assert.Equal(t, wantCat, gotCat, "%s and %s differ in category", conn, cp)

		gotKey, gotOK := Keynode(conn)
		wantKey, wantOK := Keynode(cp)
		assert.Equal(t, wantOK, gotOK, conn)
		assert.Equal(t, wantKey, gotKey, conn)
	}

	assert.Equal(t, "->", Counterpart("->"))
}

func TestMatchConnectorLongestFirst(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"<=> b", "<=>"},
		{"<= b", "<="},
		{"< b", "<"},
		{"_<|~ x", "_<|~"},
		{"..>x", "..>"},
	}
	for _, tt := range tests {
		got, ok := MatchConnector(tt.input)
		require.True(t, ok, tt.input)
		assert.Equal(t, tt.want, got)
	}

	_, ok := MatchConnector("abc")
	assert.False(t, ok)
	_, ok = MatchConnector("| b")
	assert.False(t, ok)
}

func TestConnectorsIsACopy(t *testing.T) {
	c := Connectors()
	require.NotEmpty(t, c)
	c[0] = "mutated"
	assert.NotEqual(t, "mutated", Connectors()[0])
}
