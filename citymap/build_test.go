package citymap_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treetrip/citymap"
)

// sampleParents / sampleAttr describe the 7-city reference map:
//
//	3 ─ 1 ─ 0 ─ 2 ─ 4 ─ 5
//	                └── 6
var (
	sampleParents = []int{1, 3, 0, 3, 2, 4, 4}
	sampleAttr    = []int{6, 2, 7, 5, 6, 5, 2}
)

func TestBuild_SampleMap(t *testing.T) {
	m, err := citymap.Build(sampleParents, sampleAttr)
	require.NoError(t, err)

	assert.Equal(t, 7, m.Len())
	assert.Equal(t, []int{2}, m.MaxTier())
	assert.Equal(t, 7, m.MaxAttractiveness())
	assert.Equal(t, sampleAttr, m.Attractivenesses())
	assert.Len(t, m.Edges(), 6)

	// Adjacency is symmetric and in road insertion order.
	assert.Equal(t, []int{1, 2}, m.Neighbors(0))
	assert.Equal(t, []int{2, 5, 6}, m.Neighbors(4))
	assert.Equal(t, []int{1}, m.Neighbors(3))

	n := m.Node(4)
	assert.Equal(t, 4, n.ID)
	assert.Equal(t, 6, n.Attractiveness)
}

func TestBuild_AccessorsReturnCopies(t *testing.T) {
	m, err := citymap.Build(sampleParents, sampleAttr)
	require.NoError(t, err)

	nb := m.Neighbors(4)
	nb[0] = 99
	tier := m.MaxTier()
	tier[0] = 99
	node := m.Node(0)
	node.Neighbors[0] = 99

	assert.Equal(t, []int{2, 5, 6}, m.Neighbors(4))
	assert.Equal(t, []int{2}, m.MaxTier())
	assert.Equal(t, []int{1, 2}, m.Neighbors(0))
}

func TestBuild_MaxTierCollectsTies(t *testing.T) {
	// star centred on 0; leaves 1..4, two of them share the top value
	m, err := citymap.Build([]int{0, 0, 0, 0, 0}, []int{1, 9, 3, 9, 2})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, m.MaxTier())

	// a later, higher value resets the tier
	m, err = citymap.Build([]int{0, 0, 1}, []int{4, 4, 5})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, m.MaxTier())
}

func TestBuild_SingleCity(t *testing.T) {
	m, err := citymap.Build([]int{0}, []int{-3})
	require.NoError(t, err)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []int{0}, m.MaxTier())
	assert.Empty(t, m.Edges())
}

func TestBuild_Errors(t *testing.T) {
	cases := []struct {
		name    string
		parents []int
		attr    []int
		want    error
	}{
		{"empty", nil, nil, citymap.ErrEmptyMap},
		{"length mismatch", []int{0, 0}, []int{1}, citymap.ErrLengthMismatch},
		{"attr without parents", nil, []int{1}, citymap.ErrLengthMismatch},
		{"negative parent", []int{0, -1}, []int{1, 1}, citymap.ErrParentOutOfRange},
		{"parent too large", []int{0, 5}, []int{1, 1}, citymap.ErrParentOutOfRange},
		{"repeated road", []int{1, 0}, []int{1, 1}, citymap.ErrNotTree},
		{"cycle", []int{1, 2, 0}, []int{1, 1, 1}, citymap.ErrNotTree},
		{"disconnected", []int{0, 1, 1}, []int{1, 1, 1}, citymap.ErrNotTree},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, err := citymap.Build(tc.parents, tc.attr)
			assert.Nil(t, m)
			require.ErrorIs(t, err, tc.want)
			assert.True(t, strings.HasPrefix(err.Error(), "citymap: Build: "), err.Error())
		})
	}
}
