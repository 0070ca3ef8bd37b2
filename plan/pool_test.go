package plan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treetrip/citymap"
	"github.com/katalvlaran/treetrip/plan"
)

// sampleMap is the 7-city reference map; attractiveness by id:
// 0:6 1:2 2:7 3:5 4:6 5:5 6:2.
func sampleMap(t *testing.T) *citymap.Map {
	t.Helper()
	m, err := citymap.Build([]int{1, 3, 0, 3, 2, 4, 4}, []int{6, 2, 7, 5, 6, 5, 2})
	require.NoError(t, err)

	return m
}

func TestPool_TopTierIsNonDestructive(t *testing.T) {
	p := plan.NewPool(sampleMap(t))
	require.Equal(t, 7, p.Len())

	assert.Equal(t, []int{2}, p.TopTier())
	assert.Equal(t, []int{2}, p.TopTier())
	assert.Equal(t, 7, p.Len())

	p.Remove(2)
	assert.Equal(t, []int{0, 4}, p.TopTier())
	p.Remove(0)
	assert.Equal(t, []int{4}, p.TopTier())
}

func TestPool_PopGreater(t *testing.T) {
	p := plan.NewPool(sampleMap(t))

	assert.Nil(t, p.PopGreater(7))
	assert.Equal(t, []int{2, 0, 4}, p.PopGreater(5))
	assert.Equal(t, 4, p.Len())
	assert.False(t, p.Contains(0))
	assert.True(t, p.Contains(3))

	// nothing left above 5
	assert.Nil(t, p.PopGreater(5))
	assert.Equal(t, []int{3, 5}, p.PopGreater(2))
	assert.Equal(t, []int{1, 6}, p.TopTier())
}

func TestPool_PopGreaterSkipsRemovedRanks(t *testing.T) {
	p := plan.NewPool(sampleMap(t))
	p.Remove(0)

	assert.Equal(t, []int{2, 4}, p.PopGreater(5))
	p.Insert(0)
	assert.Equal(t, []int{0}, p.PopGreater(5))
}

func TestPool_RemoveInsertRoundTrip(t *testing.T) {
	p := plan.NewPool(sampleMap(t))
	p.RemoveAll([]int{1, 3, 6})
	assert.Equal(t, 4, p.Len())
	p.Remove(1) // absent: no-op
	assert.Equal(t, 4, p.Len())

	p.Insert(3)
	assert.True(t, p.Contains(3))
	assert.Equal(t, 5, p.Len())
}

func TestPool_CloneIsIndependent(t *testing.T) {
	p := plan.NewPool(sampleMap(t))
	c := p.Clone()

	c.PopGreater(2)
	assert.Equal(t, 7, p.Len())
	assert.Equal(t, 2, c.Len())

	p.Remove(1)
	assert.True(t, c.Contains(1))
}

func TestPool_Empty(t *testing.T) {
	m, err := citymap.Build([]int{0}, []int{1})
	require.NoError(t, err)
	p := plan.NewPool(m)

	assert.Equal(t, []int{0}, p.PopGreater(0))
	assert.True(t, p.IsEmpty())
	assert.Nil(t, p.TopTier())
	assert.Nil(t, p.PopGreater(-100))
}
