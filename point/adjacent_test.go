package point

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllAdjacentOrder(t *testing.T) {
	expected := []Point{{1, 0}, {0, -1}, {-1, 0}, {0, 1}}
	assert.Equal(t, expected, Origin.AllAdjacent())

	expected = []Point{{6, 5}, {5, 4}, {4, 5}, {5, 6}}
	assert.Equal(t, expected, New(5, 5).AllAdjacent())
}

func TestAllAdjacentAreOrthogonalNeighbours(t *testing.T) {
	for _, p := range samplePoints {
		adj := p.AllAdjacent()
		require.Len(t, adj, 4)

		seen := map[Point]bool{}
		for _, a := range adj {
			assert.Equal(t, int32(1), p.ManhattanDist(a), "%v -> %v", p, a)
			d := a.Sub(p)
			assert.True(t, (d.X == 0) != (d.Y == 0), "%v differs on exactly one axis", d)
			seen[a] = true
		}
		assert.Len(t, seen, 4)
	}
}

func TestAllAdjacentDiagonal(t *testing.T) {
	expected := []Point{
		{-1, -1}, {-1, 0}, {-1, 1},
		{0, -1}, {0, 1},
		{1, -1}, {1, 0}, {1, 1},
	}
	assert.Equal(t, expected, Origin.AllAdjacentDiagonal())

	p := New(10, -3)
	for _, a := range p.AllAdjacentDiagonal() {
		d := a.Sub(p)
		assert.NotEqual(t, Origin, d)
		assert.LessOrEqual(t, d.X*d.X, int32(1))
		assert.LessOrEqual(t, d.Y*d.Y, int32(1))
	}
	assert.Subset(t, p.AllAdjacentDiagonal(), p.AllAdjacent())
}

func TestAdjacentBounds(t *testing.T) {
	adj := Origin.Adjacent(3, 3)
	require.Len(t, adj, 4)

	require.NotNil(t, adj[0])
	assert.Equal(t, New(1, 0), *adj[0])
	assert.Nil(t, adj[1])
	assert.Nil(t, adj[2])
	require.NotNil(t, adj[3])
	assert.Equal(t, New(0, 1), *adj[3])

	// middle of the grid, all four present and in AllAdjacent order
	mid := New(1, 1)
	adj = mid.Adjacent(3, 3)
	for i, a := range mid.AllAdjacent() {
		require.NotNil(t, adj[i])
		assert.Equal(t, a, *adj[i])
	}

	// far corner
	adj = New(2, 2).Adjacent(3, 3)
	assert.Nil(t, adj[0])
	assert.NotNil(t, adj[1])
	assert.NotNil(t, adj[2])
	assert.Nil(t, adj[3])
}

func TestBoundsCheck(t *testing.T) {
	tests := []struct {
		p          Point
		maxX, maxY int32
		expected   bool
	}{
		{New(4, 5), 10, 10, true},
		{New(4, 5), 4, 10, false},
		{New(-4, 5), 10, 10, false},
		{New(4, -5), 10, 10, false},
		{New(0, 0), 1, 1, true},
		{New(0, 0), 0, 0, false},
		{New(9, 9), 10, 10, true},
		{New(9, 10), 10, 10, false},
	}

	for _, tt := range tests {
		result := tt.p.BoundsCheck(tt.maxX, tt.maxY)
		if result != tt.expected {
			t.Errorf("%v.BoundsCheck(%d, %d) = %v; want %v", tt.p, tt.maxX, tt.maxY, result, tt.expected)
		}
	}
}
