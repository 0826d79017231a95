package pathfind

import (
	"testing"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(minX, minY, maxX, maxY float64) []geometry.Point {
	return []geometry.Point{{X: minX, Y: minY}, {X: maxX, Y: minY}, {X: maxX, Y: maxY}, {X: minX, Y: maxY}}
}

func TestNewGridMarksInteriorWalkable(t *testing.T) {
	g := NewGrid([][]geometry.Point{square(0, 0, 10, 10)}, nil, 1.0)
	center := Cell{X: g.Cols / 2, Y: g.Rows / 2}
	assert.True(t, g.Walkable(center))
}

func TestNewGridObstacleBlocksCell(t *testing.T) {
	g := NewGrid([][]geometry.Point{square(0, 0, 10, 10)}, [][]geometry.Point{square(4, 4, 6, 6)}, 1.0)
	c := cellOf(g, geometry.Point{X: 5, Y: 5})
	assert.False(t, g.Walkable(c))
}

func TestNewGridOutsidePolygonUnwalkable(t *testing.T) {
	g := NewGrid([][]geometry.Point{square(0, 0, 10, 10)}, nil, 1.0)
	assert.False(t, g.Walkable(Cell{X: -1, Y: 0}))
}

func TestNearestWalkableFindsClosestCell(t *testing.T) {
	g := NewGrid([][]geometry.Point{square(0, 0, 10, 10)}, nil, 1.0)
	unwalkable := Cell{X: -3, Y: 5}
	found, ok := g.NearestWalkable(unwalkable, 10)
	require.True(t, ok)
	assert.True(t, g.Walkable(found))
}

func TestNearestWalkableGivesUpBeyondRadius(t *testing.T) {
	g := NewGrid([][]geometry.Point{square(0, 0, 10, 10)}, nil, 1.0)
	_, ok := g.NearestWalkable(Cell{X: -500, Y: -500}, 2)
	assert.False(t, ok)
}
