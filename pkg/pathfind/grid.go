package pathfind

import (
	"math"

	"github.com/arxflow/floorplan/pkg/geometry"
)

// Cell is an integer grid coordinate.
type Cell struct {
	X, Y int
}

// Grid is a uniform rasterization of the union AABB of a set of walkable
// polygons, minus any obstacle polygons, at a fixed resolution (feet per
// cell). A cell is walkable if its center lies inside any walkable polygon
// and inside no obstacle polygon.
type Grid struct {
	Resolution float64
	OriginX    float64
	OriginY    float64
	Cols       int
	Rows       int
	walkable   []bool
}

// NewGrid rasterizes walkable at the given resolution (feet/cell), treating
// any cell whose center falls inside an obstacle polygon as unwalkable even
// if it also falls inside a walkable polygon.
func NewGrid(walkable, obstacles [][]geometry.Point, resolution float64) *Grid {
	if resolution <= 0 {
		resolution = 0.5
	}

	var all []geometry.Point
	for _, poly := range walkable {
		all = append(all, poly...)
	}
	bounds := geometry.BoundsOf(all)

	cols := int(math.Ceil(bounds.Width()/resolution)) + 1
	rows := int(math.Ceil(bounds.Height()/resolution)) + 1
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	g := &Grid{
		Resolution: resolution,
		OriginX:    bounds.MinX,
		OriginY:    bounds.MinY,
		Cols:       cols,
		Rows:       rows,
		walkable:   make([]bool, cols*rows),
	}

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			center := g.CellCenter(Cell{X: x, Y: y})
			in := false
			for _, poly := range walkable {
				if geometry.PointInPolygon(center, poly) {
					in = true
					break
				}
			}
			if in {
				for _, poly := range obstacles {
					if geometry.PointInPolygon(center, poly) {
						in = false
						break
					}
				}
			}
			g.walkable[y*cols+x] = in
		}
	}
	return g
}

// CellCenter returns the world-space center point of c.
func (g *Grid) CellCenter(c Cell) geometry.Point {
	return geometry.Point{
		X: g.OriginX + (float64(c.X)+0.5)*g.Resolution,
		Y: g.OriginY + (float64(c.Y)+0.5)*g.Resolution,
	}
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Cols && c.Y >= 0 && c.Y < g.Rows
}

// Walkable reports whether c is both in bounds and walkable.
func (g *Grid) Walkable(c Cell) bool {
	if !g.InBounds(c) {
		return false
	}
	return g.walkable[c.Y*g.Cols+c.X]
}

// NearestWalkable finds the closest walkable cell to start by BFS, up to
// maxRadius rings out. Returns start itself (and true) if it is already
// walkable.
func (g *Grid) NearestWalkable(start Cell, maxRadius int) (Cell, bool) {
	if g.Walkable(start) {
		return start, true
	}
	visited := map[Cell]bool{start: true}
	frontier := []Cell{start}
	for r := 0; r < maxRadius; r++ {
		var next []Cell
		for _, c := range frontier {
			for _, n := range neighbors8(c) {
				if visited[n] {
					continue
				}
				visited[n] = true
				if g.Walkable(n) {
					return n, true
				}
				next = append(next, n)
			}
		}
		frontier = next
		if len(frontier) == 0 {
			break
		}
	}
	return Cell{}, false
}

func neighbors8(c Cell) []Cell {
	return []Cell{
		{c.X + 1, c.Y}, {c.X - 1, c.Y}, {c.X, c.Y + 1}, {c.X, c.Y - 1},
		{c.X + 1, c.Y + 1}, {c.X + 1, c.Y - 1}, {c.X - 1, c.Y + 1}, {c.X - 1, c.Y - 1},
	}
}
