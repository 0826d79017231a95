package pathfind

import (
	"container/heap"
	"math"

	"github.com/arxflow/floorplan/pkg/geometry"
)

// Path is the result of a successful AStar search.
type Path struct {
	Cells    []Cell
	Points   []geometry.Point
	Distance float64
}

const sqrt2 = math.Sqrt2

type openItem struct {
	cell  Cell
	g     float64
	f     float64
	index int
}

type openQueue []*openItem

func (q openQueue) Len() int            { return len(q) }
func (q openQueue) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q openQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index = i; q[j].index = j }
func (q *openQueue) Push(x interface{}) {
	item := x.(*openItem)
	item.index = len(*q)
	*q = append(*q, item)
}
func (q *openQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}

func heuristic(grid *Grid, a, b Cell) float64 {
	return grid.CellCenter(a).Dist(grid.CellCenter(b))
}

func moveCost(grid *Grid, dx, dy int) float64 {
	if dx != 0 && dy != 0 {
		return sqrt2 * grid.Resolution
	}
	return grid.Resolution
}

// AStar finds the minimum-cost 8-connected path from start to goal over
// grid: cardinal moves cost resolution, diagonal moves cost
// sqrt2*resolution, and a diagonal move is only legal when both adjacent
// cardinal cells are walkable (no corner cutting). The open set is a
// binary min-heap keyed on f=g+h with decrease-key support; the closed set
// is a plain map keyed on Cell.
func AStar(grid *Grid, start, goal Cell) (Path, bool) {
	if !grid.Walkable(start) || !grid.Walkable(goal) {
		return Path{}, false
	}
	if start == goal {
		return Path{Cells: []Cell{start}, Points: []geometry.Point{grid.CellCenter(start)}}, true
	}

	open := &openQueue{}
	heap.Init(open)
	openIndex := map[Cell]*openItem{}
	closed := map[Cell]bool{}
	cameFrom := map[Cell]Cell{}

	startItem := &openItem{cell: start, g: 0, f: heuristic(grid, start, goal)}
	heap.Push(open, startItem)
	openIndex[start] = startItem

	dirs := [8][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}

	for open.Len() > 0 {
		current := heap.Pop(open).(*openItem)
		delete(openIndex, current.cell)
		if current.cell == goal {
			return reconstruct(grid, cameFrom, current.cell, current.g), true
		}
		closed[current.cell] = true

		for _, d := range dirs {
			next := Cell{X: current.cell.X + d[0], Y: current.cell.Y + d[1]}
			if closed[next] || !grid.Walkable(next) {
				continue
			}
			if d[0] != 0 && d[1] != 0 {
				if !grid.Walkable(Cell{X: current.cell.X + d[0], Y: current.cell.Y}) ||
					!grid.Walkable(Cell{X: current.cell.X, Y: current.cell.Y + d[1]}) {
					continue
				}
			}
			tentativeG := current.g + moveCost(grid, d[0], d[1])

			if existing, ok := openIndex[next]; ok {
				if tentativeG < existing.g {
					existing.g = tentativeG
					existing.f = tentativeG + heuristic(grid, next, goal)
					cameFrom[next] = current.cell
					heap.Fix(open, existing.index)
				}
				continue
			}

			cameFrom[next] = current.cell
			item := &openItem{cell: next, g: tentativeG, f: tentativeG + heuristic(grid, next, goal)}
			heap.Push(open, item)
			openIndex[next] = item
		}
	}

	return Path{}, false
}

func reconstruct(grid *Grid, cameFrom map[Cell]Cell, goal Cell, distance float64) Path {
	cells := []Cell{goal}
	cur := goal
	for {
		prev, ok := cameFrom[cur]
		if !ok {
			break
		}
		cells = append(cells, prev)
		cur = prev
	}
	for i, j := 0, len(cells)-1; i < j; i, j = i+1, j-1 {
		cells[i], cells[j] = cells[j], cells[i]
	}
	points := make([]geometry.Point, len(cells))
	for i, c := range cells {
		points[i] = grid.CellCenter(c)
	}
	return Path{Cells: cells, Points: points, Distance: distance}
}
