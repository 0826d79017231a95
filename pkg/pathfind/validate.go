package pathfind

import (
	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// DefaultResolution is the grid cell size, in feet, used by
// ValidateAllRoomsReachable.
const DefaultResolution = 0.5

// snapRadius bounds the BFS used to pull an unwalkable start/goal cell onto
// the nearest walkable one.
const snapRadius = 20 // 10 ft at 0.5 ft/cell

// RoomRef is the minimal room view the reachability validator needs.
type RoomRef struct {
	ID     string
	Name   string
	Type   roomtype.Type
	Bounds geometry.Rect
}

// Door is an explicit opening connecting a room to circulation space.
type Door struct {
	RoomID string
	Point  geometry.Point
}

// PathResult is the outcome of searching from the entry to one room.
type PathResult struct {
	Found          bool
	Path           []geometry.Point
	Distance       float64
	RoomsTraversed []string
	DoorsUsed      []string
}

// ValidationResult is the full reachability report across every room.
type ValidationResult struct {
	AllReachable bool
	Reachable    []string
	Unreachable  []string
	Results      map[string]PathResult
}

func rectPolygon(r geometry.Rect) []geometry.Point {
	return []geometry.Point{
		{X: r.MinX, Y: r.MinY}, {X: r.MaxX, Y: r.MinY}, {X: r.MaxX, Y: r.MaxY}, {X: r.MinX, Y: r.MaxY},
	}
}

func isPublicWalkable(t roomtype.Type) bool {
	switch roomtype.AccessOf(t) {
	case roomtype.Hub, roomtype.Shared, roomtype.Service:
		return true
	default:
		return false
	}
}

func findRoom(rooms []RoomRef, name string) (RoomRef, bool) {
	for _, r := range rooms {
		if r.Name == name {
			return r, true
		}
	}
	return RoomRef{}, false
}

// ValidateAllRoomsReachable searches from entryName to every other room in
// rooms. Walkable space for every search is: circulation (hallway and
// junction polygons), rooms whose AccessType is hub, shared, or service,
// plus the entry room and the specific target room even when private --
// this is what prevents one bedroom being traversed to reach another.
func ValidateAllRoomsReachable(rooms []RoomRef, circulation [][]geometry.Point, doors []Door, entryName string) ValidationResult {
	result := ValidationResult{Results: map[string]PathResult{}, AllReachable: true}

	entry, ok := findRoom(rooms, entryName)
	if !ok {
		result.AllReachable = false
		for _, r := range rooms {
			if r.Name != entryName {
				result.Unreachable = append(result.Unreachable, r.Name)
				result.Results[r.Name] = PathResult{Found: false}
			}
		}
		return result
	}

	base := append([][]geometry.Point(nil), circulation...)
	for _, r := range rooms {
		if isPublicWalkable(r.Type) {
			base = append(base, rectPolygon(r.Bounds))
		}
	}

	for _, target := range rooms {
		if target.Name == entryName {
			continue
		}
		walkable := append([][]geometry.Point(nil), base...)
		walkable = append(walkable, rectPolygon(entry.Bounds), rectPolygon(target.Bounds))

		grid := NewGrid(walkable, nil, DefaultResolution)
		startCell := cellOf(grid, entry.Bounds.Center())
		goalCell := cellOf(grid, target.Bounds.Center())

		start, startOK := grid.NearestWalkable(startCell, snapRadius)
		goal, goalOK := grid.NearestWalkable(goalCell, snapRadius)

		if !startOK || !goalOK {
			result.AllReachable = false
			result.Unreachable = append(result.Unreachable, target.Name)
			result.Results[target.Name] = PathResult{Found: false}
			continue
		}

		path, found := AStar(grid, start, goal)
		if !found {
			result.AllReachable = false
			result.Unreachable = append(result.Unreachable, target.Name)
			result.Results[target.Name] = PathResult{Found: false}
			continue
		}

		result.Reachable = append(result.Reachable, target.Name)
		result.Results[target.Name] = PathResult{
			Found:          true,
			Path:           path.Points,
			Distance:       path.Distance,
			RoomsTraversed: roomsTraversed(rooms, path.Points, entryName, target.Name),
			DoorsUsed:      doorsUsed(doors, path.Points, grid.Resolution),
		}
	}

	return result
}

func cellOf(grid *Grid, p geometry.Point) Cell {
	return Cell{
		X: int((p.X - grid.OriginX) / grid.Resolution),
		Y: int((p.Y - grid.OriginY) / grid.Resolution),
	}
}

func roomsTraversed(rooms []RoomRef, points []geometry.Point, entryName, targetName string) []string {
	seen := map[string]bool{}
	var out []string
	for _, r := range rooms {
		if r.Name == entryName || r.Name == targetName {
			continue
		}
		for _, p := range points {
			if r.Bounds.Contains(p) {
				if !seen[r.Name] {
					seen[r.Name] = true
					out = append(out, r.Name)
				}
				break
			}
		}
	}
	return out
}

func doorsUsed(doors []Door, points []geometry.Point, resolution float64) []string {
	var out []string
	for _, d := range doors {
		for _, p := range points {
			if p.Dist(d.Point) <= resolution {
				out = append(out, d.RoomID)
				break
			}
		}
	}
	return out
}
