package traffic

import (
	"fmt"
	"math"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

const wallTouchTolerance = 1.0

// RoomRef is the minimal view of a placed room traffic-path detection
// needs.
type RoomRef struct {
	ID       string
	Name     string
	Type     roomtype.Type
	Centroid geometry.Point
	Bounds   geometry.Rect
}

// OpenPlanCluster is a contiguous group of shared-access rooms.
type OpenPlanCluster struct {
	ID     string
	Rooms  []RoomRef
	Bounds geometry.Rect
}

func wallsTouch(a, b geometry.Rect) bool {
	xTouch := math.Abs(a.MaxX-b.MinX) <= wallTouchTolerance || math.Abs(b.MaxX-a.MinX) <= wallTouchTolerance
	yOverlap := a.MinY < b.MaxY && b.MinY < a.MaxY
	if xTouch && yOverlap {
		return true
	}
	yTouch := math.Abs(a.MaxY-b.MinY) <= wallTouchTolerance || math.Abs(b.MaxY-a.MinY) <= wallTouchTolerance
	xOverlap := a.MinX < b.MaxX && b.MinX < a.MaxX
	return yTouch && xOverlap
}

// DetectOpenPlanClusters groups open-plan rooms (kitchen, living, dining,
// family, great_room) into connected components of wall-touching
// neighbours.
func DetectOpenPlanClusters(rooms []RoomRef) []OpenPlanCluster {
	var openPlan []RoomRef
	for _, r := range rooms {
		if roomtype.IsOpenPlan(r.Type) {
			openPlan = append(openPlan, r)
		}
	}

	n := len(openPlan)
	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if wallsTouch(openPlan[i].Bounds, openPlan[j].Bounds) {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	visited := make([]bool, n)
	var clusters []OpenPlanCluster
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		queue := []int{i}
		visited[i] = true
		var members []RoomRef
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			members = append(members, openPlan[cur])
			for _, next := range adjacency[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}
		id := fmt.Sprintf("open-plan-%d", len(clusters))
		clusters = append(clusters, OpenPlanCluster{ID: id, Rooms: members, Bounds: boundsUnion(members)})
	}
	return clusters
}

func boundsUnion(rooms []RoomRef) geometry.Rect {
	if len(rooms) == 0 {
		return geometry.Rect{}
	}
	b := rooms[0].Bounds
	for _, r := range rooms[1:] {
		b = b.Union(r.Bounds)
	}
	return b
}
