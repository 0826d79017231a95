package cluster

import (
	"fmt"
	"strings"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// proximityThreshold is the centroid distance below which two bedrooms are
// linked in the clustering proximity graph.
const proximityThreshold = 30.0

// hallBathroomThreshold is the distance from the cluster bounds within which
// a non-ensuite bathroom is considered part of the cluster.
const hallBathroomThreshold = 25.0

// RoomRef is the minimal view of a placed room cluster detection needs.
type RoomRef struct {
	ID       string
	Name     string
	Type     roomtype.Type
	Centroid geometry.Point
	Bounds   geometry.Rect
}

// Axis is the long-dimension orientation of a cluster's shared corridor.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cluster is a group of 2 or more bedrooms sharing a corridor.
type Cluster struct {
	ID                    string
	Bedrooms              []RoomRef
	HallBathrooms         []RoomRef
	PrimarySuite          *RoomRef
	Ensuite               *RoomRef
	Bounds                geometry.Rect
	CorridorAxis          Axis
	PublicConnectionPoint geometry.Point
}

func primaryNameMatch(name string) bool {
	lower := strings.ToLower(name)
	return strings.Contains(lower, "primary") || strings.Contains(lower, "master") || strings.Contains(lower, "owner")
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

func axisOf(b geometry.Rect) Axis {
	if b.Width() >= b.Height() {
		return Horizontal
	}
	return Vertical
}

func touches(a, b geometry.Rect, tolerance float64) bool {
	return a.Overlaps(geometry.Rect{MinX: b.MinX - tolerance, MinY: b.MinY - tolerance, MaxX: b.MaxX + tolerance, MaxY: b.MaxY + tolerance}, 0)
}

// Detect builds the bedroom proximity graph (centroid distance < 30 ft) and
// returns one Cluster per connected component of size >= 2, each enriched
// with primary-suite, ensuite, and hall-bathroom detection.
func Detect(bedrooms, bathrooms []RoomRef) []Cluster {
	n := len(bedrooms)
	adjacency := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if bedrooms[i].Centroid.Dist(bedrooms[j].Centroid) < proximityThreshold {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	visited := make([]bool, n)
	var clusters []Cluster
	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}
		component := bfsComponent(i, adjacency, visited)
		if len(component) < 2 {
			continue
		}
		members := make([]RoomRef, 0, len(component))
		for _, idx := range component {
			members = append(members, bedrooms[idx])
		}
		clusters = append(clusters, buildCluster(members, bathrooms, len(clusters)))
	}
	return clusters
}

func bfsComponent(start int, adjacency [][]int, visited []bool) []int {
	queue := []int{start}
	visited[start] = true
	var component []int
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		component = append(component, cur)
		for _, next := range adjacency[cur] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return component
}

func buildCluster(bedrooms, bathrooms []RoomRef, index int) Cluster {
	bounds := boundsUnion(bedrooms)

	primary := detectPrimarySuite(bedrooms, bathrooms)
	var ensuite *RoomRef
	if primary != nil {
		ensuite = detectEnsuite(*primary, bathrooms)
	}

	var hallBaths []RoomRef
	for _, b := range bathrooms {
		if ensuite != nil && b.ID == ensuite.ID {
			continue
		}
		if touches(bounds, b.Bounds, hallBathroomThreshold) {
			hallBaths = append(hallBaths, b)
		}
	}

	return Cluster{
		ID:            fmt.Sprintf("cluster-%d", index),
		Bedrooms:      bedrooms,
		HallBathrooms: hallBaths,
		PrimarySuite:  primary,
		Ensuite:       ensuite,
		Bounds:        bounds,
		CorridorAxis:  axisOf(bounds),
	}
}

// detectPrimarySuite looks for a name match first; failing that, the
// largest bedroom with an adjacent bathroom wins; tie-breaking among equal
// areas falls back to input order.
func detectPrimarySuite(bedrooms, bathrooms []RoomRef) *RoomRef {
	for i := range bedrooms {
		if primaryNameMatch(bedrooms[i].Name) {
			return &bedrooms[i]
		}
	}

	var best *RoomRef
	bestArea := -1.0
	for i := range bedrooms {
		if !hasAdjacentBathroom(bedrooms[i], bathrooms) {
			continue
		}
		area := bedrooms[i].Bounds.Area()
		if area > bestArea {
			bestArea = area
			best = &bedrooms[i]
		}
	}
	return best
}

func hasAdjacentBathroom(bedroom RoomRef, bathrooms []RoomRef) bool {
	for _, b := range bathrooms {
		if touches(bedroom.Bounds, b.Bounds, 1.0) {
			return true
		}
	}
	return false
}

func detectEnsuite(primary RoomRef, bathrooms []RoomRef) *RoomRef {
	var adjacent []RoomRef
	for _, b := range bathrooms {
		if touches(primary.Bounds, b.Bounds, 1.0) {
			adjacent = append(adjacent, b)
		}
	}
	if len(adjacent) == 0 {
		return nil
	}
	for i := range adjacent {
		if primaryNameMatch(adjacent[i].Name) {
			return &adjacent[i]
		}
	}
	return &adjacent[0]
}
