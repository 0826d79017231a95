package hallway

import (
	"fmt"
	"math"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// wallTouchTolerance mirrors the connectivity graph's adjacency tolerance:
// rooms whose rectangles already share a wall within this distance don't
// need a hallway segment between them.
const wallTouchTolerance = 1.0

// RoomRef is the minimal view of a placed room the hallway network needs.
type RoomRef struct {
	ID       string
	Name     string
	Type     roomtype.Type
	Centroid geometry.Point
	Bounds   geometry.Rect
}

// Segment is one edge of the hallway network: a centerline between two
// room centroids, with a uniform width.
type Segment struct {
	ID         string
	FromRoomID string
	FromPoint  geometry.Point
	ToRoomID   string
	ToPoint    geometry.Point
	Width      float64
	Centerline []geometry.Point
	Length     float64
}

// Junction is a widened point where 2 or more hallway segments converge.
type Junction struct {
	ID         string
	Point      geometry.Point
	SegmentIDs []string
}

// Network is the computed hallway network: its spanning segments and any
// junctions among them.
type Network struct {
	Segments  []Segment
	Junctions []Junction
}

func needsAccess(t roomtype.Type) bool {
	switch roomtype.AccessOf(t) {
	case roomtype.Direct, roomtype.Indirect:
		return true
	default:
		return false
	}
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

// Compute builds the minimum spanning hallway network over every room that
// needs direct or indirect access, using Euclidean centroid distance as
// edge weight. Segments that would duplicate an existing shared-wall
// adjacency are omitted.
func Compute(rooms []RoomRef, width float64) Network {
	var served []RoomRef
	for _, r := range rooms {
		if needsAccess(r.Type) {
			served = append(served, r)
		}
	}
	if len(served) < 2 {
		return Network{}
	}

	n := len(served)
	inTree := make([]bool, n)
	dist := make([]float64, n)
	parent := make([]int, n)
	for i := range dist {
		dist[i] = math.Inf(1)
		parent[i] = -1
	}
	dist[0] = 0
	inTree[0] = false

	var segments []Segment

	for count := 0; count < n; count++ {
		u := -1
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if !inTree[i] && dist[i] < best {
				best = dist[i]
				u = i
			}
		}
		if u == -1 {
			break
		}
		inTree[u] = true

		if parent[u] != -1 {
			a, b := served[parent[u]], served[u]
			if !wallsTouch(a.Bounds, b.Bounds) {
				segments = append(segments, newSegment(a, b, width, len(segments)))
			}
		}

		for v := 0; v < n; v++ {
			if inTree[v] {
				continue
			}
			d := served[u].Centroid.Dist(served[v].Centroid)
			if d < dist[v] {
				dist[v] = d
				parent[v] = u
			}
		}
	}

	junctions := detectJunctions(segments, width)
	return Network{Segments: segments, Junctions: junctions}
}

func newSegment(a, b RoomRef, width float64, index int) Segment {
	return Segment{
		ID:         fmt.Sprintf("hallway-%d", index),
		FromRoomID: a.ID,
		FromPoint:  a.Centroid,
		ToRoomID:   b.ID,
		ToPoint:    b.Centroid,
		Width:      width,
		Centerline: []geometry.Point{a.Centroid, b.Centroid},
		Length:     a.Centroid.Dist(b.Centroid),
	}
}

// detectJunctions groups segment endpoints that fall within 2*width of each
// other into a Junction, for any group with 2 or more segments meeting.
func detectJunctions(segments []Segment, width float64) []Junction {
	type endpoint struct {
		point     geometry.Point
		segmentID string
	}
	var endpoints []endpoint
	for _, s := range segments {
		endpoints = append(endpoints, endpoint{s.FromPoint, s.ID}, endpoint{s.ToPoint, s.ID})
	}

	threshold := 2 * width
	used := make([]bool, len(endpoints))
	var junctions []Junction

	for i := range endpoints {
		if used[i] {
			continue
		}
		group := []int{i}
		for j := i + 1; j < len(endpoints); j++ {
			if used[j] {
				continue
			}
			if endpoints[i].point.Dist(endpoints[j].point) < threshold {
				group = append(group, j)
			}
		}
		if len(group) < 2 {
			continue
		}
		var sx, sy float64
		seen := map[string]bool{}
		var ids []string
		for _, idx := range group {
			used[idx] = true
			sx += endpoints[idx].point.X
			sy += endpoints[idx].point.Y
			sid := endpoints[idx].segmentID
			if !seen[sid] {
				seen[sid] = true
				ids = append(ids, sid)
			}
		}
		junctions = append(junctions, Junction{
			ID:         fmt.Sprintf("junction-%d", len(junctions)),
			Point:      geometry.Point{X: sx / float64(len(group)), Y: sy / float64(len(group))},
			SegmentIDs: ids,
		})
	}
	return junctions
}
