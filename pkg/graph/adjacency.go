package graph

import (
	"math"

	"github.com/arxflow/floorplan/pkg/roomtype"
)

// WallTouchTolerance is the distance within which two room rectangles are
// considered to share a wall.
const WallTouchTolerance = 1.0

func touches(a, b Node) bool {
	ab, bb := a.Bounds, b.Bounds

	xTouch := math.Abs(ab.MaxX-bb.MinX) <= WallTouchTolerance || math.Abs(bb.MaxX-ab.MinX) <= WallTouchTolerance
	yOverlap := ab.MinY < bb.MaxY && bb.MinY < ab.MaxY
	if xTouch && yOverlap {
		return true
	}

	yTouch := math.Abs(ab.MaxY-bb.MinY) <= WallTouchTolerance || math.Abs(bb.MaxY-ab.MinY) <= WallTouchTolerance
	xOverlap := ab.MinX < bb.MaxX && bb.MinX < ab.MaxX
	return yTouch && xOverlap
}

func isHub(t roomtype.Type) bool {
	return t == roomtype.Foyer || t == roomtype.Mudroom
}

func isHallwayLike(t roomtype.Type) bool {
	return t == roomtype.Hallway || t == roomtype.Circulation
}

// inferEdgeType decides whether a and b should receive an implicit edge
// given that their rectangles touch, and if so what kind. Bedroom-bedroom
// and bathroom-bathroom pairs are never linked (privacy and egress). Both
// rooms in the open-plan set receive an opening. Either room being
// hallway-like links to the other when the other has direct or hub access.
// A hub room (foyer/mudroom) links to anything it touches.
func inferEdgeType(a, b Node) (EdgeType, bool) {
	if a.Type == roomtype.Bedroom && b.Type == roomtype.Bedroom {
		return 0, false
	}
	if a.Type == roomtype.Bathroom && b.Type == roomtype.Bathroom {
		return 0, false
	}
	if roomtype.IsOpenPlan(a.Type) && roomtype.IsOpenPlan(b.Type) {
		return Opening, true
	}
	if isHallwayLike(a.Type) && accessAllowsHallway(b.Type) {
		return Hallway, true
	}
	if isHallwayLike(b.Type) && accessAllowsHallway(a.Type) {
		return Hallway, true
	}
	if isHub(a.Type) || isHub(b.Type) {
		return Door, true
	}
	return 0, false
}

func accessAllowsHallway(t roomtype.Type) bool {
	access := roomtype.AccessOf(t)
	return access == roomtype.Direct || access == roomtype.Hub
}

// InferAdjacency inspects every pair of nodes' axis-aligned rectangles and
// returns the implicit edges produced by wall-touch adjacency rules.
func InferAdjacency(nodes []Node) []Edge {
	var edges []Edge
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			if !touches(a, b) {
				continue
			}
			edgeType, ok := inferEdgeType(a, b)
			if !ok {
				continue
			}
			edges = append(edges, Edge{From: a.ID, To: b.ID, Type: edgeType})
		}
	}
	return edges
}

// BuildGraph adds every node then applies explicitDoors followed by
// inferred adjacency edges (explicit connections win ties since inferred
// duplicates are rejected silently by AddConnection).
func BuildGraph(nodes []Node, explicitDoors []Edge) *Graph {
	g := New()
	for _, n := range nodes {
		g.AddRoom(n)
	}
	for _, e := range explicitDoors {
		g.AddConnection(e.From, e.To, e.Type, e.DoorPoint)
	}
	for _, e := range InferAdjacency(nodes) {
		g.AddConnection(e.From, e.To, e.Type, e.DoorPoint)
	}
	return g
}
