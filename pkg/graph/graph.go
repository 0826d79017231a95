package graph

import (
	"fmt"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// EdgeType tags why two rooms are connected.
type EdgeType int

const (
	Door EdgeType = iota
	Opening
	Hallway
)

func (e EdgeType) String() string {
	switch e {
	case Door:
		return "door"
	case Opening:
		return "opening"
	case Hallway:
		return "hallway"
	default:
		return fmt.Sprintf("unknown(%d)", int(e))
	}
}

// Node is a room as seen by the connectivity graph: just enough to test
// adjacency and report results by name.
type Node struct {
	ID     string
	Name   string
	Type   roomtype.Type
	Bounds geometry.Rect
}

// Edge is an undirected connection between two room ids.
type Edge struct {
	From, To  string
	Type      EdgeType
	DoorPoint *geometry.Point
}

// Graph is an undirected connectivity graph over rooms, keyed by stable id.
type Graph struct {
	Nodes     map[string]Node
	adjacency map[string]map[string]Edge
}

// New returns an empty Graph.
func New() *Graph {
	return &Graph{
		Nodes:     make(map[string]Node),
		adjacency: make(map[string]map[string]Edge),
	}
}

// AddRoom adds n to the graph. Idempotent: adding the same id twice is a
// no-op, keeping the first node's data.
func (g *Graph) AddRoom(n Node) {
	if _, exists := g.Nodes[n.ID]; exists {
		return
	}
	g.Nodes[n.ID] = n
	g.adjacency[n.ID] = make(map[string]Edge)
}

// AddConnection adds a bidirectional edge between from and to. Rejected
// silently (no-op, no error) if either endpoint is missing or the edge
// already exists in either direction.
func (g *Graph) AddConnection(from, to string, edgeType EdgeType, doorPoint *geometry.Point) {
	if _, ok := g.Nodes[from]; !ok {
		return
	}
	if _, ok := g.Nodes[to]; !ok {
		return
	}
	if _, exists := g.adjacency[from][to]; exists {
		return
	}
	edge := Edge{From: from, To: to, Type: edgeType, DoorPoint: doorPoint}
	g.adjacency[from][to] = edge
	g.adjacency[to][from] = Edge{From: to, To: from, Type: edgeType, DoorPoint: doorPoint}
}

// Neighbors returns the ids adjacent to id.
func (g *Graph) Neighbors(id string) []string {
	out := make([]string, 0, len(g.adjacency[id]))
	for n := range g.adjacency[id] {
		out = append(out, n)
	}
	return out
}

// Reachable returns the set of ids reachable from from (inclusive) via BFS.
func (g *Graph) Reachable(from string) map[string]bool {
	visited := map[string]bool{}
	if _, ok := g.Nodes[from]; !ok {
		return visited
	}
	queue := []string{from}
	visited[from] = true
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(cur) {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// ShortestPath returns the id path from a to b (inclusive of both
// endpoints), by edge count, found via BFS with parent-chain
// reconstruction.
func (g *Graph) ShortestPath(a, b string) ([]string, bool) {
	if _, ok := g.Nodes[a]; !ok {
		return nil, false
	}
	if _, ok := g.Nodes[b]; !ok {
		return nil, false
	}
	if a == b {
		return []string{a}, true
	}

	parent := map[string]string{}
	visited := map[string]bool{a: true}
	queue := []string{a}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range g.Neighbors(cur) {
			if visited[next] {
				continue
			}
			visited[next] = true
			parent[next] = cur
			if next == b {
				path := []string{b}
				for node := cur; ; node = parent[node] {
					path = append([]string{node}, path...)
					if node == a {
						return path, true
					}
				}
			}
			queue = append(queue, next)
		}
	}
	return nil, false
}

// ConnectedComponents returns each maximal set of mutually reachable node
// ids, via iterated BFS over unvisited nodes.
func (g *Graph) ConnectedComponents() [][]string {
	seen := map[string]bool{}
	var components [][]string
	for id := range g.Nodes {
		if seen[id] {
			continue
		}
		reach := g.Reachable(id)
		comp := make([]string, 0, len(reach))
		for n := range reach {
			comp = append(comp, n)
			seen[n] = true
		}
		components = append(components, comp)
	}
	return components
}
