package graph

import (
	"fmt"

	"github.com/arxflow/floorplan/pkg/roomtype"
)

// ValidationResult is the outcome of validating a connectivity graph:
// which rooms are reachable from the entry, which are not, human-readable
// descriptions of missing connections, non-fatal warnings, and the number
// of connected components.
type ValidationResult struct {
	Reachable          []string
	Unreachable        []string
	MissingConnections []string
	Warnings           []string
	ComponentCount     int
}

func nameOf(nodes map[string]Node, id string) string {
	if n, ok := nodes[id]; ok {
		return n.Name
	}
	return id
}

func findEntry(nodes map[string]Node, entryName string) (string, bool) {
	for id, n := range nodes {
		if n.Name == entryName {
			return id, true
		}
	}
	return "", false
}

// ValidateConnectivity runs a permissive reachability pass over a graph
// built from rooms and explicit doors/openings — any two axis-adjacent
// rooms are considered potentially traversable, regardless of access
// rules — then a stricter access-rule pass that flags direct-access rooms
// with no hallway connection.
func ValidateConnectivity(rooms []Node, explicitDoors []Edge, entryName string) ValidationResult {
	g := BuildGraph(rooms, explicitDoors)

	nodesByID := g.Nodes

	entryID, ok := findEntry(nodesByID, entryName)
	if !ok {
		return ValidationResult{
			Warnings: []string{fmt.Sprintf("entry room %q not found", entryName)},
		}
	}

	permissive := New()
	for _, n := range rooms {
		permissive.AddRoom(n)
	}
	for _, e := range explicitDoors {
		permissive.AddConnection(e.From, e.To, e.Type, e.DoorPoint)
	}
	for i := 0; i < len(rooms); i++ {
		for j := i + 1; j < len(rooms); j++ {
			if touches(rooms[i], rooms[j]) {
				permissive.AddConnection(rooms[i].ID, rooms[j].ID, Door, nil)
			}
		}
	}
	reachableSet := permissive.Reachable(entryID)

	// rooms is the caller-supplied, deterministically ordered room list;
	// iterate it (not the node map) so reachable/unreachable/missing/warning
	// order never depends on Go's randomized map iteration.
	var reachable, unreachable []string
	for _, n := range rooms {
		if reachableSet[n.ID] {
			reachable = append(reachable, n.Name)
		} else {
			unreachable = append(unreachable, n.Name)
		}
	}

	var missing []string
	for _, n := range rooms {
		if roomtype.AccessOf(n.Type) != roomtype.Direct {
			continue
		}
		hasHallwayLink := false
		for _, neighborID := range g.Neighbors(n.ID) {
			neighbor := nodesByID[neighborID]
			if isHallwayLike(neighbor.Type) || neighbor.Type == n.Type || isHub(neighbor.Type) {
				hasHallwayLink = true
				break
			}
		}
		if !hasHallwayLink {
			missing = append(missing, fmt.Sprintf("%s (direct access) has no hallway connection", n.Name))
		}
	}

	var warnings []string
	avgDegree := averageDegree(g)
	if len(nodesByID) > 1 && avgDegree < 1.2 {
		warnings = append(warnings, fmt.Sprintf("low average connectivity degree: %.2f", avgDegree))
	}
	for _, n := range rooms {
		if isHub(n.Type) && len(g.Neighbors(n.ID)) < 2 {
			warnings = append(warnings, fmt.Sprintf("hub room %s is under-connected", n.Name))
		}
	}

	return ValidationResult{
		Reachable:          reachable,
		Unreachable:        unreachable,
		MissingConnections: missing,
		Warnings:           warnings,
		ComponentCount:     len(g.ConnectedComponents()),
	}
}

func averageDegree(g *Graph) float64 {
	if len(g.Nodes) == 0 {
		return 0
	}
	total := 0
	for id := range g.Nodes {
		total += len(g.Neighbors(id))
	}
	return float64(total) / float64(len(g.Nodes))
}
