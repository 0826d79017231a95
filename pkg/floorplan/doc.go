// Package floorplan wires the circulation, budget, placement, graph,
// hallway, cluster, traffic, spine, and pathfind packages into a single
// ordered synthesis pipeline: given a room program and a footprint, it
// produces a fully placed, connected, and reachability-validated floor
// plan as an Artifact.
package floorplan
