// Package graph is the connectivity graph over placed rooms: an undirected
// adjacency structure keyed by room id, with BFS reachability, shortest
// path, and a separate adjacency-inference pass that derives implicit
// edges from which axis-aligned room rectangles share a wall.
package graph
