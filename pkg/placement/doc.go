// Package placement positions rooms within a footprint without overlap,
// supporting absolute coordinates, relative-to-another-room placement, and
// automatic placement driven by adjacency heuristics or nearest-available
// candidate scoring.
package placement
