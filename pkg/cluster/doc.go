// Package cluster detects groups of nearby bedrooms that should share a
// single corridor rather than being served by individual hallway stubs,
// identifies the primary suite and its ensuite within each cluster, and
// synthesises the shared corridor geometry and door spacing.
package cluster
