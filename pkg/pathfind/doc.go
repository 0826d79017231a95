// Package pathfind rasterizes walkable polygons into a uniform grid and
// runs A* over it to validate that every room is reachable from the
// entry: a polygon-space wrapper (Grid, AStar) plus the top-level
// ValidateAllRoomsReachable check that the floor-plan pipeline's final
// stage calls.
package pathfind
