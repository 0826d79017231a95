// Package spine turns the abstract hallway network, bedroom-cluster
// corridors, and traffic path overlays into concrete polygons: hallway
// rectangles via perpendicular offset and junction polygons where multiple
// hallways converge. Hallway and corridor rectangles are clipped to the
// building footprint and validated against the no-overlap invariant;
// junction polygons are not clipped.
package spine
