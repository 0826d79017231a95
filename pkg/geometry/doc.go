// Package geometry provides the 2D computational-geometry primitives shared
// by every other synthesis stage: points, polygons, shoelace area,
// point-in-polygon, Separating Axis Theorem overlap, segment intersection,
// Sutherland-Hodgman clipping, and perpendicular centerline offset.
//
// All functions here are pure and return fresh polygons; none of them alias
// their inputs. Tolerances (epsilon for segment degeneracy, clearance for
// overlap checks) are documented per function rather than centralized, since
// the spec ties different epsilons to different operations.
package geometry
