// Package export renders a synthesized floor plan to JSON, for machine
// consumption, and SVG, for visual inspection.
package export
