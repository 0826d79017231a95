package spine

import (
	"fmt"

	"github.com/arxflow/floorplan/pkg/cluster"
	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/hallway"
	"github.com/arxflow/floorplan/pkg/traffic"
)

// HallwayPolygon is the realised rectangle for one hallway or corridor
// segment.
type HallwayPolygon struct {
	ID            string
	Vertices      []geometry.Point
	Width         float64
	Length        float64
	Centerline    []geometry.Point
	ConnectsRooms [2]string
}

// JunctionPolygon is the widened polygon where 2 or more hallways meet.
type JunctionPolygon struct {
	ID         string
	Vertices   []geometry.Point
	HallwayIDs []string
}

// Geometry is the fully realised spine: every hallway and junction polygon,
// aggregate totals, and non-fatal warnings.
type Geometry struct {
	HallwayPolygons  []HallwayPolygon
	JunctionPolygons []JunctionPolygon
	WalledArea       float64
	TrafficPathArea  float64
	BoundingBox      geometry.Rect
	Warnings         []string
}

func rectToPolygon(r geometry.Rect) []geometry.Point {
	return []geometry.Point{
		{X: r.MinX, Y: r.MinY}, {X: r.MaxX, Y: r.MinY}, {X: r.MaxX, Y: r.MaxY}, {X: r.MinX, Y: r.MaxY},
	}
}

// Generate builds the complete spine geometry from a hallway network,
// bedroom-cluster corridors, and traffic path overlays. Every hallway
// polygon is clipped to footprint (when footprint has >=3 vertices), then
// validated against every room's AABB via SAT; any overlap found is
// reported as a warning rather than treated as fatal, since a caller may
// want to adjust the layout and re-run. walledArea excludes trafficPaths
// entirely: traffic is an overlay, never additional footprint.
func Generate(network hallway.Network, defaultWidth float64, corridors []cluster.CorridorSpec, trafficPaths []traffic.TrafficPath, footprint []geometry.Point, roomBounds []geometry.Rect) Geometry {
	var g Geometry

	for _, seg := range network.Segments {
		if poly, ok := buildHallwayPolygon(seg.ID, seg.FromPoint, seg.ToPoint, seg.Width, [2]string{seg.FromRoomID, seg.ToRoomID}, footprint, &g.Warnings); ok {
			g.HallwayPolygons = append(g.HallwayPolygons, poly)
		}
	}

	for i, c := range corridors {
		id := fmt.Sprintf("corridor-%d", i)
		if poly, ok := buildHallwayPolygon(id, c.Centerline[0], c.Centerline[1], c.Width, [2]string{}, footprint, &g.Warnings); ok {
			g.HallwayPolygons = append(g.HallwayPolygons, poly)
		}
	}

	for _, j := range network.Junctions {
		width := defaultWidth
		var approaches []approach
		for _, hp := range g.HallwayPolygons {
			for _, segID := range j.SegmentIDs {
				if hp.ID == segID {
					far := farEndpoint(hp.Centerline, j.Point)
					approaches = append(approaches, approach{hallwayID: hp.ID, far: far})
				}
			}
		}
		verts := buildJunctionPolygon(j.Point, width, approaches)
		g.JunctionPolygons = append(g.JunctionPolygons, JunctionPolygon{ID: j.ID, Vertices: verts, HallwayIDs: j.SegmentIDs})
	}

	g.Warnings = append(g.Warnings, validateNoRoomOverlap(g.HallwayPolygons, roomBounds)...)

	for _, hp := range g.HallwayPolygons {
		g.WalledArea += geometry.Area(hp.Vertices)
	}
	for _, jp := range g.JunctionPolygons {
		g.WalledArea += geometry.Area(jp.Vertices)
	}
	for _, tp := range trafficPaths {
		g.TrafficPathArea += tp.Area
	}

	g.BoundingBox = computeBoundingBox(g.HallwayPolygons, g.JunctionPolygons)

	return g
}

// buildHallwayPolygon realises one hallway's rectangle and reports whether
// it should be emitted. A hallway shorter than 1 ft is flagged with a
// warning but not emitted (spec boundary behaviour: degenerate hallways
// are dropped, not surfaced as zero-area or near-zero polygons).
func buildHallwayPolygon(id string, start, end geometry.Point, width float64, connects [2]string, footprint []geometry.Point, warnings *[]string) (HallwayPolygon, bool) {
	length := start.Dist(end)
	if length < 1.0 {
		*warnings = append(*warnings, fmt.Sprintf("hallway %s is shorter than 1 ft", id))
		return HallwayPolygon{}, false
	}

	verts := geometry.PerpendicularOffset(start, end, width)

	if len(footprint) >= 3 {
		if clipped := geometry.SutherlandHodgmanClip(verts, footprint); len(clipped) >= 3 {
			verts = clipped
		}
	}

	if !isAxisAligned(start, end) {
		*warnings = append(*warnings, fmt.Sprintf("hallway %s is not axis-aligned", id))
	}

	return HallwayPolygon{
		ID:            id,
		Vertices:      verts,
		Width:         width,
		Length:        length,
		Centerline:    []geometry.Point{start, end},
		ConnectsRooms: connects,
	}, true
}

func isAxisAligned(a, b geometry.Point) bool {
	const tol = 1e-6
	return abs(a.X-b.X) < tol || abs(a.Y-b.Y) < tol
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

func farEndpoint(centerline []geometry.Point, near geometry.Point) geometry.Point {
	if len(centerline) < 2 {
		return near
	}
	if centerline[0].Dist(near) > centerline[1].Dist(near) {
		return centerline[0]
	}
	return centerline[1]
}

func validateNoRoomOverlap(hallways []HallwayPolygon, roomBounds []geometry.Rect) []string {
	var warnings []string
	for _, hp := range hallways {
		for _, rb := range roomBounds {
			if geometry.PolygonsOverlap(hp.Vertices, rectToPolygon(rb)) {
				warnings = append(warnings, fmt.Sprintf("hallway %s overlaps a room", hp.ID))
			}
		}
	}
	return warnings
}

func computeBoundingBox(hallways []HallwayPolygon, junctions []JunctionPolygon) geometry.Rect {
	var all []geometry.Point
	for _, h := range hallways {
		all = append(all, h.Vertices...)
	}
	for _, j := range junctions {
		all = append(all, j.Vertices...)
	}
	return geometry.BoundsOf(all)
}
