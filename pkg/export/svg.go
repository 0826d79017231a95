package export

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/arxflow/floorplan/pkg/floorplan"
	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// SVGOptions configures the floor plan's SVG rendering.
type SVGOptions struct {
	Width            int    // Canvas width in pixels
	Height           int    // Canvas height in pixels
	Margin           int    // Canvas margin in pixels (default: 40)
	ShowLabels       bool   // Show room name labels
	ColorByType      bool   // Color rooms by room type
	ShowTraffic      bool   // Overlay traffic path polygons
	ShowLegend       bool   // Show legend explaining colors
	ShowReachability bool   // Outline unreachable rooms in red
	Title            string // Optional title for the visualization
	ShowStats        bool   // Show room count and reachability summary
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{
		Width:            1200,
		Height:           900,
		Margin:           40,
		ShowLabels:       true,
		ColorByType:      true,
		ShowTraffic:      true,
		ShowLegend:       true,
		ShowReachability: true,
		Title:            "Floor Plan",
		ShowStats:        true,
	}
}

// transform maps feet-space coordinates onto the pixel canvas.
type transform struct {
	scale       float64
	offsetX     float64
	offsetY     float64
	headerSpace int
}

func (t transform) point(p geometry.Point) (int, int) {
	return int(p.X*t.scale + t.offsetX), int(p.Y*t.scale + t.offsetY + float64(t.headerSpace))
}

// ExportSVG renders a visualization of the synthesized floor plan: every
// placed room, the hallway and junction network, optional traffic overlays,
// and (when requested) a reachability outline.
func ExportSVG(art *floorplan.Artifact, opts SVGOptions) ([]byte, error) {
	if art == nil {
		return nil, fmt.Errorf("artifact cannot be nil")
	}
	if len(art.Rooms) == 0 {
		return nil, fmt.Errorf("artifact has no placed rooms")
	}

	if opts.Width <= 0 {
		opts.Width = 1200
	}
	if opts.Height <= 0 {
		opts.Height = 900
	}
	if opts.Margin <= 0 {
		opts.Margin = 40
	}

	headerSpace := 0
	if opts.Title != "" || opts.ShowStats {
		headerSpace = 60
	}

	tf := calculateTransform(art, opts, headerSpace)

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(opts.Width, opts.Height)
	canvas.Rect(0, 0, opts.Width, opts.Height, "fill:#f7f7f5")

	drawRooms(canvas, art, tf, opts)
	drawHallways(canvas, art, tf)
	drawJunctions(canvas, art, tf)
	if opts.ShowTraffic {
		drawTraffic(canvas, art, tf)
	}
	if opts.ShowLabels {
		drawRoomLabels(canvas, art, tf)
	}
	if opts.ShowLegend {
		drawLegend(canvas, opts)
	}
	if opts.Title != "" || opts.ShowStats {
		drawHeader(canvas, art, opts)
	}

	canvas.End()
	return buf.Bytes(), nil
}

// SaveSVGToFile renders the floor plan and writes it to path.
func SaveSVGToFile(art *floorplan.Artifact, path string, opts SVGOptions) error {
	data, err := ExportSVG(art, opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// calculateTransform fits the union of every room bound and the spine's
// bounding box into the drawable area (canvas minus margin and header).
func calculateTransform(art *floorplan.Artifact, opts SVGOptions, headerSpace int) transform {
	bounds := art.Rooms[0].Bounds()
	for _, r := range art.Rooms[1:] {
		bounds = bounds.Union(r.Bounds())
	}
	if art.SpineGeometry.BoundingBox.Width() > 0 || art.SpineGeometry.BoundingBox.Height() > 0 {
		bounds = bounds.Union(art.SpineGeometry.BoundingBox)
	}

	drawWidth := float64(opts.Width - 2*opts.Margin)
	drawHeight := float64(opts.Height - 2*opts.Margin - headerSpace)

	scale := 1.0
	if bounds.Width() > 0 {
		scale = drawWidth / bounds.Width()
	}
	if bounds.Height() > 0 {
		if hs := drawHeight / bounds.Height(); hs < scale {
			scale = hs
		}
	}
	if scale <= 0 {
		scale = 1.0
	}

	return transform{
		scale:       scale,
		offsetX:     float64(opts.Margin) - bounds.MinX*scale,
		offsetY:     float64(opts.Margin) - bounds.MinY*scale,
		headerSpace: headerSpace,
	}
}

func polygonXY(poly []geometry.Point, tf transform) ([]int, []int) {
	xs := make([]int, len(poly))
	ys := make([]int, len(poly))
	for i, p := range poly {
		xs[i], ys[i] = tf.point(p)
	}
	return xs, ys
}

func drawRooms(canvas *svg.SVG, art *floorplan.Artifact, tf transform, opts SVGOptions) {
	unreachable := make(map[string]bool, len(art.Reachability.Unreachable))
	for _, name := range art.Reachability.Unreachable {
		unreachable[name] = true
	}

	rooms := append([]roomEntry(nil), toRoomEntries(art)...)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].name < rooms[j].name })

	for _, re := range rooms {
		x0, y0 := tf.point(geometry.Point{X: re.bounds.MinX, Y: re.bounds.MinY})
		x1, y1 := tf.point(geometry.Point{X: re.bounds.MaxX, Y: re.bounds.MaxY})
		w, h := x1-x0, y1-y0

		color := getRoomColor(re.roomType, opts)
		style := fmt.Sprintf("fill:%s;stroke:#2d2d2d;stroke-width:2;opacity:0.85", color)
		if opts.ShowReachability && unreachable[re.name] {
			style = fmt.Sprintf("fill:%s;stroke:#d11;stroke-width:3;stroke-dasharray:6,4;opacity:0.85", color)
		}
		canvas.Rect(x0, y0, w, h, style)
	}
}

type roomEntry struct {
	name     string
	roomType roomtype.Type
	bounds   geometry.Rect
}

func toRoomEntries(art *floorplan.Artifact) []roomEntry {
	out := make([]roomEntry, len(art.Rooms))
	for i, r := range art.Rooms {
		out[i] = roomEntry{name: r.Name, roomType: r.Type, bounds: r.Bounds()}
	}
	return out
}

func getRoomColor(t roomtype.Type, opts SVGOptions) string {
	if !opts.ColorByType {
		return "#d8d4c8"
	}
	switch t {
	case roomtype.Bedroom:
		return "#a7c7e7"
	case roomtype.Bathroom:
		return "#b8e0d2"
	case roomtype.Kitchen:
		return "#f6c6a0"
	case roomtype.Living, roomtype.GreatRoom, roomtype.Family:
		return "#f2e2b1"
	case roomtype.Dining:
		return "#e8b4bc"
	case roomtype.Foyer:
		return "#d6cadd"
	case roomtype.Office:
		return "#c9d6ea"
	case roomtype.Closet, roomtype.Pantry:
		return "#e2ddd5"
	case roomtype.Laundry, roomtype.Mudroom, roomtype.Utility:
		return "#cfd8d3"
	case roomtype.Garage:
		return "#c7c7c7"
	case roomtype.Hallway, roomtype.Circulation:
		return "#e6e2da"
	case roomtype.Stair, roomtype.Landing:
		return "#d9cbb8"
	case roomtype.Patio, roomtype.Deck:
		return "#bcd8bb"
	default:
		return "#d8d4c8"
	}
}

func drawHallways(canvas *svg.SVG, art *floorplan.Artifact, tf transform) {
	for _, hp := range art.SpineGeometry.HallwayPolygons {
		if len(hp.Vertices) < 3 {
			continue
		}
		xs, ys := polygonXY(hp.Vertices, tf)
		canvas.Polygon(xs, ys, "fill:#ffffff;stroke:#9a9a92;stroke-width:1;opacity:0.9")
	}
}

func drawJunctions(canvas *svg.SVG, art *floorplan.Artifact, tf transform) {
	for _, jp := range art.SpineGeometry.JunctionPolygons {
		if len(jp.Vertices) < 3 {
			continue
		}
		xs, ys := polygonXY(jp.Vertices, tf)
		canvas.Polygon(xs, ys, "fill:#ffffff;stroke:#9a9a92;stroke-width:1;opacity:0.9")
	}
}

func drawTraffic(canvas *svg.SVG, art *floorplan.Artifact, tf transform) {
	for _, tp := range art.TrafficPaths {
		if len(tp.Vertices) < 3 {
			continue
		}
		xs, ys := polygonXY(tp.Vertices, tf)
		canvas.Polygon(xs, ys, "fill:#ffd54a;opacity:0.25;stroke:#c9a227;stroke-width:1;stroke-dasharray:4,3")
	}
}

func drawRoomLabels(canvas *svg.SVG, art *floorplan.Artifact, tf transform) {
	rooms := append([]roomEntry(nil), toRoomEntries(art)...)
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].name < rooms[j].name })

	for _, re := range rooms {
		center := re.bounds.Center()
		x, y := tf.point(center)
		canvas.Text(x, y, re.name,
			"text-anchor:middle;font-size:12px;font-family:sans-serif;fill:#1a1a1a")
	}
}

func drawLegend(canvas *svg.SVG, opts SVGOptions) {
	legendX := opts.Margin + 10
	legendY := opts.Height - 150

	canvas.Rect(legendX-10, legendY-20, 190, 140, "fill:#ffffff;stroke:#9a9a92;stroke-width:1;opacity:0.95")
	canvas.Text(legendX, legendY, "Room Types", "font-size:13px;font-weight:bold;fill:#1a1a1a")
	legendY += 20

	entries := []struct {
		name string
		t    roomtype.Type
	}{
		{"Bedroom", roomtype.Bedroom},
		{"Bathroom", roomtype.Bathroom},
		{"Kitchen", roomtype.Kitchen},
		{"Living", roomtype.Living},
		{"Foyer", roomtype.Foyer},
		{"Hallway", roomtype.Hallway},
	}
	for _, e := range entries {
		canvas.Rect(legendX, legendY-10, 14, 14, fmt.Sprintf("fill:%s;stroke:#2d2d2d;stroke-width:1", getRoomColor(e.t, opts)))
		canvas.Text(legendX+22, legendY, e.name, "font-size:11px;fill:#333333")
		legendY += 18
	}
}

func drawHeader(canvas *svg.SVG, art *floorplan.Artifact, opts SVGOptions) {
	headerY := 22
	if opts.Title != "" {
		canvas.Text(opts.Width/2, headerY, opts.Title,
			"text-anchor:middle;font-size:18px;font-weight:bold;fill:#1a1a1a;font-family:sans-serif")
		headerY += 24
	}
	if opts.ShowStats {
		status := "all rooms reachable"
		if !art.Reachability.AllReachable {
			status = fmt.Sprintf("%d room(s) unreachable", len(art.Reachability.Unreachable))
		}
		stats := fmt.Sprintf("Rooms: %d | Hallway segments: %d | %s",
			len(art.Rooms), len(art.SpineGeometry.HallwayPolygons), status)
		canvas.Text(opts.Width/2, headerY, stats,
			"text-anchor:middle;font-size:12px;fill:#555555;font-family:monospace")
	}
}
