package geometry

// clipEdge represents one directed edge of a convex clip polygon, used as a
// half-plane: a point is "inside" if it is on the left of start->end.
type clipEdge struct {
	start, end Point
}

func (e clipEdge) inside(p Point) bool {
	edge := e.end.Sub(e.start)
	toPoint := p.Sub(e.start)
	return edge.Cross(toPoint) >= 0
}

// SutherlandHodgmanClip clips subject against the convex polygon clip and
// returns the resulting (possibly empty) polygon. clip's vertices must be in
// CCW order. Used to trim hallway and corridor polygons to the building
// footprint.
func SutherlandHodgmanClip(subject, clip []Point) []Point {
	if len(subject) < 3 || len(clip) < 3 {
		return nil
	}

	output := append([]Point(nil), subject...)

	n := len(clip)
	for i := 0; i < n; i++ {
		if len(output) == 0 {
			break
		}
		edge := clipEdge{start: clip[i], end: clip[(i+1)%n]}

		input := output
		output = nil

		start := input[len(input)-1]
		for _, end := range input {
			startIn := edge.inside(start)
			endIn := edge.inside(end)

			switch {
			case startIn && endIn:
				output = append(output, end)
			case startIn && !endIn:
				if pt, ok := edgeIntersect(edge, start, end); ok {
					output = append(output, pt)
				}
			case !startIn && endIn:
				if pt, ok := edgeIntersect(edge, start, end); ok {
					output = append(output, pt)
				}
				output = append(output, end)
			}
			start = end
		}
	}

	return output
}

// edgeIntersect finds the point where segment start-end crosses the infinite
// line through edge.start-edge.end. Unlike SegmentIntersect, the clip edge is
// treated as an infinite line (the crossing point is often beyond the clip
// polygon's own finite edge length, which is the normal case in Sutherland-
// Hodgman clipping).
func edgeIntersect(edge clipEdge, start, end Point) (Point, bool) {
	r := end.Sub(start)
	s := edge.end.Sub(edge.start)
	denom := r.Cross(s)
	absDenom := denom
	if absDenom < 0 {
		absDenom = -absDenom
	}
	if absDenom < SegmentEpsilon {
		return Point{}, false
	}
	qp := edge.start.Sub(start)
	t := qp.Cross(s) / denom
	return start.Add(r.Scale(t)), true
}
