package geometry

// Area computes the polygon's area via the shoelace formula. The result is
// always non-negative regardless of winding direction. A polygon with fewer
// than 3 vertices has area 0.
func Area(poly []Point) float64 {
	if len(poly) < 3 {
		return 0
	}
	sum := 0.0
	n := len(poly)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	if sum < 0 {
		sum = -sum
	}
	return sum / 2
}

// PointInPolygon reports whether p lies inside poly using ray casting: a
// horizontal ray to +X, with a strict-less comparison on the vertical
// straddle test to avoid double-counting vertices that lie exactly on the
// ray. A point lying exactly on an edge may be reported either way.
func PointInPolygon(p Point, poly []Point) bool {
	if len(poly) < 3 {
		return false
	}
	inside := false
	n := len(poly)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := poly[i], poly[j]
		straddles := (vi.Y > p.Y) != (vj.Y > p.Y)
		if !straddles {
			continue
		}
		xIntersect := vj.X + (p.Y-vj.Y)/(vi.Y-vj.Y)*(vi.X-vj.X)
		if p.X < xIntersect {
			inside = !inside
		}
	}
	return inside
}

// axes returns the set of unit edge normals of poly, one per edge. This
// is the set of candidate separating axes for SAT between two convex
// polygons.
func axes(poly []Point) []Point {
	n := len(poly)
	out := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		edge := poly[j].Sub(poly[i])
		normal := edge.Perp().Normalize()
		if normal.Length() > 0 {
			out = append(out, normal)
		}
	}
	return out
}

// projectOnto returns the [min,max] projection of poly's vertices onto axis.
func projectOnto(poly []Point, axis Point) (float64, float64) {
	min := poly[0].Dot(axis)
	max := min
	for _, p := range poly[1:] {
		d := p.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// PolygonsOverlap reports whether convex polygons a and b overlap, using the
// Separating Axis Theorem over all edge normals of both polygons. Symmetric:
// PolygonsOverlap(a, b) == PolygonsOverlap(b, a).
func PolygonsOverlap(a, b []Point) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	candidateAxes := append(axes(a), axes(b)...)
	for _, axis := range candidateAxes {
		aMin, aMax := projectOnto(a, axis)
		bMin, bMax := projectOnto(b, axis)
		if aMax < bMin || bMax < aMin {
			// Found a separating axis: no overlap.
			return false
		}
	}
	return true
}

// SegmentIntersect returns the intersection point of segments a1-a2 and
// b1-b2, and true, or the zero Point and false if the segments are parallel
// (cross product magnitude below SegmentEpsilon) or do not intersect within
// both segments' bounds.
func SegmentIntersect(a1, a2, b1, b2 Point) (Point, bool) {
	r := a2.Sub(a1)
	s := b2.Sub(b1)
	denom := r.Cross(s)
	absDenom := denom
	if absDenom < 0 {
		absDenom = -absDenom
	}
	if absDenom < SegmentEpsilon {
		return Point{}, false
	}
	qp := b1.Sub(a1)
	t := qp.Cross(s) / denom
	u := qp.Cross(r) / denom
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return a1.Add(r.Scale(t)), true
}

// PerpendicularOffset returns the 4 vertices of a rectangle of width w
// centered on the segment start-end. Vertex order: p1 (left-of-direction at
// start), p2 (left-of-direction at end), p3 (right-of-direction at end), p4
// (right-of-direction at start) -- i.e. left-of-direction is p1->p2,
// right-of-direction is p3->p4, matching the spec's naming. With Y pointing
// up, this order winds clockwise.
//
// A degenerate direction (|start-end| < SegmentEpsilon) yields a square of
// side w centered at start.
func PerpendicularOffset(start, end Point, w float64) []Point {
	dir := end.Sub(start)
	if dir.Length() < SegmentEpsilon {
		half := w / 2
		return []Point{
			{start.X - half, start.Y + half},
			{start.X + half, start.Y + half},
			{start.X + half, start.Y - half},
			{start.X - half, start.Y - half},
		}
	}
	unit := dir.Normalize()
	left := unit.Perp().Scale(w / 2)
	right := left.Scale(-1)
	p1 := start.Add(left)
	p2 := end.Add(left)
	p3 := end.Add(right)
	p4 := start.Add(right)
	return []Point{p1, p2, p3, p4}
}
