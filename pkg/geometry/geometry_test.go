package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestAreaSquare(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	assert.InDelta(t, 100.0, Area(square), 1e-9)
}

func TestAreaWindingIndependent(t *testing.T) {
	ccw := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	cw := []Point{{0, 0}, {0, 10}, {10, 10}, {10, 0}}
	assert.InDelta(t, Area(ccw), Area(cw), 1e-9)
}

func TestAreaDegenerate(t *testing.T) {
	assert.Equal(t, 0.0, Area([]Point{{0, 0}, {1, 1}}))
}

func TestPointInPolygon(t *testing.T) {
	square := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	require.True(t, PointInPolygon(Point{5, 5}, square))
	require.False(t, PointInPolygon(Point{15, 5}, square))
}

func TestPolygonsOverlapSymmetric(t *testing.T) {
	a := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	b := []Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	c := []Point{{20, 20}, {30, 20}, {30, 30}, {20, 30}}

	assert.True(t, PolygonsOverlap(a, b))
	assert.True(t, PolygonsOverlap(b, a))
	assert.False(t, PolygonsOverlap(a, c))
	assert.False(t, PolygonsOverlap(c, a))
}

func TestSegmentIntersect(t *testing.T) {
	p, ok := SegmentIntersect(Point{0, 0}, Point{10, 10}, Point{0, 10}, Point{10, 0})
	require.True(t, ok)
	assert.InDelta(t, 5.0, p.X, 1e-9)
	assert.InDelta(t, 5.0, p.Y, 1e-9)
}

func TestSegmentIntersectParallel(t *testing.T) {
	_, ok := SegmentIntersect(Point{0, 0}, Point{10, 0}, Point{0, 1}, Point{10, 1})
	assert.False(t, ok)
}

func TestPerpendicularOffsetDegenerate(t *testing.T) {
	verts := PerpendicularOffset(Point{5, 5}, Point{5, 5}, 4)
	require.Len(t, verts, 4)
	assert.InDelta(t, 16.0, Area(verts), 1e-6)
}

func TestPerpendicularOffsetRectangle(t *testing.T) {
	verts := PerpendicularOffset(Point{0, 0}, Point{10, 0}, 4)
	require.Len(t, verts, 4)
	assert.InDelta(t, 40.0, Area(verts), 1e-6)
}

func TestSutherlandHodgmanClipFullyInside(t *testing.T) {
	subject := []Point{{2, 2}, {8, 2}, {8, 8}, {2, 8}}
	clip := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := SutherlandHodgmanClip(subject, clip)
	assert.InDelta(t, Area(subject), Area(out), 1e-6)
}

func TestSutherlandHodgmanClipPartial(t *testing.T) {
	subject := []Point{{5, 5}, {15, 5}, {15, 15}, {5, 15}}
	clip := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	out := SutherlandHodgmanClip(subject, clip)
	assert.InDelta(t, 25.0, Area(out), 1e-6)
}

// Property: PolygonsOverlap is symmetric for arbitrary axis-aligned boxes.
func TestPropertyOverlapSymmetric(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		ax := rapid.Float64Range(-50, 50).Draw(rt, "ax")
		ay := rapid.Float64Range(-50, 50).Draw(rt, "ay")
		aw := rapid.Float64Range(1, 20).Draw(rt, "aw")
		ad := rapid.Float64Range(1, 20).Draw(rt, "ad")
		bx := rapid.Float64Range(-50, 50).Draw(rt, "bx")
		by := rapid.Float64Range(-50, 50).Draw(rt, "by")
		bw := rapid.Float64Range(1, 20).Draw(rt, "bw")
		bd := rapid.Float64Range(1, 20).Draw(rt, "bd")

		a := []Point{{ax, ay}, {ax + aw, ay}, {ax + aw, ay + ad}, {ax, ay + ad}}
		b := []Point{{bx, by}, {bx + bw, by}, {bx + bw, by + bd}, {bx, by + bd}}

		if PolygonsOverlap(a, b) != PolygonsOverlap(b, a) {
			rt.Fatalf("overlap not symmetric for a=%v b=%v", a, b)
		}
	})
}

// Property: shoelace area is always non-negative.
func TestPropertyAreaNonNegative(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		x := rapid.Float64Range(0, 100).Draw(rt, "x")
		y := rapid.Float64Range(0, 100).Draw(rt, "y")
		w := rapid.Float64Range(0.1, 50).Draw(rt, "w")
		d := rapid.Float64Range(0.1, 50).Draw(rt, "d")
		poly := []Point{{x, y}, {x + w, y}, {x + w, y + d}, {x, y + d}}
		if Area(poly) < 0 {
			rt.Fatalf("negative area for %v", poly)
		}
	})
}
