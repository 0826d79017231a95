package spine

import (
	"math"
	"sort"

	"github.com/arxflow/floorplan/pkg/geometry"
)

// junctionDistance is the distance, as a multiple of hallway width, within
// which a hallway endpoint is considered to meet at a junction point.
// Generate does not use it: it collects a junction's hallways by the
// junction's SegmentIDs.
const junctionDistance = 2.0

// approach describes one hallway converging on a junction: the far
// endpoint, used to compute the direction the hallway approaches from.
type approach struct {
	hallwayID string
	far       geometry.Point
}

func approachAngle(center, far geometry.Point) float64 {
	return math.Atan2(far.Y-center.Y, far.X-center.X)
}

// buildJunctionPolygon synthesises the widened polygon at center: a square
// of side 1.2*width for n<=2 approaches, or a 2n-vertex polygon inscribed
// in a circle of radius 0.6*width for n>=3, with vertices ordered by
// approach direction.
func buildJunctionPolygon(center geometry.Point, width float64, approaches []approach) []geometry.Point {
	if len(approaches) <= 2 {
		half := 1.2 * width / 2
		return []geometry.Point{
			{X: center.X - half, Y: center.Y - half},
			{X: center.X + half, Y: center.Y - half},
			{X: center.X + half, Y: center.Y + half},
			{X: center.X - half, Y: center.Y + half},
		}
	}

	angles := make([]float64, len(approaches))
	for i, a := range approaches {
		angles[i] = approachAngle(center, a.far)
	}
	sort.Float64s(angles)

	radius := 0.6 * width
	n := len(angles)
	delta := math.Pi / float64(2*n)

	type vertex struct {
		angle float64
		point geometry.Point
	}
	var verts []vertex
	for _, a := range angles {
		for _, offset := range []float64{-delta, delta} {
			theta := a + offset
			verts = append(verts, vertex{
				angle: theta,
				point: geometry.Point{X: center.X + radius*math.Cos(theta), Y: center.Y + radius*math.Sin(theta)},
			})
		}
	}
	sort.Slice(verts, func(i, j int) bool { return verts[i].angle < verts[j].angle })

	out := make([]geometry.Point, len(verts))
	for i, v := range verts {
		out[i] = v.point
	}
	return out
}
