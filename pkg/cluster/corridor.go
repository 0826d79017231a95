package cluster

import (
	"github.com/arxflow/floorplan/pkg/geometry"
)

// DefaultCorridorWidth is used when a caller does not specify one. A
// requested width below minCorridorWidth (3 ft) is clamped up to that floor.
const DefaultCorridorWidth = 3.5

const minCorridorWidth = 3.0

// Door is one door stub along a corridor, serving a single bedroom or hall
// bathroom.
type Door struct {
	RoomID string
	Point  geometry.Point
	Width  float64
}

// CorridorSpec is the realised geometry of a cluster's shared corridor.
type CorridorSpec struct {
	Length     float64
	Width      float64
	Centerline []geometry.Point
	Doors      []Door
}

// GenerateCorridor synthesises the corridor serving cluster: its length
// (4*(bedrooms+hall_baths)+8), its width (clamped to the 3 ft floor), a
// centerline parallel to the cluster's long axis offset outside the
// bounds on the south (horizontal axis) or west (vertical axis) side, and
// evenly spaced doors, one per served
// room, at t=(i+1)/(n+1) along the centerline.
func GenerateCorridor(c Cluster, width float64) CorridorSpec {
	if width <= 0 {
		width = DefaultCorridorWidth
	}
	if width < minCorridorWidth {
		width = minCorridorWidth
	}

	served := make([]RoomRef, 0, len(c.Bedrooms)+len(c.HallBathrooms))
	served = append(served, c.Bedrooms...)
	served = append(served, c.HallBathrooms...)

	length := 4*float64(len(served)) + 8

	centerline := corridorCenterline(c.Bounds, c.CorridorAxis, width, length)

	doors := make([]Door, 0, len(served))
	n := len(served)
	for i, r := range served {
		t := float64(i+1) / float64(n+1)
		doors = append(doors, Door{
			RoomID: r.ID,
			Point:  lerp(centerline[0], centerline[1], t),
			Width:  3.0,
		})
	}

	return CorridorSpec{Length: length, Width: width, Centerline: centerline, Doors: doors}
}

func lerp(a, b geometry.Point, t float64) geometry.Point {
	return geometry.Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// corridorCenterline runs parallel to axis, offset width/2+0.5 ft outside
// the cluster bounds: always on the south side for a horizontal axis and
// on the west side for a vertical one. Where the public zone lies is not
// taken into account.
func corridorCenterline(bounds geometry.Rect, axis Axis, width, length float64) []geometry.Point {
	offset := width/2 + 0.5
	center := bounds.Center()

	if axis == Horizontal {
		y := bounds.MinY - offset
		half := length / 2
		return []geometry.Point{{X: center.X - half, Y: y}, {X: center.X + half, Y: y}}
	}
	x := bounds.MinX - offset
	half := length / 2
	return []geometry.Point{{X: x, Y: center.Y - half}, {X: x, Y: center.Y + half}}
}
