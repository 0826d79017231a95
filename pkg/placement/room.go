package placement

import (
	"github.com/arxflow/floorplan/pkg/catalog"
	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// Room is a placed room: a resolved catalogue size, fixed at an origin
// (its southwest corner in layout coordinates), with derived bounds and
// centroid.
type Room struct {
	ID        string
	Name      string
	Type      roomtype.Type
	IsPrimary bool
	Size      catalog.Option
	Origin    geometry.Point
}

// Bounds returns the room's axis-aligned bounding rectangle.
func (r Room) Bounds() geometry.Rect {
	return geometry.Rect{
		MinX: r.Origin.X,
		MinY: r.Origin.Y,
		MaxX: r.Origin.X + r.Size.Width,
		MaxY: r.Origin.Y + r.Size.Depth,
	}
}

// Centroid returns the room's geometric center.
func (r Room) Centroid() geometry.Point {
	return r.Bounds().Center()
}
