package traffic

import (
	"fmt"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// PathType classifies the kind of circulation overlay a TrafficPath
// represents.
type PathType int

const (
	PrimaryCirculation PathType = iota
	SecondaryCirculation
	KitchenWorkZone
	FurnitureClearance
	EntryZone
)

func (p PathType) String() string {
	switch p {
	case PrimaryCirculation:
		return "primary_circulation"
	case SecondaryCirculation:
		return "secondary_circulation"
	case KitchenWorkZone:
		return "kitchen_work_zone"
	case FurnitureClearance:
		return "furniture_clearance"
	case EntryZone:
		return "entry_zone"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// TrafficPath is a notional circulation overlay inside an open-plan zone.
// Its area is reported separately and never added to the building
// footprint.
type TrafficPath struct {
	ID              string
	Type            PathType
	ParentClusterID string
	Vertices        []geometry.Point
	Area            float64
	BlocksFurniture bool
}

// GeneratePrimaryTrafficPath builds a 3 ft wide circulation spine through
// the cluster, running along its longer bounding-box dimension.
func GeneratePrimaryTrafficPath(c OpenPlanCluster) TrafficPath {
	const width = 3.0
	b := c.Bounds
	center := b.Center()

	var start, end geometry.Point
	if b.Width() >= b.Height() {
		start = geometry.Point{X: b.MinX, Y: center.Y}
		end = geometry.Point{X: b.MaxX, Y: center.Y}
	} else {
		start = geometry.Point{X: center.X, Y: b.MinY}
		end = geometry.Point{X: center.X, Y: b.MaxY}
	}

	verts := geometry.PerpendicularOffset(start, end, width)
	return TrafficPath{
		ID:              fmt.Sprintf("%s-primary", c.ID),
		Type:            PrimaryCirculation,
		ParentClusterID: c.ID,
		Vertices:        verts,
		Area:            geometry.Area(verts),
		BlocksFurniture: false,
	}
}

// GenerateKitchenWorkZone builds a rectangle offset 4 ft out from the
// kitchen room's bounds within the cluster. The rectangle is not clipped
// to the cluster's bounds. Returns the zero TrafficPath and false if the
// cluster has no kitchen.
func GenerateKitchenWorkZone(c OpenPlanCluster) (TrafficPath, bool) {
	const offset = 4.0
	var kitchen *RoomRef
	for i := range c.Rooms {
		if c.Rooms[i].Type == roomtype.Kitchen {
			kitchen = &c.Rooms[i]
			break
		}
	}
	if kitchen == nil {
		return TrafficPath{}, false
	}

	b := geometry.Rect{
		MinX: kitchen.Bounds.MinX - offset,
		MinY: kitchen.Bounds.MinY - offset,
		MaxX: kitchen.Bounds.MaxX + offset,
		MaxY: kitchen.Bounds.MaxY + offset,
	}

	verts := []geometry.Point{
		{X: b.MinX, Y: b.MinY}, {X: b.MaxX, Y: b.MinY}, {X: b.MaxX, Y: b.MaxY}, {X: b.MinX, Y: b.MaxY},
	}
	return TrafficPath{
		ID:              fmt.Sprintf("%s-kitchen", c.ID),
		Type:            KitchenWorkZone,
		ParentClusterID: c.ID,
		Vertices:        verts,
		Area:            geometry.Area(verts),
		BlocksFurniture: true,
	}, true
}

// GenerateEntryZone builds a 3 ft square centered on the primary entry
// point.
func GenerateEntryZone(c OpenPlanCluster, entry geometry.Point) TrafficPath {
	const half = 1.5
	verts := []geometry.Point{
		{X: entry.X - half, Y: entry.Y - half},
		{X: entry.X + half, Y: entry.Y - half},
		{X: entry.X + half, Y: entry.Y + half},
		{X: entry.X - half, Y: entry.Y + half},
	}
	return TrafficPath{
		ID:              fmt.Sprintf("%s-entry", c.ID),
		Type:            EntryZone,
		ParentClusterID: c.ID,
		Vertices:        verts,
		Area:            geometry.Area(verts),
		BlocksFurniture: false,
	}
}
