package circulation

import (
	"fmt"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
)

// SpineType is the backbone circulation topology of a floor plan.
type SpineType int

const (
	Linear SpineType = iota
	Branching
	HubAndSpoke
)

func (s SpineType) String() string {
	switch s {
	case Linear:
		return "linear"
	case Branching:
		return "branching"
	case HubAndSpoke:
		return "hub_and_spoke"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Segment is a straight circulation centerline between two points.
type Segment struct {
	Start, End geometry.Point
}

// Spine is the realised circulation backbone: its topology, main axis,
// branch segments, room names clustered by zone, and aggregate area.
type Spine struct {
	Type      SpineType
	MainAxis  Segment
	Branches  []Segment
	Zones     map[roomtype.Zone][]string
	TotalArea float64
}

// chooseSpineType picks the topology from the footprint aspect ratio and an
// explicit L-shape flag: an elongated footprint (ratio > 1.5 or < 0.67)
// takes a linear spine regardless of the L-shape flag; an L-shaped but
// otherwise balanced footprint takes a branching spine; anything else is
// hub-and-spoke.
func chooseSpineType(width, depth float64, isL bool) SpineType {
	ratio := width / depth
	if ratio > 1.5 || ratio < 0.67 {
		return Linear
	}
	if isL {
		return Branching
	}
	return HubAndSpoke
}

// zonesFor buckets program entries by their RoomType's circulation zone.
func zonesFor(program []ProgramEntry) map[roomtype.Zone][]string {
	zones := make(map[roomtype.Zone][]string)
	for _, p := range program {
		z := roomtype.ZoneOf(p.Type)
		zones[z] = append(zones[z], p.Name)
	}
	return zones
}

// ComputeSpine derives the CirculationSpine for a footprint (width, depth),
// program, story count, feel, and explicit L-shape flag. The main axis runs
// along the footprint's longer dimension through its centre for a linear
// spine; other topologies use a short centre segment as a nominal hub.
func ComputeSpine(width, depth float64, program []ProgramEntry, stories int, feel Feel, isL bool) Spine {
	spineType := chooseSpineType(width, depth, isL)
	cx, cy := width/2, depth/2

	var axis Segment
	switch spineType {
	case Linear:
		if width >= depth {
			axis = Segment{Start: geometry.Point{X: 0, Y: cy}, End: geometry.Point{X: width, Y: cy}}
		} else {
			axis = Segment{Start: geometry.Point{X: cx, Y: 0}, End: geometry.Point{X: cx, Y: depth}}
		}
	default:
		half := ParamsFor(feel).HallwayWidth
		axis = Segment{
			Start: geometry.Point{X: cx - half, Y: cy},
			End:   geometry.Point{X: cx + half, Y: cy},
		}
	}

	reqs := ComputeRequirements(program, stories, feel)

	return Spine{
		Type:      spineType,
		MainAxis:  axis,
		Branches:  nil,
		Zones:     zonesFor(program),
		TotalArea: Sum(reqs, true),
	}
}
