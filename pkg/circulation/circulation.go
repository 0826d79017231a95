package circulation

import (
	"math"

	"github.com/arxflow/floorplan/pkg/roomtype"
)

// ProgramEntry is one line of the room program fed into requirement and
// budget computation: a named room of a given type, its requested area,
// and whether it is the primary instance of its type.
type ProgramEntry struct {
	Name      string
	Type      roomtype.Type
	Area      float64
	IsPrimary bool
}

func countBedrooms(program []ProgramEntry) int {
	n := 0
	for _, p := range program {
		if p.Type == roomtype.Bedroom {
			n++
		}
	}
	return n
}

func hasPublicAndPrivate(program []ProgramEntry) bool {
	public, private := false, false
	for _, p := range program {
		if roomtype.IsOpenPlan(p.Type) {
			public = true
		}
		if p.Type == roomtype.Bedroom {
			private = true
		}
	}
	return public && private
}

func hasGarage(program []ProgramEntry) bool {
	for _, p := range program {
		if p.Type == roomtype.Garage {
			return true
		}
	}
	return false
}

// estimateDoorCount follows the per-AccessType door weighting: direct and
// indirect rooms need one door each, shared rooms half a door (shared walls
// split the cost), foyer/mudroom hub rooms one door, service rooms one door.
// Other hub rooms (hallway, circulation, stair, landing) are circulation
// itself and contribute no door count.
func estimateDoorCount(program []ProgramEntry) int {
	total := 0.0
	for _, p := range program {
		switch roomtype.AccessOf(p.Type) {
		case roomtype.Direct, roomtype.Indirect:
			total += 1
		case roomtype.Shared:
			total += 0.5
		case roomtype.Hub:
			if p.Type == roomtype.Foyer || p.Type == roomtype.Mudroom {
				total += 1
			}
		case roomtype.Service:
			total += 1
		}
	}
	return int(math.Ceil(total))
}

// ComputeRequirements derives the ordered list of CirculationRequirements
// for a program, building them in the fixed order: foyer, bedroom hallway,
// zone transition, stairwell (with landings), door clearances, mudroom.
func ComputeRequirements(program []ProgramEntry, stories int, feel Feel) []Requirement {
	params := ParamsFor(feel)
	var reqs []Requirement

	reqs = append(reqs, Requirement{
		Component: Foyer,
		Reason:    "entry circulation is always required",
		Area:      params.FoyerSize,
		Optional:  false,
	})

	bedrooms := countBedrooms(program)
	if bedrooms > 0 {
		length := 4*float64(bedrooms) + 8
		reqs = append(reqs, Requirement{
			Component: BedroomHallway,
			Reason:    "hallway serving the private bedroom zone",
			Area:      length * params.HallwayWidth,
			Optional:  false,
		})
	}

	if hasPublicAndPrivate(program) {
		reqs = append(reqs, Requirement{
			Component: ZoneTransition,
			Reason:    "transition between public and private zones",
			Area:      40 + 10*params.TransitionBuffer,
			Optional:  false,
		})
	}

	if stories >= 2 {
		reqs = append(reqs,
			Requirement{Component: Stairwell, Reason: "vertical circulation between stories", Area: params.HallwayWidth * 14, Optional: false},
			Requirement{Component: UpperLanding, Reason: "landing at the top of the stair", Area: 25, Optional: false},
			Requirement{Component: LowerLanding, Reason: "landing at the bottom of the stair", Area: 20, Optional: false},
		)
	}

	doors := estimateDoorCount(program)
	if doors > 0 {
		reqs = append(reqs, Requirement{
			Component: DoorClearances,
			Reason:    "swing clearance for estimated door count",
			Area:      4 * float64(doors),
			Optional:  true,
		})
	}

	if hasGarage(program) {
		reqs = append(reqs, Requirement{
			Component: Mudroom,
			Reason:    "transition space between garage and living area",
			Area:      48,
			Optional:  true,
		})
	}

	return reqs
}

// Band is a requirement-relative rating of actual circulation area against
// the computed requirement.
type Band int

const (
	Cramped Band = iota
	Tight
	Efficient
	ComfortableBand
	Wasteful
)

func (b Band) String() string {
	switch b {
	case Cramped:
		return "cramped"
	case Tight:
		return "tight"
	case Efficient:
		return "efficient"
	case ComfortableBand:
		return "comfortable"
	case Wasteful:
		return "wasteful"
	default:
		return "unknown"
	}
}

// RateCirculation rates actual circulation percentage against required
// percentage using their ratio: <0.8 cramped, <0.95 tight, <=1.1 efficient,
// <=1.3 comfortable, else wasteful.
func RateCirculation(actualPct, requiredPct float64) Band {
	if requiredPct == 0 {
		return Wasteful
	}
	ratio := actualPct / requiredPct
	switch {
	case ratio < 0.8:
		return Cramped
	case ratio < 0.95:
		return Tight
	case ratio <= 1.1:
		return Efficient
	case ratio <= 1.3:
		return ComfortableBand
	default:
		return Wasteful
	}
}

// AreaBand is the area-only rating of circulation as a raw percentage of
// footprint, independent of any computed requirement. The spec source
// mixes this with the requirement-relative Band in places; both are
// reported by this package and callers decide which applies.
type AreaBand int

const (
	Excellent AreaBand = iota
	Good
	Acceptable
	High
)

func (b AreaBand) String() string {
	switch b {
	case Excellent:
		return "excellent"
	case Good:
		return "good"
	case Acceptable:
		return "acceptable"
	case High:
		return "high"
	default:
		return "unknown"
	}
}

// RateAreaOnly rates circulationArea/footprintArea*100 against the fixed
// 10/15/20 percent bands.
func RateAreaOnly(circulationArea, footprintArea float64) AreaBand {
	if footprintArea <= 0 {
		return High
	}
	pct := circulationArea / footprintArea * 100
	switch {
	case pct <= 10:
		return Excellent
	case pct <= 15:
		return Good
	case pct <= 20:
		return Acceptable
	default:
		return High
	}
}
