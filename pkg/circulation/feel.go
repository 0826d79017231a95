package circulation

import "fmt"

// Feel is the qualitative knob that fixes hallway width, foyer size, and
// zone-transition buffer in one move.
type Feel int

const (
	Cozy Feel = iota
	Comfortable
	Spacious
)

func (f Feel) String() string {
	switch f {
	case Cozy:
		return "cozy"
	case Comfortable:
		return "comfortable"
	case Spacious:
		return "spacious"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Params holds the concrete numeric parameters a Feel resolves to.
type Params struct {
	HallwayWidth     float64
	FoyerSize        float64
	TransitionBuffer float64
}

var feelParams = map[Feel]Params{
	Cozy:        {HallwayWidth: 3.0, FoyerSize: 48, TransitionBuffer: 0},
	Comfortable: {HallwayWidth: 3.5, FoyerSize: 64, TransitionBuffer: 1.5},
	Spacious:    {HallwayWidth: 4.0, FoyerSize: 100, TransitionBuffer: 3.0},
}

// ParamsFor returns the numeric parameters for f, defaulting to Comfortable
// for an unrecognised value.
func ParamsFor(f Feel) Params {
	if p, ok := feelParams[f]; ok {
		return p
	}
	return feelParams[Comfortable]
}
