package circulation

import (
	"testing"

	"github.com/arxflow/floorplan/pkg/roomtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reqArea(reqs []Requirement, c Component) (float64, bool) {
	for _, r := range reqs {
		if r.Component == c {
			return r.Area, true
		}
	}
	return 0, false
}

// Seed scenario 1: 2500 sq ft, 3-bed 2.5-bath, comfortable.
func TestComputeRequirementsThreeBedComfortable(t *testing.T) {
	program := []ProgramEntry{
		{Name: "living", Type: roomtype.Living, Area: 196},
		{Name: "kitchen", Type: roomtype.Kitchen, Area: 144},
		{Name: "dining", Type: roomtype.Dining, Area: 132},
		{Name: "primary bedroom", Type: roomtype.Bedroom, Area: 196, IsPrimary: true},
		{Name: "primary bath", Type: roomtype.Bathroom, Area: 80, IsPrimary: true},
		{Name: "primary closet", Type: roomtype.Closet, Area: 48, IsPrimary: true},
		{Name: "bedroom 2", Type: roomtype.Bedroom, Area: 120},
		{Name: "bedroom 3", Type: roomtype.Bedroom, Area: 110},
		{Name: "closet 2", Type: roomtype.Closet, Area: 20},
		{Name: "closet 3", Type: roomtype.Closet, Area: 20},
		{Name: "bath", Type: roomtype.Bathroom, Area: 45},
		{Name: "half bath", Type: roomtype.Bathroom, Area: 25},
		{Name: "laundry", Type: roomtype.Laundry, Area: 48},
	}

	reqs := ComputeRequirements(program, 1, Comfortable)

	foyer, ok := reqArea(reqs, Foyer)
	require.True(t, ok)
	assert.Equal(t, 64.0, foyer)

	hallway, ok := reqArea(reqs, BedroomHallway)
	require.True(t, ok)
	assert.InDelta(t, 70.0, hallway, 1e-9)

	transition, ok := reqArea(reqs, ZoneTransition)
	require.True(t, ok)
	assert.InDelta(t, 55.0, transition, 1e-9)

	required := Sum(reqs, false)
	assert.InDelta(t, 189.0, required, 1e-9)
}

// Seed scenario 2: 1200 sq ft, 2-bed 1-bath, cozy.
func TestComputeRequirementsTwoBedCozy(t *testing.T) {
	program := []ProgramEntry{
		{Name: "living", Type: roomtype.Living, Area: 144},
		{Name: "kitchen", Type: roomtype.Kitchen, Area: 100},
		{Name: "bedroom 1", Type: roomtype.Bedroom, Area: 100, IsPrimary: true},
		{Name: "bedroom 2", Type: roomtype.Bedroom, Area: 100},
		{Name: "bath", Type: roomtype.Bathroom, Area: 45},
	}

	reqs := ComputeRequirements(program, 1, Cozy)

	foyer, ok := reqArea(reqs, Foyer)
	require.True(t, ok)
	assert.Equal(t, 48.0, foyer)

	hallway, ok := reqArea(reqs, BedroomHallway)
	require.True(t, ok)
	assert.InDelta(t, 48.0, hallway, 1e-9)

	transition, ok := reqArea(reqs, ZoneTransition)
	require.True(t, ok)
	assert.InDelta(t, 40.0, transition, 1e-9)
}

func TestComputeRequirementsZeroBedroomsNoHallway(t *testing.T) {
	program := []ProgramEntry{
		{Name: "living", Type: roomtype.Living, Area: 144},
	}
	reqs := ComputeRequirements(program, 1, Cozy)
	_, ok := reqArea(reqs, BedroomHallway)
	assert.False(t, ok)
}

func TestComputeRequirementsOneStoryNoStairwell(t *testing.T) {
	program := []ProgramEntry{{Name: "bedroom", Type: roomtype.Bedroom, Area: 100}}
	reqs := ComputeRequirements(program, 1, Cozy)
	_, ok := reqArea(reqs, Stairwell)
	assert.False(t, ok)
}

func TestComputeRequirementsTwoStoriesAddsStairwell(t *testing.T) {
	program := []ProgramEntry{{Name: "bedroom", Type: roomtype.Bedroom, Area: 100}}
	reqs := ComputeRequirements(program, 2, Comfortable)
	stair, ok := reqArea(reqs, Stairwell)
	require.True(t, ok)
	assert.InDelta(t, 3.5*14, stair, 1e-9)
	_, ok = reqArea(reqs, UpperLanding)
	assert.True(t, ok)
	_, ok = reqArea(reqs, LowerLanding)
	assert.True(t, ok)
}

func TestComputeRequirementsGarageAddsMudroom(t *testing.T) {
	program := []ProgramEntry{{Name: "garage", Type: roomtype.Garage, Area: 240}}
	reqs := ComputeRequirements(program, 1, Cozy)
	area, ok := reqArea(reqs, Mudroom)
	require.True(t, ok)
	assert.Equal(t, 48.0, area)
}

func TestRateCirculationBands(t *testing.T) {
	assert.Equal(t, Cramped, RateCirculation(10, 20))
	assert.Equal(t, Tight, RateCirculation(18, 20))
	assert.Equal(t, Efficient, RateCirculation(20, 20))
	assert.Equal(t, ComfortableBand, RateCirculation(24, 20))
	assert.Equal(t, Wasteful, RateCirculation(30, 20))
}

func TestChooseSpineTypeLinearForElongatedFootprint(t *testing.T) {
	spine := ComputeSpine(60, 20, nil, 1, Comfortable, false)
	assert.Equal(t, Linear, spine.Type)
}

func TestChooseSpineTypeHubAndSpokeForSquare(t *testing.T) {
	spine := ComputeSpine(40, 40, nil, 1, Comfortable, false)
	assert.Equal(t, HubAndSpoke, spine.Type)
}

func TestChooseSpineTypeBranchingForLShape(t *testing.T) {
	spine := ComputeSpine(40, 40, nil, 1, Comfortable, true)
	assert.Equal(t, Branching, spine.Type)
}
