package placement

import (
	"testing"

	"github.com/arxflow/floorplan/pkg/catalog"
	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func size(w, d float64) catalog.Option {
	return catalog.Option{Width: w, Depth: d, Area: w * d}
}

func TestPlaceAbsolute(t *testing.T) {
	var s State
	r, err := s.Place(Request{Name: "A", Type: roomtype.Bedroom, Size: size(12, 12), Position: Absolute(0, 0)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Origin.X)
	assert.Equal(t, 0.0, r.Origin.Y)
}

// Seed scenario 3: overlap rejection.
func TestPlaceOverlapRejected(t *testing.T) {
	var s State
	_, err := s.Place(Request{Name: "A", Type: roomtype.Bedroom, Size: size(12, 12), Position: Absolute(0, 0)})
	require.NoError(t, err)

	_, err = s.Place(Request{Name: "B", Type: roomtype.Bedroom, Size: size(12, 12), Position: Absolute(10, 0)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "A")
}

func TestPlaceRelativeNorth(t *testing.T) {
	var s State
	_, err := s.Place(Request{Name: "A", Type: roomtype.Bedroom, Size: size(10, 10), Position: Absolute(0, 0)})
	require.NoError(t, err)

	b, err := s.Place(Request{Name: "B", Type: roomtype.Bathroom, Size: size(5, 5), Position: Relative(North, "A", 1)})
	require.NoError(t, err)
	assert.Equal(t, 11.0, b.Origin.Y)
}

func TestPlaceRelativeRoomNotFound(t *testing.T) {
	var s State
	_, err := s.Place(Request{Name: "B", Type: roomtype.Bathroom, Size: size(5, 5), Position: Relative(North, "missing", 1)})
	require.Error(t, err)
}

func TestPlaceAutoFirstRoomAtOrigin(t *testing.T) {
	var s State
	r, err := s.Place(Request{Name: "A", Type: roomtype.Living, Size: size(12, 12), Position: Auto(nil)})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Origin.X)
	assert.Equal(t, 0.0, r.Origin.Y)
}

func TestPlaceAutoAvoidsOverlap(t *testing.T) {
	var s State
	_, err := s.Place(Request{Name: "A", Type: roomtype.Living, Size: size(12, 12), Position: Auto(nil)})
	require.NoError(t, err)

	b, err := s.Place(Request{Name: "B", Type: roomtype.Kitchen, Size: size(10, 10), Position: Auto(nil)})
	require.NoError(t, err)

	_, overlap := overlapsAny(b.Bounds(), []Room{s.Rooms[0]}, "", 0)
	assert.False(t, overlap)
}

func TestPlaceFootprintExceeded(t *testing.T) {
	s := State{Footprint: geometry.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}}
	_, err := s.Place(Request{Name: "A", Type: roomtype.Bedroom, Size: size(12, 12), Position: Absolute(0, 0)})
	require.Error(t, err)
}

func TestPlaceRejectsInvalidDimensions(t *testing.T) {
	var s State
	_, err := s.Place(Request{Name: "A", Type: roomtype.Bedroom, Size: size(0, 10), Position: Absolute(0, 0)})
	require.Error(t, err)
}

func TestNoOverlapInvariant(t *testing.T) {
	var s State
	rooms := []Request{
		{Name: "A", Type: roomtype.Living, Size: size(12, 12), Position: Absolute(0, 0)},
		{Name: "B", Type: roomtype.Kitchen, Size: size(10, 10), Position: Absolute(12, 0)},
		{Name: "C", Type: roomtype.Dining, Size: size(10, 10), Position: Absolute(0, 12)},
	}
	for _, req := range rooms {
		_, err := s.Place(req)
		require.NoError(t, err)
	}
	for i := 0; i < len(s.Rooms); i++ {
		for j := i + 1; j < len(s.Rooms); j++ {
			assert.False(t, s.Rooms[i].Bounds().Overlaps(s.Rooms[j].Bounds(), 0))
		}
	}
}
