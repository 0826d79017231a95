package pathfind

import (
	"testing"

	"github.com/arxflow/floorplan/pkg/geometry"
	"github.com/arxflow/floorplan/pkg/roomtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAllRoomsReachableSimpleHallway(t *testing.T) {
	rooms := []RoomRef{
		{ID: "1", Name: "foyer", Type: roomtype.Foyer, Bounds: geometry.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}},
		{ID: "2", Name: "bedroom", Type: roomtype.Bedroom, Bounds: geometry.Rect{MinX: 14, MinY: 0, MaxX: 24, MaxY: 10}},
	}
	circulation := [][]geometry.Point{square(10, 2, 14, 8)}
	result := ValidateAllRoomsReachable(rooms, circulation, nil, "foyer")
	require.True(t, result.AllReachable)
	assert.Contains(t, result.Reachable, "bedroom")
	assert.True(t, result.Results["bedroom"].Found)
}

// Seed scenario 6: a room with no connecting hallway is unreachable.
func TestValidateAllRoomsReachableIsolatedRoomFails(t *testing.T) {
	rooms := []RoomRef{
		{ID: "1", Name: "foyer", Type: roomtype.Foyer, Bounds: geometry.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}},
		{ID: "2", Name: "isolated", Type: roomtype.Bedroom, Bounds: geometry.Rect{MinX: 100, MinY: 100, MaxX: 110, MaxY: 110}},
	}
	result := ValidateAllRoomsReachable(rooms, nil, nil, "foyer")
	assert.False(t, result.AllReachable)
	assert.Contains(t, result.Unreachable, "isolated")
}

func TestValidateAllRoomsReachableBedroomToBedroomNotShortcut(t *testing.T) {
	rooms := []RoomRef{
		{ID: "1", Name: "foyer", Type: roomtype.Foyer, Bounds: geometry.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}},
		{ID: "2", Name: "bedroom-a", Type: roomtype.Bedroom, Bounds: geometry.Rect{MinX: 14, MinY: 0, MaxX: 24, MaxY: 10}},
		{ID: "3", Name: "bedroom-b", Type: roomtype.Bedroom, Bounds: geometry.Rect{MinX: 24, MinY: 0, MaxX: 34, MaxY: 10}},
	}
	circulation := [][]geometry.Point{square(10, 2, 14, 8)}
	result := ValidateAllRoomsReachable(rooms, circulation, nil, "foyer")
	assert.Contains(t, result.Reachable, "bedroom-a")
	assert.Contains(t, result.Unreachable, "bedroom-b")
}

func TestValidateAllRoomsReachableUnknownEntry(t *testing.T) {
	rooms := []RoomRef{
		{ID: "1", Name: "a", Type: roomtype.Living, Bounds: geometry.Rect{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}},
	}
	result := ValidateAllRoomsReachable(rooms, nil, nil, "missing")
	assert.False(t, result.AllReachable)
}
