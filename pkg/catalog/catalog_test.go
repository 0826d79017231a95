package catalog

import (
	"testing"

	"github.com/arxflow/floorplan/pkg/roomtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCataloguesAreaAscending(t *testing.T) {
	for k, c := range catalogues {
		for i := 1; i < len(c); i++ {
			assert.GreaterOrEqual(t, c[i].Area, c[i-1].Area,
				"catalogue %v not ascending at index %d", k, i)
		}
	}
}

func TestFindOptionForAreaExactMatch(t *testing.T) {
	o := FindOptionForArea(roomtype.Bedroom, 100, false)
	assert.Equal(t, 100.0, o.Area)
}

func TestFindOptionForAreaRoundsUp(t *testing.T) {
	o := FindOptionForArea(roomtype.Bedroom, 105, false)
	assert.GreaterOrEqual(t, o.Area, 105.0)
}

func TestFindOptionForAreaBeyondCatalogue(t *testing.T) {
	c := catalogFor(roomtype.Bedroom, false)
	largest := c[len(c)-1]
	o := FindOptionForArea(roomtype.Bedroom, largest.Area+1000, false)
	assert.Equal(t, largest, o)
}

func TestFindOptionForAreaPrimaryVariant(t *testing.T) {
	o := FindOptionForArea(roomtype.Bedroom, 190, true)
	require.Greater(t, o.Area, 150.0)
}

func TestFindNextSizeUp(t *testing.T) {
	o, ok := FindNextSizeUp(roomtype.Bedroom, 100, 50, false)
	require.True(t, ok)
	assert.Greater(t, o.Area, 100.0)
}

func TestFindNextSizeUpNoneWithinBudget(t *testing.T) {
	_, ok := FindNextSizeUp(roomtype.Bedroom, 100, 1, false)
	assert.False(t, ok)
}

func TestFindNextSizeUpAtLargestOption(t *testing.T) {
	c := catalogFor(roomtype.Bedroom, false)
	largest := c[len(c)-1]
	_, ok := FindNextSizeUp(roomtype.Bedroom, largest.Area, 1000, false)
	assert.False(t, ok)
}

func TestCatalogForFallsBackToOther(t *testing.T) {
	c := catalogFor(roomtype.Type(999), false)
	assert.Equal(t, catalogues[key{roomtype.Other, false}], c)
}

func TestCatalogForPrimaryFallsBackToNonPrimary(t *testing.T) {
	c := catalogFor(roomtype.Kitchen, true)
	assert.Equal(t, catalogues[key{roomtype.Kitchen, false}], c)
}
