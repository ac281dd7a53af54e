package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

func testSpot(id string, categories ...domain.Category) *domain.Spot {
	return &domain.Spot{SpotID: id, Name: id, Categories: categories}
}

func TestBuildGraphDropsUnusableLegs(t *testing.T) {
	spots := []*domain.Spot{
		testSpot("A", domain.CategorySightseeing),
		testSpot("B", domain.CategoryMuseumGallery),
		testSpot("C", domain.CategoryEating),
	}

	legs := []ports.TravelLeg{
		{OriginIndex: 0, DestinationIndex: 1, DurationSeconds: 600, DistanceMeters: 5000, RouteExists: true},
		{OriginIndex: 1, DestinationIndex: 2, DurationSeconds: 300, DistanceMeters: 2000, RouteExists: true},
		// no route between C and A
		{OriginIndex: 2, DestinationIndex: 0, DurationSeconds: 900, RouteExists: false},
		// zero duration is unusable
		{OriginIndex: 0, DestinationIndex: 2, DurationSeconds: 0, RouteExists: true},
		// self loop
		{OriginIndex: 1, DestinationIndex: 1, DurationSeconds: 100, RouteExists: true},
		// out of range
		{OriginIndex: 7, DestinationIndex: 0, DurationSeconds: 100, RouteExists: true},
	}

	g := BuildGraph(spots, legs, GraphOptions{})

	require.Len(t, g["A"], 1)
	assert.Equal(t, "B", g["A"][0].To)
	assert.Equal(t, 600, g["A"][0].TravelTime)
	assert.Equal(t, 5000, g["A"][0].Distance)
	// stay time is the destination's average visit duration
	assert.Equal(t, 2*3600, g["A"][0].StayTime)

	require.Len(t, g["B"], 1)
	assert.Equal(t, "C", g["B"][0].To)
	assert.Equal(t, 3600, g["B"][0].StayTime)

	assert.Empty(t, g["C"])
}

func TestBuildGraphSymmetric(t *testing.T) {
	spots := []*domain.Spot{
		testSpot("A", domain.CategorySightseeing),
		testSpot("B", domain.CategoryMuseumGallery),
	}
	legs := []ports.TravelLeg{
		{OriginIndex: 0, DestinationIndex: 1, DurationSeconds: 600, RouteExists: true},
	}

	g := BuildGraph(spots, legs, GraphOptions{Symmetric: true})

	forward, ok := findEdge(g, "A", "B")
	require.True(t, ok)
	assert.Equal(t, 2*3600, forward.StayTime)

	reverse, ok := findEdge(g, "B", "A")
	require.True(t, ok)
	assert.Equal(t, 600, reverse.TravelTime)
	assert.Equal(t, 90*60, reverse.StayTime)

	_, ok = findEdge(g, "B", "missing")
	assert.False(t, ok)
}
