package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func TestBuildDayPlan(t *testing.T) {
	g := Graph{
		"H": {{To: "A", TravelTime: 1800, StayTime: 5400}},
		"A": {{To: "G", TravelTime: 2400}},
	}
	spots := map[string]*domain.Spot{
		"H": testSpot("H", domain.CategoryHotel),
		"A": testSpot("A", domain.CategorySightseeing),
		"G": testSpot("G", domain.CategoryHotel),
	}
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	plan := BuildDayPlan([]string{"H", "A", "G"}, g, spots, day, domain.ModeCar)

	require.False(t, plan.Degraded)
	require.Len(t, plan.Records, 5)

	depart := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	first := plan.Records[0]
	assert.Equal(t, domain.RecordSpot, first.Kind)
	assert.Equal(t, domain.VisitDeparture, first.Type)
	assert.Equal(t, "H", first.Spot.SpotID)
	assert.Equal(t, depart, first.DepartureAt)

	leg := plan.Records[1]
	assert.Equal(t, domain.RecordTraffic, leg.Kind)
	assert.Equal(t, domain.ModeCar, leg.Mode)
	assert.Equal(t, depart, leg.DepartureAt)
	assert.Equal(t, depart.Add(30*time.Minute), leg.ArrivedAt)

	stop := plan.Records[2]
	assert.Equal(t, domain.VisitWaypoint, stop.Type)
	assert.Equal(t, "A", stop.Spot.SpotID)
	assert.Equal(t, depart.Add(30*time.Minute), stop.ArrivedAt)
	assert.Equal(t, depart.Add(2*time.Hour), stop.DepartureAt)

	last := plan.Records[4]
	assert.Equal(t, domain.VisitDestination, last.Type)
	assert.Equal(t, "G", last.Spot.SpotID)
	assert.Equal(t, depart.Add(2*time.Hour+40*time.Minute), last.ArrivedAt)
}

func TestBuildDayPlanDegraded(t *testing.T) {
	day := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	plan := BuildDayPlan(nil, Graph{}, nil, day, domain.ModeCar)
	assert.True(t, plan.Degraded)
	assert.Empty(t, plan.Records)

	plan = BuildDayPlan([]string{"H"}, Graph{}, nil, day, domain.ModeCar)
	assert.True(t, plan.Degraded)
}
