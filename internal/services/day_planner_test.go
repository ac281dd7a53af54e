package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func window(dep, ret string) domain.DayWindow {
	return domain.DayWindow{DepartureAt: dep, ReturnAt: ret}
}

func eatingSpots(ids ...string) []*domain.Spot {
	spots := make([]*domain.Spot, 0, len(ids))
	for _, id := range ids {
		spots = append(spots, testSpot(id, domain.CategoryEating))
	}
	return spots
}

func TestNewDayPlannerRejectsBadWindows(t *testing.T) {
	_, err := NewDayPlanner([]domain.DayWindow{window("9am", "21:00")}, nil, nil, domain.CategorySightseeing)
	assert.Error(t, err)

	_, err = NewDayPlanner([]domain.DayWindow{window("21:00", "09:00")}, nil, nil, domain.CategorySightseeing)
	assert.Error(t, err)
}

func TestAllocateSingleDay(t *testing.T) {
	must := testSpot("museum", domain.CategoryMust, domain.CategoryMuseumGallery)

	planner, err := NewDayPlanner(
		[]domain.DayWindow{window("09:00", "21:00")},
		[]*domain.Spot{must},
		eatingSpots("e1", "e2", "e3"),
		domain.CategorySightseeing,
	)
	require.NoError(t, err)

	allocations, err := planner.Allocate(1)
	require.NoError(t, err)
	require.Len(t, allocations, 1)

	alloc := allocations[0]
	assert.Equal(t, 12*3600, alloc.ActiveTime)
	assert.Equal(t, []*domain.Spot{must}, alloc.MustSpots)

	// 12h minus the museum leaves room for a lunch and a dinner stop.
	require.Len(t, alloc.MealSpots, 2)
	assert.Equal(t, "e1", alloc.MealSpots[0].SpotID)
	assert.Equal(t, "e2", alloc.MealSpots[1].SpotID)

	assert.Contains(t, alloc.MustPassNodes, "museum")
	assert.Contains(t, alloc.MustPassNodes, "e1")
	assert.Contains(t, alloc.MustPassNodes, "e2")

	// Window offsets are relative to the 09:00 departure.
	lunch := alloc.TimeConstraints["e1"]
	require.Len(t, lunch, 1)
	assert.Equal(t, TimeWindow{Start: 2 * 3600, End: 6 * 3600}, lunch[0])

	dinner := alloc.TimeConstraints["e2"]
	require.Len(t, dinner, 1)
	assert.Equal(t, TimeWindow{Start: 8 * 3600, End: 12 * 3600}, dinner[0])
}

func TestAllocateMultiDayDistributesLongestFirst(t *testing.T) {
	park := testSpot("park", domain.CategoryMust, domain.CategoryThemePark)
	museum := testSpot("museum", domain.CategoryMust, domain.CategoryMuseumGallery)
	sight := testSpot("sight", domain.CategoryMust, domain.CategorySightseeing)

	windows := []domain.DayWindow{
		window("09:00", "21:00"),
		window("09:00", "21:00"),
		window("09:00", "21:00"),
	}

	planner, err := NewDayPlanner(
		windows,
		[]*domain.Spot{park, museum, sight},
		eatingSpots("e1", "e2", "e3", "e4"),
		domain.CategorySightseeing,
	)
	require.NoError(t, err)

	allocations, err := planner.Allocate(3)
	require.NoError(t, err)
	require.Len(t, allocations, 3)

	// All three spots do not fit one day, so the theme park is shed to
	// day two and the cheap pair stays on day one.
	require.Len(t, allocations[0].MustSpots, 2)
	assert.Equal(t, "sight", allocations[0].MustSpots[0].SpotID)
	assert.Equal(t, "museum", allocations[0].MustSpots[1].SpotID)

	require.Len(t, allocations[1].MustSpots, 1)
	assert.Equal(t, "park", allocations[1].MustSpots[0].SpotID)

	assert.Empty(t, allocations[2].MustSpots)

	// Meal candidates are consumed FIFO in trip order.
	require.Len(t, allocations[0].MealSpots, 1)
	assert.Equal(t, "e1", allocations[0].MealSpots[0].SpotID)
	require.Len(t, allocations[1].MealSpots, 1)
	assert.Equal(t, "e2", allocations[1].MealSpots[0].SpotID)
	require.Len(t, allocations[2].MealSpots, 2)
	assert.Equal(t, "e3", allocations[2].MealSpots[0].SpotID)
	assert.Equal(t, "e4", allocations[2].MealSpots[1].SpotID)
}

func TestAllocateMultiDayOpenAirTheme(t *testing.T) {
	planner, err := NewDayPlanner(
		[]domain.DayWindow{window("09:00", "21:00"), window("09:00", "21:00")},
		nil,
		eatingSpots("e1", "e2"),
		domain.CategoryHiking,
	)
	require.NoError(t, err)

	allocations, err := planner.Allocate(2)
	require.NoError(t, err)
	require.Len(t, allocations, 2)

	// An open-air day absorbs one meal slot per day.
	assert.Len(t, allocations[0].MealSpots, 1)
	assert.Len(t, allocations[1].MealSpots, 1)
}

func TestAllocateMultiDayInfeasible(t *testing.T) {
	parks := []*domain.Spot{
		testSpot("p1", domain.CategoryMust, domain.CategoryThemePark),
		testSpot("p2", domain.CategoryMust, domain.CategoryThemePark),
	}

	planner, err := NewDayPlanner(
		[]domain.DayWindow{window("10:00", "13:00"), window("10:00", "13:00")},
		parks,
		nil,
		domain.CategorySightseeing,
	)
	require.NoError(t, err)

	_, err = planner.Allocate(2)
	assert.ErrorIs(t, err, domain.ErrTripInfeasible)
}

func TestAllocateWindowCountMismatch(t *testing.T) {
	planner, err := NewDayPlanner(
		[]domain.DayWindow{window("09:00", "21:00"), window("09:00", "21:00")},
		nil,
		nil,
		domain.CategorySightseeing,
	)
	require.NoError(t, err)

	_, err = planner.Allocate(3)
	assert.ErrorIs(t, err, domain.ErrPlannerInconsistent)
}
