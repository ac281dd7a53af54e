package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-planner-service/internal/domain"
)

func mustSet(ids ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func TestFindBestPathPrefersMoreSpots(t *testing.T) {
	g := Graph{
		"S": {{To: "A", TravelTime: 600, StayTime: 3600}, {To: "E", TravelTime: 600}},
		"A": {{To: "B", TravelTime: 600, StayTime: 3600}, {To: "E", TravelTime: 600}},
		"B": {{To: "E", TravelTime: 600}},
	}

	res := FindBestPath(g, "S", "E", Constraints{
		MaxTotalTime:  12 * 3600,
		MustPassNodes: mustSet("A"),
	}, domain.CategorySightseeing, false)

	assert.Equal(t, []string{"S", "A", "B", "E"}, res.Path)
	assert.Equal(t, 600+3600+600+3600+600, res.TotalTime)
	assert.False(t, res.Relaxed)
}

func TestFindBestPathHonorsBudget(t *testing.T) {
	g := Graph{
		"S": {{To: "A", TravelTime: 600, StayTime: 3600}},
		"A": {{To: "E", TravelTime: 600}},
	}

	res := FindBestPath(g, "S", "E", Constraints{
		MaxTotalTime:  3600,
		MustPassNodes: mustSet("A"),
	}, domain.CategorySightseeing, false)

	assert.Empty(t, res.Path)
}

func TestFindBestPathMissedMustPass(t *testing.T) {
	// B is required but unreachable.
	g := Graph{
		"S": {{To: "A", TravelTime: 600, StayTime: 3600}},
		"A": {{To: "E", TravelTime: 600}},
	}

	res := FindBestPath(g, "S", "E", Constraints{
		MaxTotalTime:  12 * 3600,
		MustPassNodes: mustSet("B"),
	}, domain.CategorySightseeing, false)

	assert.Empty(t, res.Path)
}

func TestFindBestPathRelaxesMealWindows(t *testing.T) {
	// M's arrival window is impossible, so the constrained pass fails.
	// The fallback drops M from the must-pass set and still routes A.
	g := Graph{
		"S": {{To: "A", TravelTime: 600, StayTime: 3600}, {To: "M", TravelTime: 1000, StayTime: 3600}},
		"A": {{To: "E", TravelTime: 600}},
		"M": {{To: "E", TravelTime: 600}},
	}

	res := FindBestPath(g, "S", "E", Constraints{
		MaxTotalTime:  12 * 3600,
		MustPassNodes: mustSet("A", "M"),
		TimeConstraints: TimeConstraints{
			"M": {{Start: 0, End: 10}},
		},
	}, domain.CategorySightseeing, false)

	require.Equal(t, []string{"S", "A", "E"}, res.Path)
	assert.True(t, res.Relaxed)
}

func TestFindBestPathOpenAirThemeIgnoresWindows(t *testing.T) {
	g := Graph{
		"S": {{To: "M", TravelTime: 1000, StayTime: 3600}},
		"M": {{To: "E", TravelTime: 600}},
	}

	res := FindBestPath(g, "S", "E", Constraints{
		MaxTotalTime:  12 * 3600,
		MustPassNodes: mustSet("M"),
		TimeConstraints: TimeConstraints{
			"M": {{Start: 0, End: 10}},
		},
	}, domain.CategoryHiking, false)

	require.Equal(t, []string{"S", "M", "E"}, res.Path)
	assert.False(t, res.Relaxed)
}

func TestFindBestPathRoundTrip(t *testing.T) {
	g := Graph{
		"S": {{To: "A", TravelTime: 600, StayTime: 3600}},
		"A": {{To: "S", TravelTime: 600}},
	}

	res := FindBestPath(g, "S", "S", Constraints{
		MaxTotalTime:  12 * 3600,
		MustPassNodes: mustSet("A"),
	}, domain.CategorySightseeing, true)

	assert.Equal(t, []string{"S", "A", "S"}, res.Path)
}

func TestFindBestPathNoRoute(t *testing.T) {
	g := Graph{}

	res := FindBestPath(g, "S", "E", Constraints{MaxTotalTime: 3600}, domain.CategorySightseeing, false)

	assert.Empty(t, res.Path)
	assert.Zero(t, res.TotalTime)
}

func TestFitsWindow(t *testing.T) {
	windows := []TimeWindow{{Start: 100, End: 200}, {Start: 400, End: 500}}

	assert.True(t, fitsWindow(100, 200, windows))
	assert.True(t, fitsWindow(450, 500, windows))
	assert.False(t, fitsWindow(150, 250, windows))
	assert.False(t, fitsWindow(300, 350, windows))
}
