package google

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

type MockLeg struct {
	From, To string
	Meters   int
	Seconds  int
}

// MockMatrixProvider serves travel legs from a fixed pair table. Pairs
// absent from the table are reported as unroutable.
type MockMatrixProvider struct {
	m map[string]MockLeg
}

func NewMockMatrixProvider(legs []MockLeg) *MockMatrixProvider {
	m := make(map[string]MockLeg, len(legs))
	for _, l := range legs {
		m[l.From+"|"+l.To] = l
	}
	return &MockMatrixProvider{m: m}
}

func (p *MockMatrixProvider) RouteMatrix(ctx context.Context, spots []*domain.Spot) ([]ports.TravelLeg, error) {
	var legs []ports.TravelLeg
	for i, from := range spots {
		for j, to := range spots {
			if i == j {
				continue
			}
			l, ok := p.m[from.SpotID+"|"+to.SpotID]
			legs = append(legs, ports.TravelLeg{
				OriginIndex:      i,
				DestinationIndex: j,
				DistanceMeters:   l.Meters,
				DurationSeconds:  l.Seconds,
				RouteExists:      ok,
			})
		}
	}
	return legs, nil
}

func (p *MockMatrixProvider) RouteDuration(ctx context.Context, origin, destination *domain.Spot) (int, error) {
	l, ok := p.m[origin.SpotID+"|"+destination.SpotID]
	if !ok {
		return 0, fmt.Errorf("missing pair %q -> %q", origin.SpotID, destination.SpotID)
	}
	return l.Seconds, nil
}

// MockCandidateProvider pages through a fixed candidate list in chunks,
// using the numeric offset as the cursor.
type MockCandidateProvider struct {
	Spots    []*domain.Spot
	PageSize int
}

func (p *MockCandidateProvider) SearchSpots(
	ctx context.Context,
	theme domain.Category,
	anchor *domain.Spot,
	cursor string,
) (ports.CandidatePage, error) {
	size := p.PageSize
	if size <= 0 {
		size = 20
	}

	start := 0
	if cursor != "" {
		if _, err := fmt.Sscanf(cursor, "%d", &start); err != nil {
			return ports.CandidatePage{}, fmt.Errorf("bad cursor %q", cursor)
		}
	}
	if start >= len(p.Spots) {
		return ports.CandidatePage{}, nil
	}

	end := start + size
	if end > len(p.Spots) {
		end = len(p.Spots)
	}

	page := ports.CandidatePage{Spots: p.Spots[start:end]}
	if end < len(p.Spots) {
		page.NextCursor = fmt.Sprintf("%d", end)
	}
	return page, nil
}
