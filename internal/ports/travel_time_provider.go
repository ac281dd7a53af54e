package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// TravelLeg is one ordered pair from a route matrix. Indices refer to the
// location list the matrix was requested for. Legs with RouteExists=false
// or a non-positive duration are excluded from graph construction.
type TravelLeg struct {
	OriginIndex      int
	DestinationIndex int
	DistanceMeters   int
	DurationSeconds  int
	RouteExists      bool
}

// Contract for retrieving pairwise travel times between an ordered list of
// locations.
type TravelTimeProvider interface {
	// Return a leg for each ordered pair of the given locations.
	RouteMatrix(ctx context.Context, spots []*domain.Spot) ([]TravelLeg, error)
}

// Optional extension for a cheap single-pair lookup, used by trip
// precondition validation.
type TravelTimePairProvider interface {
	TravelTimeProvider
	// Return the one-way travel duration between two locations, in seconds.
	RouteDuration(ctx context.Context, origin, destination *domain.Spot) (int, error)
}
