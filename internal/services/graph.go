package services

import (
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// Edge is one directed hop of the day graph. StayTime is the destination's
// average visit duration, resolved once at build time and never mutated.
type Edge struct {
	To         string
	TravelTime int // seconds
	StayTime   int // seconds
	Distance   int // meters
}

// Graph maps a spot id to its outgoing edges. A graph is built fresh for
// every planning day and must not be mutated after construction.
type Graph map[string][]Edge

// GraphOptions controls graph construction.
type GraphOptions struct {
	// Symmetric mirrors every surviving leg in the reverse direction.
	// The travel-time provider usually returns the full ordered-pair
	// matrix, so this stays off unless only one triangle was fetched.
	Symmetric bool
}

// BuildGraph converts a route matrix into a directed weighted graph over
// the given spot list. Legs without a route or with a non-positive travel
// time are dropped; every surviving leg becomes one edge carrying the
// travel time and the destination's average stay time.
func BuildGraph(spots []*domain.Spot, legs []ports.TravelLeg, opts GraphOptions) Graph {
	graph := make(Graph, len(spots))

	for _, leg := range legs {
		if !leg.RouteExists || leg.DurationSeconds <= 0 {
			continue
		}
		if leg.OriginIndex < 0 || leg.OriginIndex >= len(spots) {
			continue
		}
		if leg.DestinationIndex < 0 || leg.DestinationIndex >= len(spots) {
			continue
		}

		origin := spots[leg.OriginIndex]
		destination := spots[leg.DestinationIndex]
		if origin.SpotID == destination.SpotID {
			continue
		}

		stay := int(destination.StayTime().Seconds())
		graph[origin.SpotID] = append(graph[origin.SpotID], Edge{
			To:         destination.SpotID,
			TravelTime: leg.DurationSeconds,
			StayTime:   stay,
			Distance:   leg.DistanceMeters,
		})

		if opts.Symmetric {
			reverseStay := int(origin.StayTime().Seconds())
			graph[destination.SpotID] = append(graph[destination.SpotID], Edge{
				To:         origin.SpotID,
				TravelTime: leg.DurationSeconds,
				StayTime:   reverseStay,
				Distance:   leg.DistanceMeters,
			})
		}
	}

	return graph
}

// findEdge returns the edge from one spot to another, if present.
func findEdge(g Graph, from, to string) (Edge, bool) {
	for _, e := range g[from] {
		if e.To == to {
			return e, true
		}
	}
	return Edge{}, false
}
