package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// replenishBuffer is how many spots beyond the known shortfall are pulled
// from the reserve between days, so the next search has room to drop some.
const replenishBuffer = 2

// maxReplenishPages bounds provider pagination when the reserve runs dry.
const maxReplenishPages = 3

// PlanTripRequest carries the trip-level inputs for multi-day planning.
type PlanTripRequest struct {
	Origin      *domain.Spot
	Destination *domain.Spot // lodging hub; final day returns to Origin
	Waypoints   []*domain.Spot
	ActiveTimes []domain.DayWindow
	StartDay    string // "2006-01-02"
	EndDay      string
	Theme       domain.Category
	Transport   domain.TransportMode
}

// PlanTrip drives graph construction, constrained search and timeline
// conversion across every day of a trip. Day state (waypoint pool, meal
// assignments, reserve pool and pagination cursors) flows forward through
// the session, so days are planned strictly in order. A day with no
// admissible route produces an empty degraded day plan; only structural
// errors abort the whole trip.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	session *domain.TripSession,
	travel ports.TravelTimeProvider,
	candidates ports.CandidateProvider,
) (*domain.TripPlan, error) {
	if req.Origin == nil || req.Destination == nil {
		return nil, errors.New("plan trip: origin and destination must be non-nil")
	}
	if session == nil {
		return nil, errors.New("plan trip: session must be non-nil")
	}

	days, _, err := stayDuration(req.StartDay, req.EndDay)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	planner, err := NewDayPlanner(req.ActiveTimes, req.Waypoints, session.EatingSpots, req.Theme)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	allocations, err := planner.Allocate(days)
	if err != nil {
		return nil, fmt.Errorf("plan trip: allocate days: %w", err)
	}
	if len(allocations) != days {
		return nil, fmt.Errorf("plan trip: %w", domain.ErrPlannerInconsistent)
	}

	startDate, err := time.Parse(dayLayout, req.StartDay)
	if err != nil {
		return nil, fmt.Errorf("plan trip: parse start day: %w", err)
	}

	mode := req.Transport
	if mode == "" {
		mode = domain.ModeCar
	}

	// Day 0 pool: every non-meal waypoint plus the meals assigned to day 0.
	var pool []*domain.Spot
	for _, s := range req.Waypoints {
		if !s.IsEating() {
			pool = append(pool, s)
		}
	}
	pool = append(pool, allocations[0].MealSpots...)

	plans := make([]domain.DayPlan, 0, days)
	for i := 0; i < days; i++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("plan trip: day %d: %w", i, err)
		}

		origin, destination := dayEndpoints(req.Origin, req.Destination, i, days)
		roundTrip := origin.SpotID == destination.SpotID

		// Allocated must spots have to be reachable today even when the
		// carried pool no longer contains them.
		pool = ensurePresent(pool, allocations[i].MustSpots)

		locations := dayLocations(origin, destination, pool, roundTrip)
		legs, err := travel.RouteMatrix(ctx, locations)
		if err != nil {
			return nil, fmt.Errorf("plan trip: day %d: route matrix: %w", i, err)
		}
		if len(legs) == 0 {
			return nil, fmt.Errorf("plan trip: day %d: route matrix returned no legs", i)
		}

		graph := BuildGraph(locations, legs, GraphOptions{})

		constraints := Constraints{
			MaxTotalTime:    allocations[i].ActiveTime,
			MustPassNodes:   restrictToLocations(allocations[i].MustPassNodes, locations),
			TimeConstraints: allocations[i].TimeConstraints,
		}

		result := FindBestPath(graph, origin.SpotID, destination.SpotID, constraints, req.Theme, roundTrip)
		if len(result.Path) == 0 {
			log.Printf("trip=%s day=%d no admissible route, emitting degraded plan", session.SessionID, i)
		}

		date := startDate.AddDate(0, 0, i)
		day := BuildDayPlan(result.Path, graph, spotIndex(locations), date, mode)
		day.MealsRelaxed = result.Relaxed
		plans = append(plans, day)

		if i == days-1 {
			break
		}

		// Carry state into the next day: replace consumed waypoints with
		// the next day's meals plus replenished recommendations.
		dropped := countDropped(pool, result.Path)
		nextMeals := allocations[i+1].MealSpots

		need := dropped - len(nextMeals) + replenishBuffer
		if need < 0 {
			need = 0
		}

		anchor := replenishAnchor(allocations[i+1].MustSpots, req.Origin)
		pulled, err := pullFromReserve(ctx, session, req.Theme, anchor, need, candidates)
		if err != nil {
			return nil, fmt.Errorf("plan trip: day %d: replenish pool: %w", i, err)
		}

		pool = append(append([]*domain.Spot{}, nextMeals...), pulled...)
	}

	return &domain.TripPlan{
		Transport: mode,
		StartDay:  req.StartDay,
		EndDay:    req.EndDay,
		Days:      plans,
	}, nil
}

// dayEndpoints applies the fixed origin/destination rule: day 0 runs from
// the trip origin to the hub, middle days hub to hub, the final day hub
// back to the origin. A single-day trip is a round trip from the origin.
func dayEndpoints(origin, hub *domain.Spot, day, days int) (*domain.Spot, *domain.Spot) {
	if days == 1 {
		return origin, origin
	}
	switch {
	case day == 0:
		return origin, hub
	case day == days-1:
		return hub, origin
	default:
		return hub, hub
	}
}

// dayLocations assembles the ordered location list for the day's matrix
// request. Round trips list the shared endpoint once, at the head.
func dayLocations(origin, destination *domain.Spot, pool []*domain.Spot, roundTrip bool) []*domain.Spot {
	locations := make([]*domain.Spot, 0, len(pool)+2)
	locations = append(locations, origin)
	locations = append(locations, pool...)
	if !roundTrip {
		locations = append(locations, destination)
	}
	return locations
}

// ensurePresent appends spots missing from the pool, keyed by id.
func ensurePresent(pool []*domain.Spot, required []*domain.Spot) []*domain.Spot {
	have := make(map[string]struct{}, len(pool))
	for _, s := range pool {
		have[s.SpotID] = struct{}{}
	}
	for _, s := range required {
		if _, ok := have[s.SpotID]; !ok {
			pool = append(pool, s)
			have[s.SpotID] = struct{}{}
		}
	}
	return pool
}

// restrictToLocations drops must-pass ids that are not reachable today.
func restrictToLocations(must map[string]struct{}, locations []*domain.Spot) map[string]struct{} {
	present := make(map[string]struct{}, len(locations))
	for _, s := range locations {
		present[s.SpotID] = struct{}{}
	}
	out := make(map[string]struct{}, len(must))
	for id := range must {
		if _, ok := present[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// countDropped counts pool spots absent from the winning path.
func countDropped(pool []*domain.Spot, path []string) int {
	used := make(map[string]struct{}, len(path))
	for _, id := range path {
		used[id] = struct{}{}
	}
	dropped := 0
	for _, s := range pool {
		if _, ok := used[s.SpotID]; !ok {
			dropped++
		}
	}
	return dropped
}

func spotIndex(spots []*domain.Spot) map[string]*domain.Spot {
	idx := make(map[string]*domain.Spot, len(spots))
	for _, s := range spots {
		idx[s.SpotID] = s
	}
	return idx
}

func replenishAnchor(mustSpots []*domain.Spot, origin *domain.Spot) *domain.Spot {
	if len(mustSpots) > 0 {
		return mustSpots[0]
	}
	return origin
}

// pullFromReserve takes up to count spots from the session's theme reserve,
// fetching further provider pages through the stored cursor when the
// reserve cannot cover the request. Candidate pages are rating-sorted
// before entering the reserve. Running out of candidates is not an error;
// the caller proceeds with a smaller pool.
func pullFromReserve(
	ctx context.Context,
	session *domain.TripSession,
	theme domain.Category,
	anchor *domain.Spot,
	count int,
	candidates ports.CandidateProvider,
) ([]*domain.Spot, error) {
	if count == 0 {
		return nil, nil
	}

	reserve := session.Reserve(theme)
	if reserve == nil {
		reserve = &domain.ThemePool{Theme: theme}
		session.Reserves = append(session.Reserves, reserve)
	}

	pages := 0
	for len(reserve.Spots) < count && pages < maxReplenishPages {
		page, err := candidates.SearchSpots(ctx, theme, anchor, reserve.NextCursor)
		if err != nil {
			return nil, fmt.Errorf("search spots theme=%s: %w", theme, err)
		}

		domain.SortSpotsByRating(page.Spots)
		reserve.Spots = append(reserve.Spots, page.Spots...)
		reserve.NextCursor = page.NextCursor
		pages++

		if page.NextCursor == "" {
			break
		}
	}

	take := min(count, len(reserve.Spots))
	pulled := reserve.Spots[:take]
	reserve.Spots = reserve.Spots[take:]
	return pulled, nil
}
