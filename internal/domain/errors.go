package domain

import "errors"

// Planner error taxonomy. ErrTripInfeasible and ErrPlannerInconsistent
// terminate trip planning immediately: they mean the request is
// structurally unsatisfiable or an internal invariant broke. A day with no
// route is NOT an error; the search returns an empty path and the
// orchestrator emits a degraded day plan instead.
var (
	// ErrTripInfeasible: mandatory-spot time exceeds the total available
	// activity time across all trip days.
	ErrTripInfeasible = errors.New("mandatory spots do not fit the trip's activity time")

	// ErrPlannerInconsistent: the day allocator produced a number of
	// allocations that does not match the trip's day count.
	ErrPlannerInconsistent = errors.New("day allocation count does not match trip day count")

	// ErrTooMuchTravel: the door-to-door travel leaves less than the
	// minimum activity time per trip day.
	ErrTooMuchTravel = errors.New("travel time leaves too little activity time")
)
