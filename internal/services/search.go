package services

import (
	"sync"

	"trip-planner-service/internal/domain"
)

// TimeWindow is an allowed arrival range for a spot, in seconds offset
// from the day's start.
type TimeWindow struct {
	Start int
	End   int
}

// TimeConstraints maps spot ids to their allowed arrival windows.
type TimeConstraints map[string][]TimeWindow

// Constraints bound a single day's path search.
type Constraints struct {
	MaxTotalTime    int // seconds, the day's activity budget
	MustPassNodes   map[string]struct{}
	TimeConstraints TimeConstraints
}

// PathResult is the winning path of one search invocation. Relaxed marks a
// result from the fallback pass, where meal spots were dropped from the
// must-pass set; callers must surface this rather than hide it.
type PathResult struct {
	Path      []string
	TotalTime int
	Relaxed   bool
}

// searchState is one snapshot of the backtracking search. States are
// immutable once pushed: path, visits and remaining are copied on branch,
// never aliased, so sibling branches cannot corrupt each other.
type searchState struct {
	node      string
	path      []string
	totalTime int
	visits    map[string]int
	remaining map[string]struct{}
}

// FindBestPath searches the day graph for a path from start to end that
// visits every must-pass node within the time budget, maximizing the
// number of visited spots. Open-air themes disable time-window checks.
// When the constrained pass yields nothing, a fallback pass without
// meal-window must-pass nodes is evaluated; both passes run concurrently
// over the shared read-only graph. Returns an empty path when even the
// fallback finds no route.
func FindBestPath(
	g Graph,
	start string,
	end string,
	constraints Constraints,
	theme domain.Category,
	roundTrip bool,
) PathResult {
	enforceWindows := !domain.IsOpenAirTheme(theme)

	relaxedMust := make(map[string]struct{}, len(constraints.MustPassNodes))
	for id := range constraints.MustPassNodes {
		if _, windowed := constraints.TimeConstraints[id]; !windowed {
			relaxedMust[id] = struct{}{}
		}
	}

	var (
		wg      sync.WaitGroup
		strict  PathResult
		relaxed PathResult
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		strict = backtrack(g, start, end, constraints, constraints.MustPassNodes, enforceWindows, roundTrip)
	}()
	go func() {
		defer wg.Done()
		relaxed = backtrack(g, start, end, constraints, relaxedMust, enforceWindows, roundTrip)
	}()
	wg.Wait()

	if len(strict.Path) > 0 {
		return strict
	}
	if len(relaxed.Path) > 0 {
		relaxed.Relaxed = true
		return relaxed
	}
	return PathResult{}
}

// backtrack runs the depth-first search over an explicit stack.
func backtrack(
	g Graph,
	start string,
	end string,
	constraints Constraints,
	mustPass map[string]struct{},
	enforceWindows bool,
	roundTrip bool,
) PathResult {
	initial := searchState{
		node:      start,
		path:      []string{start},
		totalTime: 0,
		visits:    map[string]int{start: 1},
		remaining: copySet(mustPass),
	}
	delete(initial.remaining, start)

	var best PathResult
	stack := []searchState{initial}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if state.totalTime > constraints.MaxTotalTime {
			continue
		}

		if state.node == end && len(state.path) > 1 {
			if len(state.remaining) > 0 {
				continue
			}
			if len(state.path) > len(best.Path) {
				best = PathResult{Path: state.path, TotalTime: state.totalTime}
			}
			continue
		}

		remaining := state.remaining
		if _, ok := remaining[state.node]; ok {
			remaining = copySet(remaining)
			delete(remaining, state.node)
		}

		for _, edge := range g[state.node] {
			limit := 1
			if edge.To == start && roundTrip {
				limit = 2
			}
			if state.visits[edge.To] >= limit {
				continue
			}

			arrival := state.totalTime + edge.TravelTime
			if enforceWindows {
				if windows, ok := constraints.TimeConstraints[edge.To]; ok {
					if !fitsWindow(arrival, arrival+edge.StayTime, windows) {
						continue
					}
				}
			}

			next := searchState{
				node:      edge.To,
				path:      appendPath(state.path, edge.To),
				totalTime: arrival + edge.StayTime,
				visits:    copyVisits(state.visits),
				remaining: remaining,
			}
			next.visits[edge.To]++
			stack = append(stack, next)
		}
	}

	return best
}

// fitsWindow reports whether both arrival and departure fall inside one of
// the allowed ranges.
func fitsWindow(arrival, departure int, windows []TimeWindow) bool {
	for _, w := range windows {
		if arrival >= w.Start && departure <= w.End {
			return true
		}
	}
	return false
}

func copySet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}

func copyVisits(src map[string]int) map[string]int {
	dst := make(map[string]int, len(src)+1)
	for k, v := range src {
		dst[k] = v
	}
	return dst
}

// appendPath copies before appending so sibling states never share backing
// arrays.
func appendPath(path []string, node string) []string {
	next := make([]string, len(path)+1)
	copy(next, path)
	next[len(path)] = node
	return next
}
