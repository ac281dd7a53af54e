package services

import (
	"fmt"
	"slices"

	"trip-planner-service/internal/domain"
)

const (
	// baseTravelSeconds is the nominal travel cost charged per visit when
	// estimating whether spots fit a day, before real matrix data exists.
	baseTravelSeconds = 3600

	// mealSlotSeconds is the budget one meal consumes: 90 minutes dining
	// plus the nominal travel cost.
	mealSlotSeconds = 90*60 + baseTravelSeconds

	lunchStartSeconds  = 11 * 3600
	lunchEndSeconds    = 15 * 3600
	dinnerStartSeconds = 17 * 3600
	dinnerEndSeconds   = 22 * 3600
)

// DayAllocation is the planning outcome for one trip day: which spots the
// day's path must include, the arrival windows for its meal stops, and the
// day's activity budget.
type DayAllocation struct {
	ActiveTime      int // seconds
	MustPassNodes   map[string]struct{}
	TimeConstraints TimeConstraints
	MustSpots       []*domain.Spot
	MealSpots       []*domain.Spot
}

// DayPlanner partitions mandatory spots and meal stops across trip days.
// Meal candidates are consumed first-in first-out in trip-chronological
// order; mandatory spots are assigned longest-day-first.
type DayPlanner struct {
	windows     []dayWindowTimes
	activeTimes []int
	theme       domain.Category
	leftMust    []*domain.Spot
	leftEating  []*domain.Spot
}

type spotCost struct {
	spot  *domain.Spot
	total int // stay + nominal travel, seconds
}

type mealKind int

const (
	mealLunch mealKind = iota
	mealDinner
)

type mealAssignment struct {
	spot *domain.Spot
	kind mealKind
}

// NewDayPlanner builds a planner from the trip's day windows, its waypoint
// pool (must spots are recognized by category) and extra meal candidates.
func NewDayPlanner(
	dayWindows []domain.DayWindow,
	waypoints []*domain.Spot,
	extraEating []*domain.Spot,
	theme domain.Category,
) (*DayPlanner, error) {
	windows := make([]dayWindowTimes, 0, len(dayWindows))
	activeTimes := make([]int, 0, len(dayWindows))
	for _, w := range dayWindows {
		departure, err := parseClock(w.DepartureAt)
		if err != nil {
			return nil, fmt.Errorf("day planner: %w", err)
		}
		ret, err := parseClock(w.ReturnAt)
		if err != nil {
			return nil, fmt.Errorf("day planner: %w", err)
		}
		if ret <= departure {
			return nil, fmt.Errorf("day planner: return %q not after departure %q", w.ReturnAt, w.DepartureAt)
		}
		wt := dayWindowTimes{departureAt: departure, returnAt: ret}
		windows = append(windows, wt)
		activeTimes = append(activeTimes, activeSeconds(wt))
	}

	var must, eating []*domain.Spot
	for _, s := range waypoints {
		if s.IsMust() {
			must = append(must, s)
		}
		if s.IsEating() {
			eating = append(eating, s)
		}
	}
	eating = append(eating, extraEating...)

	return &DayPlanner{
		windows:     windows,
		activeTimes: activeTimes,
		theme:       theme,
		leftMust:    must,
		leftEating:  eating,
	}, nil
}

// ActiveTimes returns each day's activity budget in seconds.
func (p *DayPlanner) ActiveTimes() []int { return slices.Clone(p.activeTimes) }

// Allocate distributes mandatory spots and meals over the trip's days.
// It returns exactly one allocation per day or fails with
// domain.ErrTripInfeasible / domain.ErrPlannerInconsistent.
func (p *DayPlanner) Allocate(days int) ([]DayAllocation, error) {
	if days <= 1 {
		alloc, err := p.allocateSingle()
		if err != nil {
			return nil, err
		}
		return []DayAllocation{alloc}, nil
	}
	return p.allocateMulti(days)
}

// allocateSingle greedily packs the cheapest mandatory spots into the one
// day, then converts leftover time into up to two meal stops.
func (p *DayPlanner) allocateSingle() (DayAllocation, error) {
	if len(p.activeTimes) == 0 {
		return DayAllocation{}, domain.ErrPlannerInconsistent
	}

	active := p.activeTimes[0]
	costs := p.sortedMustCosts()

	var mustSpots []*domain.Spot
	for len(costs) > 0 && active >= costs[0].total {
		mustSpots = append(mustSpots, costs[0].spot)
		active -= costs[0].total
		costs = costs[1:]
	}

	eatingCount := 0
	for active >= mealSlotSeconds && eatingCount < 2 {
		eatingCount++
		active -= mealSlotSeconds
	}

	meals := p.assignMeals(0, eatingCount)
	return p.buildAllocation(0, mustSpots, meals), nil
}

// allocateMulti implements the longest-day-first greedy assignment. Each
// day absorbs all remaining mandatory spots when they fit alongside two
// meal slots, then alongside one, and otherwise sheds the most expensive
// spots to later days until the residue fits with one meal slot.
func (p *DayPlanner) allocateMulti(days int) ([]DayAllocation, error) {
	if len(p.activeTimes) != days {
		return nil, fmt.Errorf("%w: %d windows for %d days", domain.ErrPlannerInconsistent, len(p.activeTimes), days)
	}

	costs := p.sortedMustCosts()

	totalActive := 0
	for _, t := range p.activeTimes {
		totalActive += t
	}
	if totalActive < sumCosts(costs) {
		return nil, domain.ErrTripInfeasible
	}

	// Longest day first; ties keep chronological order.
	order := make([]int, days)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return p.activeTimes[b] - p.activeTimes[a]
	})

	type dayMemo struct {
		dayIndex    int
		mustSpots   []*domain.Spot
		eatingCount int
	}

	memos := make([]dayMemo, 0, days)
	for pos, di := range order {
		active := p.activeTimes[di]

		if len(costs) == 0 {
			memos = append(memos, dayMemo{dayIndex: di, eatingCount: mealsForBudget(active)})
			continue
		}

		total := sumCosts(costs)
		if total+2*mealSlotSeconds < active {
			memos = append(memos, dayMemo{dayIndex: di, mustSpots: spotsOf(costs), eatingCount: 2})
			costs = nil
			continue
		}
		if total+mealSlotSeconds < active {
			memos = append(memos, dayMemo{dayIndex: di, mustSpots: spotsOf(costs), eatingCount: 1})
			costs = nil
			continue
		}

		// Shed the most expensive spots to later days until the residue
		// fits alongside one meal slot.
		var carry []spotCost
		for len(costs) > 0 && sumCosts(costs)+mealSlotSeconds >= active {
			carry = append(carry, costs[len(costs)-1])
			costs = costs[:len(costs)-1]
		}
		memos = append(memos, dayMemo{dayIndex: di, mustSpots: spotsOf(costs), eatingCount: 1})

		slices.Reverse(carry) // back to ascending cost
		costs = carry

		if pos == len(order)-1 && len(costs) > 0 {
			return nil, domain.ErrTripInfeasible
		}
	}

	if len(memos) != days {
		return nil, domain.ErrPlannerInconsistent
	}

	// Open-air themes eat into meal time: drop one expected meal per day.
	if domain.IsOpenAirTheme(p.theme) {
		for i := range memos {
			if memos[i].eatingCount > 0 {
				memos[i].eatingCount--
			}
		}
	}

	// Back to trip-chronological order before consuming meal candidates,
	// so FIFO assignment follows the actual trip sequence.
	slices.SortFunc(memos, func(a, b dayMemo) int { return a.dayIndex - b.dayIndex })

	allocations := make([]DayAllocation, 0, days)
	for _, m := range memos {
		meals := p.assignMeals(m.dayIndex, m.eatingCount)
		allocations = append(allocations, p.buildAllocation(m.dayIndex, m.mustSpots, meals))
	}

	return allocations, nil
}

// assignMeals decides which of the day's wanted meals are feasible against
// the lunch/dinner clock windows and consumes candidates FIFO.
func (p *DayPlanner) assignMeals(dayIndex, want int) []mealAssignment {
	if want <= 0 {
		return nil
	}

	w := p.windows[dayIndex]
	dinnerEnd := min(dinnerEndSeconds, w.returnAt)
	lunchOK := w.departureAt < lunchEndSeconds && w.returnAt > lunchStartSeconds
	dinnerOK := w.departureAt < dinnerEnd && dinnerEnd > dinnerStartSeconds

	var kinds []mealKind
	switch {
	case want >= 2 && lunchOK && dinnerOK:
		kinds = []mealKind{mealLunch, mealDinner}
	case dinnerOK:
		kinds = []mealKind{mealDinner}
	case lunchOK:
		kinds = []mealKind{mealLunch}
	}

	var meals []mealAssignment
	for _, kind := range kinds {
		if len(p.leftEating) == 0 {
			break
		}
		spot := p.leftEating[0]
		p.leftEating = p.leftEating[1:]
		meals = append(meals, mealAssignment{spot: spot, kind: kind})
	}
	return meals
}

// buildAllocation assembles the must-pass set and meal time windows for a
// day. Window offsets are relative to the day's departure clock time.
func (p *DayPlanner) buildAllocation(dayIndex int, mustSpots []*domain.Spot, meals []mealAssignment) DayAllocation {
	w := p.windows[dayIndex]

	mustPass := make(map[string]struct{}, len(mustSpots)+len(meals))
	for _, s := range mustSpots {
		mustPass[s.SpotID] = struct{}{}
	}

	constraints := make(TimeConstraints, len(meals))
	mealSpots := make([]*domain.Spot, 0, len(meals))
	for _, m := range meals {
		mustPass[m.spot.SpotID] = struct{}{}
		mealSpots = append(mealSpots, m.spot)

		var window TimeWindow
		switch m.kind {
		case mealLunch:
			window = TimeWindow{
				Start: max(0, lunchStartSeconds-w.departureAt),
				End:   lunchEndSeconds - w.departureAt,
			}
		case mealDinner:
			window = TimeWindow{
				Start: max(0, dinnerStartSeconds-w.departureAt),
				End:   min(dinnerEndSeconds, w.returnAt) - w.departureAt,
			}
		}
		constraints[m.spot.SpotID] = append(constraints[m.spot.SpotID], window)
	}

	return DayAllocation{
		ActiveTime:      p.activeTimes[dayIndex],
		MustPassNodes:   mustPass,
		TimeConstraints: constraints,
		MustSpots:       mustSpots,
		MealSpots:       mealSpots,
	}
}

// sortedMustCosts estimates each remaining mandatory spot's cost as its
// average stay plus the nominal travel time, ascending.
func (p *DayPlanner) sortedMustCosts() []spotCost {
	costs := make([]spotCost, 0, len(p.leftMust))
	for _, s := range p.leftMust {
		costs = append(costs, spotCost{
			spot:  s,
			total: int(s.StayTime().Seconds()) + baseTravelSeconds,
		})
	}
	slices.SortStableFunc(costs, func(a, b spotCost) int { return a.total - b.total })
	return costs
}

// mealsForBudget converts leftover day capacity into an expected meal count.
func mealsForBudget(active int) int {
	switch {
	case active > 2*mealSlotSeconds:
		return 2
	case active > mealSlotSeconds:
		return 1
	default:
		return 0
	}
}

func sumCosts(costs []spotCost) int {
	total := 0
	for _, c := range costs {
		total += c.total
	}
	return total
}

func spotsOf(costs []spotCost) []*domain.Spot {
	spots := make([]*domain.Spot, 0, len(costs))
	for _, c := range costs {
		spots = append(spots, c.spot)
	}
	return spots
}
