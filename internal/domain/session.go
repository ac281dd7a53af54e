package domain

// ThemePool is the not-yet-scheduled candidate reserve for one search theme,
// together with the pagination cursor for fetching more.
type ThemePool struct {
	Theme      Category
	Spots      []*Spot
	NextCursor string
}

// TripSession is the trip-level mutable state threaded through multi-day
// planning: reserve pools of recommended spots per theme and the pool of
// meal candidates. It is passed by reference through the orchestrator and
// never shared between concurrent trip requests.
type TripSession struct {
	SessionID   string
	Reserves    []*ThemePool
	EatingSpots []*Spot
}

// Reserve returns the pool for a theme, or nil when none was fetched.
func (s *TripSession) Reserve(theme Category) *ThemePool {
	for _, p := range s.Reserves {
		if p.Theme == theme {
			return p
		}
	}
	return nil
}
