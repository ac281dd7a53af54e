package services

import (
	"fmt"
	"math"
	"time"
)

const dayLayout = "2006-01-02"

// parseClock converts an "HH:MM" clock string to seconds since midnight.
func parseClock(clock string) (int, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return 0, fmt.Errorf("parse clock %q: %w", clock, err)
	}
	if hour < 0 || hour > 24 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("parse clock %q: out of range", clock)
	}
	return hour*3600 + minute*60, nil
}

// activeSeconds returns the length of a day's activity window in seconds.
func activeSeconds(w dayWindowTimes) int {
	return w.returnAt - w.departureAt
}

type dayWindowTimes struct {
	departureAt int // seconds since midnight
	returnAt    int
}

// stayDuration computes trip length from start/end dates ("2006-01-02").
// A same-day trip counts as one day; nights is always days-1.
func stayDuration(startDay, endDay string) (days, nights int, err error) {
	start, err := time.Parse(dayLayout, startDay)
	if err != nil {
		return 0, 0, fmt.Errorf("parse start day %q: %w", startDay, err)
	}
	end, err := time.Parse(dayLayout, endDay)
	if err != nil {
		return 0, 0, fmt.Errorf("parse end day %q: %w", endDay, err)
	}

	diff := end.Sub(start)
	if diff < 0 {
		return 0, 0, fmt.Errorf("end day %q precedes start day %q", endDay, startDay)
	}

	days = int(math.Ceil(diff.Hours()/24)) + 1
	return days, days - 1, nil
}
