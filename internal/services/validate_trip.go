package services

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// minActivePerDaySeconds is the minimum usable activity time each trip day
// must keep after subtracting the door-to-door travel both ways.
const minActivePerDaySeconds = 4 * 3600

// ValidateTripInfo rejects short trips whose door-to-door travel leaves
// less than the minimum activity time per day. Trips of three days or more
// always pass; the round trip is assumed to amortize.
func ValidateTripInfo(
	ctx context.Context,
	origin *domain.Spot,
	destination *domain.Spot,
	startDay string,
	endDay string,
	dayWindows []domain.DayWindow,
	travel ports.TravelTimePairProvider,
) error {
	days, _, err := stayDuration(startDay, endDay)
	if err != nil {
		return fmt.Errorf("validate trip: %w", err)
	}

	if days >= 3 {
		return nil
	}

	// Round trips based at the origin have no door-to-door travel to charge.
	oneWay := 0
	if origin.SpotID != destination.SpotID {
		oneWay, err = travel.RouteDuration(ctx, origin, destination)
		if err != nil {
			return fmt.Errorf("validate trip: route duration: %w", err)
		}
	}

	totalActive := 0
	for _, w := range dayWindows {
		departure, err := parseClock(w.DepartureAt)
		if err != nil {
			return fmt.Errorf("validate trip: %w", err)
		}
		ret, err := parseClock(w.ReturnAt)
		if err != nil {
			return fmt.Errorf("validate trip: %w", err)
		}
		totalActive += ret - departure
	}

	if totalActive-2*oneWay < minActivePerDaySeconds*days {
		return fmt.Errorf("validate trip: %w", domain.ErrTooMuchTravel)
	}

	return nil
}
