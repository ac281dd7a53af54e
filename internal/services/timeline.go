package services

import (
	"time"

	"trip-planner-service/internal/domain"
)

// dayStartHour is the nominal clock hour every day plan starts at.
const dayStartHour = 8

// BuildDayPlan converts a found path into a timestamped day plan by
// accumulating travel and stay time from the day's nominal start clock.
// The spot lookup must cover every id in the path; the graph supplies
// travel times and the inbound stay time of each waypoint.
func BuildDayPlan(
	path []string,
	g Graph,
	spotByID map[string]*domain.Spot,
	day time.Time,
	mode domain.TransportMode,
) domain.DayPlan {
	if len(path) < 2 {
		return domain.DayPlan{Degraded: true}
	}

	clock := time.Date(day.Year(), day.Month(), day.Day(), dayStartHour, 0, 0, 0, day.Location())
	records := make([]domain.VisitRecord, 0, 2*len(path)-1)

	for i, id := range path {
		spot := spotByID[id]

		if i == 0 {
			departure := clock
			records = append(records, domain.VisitRecord{
				Kind:        domain.RecordSpot,
				Spot:        spot,
				Type:        domain.VisitDeparture,
				DepartureAt: departure,
			})

			edge, _ := findEdge(g, id, path[i+1])
			clock = clock.Add(time.Duration(edge.TravelTime) * time.Second)
			records = append(records, domain.VisitRecord{
				Kind:        domain.RecordTraffic,
				Mode:        mode,
				DepartureAt: departure,
				ArrivedAt:   clock,
			})
			continue
		}

		if i == len(path)-1 {
			records = append(records, domain.VisitRecord{
				Kind:      domain.RecordSpot,
				Spot:      spot,
				Type:      domain.VisitDestination,
				ArrivedAt: clock,
			})
			continue
		}

		arrived := clock
		inbound, _ := findEdge(g, path[i-1], id)
		clock = clock.Add(time.Duration(inbound.StayTime) * time.Second)
		records = append(records, domain.VisitRecord{
			Kind:        domain.RecordSpot,
			Spot:        spot,
			Type:        domain.VisitWaypoint,
			ArrivedAt:   arrived,
			DepartureAt: clock,
		})

		outbound, _ := findEdge(g, id, path[i+1])
		departure := clock
		clock = clock.Add(time.Duration(outbound.TravelTime) * time.Second)
		records = append(records, domain.VisitRecord{
			Kind:        domain.RecordTraffic,
			Mode:        mode,
			DepartureAt: departure,
			ArrivedAt:   clock,
		})
	}

	return domain.DayPlan{Records: records}
}
