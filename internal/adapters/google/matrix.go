package google

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"trip-planner-service/internal/adapters/cache"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

const routeMatrixURL = "https://routes.googleapis.com/distanceMatrix/v2:computeRouteMatrix"

const routeMatrixFieldMask = "originIndex,destinationIndex,duration,distanceMeters,condition"

// LegCache is the persistent travel-leg store the provider reads and
// back-fills. Both the SQLite and Postgres matrix caches satisfy it.
type LegCache interface {
	GetMany(ctx context.Context, keys []cache.TravelKey) (map[cache.TravelKey]cache.CachedLeg, error)
	PutMany(ctx context.Context, legs map[cache.TravelKey]cache.CachedLeg) error
}

// MatrixProvider computes travel-time matrices via the Routes API,
// reading and back-filling the leg cache when one is attached.
type MatrixProvider struct {
	client *client
	cache  LegCache
}

func NewMatrixProvider(apiKey string, legCache LegCache) *MatrixProvider {
	return &MatrixProvider{
		client: newClient(apiKey),
		cache:  legCache,
	}
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type waypoint struct {
	Location struct {
		LatLng latLng `json:"latLng"`
	} `json:"location"`
}

type matrixOrigin struct {
	Waypoint waypoint `json:"waypoint"`
}

type matrixRequest struct {
	Origins      []matrixOrigin `json:"origins"`
	Destinations []matrixOrigin `json:"destinations"`
	TravelMode   string         `json:"travelMode"`
}

type matrixElement struct {
	OriginIndex      int    `json:"originIndex"`
	DestinationIndex int    `json:"destinationIndex"`
	Duration         string `json:"duration"`
	DistanceMeters   int    `json:"distanceMeters"`
	Condition        string `json:"condition"`
}

func spotWaypoint(s *domain.Spot) matrixOrigin {
	var o matrixOrigin
	o.Waypoint.Location.LatLng = latLng{
		Latitude:  s.Location.Lat,
		Longitude: s.Location.Lon,
	}
	return o
}

// parseProtoDuration parses the "1234s" duration encoding used by the
// Routes API. A missing or malformed value yields zero seconds.
func parseProtoDuration(v string) int {
	v = strings.TrimSuffix(v, "s")
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return int(n)
}

// RouteMatrix returns legs for every ordered spot pair. Pairs already in
// the cache are served locally; the rest go upstream in a single call and
// are written back on success.
func (p *MatrixProvider) RouteMatrix(ctx context.Context, spots []*domain.Spot) ([]ports.TravelLeg, error) {
	if len(spots) < 2 {
		return nil, nil
	}

	legs := make([]ports.TravelLeg, 0, len(spots)*(len(spots)-1))
	seen := make(map[cache.TravelKey]bool)

	if p.cache != nil {
		keys := make([]cache.TravelKey, 0, len(spots)*(len(spots)-1))
		for i, from := range spots {
			for j, to := range spots {
				if i == j {
					continue
				}
				keys = append(keys, cache.TravelKey{Origin: from.SpotID, Destination: to.SpotID})
			}
		}

		cached, err := p.cache.GetMany(ctx, keys)
		if err != nil {
			log.Printf("matrix cache read failed: %v", err)
		}

		index := make(map[string]int, len(spots))
		for i, s := range spots {
			index[s.SpotID] = i
		}

		for key, leg := range cached {
			legs = append(legs, ports.TravelLeg{
				OriginIndex:      index[key.Origin],
				DestinationIndex: index[key.Destination],
				DistanceMeters:   leg.DistanceMeters,
				DurationSeconds:  leg.DurationSeconds,
				RouteExists:      leg.RouteExists,
			})
			seen[key] = true
		}

		if len(seen) == len(keys) {
			return legs, nil
		}
	}

	fetched, err := p.fetchMatrix(ctx, spots)
	if err != nil {
		return nil, err
	}

	fresh := make(map[cache.TravelKey]cache.CachedLeg)
	for _, leg := range fetched {
		key := cache.TravelKey{
			Origin:      spots[leg.OriginIndex].SpotID,
			Destination: spots[leg.DestinationIndex].SpotID,
		}
		if seen[key] {
			continue
		}
		legs = append(legs, leg)
		fresh[key] = cache.LegFromPort(leg)
	}

	if p.cache != nil && len(fresh) > 0 {
		if err := p.cache.PutMany(ctx, fresh); err != nil {
			log.Printf("matrix cache write failed: %v", err)
		}
	}

	return legs, nil
}

func (p *MatrixProvider) fetchMatrix(ctx context.Context, spots []*domain.Spot) ([]ports.TravelLeg, error) {
	points := make([]matrixOrigin, len(spots))
	for i, s := range spots {
		points[i] = spotWaypoint(s)
	}

	payload, err := json.Marshal(matrixRequest{
		Origins:      points,
		Destinations: points,
		TravelMode:   "DRIVE",
	})
	if err != nil {
		return nil, fmt.Errorf("marshal matrix request: %w", err)
	}

	resp, err := p.client.doWithRetry(ctx, func() (*http.Request, error) {
		return p.client.newRequest(ctx, "POST", routeMatrixURL, routeMatrixFieldMask, bytes.NewReader(payload))
	})
	if err != nil {
		return nil, fmt.Errorf("route matrix request: %w", err)
	}
	defer resp.Body.Close()

	var elements []matrixElement
	if err := json.NewDecoder(resp.Body).Decode(&elements); err != nil {
		return nil, fmt.Errorf("decode matrix response: %w", err)
	}

	legs := make([]ports.TravelLeg, 0, len(elements))
	for _, el := range elements {
		if el.OriginIndex < 0 || el.OriginIndex >= len(spots) ||
			el.DestinationIndex < 0 || el.DestinationIndex >= len(spots) {
			continue
		}
		if el.OriginIndex == el.DestinationIndex {
			continue
		}
		legs = append(legs, ports.TravelLeg{
			OriginIndex:      el.OriginIndex,
			DestinationIndex: el.DestinationIndex,
			DistanceMeters:   el.DistanceMeters,
			DurationSeconds:  parseProtoDuration(el.Duration),
			RouteExists:      el.Condition == "ROUTE_EXISTS",
		})
	}

	return legs, nil
}

// RouteDuration returns the one-way travel time in seconds between two
// spots, or an error when no route exists between them.
func (p *MatrixProvider) RouteDuration(ctx context.Context, origin, destination *domain.Spot) (int, error) {
	legs, err := p.RouteMatrix(ctx, []*domain.Spot{origin, destination})
	if err != nil {
		return 0, err
	}
	for _, leg := range legs {
		if leg.OriginIndex == 0 && leg.DestinationIndex == 1 && leg.RouteExists {
			return leg.DurationSeconds, nil
		}
	}
	return 0, fmt.Errorf("route duration: no route between %s and %s", origin.SpotID, destination.SpotID)
}
