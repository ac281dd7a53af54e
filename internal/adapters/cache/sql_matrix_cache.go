package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner-service/internal/platform/obs"
)

// SQLMatrixCache is the Postgres variant of the travel-matrix cache, used
// when several planner instances share one database.
type SQLMatrixCache struct {
	DB *sql.DB
}

func NewSQLMatrixCache(db *sql.DB) *SQLMatrixCache {
	return &SQLMatrixCache{DB: db}
}

// Fetch cached legs for all destinations of one origin.
func (s *SQLMatrixCache) GetFrom(ctx context.Context, origin string, destinations []string) (_ map[TravelKey]CachedLeg, err error) {
	defer obs.Time(ctx, "matrix.cache.GetFrom")(&err)

	if s.DB == nil {
		return nil, errors.New("matrix cache: db is nil")
	}

	if origin == "" {
		return nil, errors.New("get matrix cache: origin must not be empty")
	}

	if len(destinations) == 0 {
		return map[TravelKey]CachedLeg{}, nil
	}

	q := `
	SELECT destination, duration_seconds, distance_meters, route_exists
	FROM travel_matrix_cache
	WHERE origin = $1
		AND destination = ANY($2::text[]);
	`

	rows, err := s.DB.QueryContext(ctx, q, origin, destinations)
	if err != nil {
		return nil, fmt.Errorf("get matrix cache: query travel_matrix_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[TravelKey]CachedLeg, len(destinations))
	for rows.Next() {
		var dest string
		var leg CachedLeg
		if err := rows.Scan(&dest, &leg.DurationSeconds, &leg.DistanceMeters, &leg.RouteExists); err != nil {
			return nil, fmt.Errorf("get matrix cache: scan rows: %w", err)
		}
		out[TravelKey{Origin: origin, Destination: dest}] = leg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get matrix cache: row iteration: %w", err)
	}

	return out, nil
}

// GetMany fetches cached legs for many ordered pairs, grouping the lookup
// by origin so each origin costs one array query.
func (s *SQLMatrixCache) GetMany(ctx context.Context, keys []TravelKey) (map[TravelKey]CachedLeg, error) {
	byOrigin := make(map[string][]string)
	for _, k := range keys {
		if k.Origin == "" || k.Destination == "" {
			return nil, errors.New("get matrix cache: empty spot id in key")
		}
		byOrigin[k.Origin] = append(byOrigin[k.Origin], k.Destination)
	}

	out := make(map[TravelKey]CachedLeg, len(keys))
	for origin, destinations := range byOrigin {
		hits, err := s.GetFrom(ctx, origin, destinations)
		if err != nil {
			return nil, err
		}
		for k, leg := range hits {
			out[k] = leg
		}
	}
	return out, nil
}

// Store many legs for mixed origins in one transaction.
func (s *SQLMatrixCache) PutMany(ctx context.Context, legs map[TravelKey]CachedLeg) error {
	if s.DB == nil {
		return errors.New("matrix cache: db is nil")
	}

	if len(legs) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO travel_matrix_cache (origin, destination, duration_seconds, distance_meters, route_exists)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (origin, destination) DO UPDATE
	SET duration_seconds = EXCLUDED.duration_seconds,
		distance_meters = EXCLUDED.distance_meters,
		route_exists = EXCLUDED.route_exists;
	`)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, leg := range legs {
		if key.Origin == "" || key.Destination == "" {
			return errors.New("insert matrix cache: empty spot id in key")
		}

		if _, err := stmt.ExecContext(ctx, key.Origin, key.Destination, leg.DurationSeconds, leg.DistanceMeters, leg.RouteExists); err != nil {
			return fmt.Errorf("insert matrix cache %q -> %q: %w", key.Origin, key.Destination, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert matrix cache commit: %w", err)
	}

	return nil
}
