package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"trip-planner-service/internal/ports"
)

// TravelKey identifies one ordered origin->destination pair by spot id.
type TravelKey struct {
	Origin      string
	Destination string
}

// CachedLeg is a stored travel-matrix entry. Legs without a route are
// cached too, so a known-unroutable pair does not trigger repeat lookups.
type CachedLeg struct {
	DurationSeconds int
	DistanceMeters  int
	RouteExists     bool
}

// SQLite backed cache for travel-matrix legs. Keys are spot ids, which are
// already stable and normalized by the provider.
type SqliteMatrixCache struct {
	DB *sql.DB
}

func NewSqliteMatrixCache(db *sql.DB) *SqliteMatrixCache {
	return &SqliteMatrixCache{DB: db}
}

// Fetch cached legs for many ordered pairs at once.
func (s *SqliteMatrixCache) GetMany(ctx context.Context, keys []TravelKey) (map[TravelKey]CachedLeg, error) {
	if s.DB == nil {
		return nil, errors.New("matrix cache: db is nil")
	}

	if len(keys) == 0 {
		return map[TravelKey]CachedLeg{}, nil
	}

	ph := make([]string, 0, len(keys))
	args := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		if k.Origin == "" || k.Destination == "" {
			return nil, errors.New("get matrix cache: empty spot id in key")
		}
		ph = append(ph, "(origin = ? AND destination = ?)")
		args = append(args, k.Origin, k.Destination)
	}

	// SQLite does not support binding tuples in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain
	// parameterized.
	q := fmt.Sprintf(`
	SELECT
		origin,
		destination,
		duration_seconds,
		distance_meters,
		route_exists
	FROM travel_matrix_cache
	WHERE %s;
	`, strings.Join(ph, " OR "))

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get matrix cache: query travel_matrix_cache table: %w", err)
	}
	defer rows.Close()

	out := make(map[TravelKey]CachedLeg, len(keys))
	for rows.Next() {
		var key TravelKey
		var leg CachedLeg
		if err := rows.Scan(&key.Origin, &key.Destination, &leg.DurationSeconds, &leg.DistanceMeters, &leg.RouteExists); err != nil {
			return nil, fmt.Errorf("get matrix cache: scan rows: %w", err)
		}
		out[key] = leg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get matrix cache: row iteration: %w", err)
	}

	return out, nil
}

// Store many legs in one transaction.
func (s *SqliteMatrixCache) PutMany(ctx context.Context, legs map[TravelKey]CachedLeg) error {
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

	stmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO travel_matrix_cache (
		origin,
		destination,
		duration_seconds,
		distance_meters,
		route_exists
	)
	VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("insert matrix cache: db prepare: %w", err)
	}
	defer stmt.Close()

	for key, leg := range legs {
		if key.Origin == "" || key.Destination == "" {
			return errors.New("insert matrix cache: empty spot id in key")
		}

		if _, err := stmt.Exec(key.Origin, key.Destination, leg.DurationSeconds, leg.DistanceMeters, leg.RouteExists); err != nil {
			return fmt.Errorf("insert matrix cache %q -> %q: %w", key.Origin, key.Destination, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert matrix cache commit: %w", err)
	}

	return nil
}

// LegFromPort converts a provider leg into its cacheable form.
func LegFromPort(leg ports.TravelLeg) CachedLeg {
	return CachedLeg{
		DurationSeconds: leg.DurationSeconds,
		DistanceMeters:  leg.DistanceMeters,
		RouteExists:     leg.RouteExists,
	}
}
