package cache

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema := `
	CREATE TABLE travel_matrix_cache (
		origin TEXT NOT NULL,
		destination TEXT NOT NULL,
		duration_seconds INTEGER NOT NULL,
		distance_meters INTEGER NOT NULL,
		route_exists INTEGER NOT NULL DEFAULT 1,
		PRIMARY KEY (origin, destination)
	);
	`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	return db
}

func TestSqliteMatrixCacheRoundTrip(t *testing.T) {
	cache := NewSqliteMatrixCache(newTestDB(t))

	legs := map[TravelKey]CachedLeg{
		{Origin: "A", Destination: "B"}: {DurationSeconds: 600, DistanceMeters: 5000, RouteExists: true},
		{Origin: "B", Destination: "A"}: {DurationSeconds: 650, DistanceMeters: 5000, RouteExists: true},
		{Origin: "A", Destination: "C"}: {RouteExists: false},
	}
	if err := cache.PutMany(context.Background(), legs); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cache.GetMany(context.Background(), []TravelKey{
		{Origin: "A", Destination: "B"},
		{Origin: "A", Destination: "C"},
		{Origin: "C", Destination: "A"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 cached legs, got %d", len(got))
	}

	ab := got[TravelKey{Origin: "A", Destination: "B"}]
	if ab.DurationSeconds != 600 || ab.DistanceMeters != 5000 || !ab.RouteExists {
		t.Fatalf("A->B leg incorrect: %+v", ab)
	}

	ac := got[TravelKey{Origin: "A", Destination: "C"}]
	if ac.RouteExists {
		t.Fatalf("A->C should be cached as unroutable: %+v", ac)
	}
}

func TestSqliteMatrixCachePutManyReplaces(t *testing.T) {
	cache := NewSqliteMatrixCache(newTestDB(t))

	key := TravelKey{Origin: "A", Destination: "B"}
	if err := cache.PutMany(context.Background(), map[TravelKey]CachedLeg{key: {DurationSeconds: 600, RouteExists: true}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := cache.PutMany(context.Background(), map[TravelKey]CachedLeg{key: {DurationSeconds: 900, RouteExists: true}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := cache.GetMany(context.Background(), []TravelKey{key})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[key].DurationSeconds != 900 {
		t.Fatalf("duration = %d, want 900", got[key].DurationSeconds)
	}
}

func TestSqliteMatrixCacheEmptyInput(t *testing.T) {
	cache := NewSqliteMatrixCache(newTestDB(t))

	got, err := cache.GetMany(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %d", len(got))
	}

	if err := cache.PutMany(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
