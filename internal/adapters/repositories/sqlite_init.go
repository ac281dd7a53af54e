package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"trip-planner-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createSpotsQuery := `
	CREATE TABLE IF NOT EXISTS spots (
		spot_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		lon REAL NOT NULL,
		lat REAL NOT NULL,
		categories TEXT NOT NULL,
		rating REAL NOT NULL DEFAULT 0,
		user_rating_count INTEGER NOT NULL DEFAULT 0,
		photo_reference TEXT NOT NULL DEFAULT ''
	);
	`

	createMatrixCacheQuery := `
	CREATE TABLE IF NOT EXISTS travel_matrix_cache (
        origin TEXT NOT NULL,
        destination TEXT NOT NULL,
        duration_seconds INTEGER NOT NULL,
        distance_meters INTEGER NOT NULL,
        route_exists INTEGER NOT NULL DEFAULT 1,
        PRIMARY KEY (origin, destination)
    );
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_travel_matrix_cache_destination_origin
    ON travel_matrix_cache(destination, origin);
	`

	statements := []string{
		createSpotsQuery,
		createMatrixCacheQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type SpotSeed struct {
	SpotID          string   `json:"spot_id"`
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	Lon             float64  `json:"lon"`
	Lat             float64  `json:"lat"`
	Categories      []string `json:"categories"`
	Rating          float64  `json:"rating"`
	UserRatingCount int      `json:"user_rating_count"`
	PhotoReference  string   `json:"photo_reference"`
}

// Populate the database with spot data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed spots: read %q: %w", jsonPath, err)
	}

	var data []SpotSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed spots: parse json: %w", err)
	}

	rows := make([]SpotSeed, 0, len(data))
	for i, item := range data {
		spotID := strings.TrimSpace(item.SpotID)
		if spotID == "" {
			return fmt.Errorf("seed spots: item at index %d: spot_id cannot be empty", i+1)
		}

		name := strings.TrimSpace(item.Name)
		if name == "" {
			return fmt.Errorf("seed spots: item at index %d: name cannot be empty", i+1)
		}

		item.SpotID = spotID
		item.Name = name
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed spots: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO spots (
		spot_id,
		name,
		address,
		lon,
		lat,
		categories,
		rating,
		user_rating_count,
		photo_reference
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed spots: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range rows {
		categories, err := json.Marshal(s.Categories)
		if err != nil {
			return fmt.Errorf("seed spots: encode categories for spot_id=%s: %w", s.SpotID, err)
		}

		_, err = stmt.Exec(
			s.SpotID,
			s.Name,
			s.Address,
			s.Lon,
			s.Lat,
			string(categories),
			s.Rating,
			s.UserRatingCount,
			s.PhotoReference,
		)
		if err != nil {
			return fmt.Errorf("seed spots: insert spot_id=%s: %w", s.SpotID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed spots: commit tx: %w", err)
	}

	return nil
}

func decodeCategories(raw string) ([]domain.Category, error) {
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, err
	}
	categories := make([]domain.Category, len(names))
	for i, n := range names {
		categories[i] = domain.Category(n)
	}
	return categories, nil
}
