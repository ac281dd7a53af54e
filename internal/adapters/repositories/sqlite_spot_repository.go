package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"trip-planner-service/internal/domain"
)

// SQLite-backed implementation of the SpotRepository port.
type SqliteSpotRepository struct{ DB *sql.DB }

func NewSqliteSpotRepository(db *sql.DB) *SqliteSpotRepository {
	return &SqliteSpotRepository{DB: db}
}

// Return all spots stored in the database.
func (s *SqliteSpotRepository) ListSpots(ctx context.Context) ([]*domain.Spot, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite spot repository: DB is nil")
	}

	query := `
	SELECT
		spot_id,
		name,
		address,
		lon,
		lat,
		categories,
		rating,
		user_rating_count,
		photo_reference
	FROM spots
	ORDER BY spot_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list spots: query spots table: %w", err)
	}
	defer rows.Close()

	spots := make([]*domain.Spot, 0, 64)
	for rows.Next() {
		var spot domain.Spot
		var rawCategories string
		err := rows.Scan(
			&spot.SpotID,
			&spot.Name,
			&spot.Address,
			&spot.Location.Lon,
			&spot.Location.Lat,
			&rawCategories,
			&spot.Rating,
			&spot.UserRatingCount,
			&spot.PhotoReference,
		)
		if err != nil {
			return nil, fmt.Errorf("list spots: scan row: %w", err)
		}

		spot.Categories, err = decodeCategories(rawCategories)
		if err != nil {
			return nil, fmt.Errorf("list spots: decode categories for spot_id=%s: %w", spot.SpotID, err)
		}

		spots = append(spots, &spot)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list spots: row iteration: %w", err)
	}

	return spots, nil
}
