package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// Port: a boundary for retrieving seeded candidate Spots from a data source.
type SpotRepository interface {
	// Retrieve all stored candidate spots.
	ListSpots(ctx context.Context) ([]*domain.Spot, error)
}
