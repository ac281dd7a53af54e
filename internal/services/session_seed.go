package services

import (
	"context"
	"fmt"

	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SeedSession builds a fresh trip session: one page of theme candidates
// and one page of eating candidates are fetched around the anchor and
// rating-sorted. Later pages are pulled lazily during multi-day planning
// via the stored cursors.
func SeedSession(
	ctx context.Context,
	sessionID string,
	theme domain.Category,
	anchor *domain.Spot,
	candidates ports.CandidateProvider,
) (*domain.TripSession, error) {
	themePage, err := candidates.SearchSpots(ctx, theme, anchor, "")
	if err != nil {
		return nil, fmt.Errorf("seed session: theme search: %w", err)
	}
	domain.SortSpotsByRating(themePage.Spots)

	eatingPage, err := candidates.SearchSpots(ctx, domain.CategoryEating, anchor, "")
	if err != nil {
		return nil, fmt.Errorf("seed session: eating search: %w", err)
	}
	domain.SortSpotsByRating(eatingPage.Spots)

	return &domain.TripSession{
		SessionID: sessionID,
		Reserves: []*domain.ThemePool{
			{Theme: theme, Spots: themePage.Spots, NextCursor: themePage.NextCursor},
		},
		EatingSpots: eatingPage.Spots,
	}, nil
}
