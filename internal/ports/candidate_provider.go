package ports

import (
	"context"

	"trip-planner-service/internal/domain"
)

// CandidatePage is one page of candidate spots plus an opaque cursor for
// fetching the next page. An empty cursor means the result set is exhausted.
type CandidatePage struct {
	Spots      []*domain.Spot
	NextCursor string
}

// Contract for searching candidate spots around a geographic anchor.
type CandidateProvider interface {
	// Return a page of spots for the theme near the anchor. Pass the cursor
	// from a previous page to continue; pass "" for the first page.
	SearchSpots(ctx context.Context, theme domain.Category, anchor *domain.Spot, cursor string) (CandidatePage, error)
}
