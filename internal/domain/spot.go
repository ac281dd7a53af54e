package domain

import (
	"slices"
	"time"
)

// Spot is a point of interest as returned by the candidate provider.
// A Spot is immutable once fetched; its identifier is unique within a trip.
type Spot struct {
	SpotID          string
	Name            string
	Address         string
	Location        Coordinates
	Categories      []Category
	Rating          float64
	UserRatingCount int
	PhotoReference  string
}

// HasCategory reports whether the spot carries the given category tag.
func (s *Spot) HasCategory(c Category) bool {
	for _, tag := range s.Categories {
		if tag == c {
			return true
		}
	}
	return false
}

// IsEating reports whether the spot is a meal candidate.
func (s *Spot) IsEating() bool { return s.HasCategory(CategoryEating) }

// IsMust reports whether the user marked the spot as mandatory.
func (s *Spot) IsMust() bool { return s.HasCategory(CategoryMust) }

// StayTime returns the spot's average visit duration.
func (s *Spot) StayTime() time.Duration { return AverageStayTime(s.Categories) }

// SortSpotsByRating orders spots by rating, then by review volume.
// Sorting is stable so provider order breaks remaining ties.
func SortSpotsByRating(spots []*Spot) {
	slices.SortStableFunc(spots, func(a, b *Spot) int {
		if a.Rating != b.Rating {
			if a.Rating > b.Rating {
				return -1
			}
			return 1
		}
		return b.UserRatingCount - a.UserRatingCount
	})
}
