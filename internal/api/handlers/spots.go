package handlers

import (
	"log"
	"net/http"

	"trip-planner-service/internal/api/dto"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// SpotHandler exposes read-only spot retrieval endpoints.
type SpotHandler struct {
	Repo ports.SpotRepository
}

func (h *SpotHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	spots, err := h.Repo.ListSpots(r.Context())
	if err != nil {
		log.Printf("list spots failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSpotsResponse{
		Spots: make([]dto.SpotPayload, 0, len(spots)),
	}
	for _, s := range spots {
		res.Spots = append(res.Spots, spotPayload(s))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func spotPayload(s *domain.Spot) dto.SpotPayload {
	categories := make([]string, len(s.Categories))
	for i, c := range s.Categories {
		categories[i] = string(c)
	}
	return dto.SpotPayload{
		SpotID:          s.SpotID,
		Name:            s.Name,
		Address:         s.Address,
		Lon:             s.Location.Lon,
		Lat:             s.Location.Lat,
		Categories:      categories,
		Rating:          s.Rating,
		UserRatingCount: s.UserRatingCount,
		PhotoReference:  s.PhotoReference,
	}
}

func spotFromPayload(p *dto.SpotPayload) *domain.Spot {
	if p == nil {
		return nil
	}
	categories := make([]domain.Category, len(p.Categories))
	for i, c := range p.Categories {
		categories[i] = domain.Category(c)
	}
	return &domain.Spot{
		SpotID:          p.SpotID,
		Name:            p.Name,
		Address:         p.Address,
		Location:        domain.Coordinates{Lon: p.Lon, Lat: p.Lat},
		Categories:      categories,
		Rating:          p.Rating,
		UserRatingCount: p.UserRatingCount,
		PhotoReference:  p.PhotoReference,
	}
}
